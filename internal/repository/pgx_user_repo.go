package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"

	"github.com/avdeevko/taskhub/internal/db"
)

type User struct {
	UserID            int    `db:"user_id"`
	CognitoID         string `db:"cognito_id"`
	Username          string `db:"username"`
	ProfilePictureURL string `db:"profile_picture_url"`
	TeamID            int    `db:"team_id"`
}

type NewUser struct {
	Username          string
	CognitoID         string
	ProfilePictureURL string
	TeamID            int
}

type UserRepository interface {
	List(ctx context.Context) ([]*User, error)
	Get(ctx context.Context, userID int) (*User, error)
	GetByIDs(ctx context.Context, userIDs []int) ([]*User, error)
	GetByCognitoID(ctx context.Context, cognitoID string) (*User, error)
	Create(ctx context.Context, user *NewUser) (*User, error)
	Search(ctx context.Context, query string) ([]*User, error)
}

var userColumns = []string{"user_id", "cognito_id", "username", "profile_picture_url", "team_id"}

type pgxUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgxUserRepository(pool *pgxpool.Pool) UserRepository {
	return &pgxUserRepository{pool: pool}
}

func (p *pgxUserRepository) List(ctx context.Context) ([]*User, error) {
	q := psql.Select(
		sm.Columns(toAny(userColumns)...),
		sm.From("users"),
		sm.OrderBy("user_id"),
	)

	sql, args, err := q.Build(ctx)
	return p.collect(ctx, sql, args, err)
}

func (p *pgxUserRepository) Get(ctx context.Context, userID int) (*User, error) {
	q := psql.Select(
		sm.Columns(toAny(userColumns)...),
		sm.From("users"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	sql, args, err := q.Build(ctx)
	return p.one(ctx, sql, args, err)
}

func (p *pgxUserRepository) GetByIDs(ctx context.Context, userIDs []int) ([]*User, error) {
	if len(userIDs) == 0 {
		return []*User{}, nil
	}

	q := psql.Select(
		sm.Columns(toAny(userColumns)...),
		sm.From("users"),
		sm.Where(psql.Quote("user_id").In(psql.Arg(toAnyInts(userIDs)...))),
	)

	sql, args, err := q.Build(ctx)
	return p.collect(ctx, sql, args, err)
}

func (p *pgxUserRepository) GetByCognitoID(ctx context.Context, cognitoID string) (*User, error) {
	q := psql.Select(
		sm.Columns(toAny(userColumns)...),
		sm.From("users"),
		sm.Where(psql.Quote("cognito_id").EQ(psql.Arg(cognitoID))),
	)

	sql, args, err := q.Build(ctx)
	return p.one(ctx, sql, args, err)
}

func (p *pgxUserRepository) Create(ctx context.Context, user *NewUser) (*User, error) {
	e := db.ExecutorFromContext(ctx, p.pool)

	q := psql.Insert(
		im.Into("users", "username", "cognito_id", "profile_picture_url", "team_id"),
		im.Values(psql.Arg(user.Username), psql.Arg(user.CognitoID), psql.Arg(user.ProfilePictureURL), psql.Arg(user.TeamID)),
		im.Returning(toAny(userColumns)...),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	created := &User{}
	err = e.QueryRow(ctx, sql, args...).Scan(
		&created.UserID,
		&created.CognitoID,
		&created.Username,
		&created.ProfilePictureURL,
		&created.TeamID,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return nil, ErrAlreadyExists
	}
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (p *pgxUserRepository) Search(ctx context.Context, query string) ([]*User, error) {
	q := psql.Select(
		sm.Columns(toAny(userColumns)...),
		sm.From("users"),
		sm.Where(psql.Quote("username").ILike(psql.Arg("%"+query+"%"))),
		sm.OrderBy("user_id"),
	)

	sql, args, err := q.Build(ctx)
	return p.collect(ctx, sql, args, err)
}

func (p *pgxUserRepository) one(ctx context.Context, sql string, args []any, buildErr error) (*User, error) {
	if buildErr != nil {
		return nil, buildErr
	}

	e := db.ExecutorFromContext(ctx, p.pool)

	user := &User{}
	if err := e.QueryRow(ctx, sql, args...).Scan(
		&user.UserID,
		&user.CognitoID,
		&user.Username,
		&user.ProfilePictureURL,
		&user.TeamID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (p *pgxUserRepository) collect(ctx context.Context, sql string, args []any, buildErr error) ([]*User, error) {
	if buildErr != nil {
		return nil, buildErr
	}

	e := db.ExecutorFromContext(ctx, p.pool)

	rows, err := e.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*User, error) {
		user := &User{}
		if err := row.Scan(&user.UserID, &user.CognitoID, &user.Username, &user.ProfilePictureURL, &user.TeamID); err != nil {
			return nil, err
		}
		return user, nil
	})
}
