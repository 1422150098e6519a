package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"

	"github.com/avdeevko/taskhub/internal/db"
)

type Project struct {
	ID          int        `db:"id"`
	Name        string     `db:"name"`
	Description *string    `db:"description"`
	StartDate   *time.Time `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
}

type NewProject struct {
	Name        string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
}

type ProjectRepository interface {
	List(ctx context.Context) ([]*Project, error)
	Create(ctx context.Context, project *NewProject) (*Project, error)
	Search(ctx context.Context, query string) ([]*Project, error)
}

type pgxProjectRepository struct {
	pool *pgxpool.Pool
}

func NewPgxProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &pgxProjectRepository{pool: pool}
}

func (p *pgxProjectRepository) List(ctx context.Context) ([]*Project, error) {
	q := psql.Select(
		sm.Columns("id", "name", "description", "start_date", "end_date"),
		sm.From("projects"),
		sm.OrderBy("id"),
	)

	sql, args, err := q.Build(ctx)
	return p.collect(ctx, sql, args, err)
}

func (p *pgxProjectRepository) Create(ctx context.Context, project *NewProject) (*Project, error) {
	e := db.ExecutorFromContext(ctx, p.pool)

	q := psql.Insert(
		im.Into("projects", "name", "description", "start_date", "end_date"),
		im.Values(psql.Arg(project.Name), psql.Arg(project.Description), psql.Arg(project.StartDate), psql.Arg(project.EndDate)),
		im.Returning("id", "name", "description", "start_date", "end_date"),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	created := &Project{}
	if err = e.QueryRow(ctx, sql, args...).Scan(
		&created.ID,
		&created.Name,
		&created.Description,
		&created.StartDate,
		&created.EndDate,
	); err != nil {
		return nil, err
	}
	return created, nil
}

func (p *pgxProjectRepository) Search(ctx context.Context, query string) ([]*Project, error) {
	pattern := "%" + query + "%"

	q := psql.Select(
		sm.Columns("id", "name", "description", "start_date", "end_date"),
		sm.From("projects"),
		sm.Where(
			psql.Quote("name").ILike(psql.Arg(pattern)).
				Or(psql.Quote("description").ILike(psql.Arg(pattern))),
		),
		sm.OrderBy("id"),
	)

	sql, args, err := q.Build(ctx)
	return p.collect(ctx, sql, args, err)
}

func (p *pgxProjectRepository) collect(ctx context.Context, sql string, args []any, buildErr error) ([]*Project, error) {
	if buildErr != nil {
		return nil, buildErr
	}

	e := db.ExecutorFromContext(ctx, p.pool)

	rows, err := e.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Project, error) {
		project := &Project{}
		if err := row.Scan(&project.ID, &project.Name, &project.Description, &project.StartDate, &project.EndDate); err != nil {
			return nil, err
		}
		return project, nil
	})
}
