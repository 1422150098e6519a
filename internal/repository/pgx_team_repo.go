package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"

	"github.com/avdeevko/taskhub/internal/db"
)

type Team struct {
	ID                   int    `db:"id"`
	TeamName             string `db:"team_name"`
	ProductOwnerUserID   *int   `db:"product_owner_user_id"`
	ProjectManagerUserID *int   `db:"project_manager_user_id"`
}

type TeamRepository interface {
	List(ctx context.Context) ([]*Team, error)
}

type pgxTeamRepository struct {
	pool *pgxpool.Pool
}

func NewPgxTeamRepository(pool *pgxpool.Pool) TeamRepository {
	return &pgxTeamRepository{pool: pool}
}

func (p *pgxTeamRepository) List(ctx context.Context) ([]*Team, error) {
	e := db.ExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns("id", "team_name", "product_owner_user_id", "project_manager_user_id"),
		sm.From("teams"),
		sm.OrderBy("id"),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := e.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Team, error) {
		team := &Team{}
		if err := row.Scan(&team.ID, &team.TeamName, &team.ProductOwnerUserID, &team.ProjectManagerUserID); err != nil {
			return nil, err
		}
		return team, nil
	})
}
