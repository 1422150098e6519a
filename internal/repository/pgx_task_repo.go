package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"

	"github.com/avdeevko/taskhub/internal/db"
)

type Task struct {
	ID             int        `db:"id"`
	Title          string     `db:"title"`
	Description    *string    `db:"description"`
	Status         *string    `db:"status"`
	Priority       *string    `db:"priority"`
	Tags           *string    `db:"tags"`
	StartDate      *time.Time `db:"start_date"`
	DueDate        *time.Time `db:"due_date"`
	Points         *int       `db:"points"`
	ProjectID      int        `db:"project_id"`
	AuthorUserID   int        `db:"author_user_id"`
	AssignedUserID *int       `db:"assigned_user_id"`
}

type NewTask struct {
	Title          string
	Description    *string
	Status         *string
	Priority       *string
	Tags           *string
	StartDate      *time.Time
	DueDate        *time.Time
	Points         *int
	ProjectID      int
	AuthorUserID   int
	AssignedUserID *int
}

type Comment struct {
	ID     int    `db:"id"`
	Text   string `db:"text"`
	TaskID int    `db:"task_id"`
	UserID int    `db:"user_id"`
}

type Attachment struct {
	ID           int     `db:"id"`
	FileURL      string  `db:"file_url"`
	FileName     *string `db:"file_name"`
	TaskID       int     `db:"task_id"`
	UploadedByID int     `db:"uploaded_by_id"`
}

type TaskRepository interface {
	ListByProject(ctx context.Context, projectID int) ([]*Task, error)
	ListByUser(ctx context.Context, userID int) ([]*Task, error)
	Create(ctx context.Context, task *NewTask) (*Task, error)
	UpdateStatus(ctx context.Context, taskID int, status string) (*Task, error)
	Search(ctx context.Context, query string) ([]*Task, error)
	ListComments(ctx context.Context, taskIDs []int) ([]*Comment, error)
	ListAttachments(ctx context.Context, taskIDs []int) ([]*Attachment, error)
}

var taskColumns = []string{
	"id", "title", "description", "status", "priority", "tags",
	"start_date", "due_date", "points", "project_id", "author_user_id", "assigned_user_id",
}

type pgxTaskRepository struct {
	pool *pgxpool.Pool
}

func NewPgxTaskRepository(pool *pgxpool.Pool) TaskRepository {
	return &pgxTaskRepository{pool: pool}
}

func (p *pgxTaskRepository) ListByProject(ctx context.Context, projectID int) ([]*Task, error) {
	q := psql.Select(
		sm.Columns(toAny(taskColumns)...),
		sm.From("tasks"),
		sm.Where(psql.Quote("project_id").EQ(psql.Arg(projectID))),
		sm.OrderBy("id"),
	)

	sql, args, err := q.Build(ctx)
	return p.collect(ctx, sql, args, err)
}

func (p *pgxTaskRepository) ListByUser(ctx context.Context, userID int) ([]*Task, error) {
	q := psql.Select(
		sm.Columns(toAny(taskColumns)...),
		sm.From("tasks"),
		sm.Where(
			psql.Quote("author_user_id").EQ(psql.Arg(userID)).
				Or(psql.Quote("assigned_user_id").EQ(psql.Arg(userID))),
		),
		sm.OrderBy("id"),
	)

	sql, args, err := q.Build(ctx)
	return p.collect(ctx, sql, args, err)
}

func (p *pgxTaskRepository) Create(ctx context.Context, task *NewTask) (*Task, error) {
	e := db.ExecutorFromContext(ctx, p.pool)

	q := psql.Insert(
		im.Into("tasks",
			"title", "description", "status", "priority", "tags",
			"start_date", "due_date", "points", "project_id", "author_user_id", "assigned_user_id",
		),
		im.Values(
			psql.Arg(task.Title), psql.Arg(task.Description), psql.Arg(task.Status),
			psql.Arg(task.Priority), psql.Arg(task.Tags), psql.Arg(task.StartDate),
			psql.Arg(task.DueDate), psql.Arg(task.Points), psql.Arg(task.ProjectID),
			psql.Arg(task.AuthorUserID), psql.Arg(task.AssignedUserID),
		),
		im.Returning(toAny(taskColumns)...),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	created := &Task{}
	if err = scanTask(e.QueryRow(ctx, sql, args...), created); err != nil {
		return nil, err
	}
	return created, nil
}

func (p *pgxTaskRepository) UpdateStatus(ctx context.Context, taskID int, status string) (*Task, error) {
	e := db.ExecutorFromContext(ctx, p.pool)

	q := psql.Update(
		um.Table("tasks"),
		um.SetCol("status").ToArg(status),
		um.Where(psql.Quote("id").EQ(psql.Arg(taskID))),
		um.Returning(toAny(taskColumns)...),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	updated := &Task{}
	if err = scanTask(e.QueryRow(ctx, sql, args...), updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (p *pgxTaskRepository) Search(ctx context.Context, query string) ([]*Task, error) {
	pattern := "%" + query + "%"

	q := psql.Select(
		sm.Columns(toAny(taskColumns)...),
		sm.From("tasks"),
		sm.Where(
			psql.Quote("title").ILike(psql.Arg(pattern)).
				Or(psql.Quote("description").ILike(psql.Arg(pattern))),
		),
		sm.OrderBy("id"),
	)

	sql, args, err := q.Build(ctx)
	return p.collect(ctx, sql, args, err)
}

func (p *pgxTaskRepository) ListComments(ctx context.Context, taskIDs []int) ([]*Comment, error) {
	if len(taskIDs) == 0 {
		return []*Comment{}, nil
	}

	e := db.ExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns("id", "text", "task_id", "user_id"),
		sm.From("comments"),
		sm.Where(psql.Quote("task_id").In(psql.Arg(toAnyInts(taskIDs)...))),
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

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Comment, error) {
		comment := &Comment{}
		if err := row.Scan(&comment.ID, &comment.Text, &comment.TaskID, &comment.UserID); err != nil {
			return nil, err
		}
		return comment, nil
	})
}

func (p *pgxTaskRepository) ListAttachments(ctx context.Context, taskIDs []int) ([]*Attachment, error) {
	if len(taskIDs) == 0 {
		return []*Attachment{}, nil
	}

	e := db.ExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns("id", "file_url", "file_name", "task_id", "uploaded_by_id"),
		sm.From("attachments"),
		sm.Where(psql.Quote("task_id").In(psql.Arg(toAnyInts(taskIDs)...))),
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

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Attachment, error) {
		attachment := &Attachment{}
		if err := row.Scan(&attachment.ID, &attachment.FileURL, &attachment.FileName, &attachment.TaskID, &attachment.UploadedByID); err != nil {
			return nil, err
		}
		return attachment, nil
	})
}

func (p *pgxTaskRepository) collect(ctx context.Context, sql string, args []any, buildErr error) ([]*Task, error) {
	if buildErr != nil {
		return nil, buildErr
	}

	e := db.ExecutorFromContext(ctx, p.pool)

	rows, err := e.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Task, error) {
		task := &Task{}
		if err := scanTask(row, task); err != nil {
			return nil, err
		}
		return task, nil
	})
}

func scanTask(row pgx.Row, task *Task) error {
	return row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.Tags,
		&task.StartDate,
		&task.DueDate,
		&task.Points,
		&task.ProjectID,
		&task.AuthorUserID,
		&task.AssignedUserID,
	)
}

func toAny(columns []string) []any {
	out := make([]any, len(columns))
	for i, c := range columns {
		out[i] = c
	}
	return out
}

func toAnyInts(ids []int) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}
