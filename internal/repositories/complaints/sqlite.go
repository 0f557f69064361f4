package complaints

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/complaintdesk/internal/common"
	"github.com/dmitrijs2005/complaintdesk/internal/dbx"
	"github.com/dmitrijs2005/complaintdesk/internal/models"
)

// SQLiteRepository implements Repository on a local SQLite database.
//
// Ordering is materialized in a position column: lower position means newer.
// Prepend inserts at min(position)-1, so the stored order survives restarts
// without relying on timestamps, which may collide.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DB.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func scanComplaint(rows *sql.Rows) (models.Complaint, error) {
	var c models.Complaint
	var createdAt string
	if err := rows.Scan(&c.ID, &c.Title, &c.Category, &c.Description,
		&c.Attachment, &c.UserEmail, &c.UserName, &c.Status, &createdAt); err != nil {
		return models.Complaint{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return models.Complaint{}, fmt.Errorf("bad created_at %q: %w", createdAt, err)
	}
	c.CreatedAt = ts
	return c, nil
}

// GetAll lists all complaints newest-first.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Complaint, error) {
	query := `select id, title, category, description, attachment, user_email,
			user_name, status, created_at
		from complaints order by position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select complaints: %w", err)
	}
	defer rows.Close()

	var result []models.Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Prepend inserts c ahead of every stored complaint.
func (r *SQLiteRepository) Prepend(ctx context.Context, c *models.Complaint) error {
	query := `insert into complaints
			(id, title, category, description, attachment, user_email,
			 user_name, status, created_at, position)
		values (?, ?, ?, ?, ?, ?, ?, ?, ?,
			(select coalesce(min(position), 0) - 1 from complaints))`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Title, c.Category, c.Description, c.Attachment,
		c.UserEmail, c.UserName, c.Status, c.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to insert complaint: %w", err)
	}
	return nil
}

// UpdateStatus sets the status of one complaint in place.
func (r *SQLiteRepository) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	query := `update complaints set status=? where id=?`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update complaint status: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

// ReplaceAll overwrites the whole collection in a single transaction. The
// slice order is written into the position column, first element newest.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, list []models.Complaint) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `delete from complaints`); err != nil {
			return fmt.Errorf("failed to clear complaints: %w", err)
		}
		for i, c := range list {
			query := `insert into complaints
					(id, title, category, description, attachment, user_email,
					 user_name, status, created_at, position)
				values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
			if _, err := tx.ExecContext(ctx, query,
				c.ID, c.Title, c.Category, c.Description, c.Attachment,
				c.UserEmail, c.UserName, c.Status,
				c.CreatedAt.Format(time.RFC3339Nano), i); err != nil {
				return fmt.Errorf("failed to insert complaint: %w", err)
			}
		}
		return nil
	})
}
