package users

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/complaintdesk/internal/dbx"
	"github.com/dmitrijs2005/complaintdesk/internal/models"
)

// SQLiteRepository implements Repository on a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DB.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// GetAll lists all users in insertion order.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := `select email, name, password, role from users order by rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.Email, &u.Name, &u.Password, &u.Role); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Append inserts one user. Email is the primary key, so inserting a
// duplicate fails at the database level as well.
func (r *SQLiteRepository) Append(ctx context.Context, u *models.User) error {
	query := `insert into users (email, name, password, role) values (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, u.Email, u.Name, u.Password, u.Role); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// ReplaceAll overwrites the whole collection in a single transaction.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, users []models.User) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `delete from users`); err != nil {
			return fmt.Errorf("failed to clear users: %w", err)
		}
		for _, u := range users {
			query := `insert into users (email, name, password, role) values (?, ?, ?, ?)`
			if _, err := tx.ExecContext(ctx, query, u.Email, u.Name, u.Password, u.Role); err != nil {
				return fmt.Errorf("failed to insert user: %w", err)
			}
		}
		return nil
	})
}
