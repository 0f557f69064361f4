// Package users persists the users collection in the local SQLite database.
package users

import (
	"context"

	"github.com/dmitrijs2005/complaintdesk/internal/models"
)

// Repository is the durable store for the users collection.
//
// Contract:
//   - GetAll returns the collection in insertion order (startup load).
//   - Append adds one user and makes it durable before returning.
//   - ReplaceAll overwrites the whole collection atomically.
type Repository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	Append(ctx context.Context, u *models.User) error
	ReplaceAll(ctx context.Context, users []models.User) error
}
