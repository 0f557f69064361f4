// Package complaints persists the complaints collection in the local SQLite
// database. The collection is kept newest-first: Prepend places a complaint
// ahead of every existing one and GetAll returns that stored order.
package complaints

import (
	"context"

	"github.com/dmitrijs2005/complaintdesk/internal/models"
)

// Repository is the durable store for the complaints collection.
type Repository interface {
	// GetAll returns the collection newest-first.
	GetAll(ctx context.Context) ([]models.Complaint, error)

	// Prepend makes c the first element of the stored collection.
	Prepend(ctx context.Context, c *models.Complaint) error

	// UpdateStatus sets the status of the complaint with the given id.
	// Returns common.ErrNotFound when no such complaint exists.
	UpdateStatus(ctx context.Context, id string, status models.Status) error

	// ReplaceAll overwrites the whole collection atomically, preserving the
	// order of the given slice.
	ReplaceAll(ctx context.Context, list []models.Complaint) error
}
