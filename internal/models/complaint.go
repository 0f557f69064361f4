package models

import "time"

// Status is the lifecycle state of a complaint.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// Complaint is a user-submitted issue tracked through the status lifecycle.
//
// UserEmail references the author's User.Email; UserName is a denormalized
// snapshot of the author's name at submission time, so later profile changes
// would not rewrite history. Attachment is an optional URL, never uploaded
// bytes.
type Complaint struct {
	ID          string
	Title       string
	Category    string
	Description string
	Attachment  string
	UserEmail   string
	UserName    string
	Status      Status
	CreatedAt   time.Time
}
