// Package session implements the complaint desk core: the in-memory
// collections, the authenticated-session state machine, and the authorization
// rules gating every operation.
//
// A Model is explicitly constructed per session with its backing repositories
// injected; there is no ambient singleton. All mutating operations persist
// synchronously before touching memory, so a caller observing success is
// guaranteed the mutation is durable, and a failed persist leaves the
// in-memory state untouched.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/complaintdesk/internal/common"
	"github.com/dmitrijs2005/complaintdesk/internal/logging"
	"github.com/dmitrijs2005/complaintdesk/internal/models"
	"github.com/dmitrijs2005/complaintdesk/internal/repositories/complaints"
	"github.com/dmitrijs2005/complaintdesk/internal/repositories/users"
	"github.com/google/uuid"
)

// Model owns the two collections and the current session. It is not safe for
// concurrent use: the complaint desk has exactly one actor per session.
type Model struct {
	users      []models.User
	complaints []models.Complaint
	current    *models.Session

	userRepo      users.Repository
	complaintRepo complaints.Repository
	logger        logging.Logger

	// now is a test seam for complaint timestamps.
	now func() time.Time
}

// New constructs a Model bound to the given repositories. Call Bootstrap
// before any other operation.
func New(userRepo users.Repository, complaintRepo complaints.Repository, logger logging.Logger) *Model {
	return &Model{
		userRepo:      userRepo,
		complaintRepo: complaintRepo,
		logger:        logger,
		now:           time.Now,
	}
}

// normalizeEmail lower-cases a trimmed email; normalized emails are the
// uniqueness key for users.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Bootstrap loads both collections and guarantees the seeded admin account
// exists. Unreadable collections degrade to empty rather than failing the
// startup; only a failed admin seed write is an error.
func (m *Model) Bootstrap(ctx context.Context, adminEmail, adminPassword string) error {
	loaded, err := m.userRepo.GetAll(ctx)
	if err != nil {
		m.logger.Warn(ctx, "could not load users, starting with empty collection", "error", err)
		loaded = nil
	}
	m.users = loaded

	adminEmail = normalizeEmail(adminEmail)
	if m.findUser(adminEmail) == nil {
		admin := models.User{
			Name:     "Admin",
			Email:    adminEmail,
			Password: adminPassword,
			Role:     models.RoleAdmin,
		}
		if err := m.userRepo.Append(ctx, &admin); err != nil {
			return fmt.Errorf("failed to seed admin account: %w", err)
		}
		m.users = append(m.users, admin)
		m.logger.Info(ctx, "seeded admin account", "email", adminEmail)
	}

	cs, err := m.complaintRepo.GetAll(ctx)
	if err != nil {
		m.logger.Warn(ctx, "could not load complaints, starting with empty collection", "error", err)
		cs = nil
	}
	m.complaints = cs

	return nil
}

func (m *Model) findUser(normalizedEmail string) *models.User {
	for i := range m.users {
		if normalizeEmail(m.users[i].Email) == normalizedEmail {
			return &m.users[i]
		}
	}
	return nil
}

// Register creates a new account with role "user". It does not log the new
// user in; the session state is unchanged.
func (m *Model) Register(ctx context.Context, name, email, password string) error {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	password = strings.TrimSpace(password)

	if name == "" || email == "" || password == "" {
		return common.ErrValidation
	}
	if m.findUser(email) != nil {
		return common.ErrDuplicateEmail
	}

	u := models.User{Name: name, Email: email, Password: password, Role: models.RoleUser}
	if err := m.userRepo.Append(ctx, &u); err != nil {
		return err
	}
	m.users = append(m.users, u)

	m.logger.Info(ctx, "user registered", "email", email)
	return nil
}

// Login matches credentials against the users collection and, on success,
// establishes the session. The returned session is a copy.
func (m *Model) Login(ctx context.Context, email, password string) (*models.Session, error) {
	email = normalizeEmail(email)
	password = strings.TrimSpace(password)

	u := m.findUser(email)
	if u == nil || u.Password != password {
		return nil, common.ErrInvalidCredentials
	}

	m.current = &models.Session{Name: u.Name, Email: u.Email, Role: u.Role}
	m.logger.Info(ctx, "user logged in", "email", u.Email, "role", u.Role)

	s := *m.current
	return &s, nil
}

// Logout clears the session. It is a no-op when nobody is logged in.
func (m *Model) Logout(ctx context.Context) {
	if m.current == nil {
		return
	}
	m.logger.Info(ctx, "user logged out", "email", m.current.Email)
	m.current = nil
}

// Current returns a copy of the active session, or nil when anonymous.
func (m *Model) Current() *models.Session {
	if m.current == nil {
		return nil
	}
	s := *m.current
	return &s
}

// SubmitComplaint creates a complaint authored by the current session and
// prepends it to the collection (the list is kept newest-first).
func (m *Model) SubmitComplaint(ctx context.Context, title, category, description, attachment string) (*models.Complaint, error) {
	if m.current == nil {
		return nil, common.ErrNotAuthenticated
	}

	title = strings.TrimSpace(title)
	category = strings.TrimSpace(category)
	description = strings.TrimSpace(description)
	attachment = strings.TrimSpace(attachment)

	if title == "" || description == "" {
		return nil, common.ErrValidation
	}

	c := models.Complaint{
		ID:          "C-" + uuid.NewString(),
		Title:       title,
		Category:    category,
		Description: description,
		Attachment:  attachment,
		UserEmail:   m.current.Email,
		UserName:    m.current.Name,
		Status:      models.StatusPending,
		CreatedAt:   m.now(),
	}

	if err := m.complaintRepo.Prepend(ctx, &c); err != nil {
		return nil, err
	}
	m.complaints = append([]models.Complaint{c}, m.complaints...)

	m.logger.Info(ctx, "complaint submitted", "id", c.ID, "user", c.UserEmail)
	return &c, nil
}

// ListMyComplaints returns the current user's complaints, newest-first.
func (m *Model) ListMyComplaints(ctx context.Context) ([]models.Complaint, error) {
	if m.current == nil {
		return nil, common.ErrNotAuthenticated
	}

	var result []models.Complaint
	for _, c := range m.complaints {
		if c.UserEmail == m.current.Email {
			result = append(result, c)
		}
	}
	return result, nil
}

// ListAllComplaints returns every complaint, newest-first. Admin only; a
// logged-in regular user gets ErrNotAuthorized, same as an anonymous caller.
func (m *Model) ListAllComplaints(ctx context.Context) ([]models.Complaint, error) {
	if !m.current.IsAdmin() {
		return nil, common.ErrNotAuthorized
	}

	result := make([]models.Complaint, len(m.complaints))
	copy(result, m.complaints)
	return result, nil
}

// UpdateStatus moves one complaint to a new lifecycle status. Admin only.
// Validation happens before the write, and memory is only mutated after the
// write succeeds.
func (m *Model) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	if !m.current.IsAdmin() {
		return common.ErrNotAuthorized
	}

	idx := -1
	for i := range m.complaints {
		if m.complaints[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return common.ErrNotFound
	}
	if !status.Valid() {
		return common.ErrInvalidStatus
	}

	if err := m.complaintRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	m.complaints[idx].Status = status

	m.logger.Info(ctx, "complaint status updated", "id", id, "status", status)
	return nil
}
