package models

// Session is the transient identity of the currently authenticated actor.
// It carries only non-secret fields copied from the matched User at login
// and is never persisted (no "remember me").
type Session struct {
	Name  string
	Email string
	Role  Role
}

// IsAdmin reports whether the session belongs to an administrator.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
