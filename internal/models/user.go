// Package models defines the data types shared by the complaint desk:
// users, complaints, and the transient session.
package models

// Role of a registered user. Admins see and manage every complaint;
// regular users only their own.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is a registered account. Email is the identity key and is stored
// normalized (lower-cased). Password is stored in plain text.
type User struct {
	Name     string
	Email    string
	Password string
	Role     Role
}
