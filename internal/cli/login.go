package cli

import (
	"context"
	"fmt"
)

// Login prompts for credentials and establishes the session.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	s, err := a.model.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", s.Name)
	return nil
}

// Logout clears the session. Harmless when already logged out.
func (a *App) Logout(ctx context.Context) error {
	a.model.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out successfully!")
	return nil
}
