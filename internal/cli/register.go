package cli

import (
	"context"
	"fmt"
)

// Register prompts for account details and creates the account. Per the
// registration contract the new user is not logged in afterwards.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.model.Register(ctx, name, email, password); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Registration successful. Please login now!")
	return nil
}
