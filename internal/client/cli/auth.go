package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophdocs/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register creates an account and signs the user in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter display name (optional)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.authService.SignUp(ctx, email, password, name); err != nil {
		return err
	}
	return nil
}

// Login signs the user in. On failure the gate stays where it was and the
// error is returned to the REPL.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.authService.SignIn(ctx, email, password); err != nil {
		return err
	}
	return nil
}

// Logout ends the session. The local session is dropped even when the
// server could not be told.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.SignOut(ctx); err != nil {
		a.logger.Warn(ctx, "sign out not confirmed by server", "error", err.Error())
	}
	return nil
}

// Profile shows the account and how many documents it owns.
func (a *App) Profile(ctx context.Context) error {
	u, err := a.authService.CurrentUser(ctx)
	if err != nil {
		return err
	}
	n, err := a.documentService.CountMine(ctx)
	if err != nil {
		return err
	}

	name := u.DisplayName
	if name == "" {
		name = "-"
	}
	fmt.Fprintf(a.out, "Name:      %s\n", name)
	fmt.Fprintf(a.out, "Email:     %s\n", u.Email)
	fmt.Fprintf(a.out, "Documents: %d\n", n)
	return nil
}

func (a *App) ChangeEmail(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter new email", a.out)
	if err != nil {
		return err
	}
	u, err := a.authService.ChangeEmail(ctx, email)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Email changed to %s.\n", u.Email)
	return nil
}

func (a *App) ChangePassword(ctx context.Context) error {
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.ChangePassword(ctx, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed.")
	return nil
}
