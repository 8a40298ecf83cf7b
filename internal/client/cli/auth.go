package cli

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/sitecms/internal/client/services"
	"github.com/dmitrijs2005/sitecms/internal/models"
	"github.com/dmitrijs2005/sitecms/internal/shared"
)

// getSimpleText, getPassword, getMultiline and getConfirm are indirections
// used to facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	getConfirm    = GetConfirm
)

// Login prompts for credentials and stores the session token on success.
// A rejected login reports the server message and keeps any saved token.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	resp, err := a.authService.Login(ctx, userName, string(password))
	if err != nil {
		a.log.Info(ctx, "login failed", "username", userName, "error", err)
		if resp == nil {
			return err
		}
		printlnFn("Logged in, but the session could not be saved:", err.Error())
	}

	a.userName = userName
	if resp.Username != "" {
		a.userName = resp.Username
	}
	printlnFn("Logged in as " + a.userName)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	printlnFn("Logged out.")
	return nil
}

type savedAtReader interface {
	SavedAt(ctx context.Context) (time.Time, bool)
}

// Status checks the saved session against the API and describes it.
func (a *App) Status(ctx context.Context) error {
	if !a.isLoggedIn(ctx) {
		printlnFn("Not logged in.")
		return nil
	}

	st, err := a.gate.CheckSession(ctx)
	if err != nil {
		return err
	}
	a.printf("Session: %s\n", st)

	if s, ok := a.store.(savedAtReader); ok {
		if at, ok := s.SavedAt(ctx); ok {
			a.printf("Saved at: %s\n", at.Local().Format(time.RFC1123))
		}
	}

	info, err := a.authService.TokenInfo(ctx)
	switch {
	case errors.Is(err, services.ErrOpaqueToken), errors.Is(err, services.ErrNotLoggedIn):
		// nothing readable in the token
	case err != nil:
		return err
	default:
		if info.Subject != "" {
			a.printf("User: %s\n", info.Subject)
		}
		if info.ExpiresAt != nil {
			a.printf("Expires: %s\n", info.ExpiresAt.Local().Format(time.RFC1123))
		}
	}
	return nil
}

// Credentials changes the admin username and/or password.
func (a *App) Credentials(ctx context.Context) error {
	return a.protected(ctx, func(ctx context.Context) error {
		current, err := getPassword(a.out, "Current password")
		if err != nil {
			return err
		}
		defer shared.WipeByteArray(current)

		newUser, err := getSimpleText(a.reader, "New username (empty to keep)", a.out)
		if err != nil {
			return err
		}
		newPass, err := getPassword(a.out, "New password (empty to keep)")
		if err != nil {
			return err
		}
		defer shared.WipeByteArray(newPass)

		var confirm []byte
		if len(newPass) > 0 {
			if confirm, err = getPassword(a.out, "Confirm new password"); err != nil {
				return err
			}
			defer shared.WipeByteArray(confirm)
		}

		err = a.authService.UpdateCredentials(ctx, models.CredentialsUpdate{
			CurrentPassword: string(current),
			NewUsername:     newUser,
			NewPassword:     string(newPass),
			ConfirmPassword: string(confirm),
		})
		if err != nil {
			return err
		}
		if newUser != "" {
			a.userName = newUser
		}
		printlnFn("Credentials updated.")
		return nil
	})
}
