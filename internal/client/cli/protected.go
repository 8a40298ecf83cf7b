package cli

import (
	"context"

	"github.com/dmitrijs2005/sitecms/internal/client/guard"
	"github.com/dmitrijs2005/sitecms/internal/client/session"
)

// protected runs cmd behind a fresh guard. A denied session leads to the
// login prompt; the command itself is not retried.
func (a *App) protected(ctx context.Context, cmd func(ctx context.Context) error) error {
	g := guard.New(a.gate)

	var err error
	g.Mount(ctx, guard.Views{
		Pending: func() { printlnFn("Checking session...") },
		Denied: func() {
			if gerr := g.Err(); gerr != nil {
				a.log.Warn(ctx, "session check failed", "error", gerr)
				printlnFn("Could not verify the session:", gerr.Error())
			}
			printlnFn("Please log in to continue.")
			if err = a.Login(ctx); err == nil {
				printlnFn("Run the command again.")
			}
		},
		Granted: func() {
			if g.Status() == session.StatusDegraded {
				printlnFn("Warning: the API is unreachable, continuing with the saved session.")
			}
			err = cmd(ctx)
		},
	})
	return err
}
