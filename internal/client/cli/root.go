package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus(ctx context.Context) string {
	if !a.isLoggedIn(ctx) {
		return "guest"
	}
	if a.userName != "" {
		return a.userName
	}
	return "admin"
}

// Root prints the banner and runs the REPL on the app's input until the
// user exits or input ends.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to the sitecms admin console (type 'help' for commands)")
	if a.isLoggedIn(ctx) {
		printlnFn("A saved session was found; admin commands will verify it.")
	}

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}

func usage(cmd string) {
	printlnFn(fmt.Sprintf("Usage: %s", cmd))
}
