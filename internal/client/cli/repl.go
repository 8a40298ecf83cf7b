package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/sitecms/internal/client/client"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool

	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	Credentials(ctx context.Context) error

	Articles(ctx context.Context, args []string) error
	Show(ctx context.Context, slug string) error
	Featured(ctx context.Context) error
	Recent(ctx context.Context, args []string) error

	AdminArticles(ctx context.Context, args []string) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Publish(ctx context.Context, id string) error
	Unpublish(ctx context.Context, id string) error
	Stats(ctx context.Context) error

	Categories(ctx context.Context) error
	AddCategory(ctx context.Context) error
	DeleteCategory(ctx context.Context, id string) error

	Upload(ctx context.Context, path string) error
	Contact(ctx context.Context) error
	Subscribe(ctx context.Context, email string) error
}

const (
	publicHelp = "Public commands: articles [category] [search...], show <slug>, featured, recent [n], categories, contact, subscribe <email>, login, status, help, exit"
	adminHelp  = "Admin commands: admin-articles [draft|published], create, edit <id>, delete <id>, publish <id>, unpublish <id>, stats, addcategory, delcategory <id>, upload <path>, credentials, logout"
)

// runREPL reads commands line by line from reader and dispatches them to a.
//
// The prompt shows the current status (from statusFn). Commands that need
// an argument print their usage when it is missing. Errors returned by a
// command are reported and the loop continues. The loop exits on EOF or
// when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("cms (%s)> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(publicHelp)
			if a.isLoggedIn(ctx) {
				printlnFn(adminHelp)
			}

		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "status":
			cmdErr = a.Status(ctx)
		case "credentials":
			cmdErr = a.Credentials(ctx)

		case "articles", "l":
			cmdErr = a.Articles(ctx, args)
		case "show":
			if len(args) == 0 {
				usage("show <slug>")
				continue
			}
			cmdErr = a.Show(ctx, args[0])
		case "featured":
			cmdErr = a.Featured(ctx)
		case "recent":
			cmdErr = a.Recent(ctx, args)

		case "admin-articles":
			cmdErr = a.AdminArticles(ctx, args)
		case "create":
			cmdErr = a.Create(ctx)
		case "edit", "delete", "publish", "unpublish":
			if len(args) == 0 {
				usage(cmd + " <id>")
				continue
			}
			cmdErr = dispatchByID(ctx, a, cmd, args[0])
		case "stats":
			cmdErr = a.Stats(ctx)

		case "categories":
			cmdErr = a.Categories(ctx)
		case "addcategory":
			cmdErr = a.AddCategory(ctx)
		case "delcategory":
			if len(args) == 0 {
				usage("delcategory <id>")
				continue
			}
			cmdErr = a.DeleteCategory(ctx, args[0])

		case "upload":
			if len(args) == 0 {
				usage("upload <path>")
				continue
			}
			cmdErr = a.Upload(ctx, strings.Join(args, " "))
		case "contact":
			cmdErr = a.Contact(ctx)
		case "subscribe":
			if len(args) == 0 {
				usage("subscribe <email>")
				continue
			}
			cmdErr = a.Subscribe(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(describeError(cmdErr))
		}
	}
}

func dispatchByID(ctx context.Context, a execIface, cmd, id string) error {
	switch cmd {
	case "edit":
		return a.Edit(ctx, id)
	case "delete":
		return a.Delete(ctx, id)
	case "publish":
		return a.Publish(ctx, id)
	default:
		return a.Unpublish(ctx, id)
	}
}

// describeError turns a command failure into a line for the user.
func describeError(err error) string {
	switch {
	case errors.Is(err, client.ErrAuthentication):
		return "Not authorized: " + err.Error() + ". Please log in."
	case errors.Is(err, client.ErrNetwork):
		return "API unreachable: " + err.Error()
	case errors.Is(err, client.ErrNotFound):
		return "Not found: " + err.Error()
	case errors.Is(err, client.ErrValidation):
		return "Invalid input: " + err.Error()
	case errors.Is(err, client.ErrServer):
		return "Server error: " + err.Error()
	}
	return "Error: " + err.Error()
}
