package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. The real App satisfies
// it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	ChangeEmail(ctx context.Context) error
	ChangePassword(ctx context.Context) error

	List(ctx context.Context) error
	Refresh(ctx context.Context) error
	Search(ctx context.Context, text string) error
	ToggleCategory(ctx context.Context, category string) error
	Categories(ctx context.Context) error
	ClearFilters(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Download(ctx context.Context, id string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

const (
	helpSignedOut = "Available commands: register, login, help, exit"
	helpSignedIn  = "Available commands: (l)ist, (r)efresh, search <text>, cat <category>, cats, clear, " +
		"show <id>, download <id>, add, edit <id>, delete <id>, profile, email, password, logout, help, exit"
)

var errUsage = errors.New("usage")

// runREPL reads commands line by line from reader and dispatches them to a.
// It returns on EOF or on "exit"/"quit". A command error is printed once
// and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("gophdocs%s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		line = strings.TrimRight(line, "\r\n")

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		// the search text keeps its inner and trailing spaces
		rest := strings.TrimLeft(strings.TrimPrefix(strings.TrimLeft(line, " \t"), cmd), " \t")

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if err := dispatch(ctx, a, cmd, rest); err != nil {
			if errors.Is(err, errUsage) {
				printlnFn(err.Error())
			} else {
				printlnFn("Error:", err.Error())
			}
		}
	}
}

func usage(s string) error {
	return fmt.Errorf("%w: %s", errUsage, s)
}

func dispatch(ctx context.Context, a execIface, cmd, rest string) error {
	if !a.isLoggedIn() {
		switch cmd {
		case "help":
			printlnFn(helpSignedOut)
			return nil
		case "register":
			return a.Register(ctx)
		case "login":
			return a.Login(ctx)
		default:
			printlnFn("Unknown command:", cmd, "(sign in first, or type 'help')")
			return nil
		}
	}

	arg := strings.TrimSpace(rest)

	switch cmd {
	case "help":
		printlnFn(helpSignedIn)
	case "l", "list":
		return a.List(ctx)
	case "r", "refresh":
		return a.Refresh(ctx)
	case "search":
		return a.Search(ctx, rest)
	case "cat":
		if arg == "" {
			return usage("cat <category>")
		}
		return a.ToggleCategory(ctx, arg)
	case "cats":
		return a.Categories(ctx)
	case "clear":
		return a.ClearFilters(ctx)
	case "show":
		if arg == "" {
			return usage("show <id>")
		}
		return a.Show(ctx, arg)
	case "download":
		if arg == "" {
			return usage("download <id>")
		}
		return a.Download(ctx, arg)
	case "add":
		return a.Add(ctx)
	case "edit":
		if arg == "" {
			return usage("edit <id>")
		}
		return a.Edit(ctx, arg)
	case "delete":
		if arg == "" {
			return usage("delete <id>")
		}
		return a.Delete(ctx, arg)
	case "profile":
		return a.Profile(ctx)
	case "email":
		return a.ChangeEmail(ctx)
	case "password":
		return a.ChangePassword(ctx)
	case "logout":
		return a.Logout(ctx)
	case "register", "login":
		printlnFn("Already signed in; logout first.")
	default:
		printlnFn("Unknown command:", cmd)
	}
	return nil
}
