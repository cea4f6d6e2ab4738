package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	failOn   string

	calls []string
}

func (f *fakeExec) rec(name string, args ...string) error {
	call := name
	if len(args) > 0 {
		call = name + ":" + args[0]
	}
	f.calls = append(f.calls, call)
	if name == f.failOn {
		return errors.New(name + " failed")
	}
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Register(context.Context) error { return f.rec("register") }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = f.failOn != "login"
	return f.rec("login")
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.rec("logout")
}
func (f *fakeExec) Profile(context.Context) error        { return f.rec("profile") }
func (f *fakeExec) ChangeEmail(context.Context) error    { return f.rec("email") }
func (f *fakeExec) ChangePassword(context.Context) error { return f.rec("password") }
func (f *fakeExec) List(context.Context) error           { return f.rec("list") }
func (f *fakeExec) Refresh(context.Context) error        { return f.rec("refresh") }
func (f *fakeExec) Search(_ context.Context, s string) error {
	return f.rec("search", s)
}
func (f *fakeExec) ToggleCategory(_ context.Context, c string) error {
	return f.rec("cat", c)
}
func (f *fakeExec) Categories(context.Context) error            { return f.rec("cats") }
func (f *fakeExec) ClearFilters(context.Context) error          { return f.rec("clear") }
func (f *fakeExec) Show(_ context.Context, id string) error     { return f.rec("show", id) }
func (f *fakeExec) Download(_ context.Context, id string) error { return f.rec("download", id) }
func (f *fakeExec) Add(context.Context) error                   { return f.rec("add") }
func (f *fakeExec) Edit(_ context.Context, id string) error     { return f.rec("edit", id) }
func (f *fakeExec) Delete(_ context.Context, id string) error   { return f.rec("delete", id) }

func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_SignedOutOnlyOffersAuth(t *testing.T) {
	printed := capturePrints(t)
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "" }, rdr("help\nlist\nadd\nregister\nexit\n"))

	assert.Equal(t, []string{"register"}, exec.calls)
	assert.Contains(t, *printed, helpSignedOut)
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	capturePrints(t)
	exec := &fakeExec{}

	input := strings.Join([]string{
		"login",
		"help",
		"l",
		"r",
		"search  Invoice q ",
		"cat Finance",
		"cats",
		"clear",
		"show d1",
		"download d1",
		"add",
		"edit d1",
		"delete d1",
		"profile",
		"email",
		"password",
		"logout",
		"list",
		"exit",
		"profile",
	}, "\n")

	runREPL(context.Background(), exec, func() string { return "" }, rdr(input))

	assert.Equal(t, []string{
		"login", "list", "refresh", "search:Invoice q ", "cat:Finance", "cats", "clear",
		"show:d1", "download:d1", "add", "edit:d1", "delete:d1", "profile", "email", "password", "logout",
	}, exec.calls)
}

func TestRunREPL_UsageAndErrors(t *testing.T) {
	printed := capturePrints(t)
	exec := &fakeExec{loggedIn: true, failOn: "list"}

	runREPL(context.Background(), exec, func() string { return " (me)" }, rdr("show\ndelete   \nlist\nfoobar\nquit\n"))

	assert.Equal(t, []string{"list"}, exec.calls)
	assert.Contains(t, *printed, "usage: show <id>")
	assert.Contains(t, *printed, "usage: delete <id>")
	assert.Contains(t, *printed, "Error: list failed")
	assert.Contains(t, *printed, "Unknown command: foobar")
	assert.Contains(t, *printed, "gophdocs (me)> ")
	assert.Contains(t, *printed, "Bye!")
}

func TestRunREPL_EOFWithoutNewline(t *testing.T) {
	capturePrints(t)
	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "" }, rdr("list"))

	assert.Equal(t, []string{"list"}, exec.calls)
}
