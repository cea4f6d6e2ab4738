// Package cli is the interactive terminal client of gophdocs.
//
// A read-eval-print loop stands in for the app's screens. While signed out
// it offers register, login, help and exit; once the auth gate reports a
// session it switches to the document commands (list, search, category
// filters, show, download, add, edit, delete) and the profile commands.
//
// Every command runs synchronously on the REPL goroutine. A failing command
// prints one message and leaves the state as it was.
package cli
