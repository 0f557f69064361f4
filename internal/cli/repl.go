package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Submit(ctx context.Context) error
	ListMine(ctx context.Context) error
	ListAll(ctx context.Context) error
	UpdateStatus(ctx context.Context, args []string) error
}

// runREPL starts a read–eval–print loop for the complaint desk.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands that require a logged-in user are refused with a notice before the
// model is ever called, and admin commands are refused for non-admins the
// same way. The model re-checks authorization anyway.
//
// Commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - submit         — submit a complaint
//	  - list           — list my complaints
//	  - logout         — log out
//
//	Admin only:
//	  - all                     — list every complaint
//	  - status <id> <status>    — set a complaint's status
//
// Errors returned by command handlers are ignored here; handlers print their
// own notices. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cdesk> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isAdmin() {
				printlnFn("Available commands: submit, list, all, status <id> <status>, logout, exit")
			} else if a.isLoggedIn() {
				printlnFn("Available commands: submit, list, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "submit":
			if !a.isLoggedIn() {
				printlnFn("Please login first!")
				continue
			}
			_ = a.Submit(ctx)

		case "list":
			if !a.isLoggedIn() {
				printlnFn("Login required!")
				continue
			}
			_ = a.ListMine(ctx)

		case "all":
			if !a.isAdmin() {
				printlnFn("Admin access only!")
				continue
			}
			_ = a.ListAll(ctx)

		case "status":
			if !a.isAdmin() {
				printlnFn("Admin access only!")
				continue
			}
			_ = a.UpdateStatus(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}
