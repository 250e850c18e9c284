package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Intro(ctx context.Context) error
	List(ctx context.Context) error
	Play(ctx context.Context, waypointID int64) error
	Report(ctx context.Context, waypointID int64) error
	Progress(ctx context.Context, waypointID int64) error
	Accounts(ctx context.Context) error
	AddWaypoint(ctx context.Context) error
	Whoami(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Waygate CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - intro          — open the intro screen
//	  - list           — list waypoints in play order
//	  - play <id>      — open the game screen for a waypoint
//	  - report <id>    — report progress for a waypoint
//	  - progress <id>  — show stored progress for a waypoint
//	  - accounts       — bulk-create accounts (admin)
//	  - addwaypoint    — upload a new waypoint (admin)
//	  - whoami         — show the current profile
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("wg> %s > ", statusFn()))
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
			if a.isLoggedIn() {
				printlnFn("Available commands: intro, (l)ist, play <id>, report <id>, progress <id>, accounts, addwaypoint, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "intro":
			_ = a.Intro(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "play":
			if id, ok := parseID(args, "play"); ok {
				_ = a.Play(ctx, id)
			}

		case "report":
			if id, ok := parseID(args, "report"); ok {
				_ = a.Report(ctx, id)
			}

		case "progress":
			if id, ok := parseID(args, "progress"); ok {
				_ = a.Progress(ctx, id)
			}

		case "accounts":
			_ = a.Accounts(ctx)

		case "addwaypoint":
			_ = a.AddWaypoint(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func parseID(args []string, cmd string) (int64, bool) {
	if len(args) != 1 {
		printlnFn(fmt.Sprintf("Usage: %s <waypoint id>", cmd))
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn(fmt.Sprintf("Usage: %s <waypoint id>", cmd))
		return 0, false
	}
	return id, true
}
