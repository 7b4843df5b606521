package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/attendance/internal/common"
)

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	isAdmin() bool

	CheckIn(ctx context.Context, args []string) error
	CheckOut(ctx context.Context, args []string) error
	Stats(ctx context.Context, args []string) error
	Present(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error

	Records(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error

	Employees(ctx context.Context, args []string) error
	ShowEmployee(ctx context.Context, args []string) error
	AddEmployee(ctx context.Context, args []string) error
	RenameEmployee(ctx context.Context, args []string) error
	ActivateEmployee(ctx context.Context, args []string) error
	DeactivateEmployee(ctx context.Context, args []string) error
	RemoveEmployee(ctx context.Context, args []string) error
}

const (
	kioskHelp = "Available commands: in <id>, out <id>, stats, present, admin, exit"
	adminHelp = "Available commands: in <id>, out <id>, stats, present, " +
		"records [filters], export [filters], edit <id>, delete <id>, " +
		"employees [-all], employee <id>, addemployee, rename <id>, activate <id>, deactivate <id>, rmemployee <id>, " +
		"logout, exit\n" +
		"Filters: -from YYYY-MM-DD -to YYYY-MM-DD -employee <id> -type entry|exit"
)

// runREPL reads one command per line from reader, dispatches it to a and
// writes its own prompts and messages to w.
//
// Admin commands are refused until a.isAdmin() reports true. Handler errors
// are printed and the loop continues; it ends on EOF, "exit"/"quit" or when
// ctx is done.
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader, w io.Writer) {
	say := func(args ...any) { fmt.Fprintln(w, args...) }

	for {
		if ctx.Err() != nil {
			return
		}
		say(promptFn())

		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return
		}
		if ctx.Err() != nil {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		var handler func(context.Context, []string) error
		adminOnly := false

		switch cmd {
		case "help", "?":
			if a.isAdmin() {
				say(adminHelp)
			} else {
				say(kioskHelp)
			}
			continue

		case "in", "checkin":
			handler = a.CheckIn
		case "out", "checkout":
			handler = a.CheckOut
		case "stats":
			handler = a.Stats
		case "present":
			handler = a.Present
		case "admin", "login":
			handler = a.Login

		case "logout":
			handler, adminOnly = a.Logout, true
		case "records", "list", "l":
			handler, adminOnly = a.Records, true
		case "export":
			handler, adminOnly = a.Export, true
		case "edit":
			handler, adminOnly = a.Edit, true
		case "delete", "rm":
			handler, adminOnly = a.Delete, true
		case "employees":
			handler, adminOnly = a.Employees, true
		case "employee":
			handler, adminOnly = a.ShowEmployee, true
		case "addemployee":
			handler, adminOnly = a.AddEmployee, true
		case "rename":
			handler, adminOnly = a.RenameEmployee, true
		case "activate":
			handler, adminOnly = a.ActivateEmployee, true
		case "deactivate":
			handler, adminOnly = a.DeactivateEmployee, true
		case "rmemployee":
			handler, adminOnly = a.RemoveEmployee, true

		case "exit", "quit":
			say("Bye!")
			return

		default:
			say("Unknown command:", cmd)
			continue
		}

		if adminOnly && !a.isAdmin() {
			say("Admin mode required: type 'admin' first")
			continue
		}

		if err := handler(ctx, args); err != nil {
			say(common.Message(err))
		}
	}
}
