package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	List(ctx context.Context) error
	AddTask(ctx context.Context) error
	EditTask(ctx context.Context) error
	DeleteTask(ctx context.Context) error
	UploadAvatar(ctx context.Context) error
	RemoveAvatar(ctx context.Context) error
}

// runREPL reads a line, parses the first token as the command, and dispatches
// to methods on 'a'. Unknown commands are reported back. The loop exits on
// reader EOF or when the user types "exit" or "quit". The reader must be the
// same one the command prompts use, so that input is buffered in one place,
// and out must be the same writer the command handlers print to.
//
// Errors returned by command handlers are ignored here; handlers print their
// own notices. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		// No trailing newline; input is typed on the prompt line.
		fmt.Fprintf(out, "viremo> %s > ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && !(err == io.EOF && len(line) > 0) {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: (d)ashboard, (l)ist, add, edit, del, avatar, rmavatar, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "add":
			_ = a.AddTask(ctx)

		case "edit":
			_ = a.EditTask(ctx)

		case "del":
			_ = a.DeleteTask(ctx)

		case "avatar":
			_ = a.UploadAvatar(ctx)

		case "rmavatar":
			_ = a.RemoveAvatar(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}

// Run starts the interactive client loop.
func Run(ctx context.Context, a *App, reader *bufio.Reader) {
	runREPL(ctx, a, a.status, reader, a.out)
}
