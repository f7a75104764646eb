package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/anushishehara/leaveport/internal/client/session"
)

type handler func(ctx context.Context, args []string) error

type route struct {
	name  string
	guard Guard
	run   handler
	help  string
}

// routes is the navigation surface of the client. Order is the help order.
func (a *App) routes() []route {
	return []route{
		{"login", GuardNone, a.login, "authenticate with username and password"},
		{"signup", GuardNone, a.signup, "create a new account"},
		{"dashboard", GuardAuthenticated, a.dashboard, "leave balances and your requests"},
		{"apply-leave", GuardAuthenticated, a.applyLeave, "submit a leave request"},
		{"my-leaves", GuardAuthenticated, a.myLeaves, "list your leave requests"},
		{"cancel", GuardAuthenticated, a.cancelLeave, "cancel <id> - cancel a pending request"},
		{"whoami", GuardAuthenticated, a.whoami, "show identity and roles"},
		{"pending-leaves", GuardManager, a.pendingLeaves, "review queue of pending requests"},
		{"process", GuardManager, a.processLeave, "process <id> - approve or reject a request"},
		{"manage-leaves", GuardAdmin, a.manageLeaves, "all leave requests"},
		{"leave-types", GuardAdmin, a.leaveTypes, "list leave types"},
		{"add-type", GuardAdmin, a.addLeaveType, "create a leave type"},
		{"users", GuardAdmin, a.users, "list employees"},
		{"edit-user", GuardAdmin, a.editUser, "edit-user <id> - update an employee"},
		{"delete-user", GuardAdmin, a.deleteUser, "delete-user <id> - remove an employee"},
		{"stats", GuardAdmin, a.stats, "admin dashboard statistics"},
		{"logout", GuardAuthenticated, a.logout, "log out"},
	}
}

func (a *App) lookup(name string) (route, bool) {
	for _, r := range a.routes() {
		if r.name == name {
			return r, true
		}
	}
	return route{}, false
}

func (a *App) status() string {
	s := a.sessions.Current()
	if s == nil {
		return ""
	}
	return fmt.Sprintf("(%s) ", s.Username)
}

// Run starts the command loop. It attaches the session manager to the
// context so guards and handlers can reach it, then reads commands until
// EOF or an explicit exit.
func (a *App) Run(ctx context.Context) {
	ctx = session.NewContext(ctx, a.sessions)

	fmt.Fprintln(a.out, "Leave portal client (type 'help' for commands)")
	for {
		fmt.Fprintf(a.out, "leaveport %s> ", a.status())

		line, rerr := a.reader.ReadString('\n')
		fields := strings.Fields(line)
		if len(fields) > 0 {
			if quit := a.dispatch(ctx, fields[0], fields[1:]); quit {
				return
			}
		}
		if rerr != nil {
			return
		}
	}
}

// dispatch routes one command. Unknown commands land on the default view,
// which the guards then turn into the login view for unauthenticated users.
// Handler errors are logged once; the loop itself never aborts on them.
func (a *App) dispatch(ctx context.Context, name string, args []string) bool {
	switch name {
	case "exit", "quit":
		fmt.Fprintln(a.out, "Bye!")
		return true
	case "help":
		a.help(ctx)
		return false
	}

	r, ok := a.lookup(name)
	if !ok {
		fmt.Fprintln(a.out, "Unknown command:", name)
		r, _ = a.lookup("dashboard")
	}

	switch r.guard.Evaluate(ctx) {
	case RedirectLogin:
		fmt.Fprintln(a.out, "Please log in to continue.")
		a.runHandler(ctx, "login", a.login, nil)
	case RedirectDashboard:
		fmt.Fprintln(a.out, "You do not have access to that view.")
		a.runHandler(ctx, "dashboard", a.dashboard, nil)
	default:
		a.runHandler(ctx, r.name, r.run, args)
	}
	return false
}

func (a *App) runHandler(ctx context.Context, name string, run handler, args []string) {
	if err := run(ctx, args); err != nil {
		a.log.Error(ctx, "command failed", "command", name, "error", err)
	}
}

// help lists the commands the current session may actually reach.
func (a *App) help(ctx context.Context) {
	fmt.Fprintln(a.out, "Available commands:")
	for _, r := range a.routes() {
		if r.guard.Evaluate(ctx) == Allow {
			fmt.Fprintf(a.out, "  %-14s %s\n", r.name, r.help)
		}
	}
	fmt.Fprintf(a.out, "  %-14s %s\n", "help", "this list")
	fmt.Fprintf(a.out, "  %-14s %s\n", "exit", "leave the program")
}
