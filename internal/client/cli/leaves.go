package cli

import (
	"context"
	"fmt"

	"github.com/anushishehara/leaveport/internal/client/api"
	"github.com/anushishehara/leaveport/internal/client/models"
)

// idArg takes the resource id from the command arguments when given, and
// prompts for it otherwise.
func (a *App) idArg(args []string, prompt string) (int64, error) {
	if len(args) > 0 {
		var id int64
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return 0, fmt.Errorf("not a numeric id: %q", args[0])
		}
		return id, nil
	}
	return GetInt64(a.reader, prompt, a.out)
}

func (a *App) dashboard(ctx context.Context, _ []string) error {
	balances, err := a.leaves.MyBalances(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load dashboard:", api.DisplayMessage(err))
		return nil
	}
	leaves, err := a.leaves.MyLeaves(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load dashboard:", api.DisplayMessage(err))
		return nil
	}

	fmt.Fprintln(a.out, "Leave balances:")
	tw := newTable(a.out)
	fmt.Fprintln(tw, "TYPE\tTOTAL\tUSED\tREMAINING")
	for _, b := range balances {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", b.LeaveType.TypeName, b.TotalDays, b.UsedDays, b.RemainingDays)
	}
	tw.Flush()

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Your leave requests:")
	printLeaveTable(a.out, leaves, false)

	if a.sessions.IsAdmin() {
		fmt.Fprintln(a.out)
		return a.stats(ctx, nil)
	}
	return nil
}

func (a *App) applyLeave(ctx context.Context, _ []string) error {
	types, err := a.leaves.LeaveTypes(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load leave types:", api.DisplayMessage(err))
		return nil
	}
	printLeaveTypeTable(a.out, types)

	typeID, err := GetInt64(a.reader, "Leave type id", a.out)
	if err != nil {
		return err
	}
	start, err := getSimpleText(a.reader, "Start date (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}
	end, err := getSimpleText(a.reader, "End date (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}
	reason, err := getSimpleText(a.reader, "Reason", a.out)
	if err != nil {
		return err
	}

	if err := a.leaves.Apply(ctx, typeID, start, end, reason); err != nil {
		fmt.Fprintln(a.out, "Could not apply:", api.DisplayMessage(err))
		return nil
	}
	fmt.Fprintln(a.out, "Leave request submitted.")
	return nil
}

func (a *App) myLeaves(ctx context.Context, _ []string) error {
	leaves, err := a.leaves.MyLeaves(ctx)
	if err != nil {
		return err
	}
	printLeaveTable(a.out, leaves, false)
	return nil
}

func (a *App) cancelLeave(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Leave request id")
	if err != nil {
		return err
	}
	if err := a.leaves.Cancel(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Could not cancel:", api.DisplayMessage(err))
		return nil
	}
	fmt.Fprintln(a.out, "Leave request cancelled.")
	return nil
}

func (a *App) pendingLeaves(ctx context.Context, _ []string) error {
	leaves, err := a.leaves.Pending(ctx)
	if err != nil {
		return err
	}
	printLeaveTable(a.out, leaves, true)
	return nil
}

func (a *App) processLeave(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Leave request id")
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader,
		fmt.Sprintf("Decision (%s/%s)", models.LeaveStatusApproved, models.LeaveStatusRejected), a.out)
	if err != nil {
		return err
	}
	remarks, err := getSimpleText(a.reader, "Remarks", a.out)
	if err != nil {
		return err
	}
	if remarks == "" {
		fmt.Fprintln(a.out, "Remarks are required.")
		return nil
	}

	if err := a.leaves.Process(ctx, id, status, remarks); err != nil {
		fmt.Fprintln(a.out, "Could not process:", api.DisplayMessage(err))
		return nil
	}
	fmt.Fprintf(a.out, "Leave request %d marked %s.\n", id, status)
	return nil
}

func (a *App) manageLeaves(ctx context.Context, _ []string) error {
	leaves, err := a.leaves.All(ctx)
	if err != nil {
		return err
	}
	printLeaveTable(a.out, leaves, true)
	return nil
}
