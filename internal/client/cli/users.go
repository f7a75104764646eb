package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/anushishehara/leaveport/internal/client/api"
)

func (a *App) users(ctx context.Context, _ []string) error {
	users, err := a.leaves.Users(ctx)
	if err != nil {
		return err
	}
	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tUSERNAME\tFULL NAME\tEMAIL\tDEPARTMENT\tROLE")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Username, u.FullName, u.Email, u.Department, u.Role)
	}
	tw.Flush()
	return nil
}

// editUser collects a partial update; blank answers keep the current value.
func (a *App) editUser(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "User id")
	if err != nil {
		return err
	}

	req := api.UpdateUserRequest{}
	if req.FullName, err = getSimpleText(a.reader, "Full name (blank to keep)", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Email (blank to keep)", a.out); err != nil {
		return err
	}
	if req.Department, err = getSimpleText(a.reader, "Department (blank to keep)", a.out); err != nil {
		return err
	}
	if req.Role, err = getSimpleText(a.reader, "Role (blank to keep)", a.out); err != nil {
		return err
	}

	if err := a.leaves.UpdateUser(ctx, id, req); err != nil {
		fmt.Fprintln(a.out, "Could not update user:", api.DisplayMessage(err))
		return nil
	}
	fmt.Fprintf(a.out, "User %d updated.\n", id)
	return nil
}

func (a *App) deleteUser(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "User id")
	if err != nil {
		return err
	}
	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Delete user %d? (y/N)", id), a.out)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "Y" {
		fmt.Fprintln(a.out, "Aborted.")
		return nil
	}

	if err := a.leaves.DeleteUser(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Could not delete user:", api.DisplayMessage(err))
		return nil
	}
	fmt.Fprintf(a.out, "User %d deleted.\n", id)
	return nil
}

func (a *App) stats(ctx context.Context, _ []string) error {
	stats, err := a.leaves.Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Statistics:")
	tw := newTable(a.out)
	fmt.Fprintf(tw, "Total employees\t%d\n", stats.TotalEmployees)
	fmt.Fprintf(tw, "Pending leaves\t%d\n", stats.PendingLeaves)
	fmt.Fprintf(tw, "Approved today\t%d\n", stats.ApprovedLeavesToday)
	fmt.Fprintf(tw, "Rejected leaves\t%d\n", stats.RejectedLeaves)
	tw.Flush()

	printCountMap(a, "By type:", stats.LeavesByType)
	printCountMap(a, "By status:", stats.LeavesByStatus)
	return nil
}

func printCountMap(a *App, title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintln(a.out, title)
	tw := newTable(a.out)
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%d\n", k, counts[k])
	}
	tw.Flush()
}
