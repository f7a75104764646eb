package cli

import (
	"context"
	"fmt"

	"github.com/anushishehara/leaveport/internal/client/api"
)

func (a *App) leaveTypes(ctx context.Context, _ []string) error {
	types, err := a.leaves.LeaveTypes(ctx)
	if err != nil {
		return err
	}
	printLeaveTypeTable(a.out, types)
	return nil
}

func (a *App) addLeaveType(ctx context.Context, _ []string) error {
	name, err := getSimpleText(a.reader, "Type name", a.out)
	if err != nil {
		return err
	}
	maxDays, err := GetInt(a.reader, "Max days per year", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	if err := a.leaves.CreateLeaveType(ctx, name, maxDays, description); err != nil {
		fmt.Fprintln(a.out, "Could not create leave type:", api.DisplayMessage(err))
		return nil
	}
	fmt.Fprintf(a.out, "Leave type %q created.\n", name)
	return nil
}
