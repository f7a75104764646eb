package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/anushishehara/leaveport/internal/client/models"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
}

func printLeaveTable(w io.Writer, leaves []models.LeaveRequest, withUser bool) {
	tw := newTable(w)
	if withUser {
		fmt.Fprintln(tw, "ID\tEMPLOYEE\tTYPE\tFROM\tTO\tDAYS\tSTATUS\tREASON")
	} else {
		fmt.Fprintln(tw, "ID\tTYPE\tFROM\tTO\tDAYS\tSTATUS\tREASON")
	}
	for _, l := range leaves {
		if withUser {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
				l.ID, l.User.Username, l.LeaveType.TypeName, l.StartDate, l.EndDate, l.TotalDays, l.Status, l.Reason)
		} else {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
				l.ID, l.LeaveType.TypeName, l.StartDate, l.EndDate, l.TotalDays, l.Status, l.Reason)
		}
	}
	tw.Flush()
}

func printLeaveTypeTable(w io.Writer, types []models.LeaveType) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tMAX DAYS\tDESCRIPTION")
	for _, t := range types {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", t.ID, t.TypeName, t.MaxDays, t.Description)
	}
	tw.Flush()
}
