package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/complaintdesk/internal/models"
)

// UpdateStatus handles "status <id> <new status>". The status may span
// several tokens ("In Progress"); missing arguments are prompted for.
func (a *App) UpdateStatus(ctx context.Context, args []string) error {
	var id, status string
	var err error

	if len(args) >= 1 {
		id = args[0]
	} else {
		id, err = GetSimpleText(a.reader, "Complaint ID", a.out)
		if err != nil {
			return err
		}
	}

	if len(args) >= 2 {
		status = strings.Join(args[1:], " ")
	} else {
		status, err = GetSimpleText(a.reader, "New status (Pending, In Progress, Resolved)", a.out)
		if err != nil {
			return err
		}
	}

	if err := a.model.UpdateStatus(ctx, id, models.Status(status)); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Status updated to %s\n", status)
	return nil
}
