package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/complaintdesk/internal/models"
)

// formatComplaint renders one complaint card. The admin view additionally
// shows the author line.
func formatComplaint(c models.Complaint, admin bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] %s", c.Status, c.Title)
	if c.Category != "" {
		fmt.Fprintf(&b, " (%s)", c.Category)
	}
	fmt.Fprintf(&b, "\n  ID: %s | %s\n", c.ID, c.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "  %s\n", c.Description)
	if c.Attachment != "" {
		fmt.Fprintf(&b, "  Attachment: %s\n", c.Attachment)
	}
	if admin {
		fmt.Fprintf(&b, "  By: %s <%s>\n", c.UserName, c.UserEmail)
	}
	return b.String()
}

func (a *App) printComplaints(list []models.Complaint, admin bool) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No complaints yet.")
		return
	}
	for _, c := range list {
		fmt.Fprint(a.out, formatComplaint(c, admin))
	}
}

// ListMine shows the current user's complaints, newest-first.
func (a *App) ListMine(ctx context.Context) error {
	list, err := a.model.ListMyComplaints(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	a.printComplaints(list, false)
	return nil
}

// ListAll shows every complaint with its author. Admin view.
func (a *App) ListAll(ctx context.Context) error {
	list, err := a.model.ListAllComplaints(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	a.printComplaints(list, true)
	return nil
}
