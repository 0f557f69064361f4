package cli

import (
	"context"
	"fmt"
)

// Submit prompts for complaint fields and submits the complaint. After a
// successful submission the user's complaint list is shown.
func (a *App) Submit(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	category, err := GetSimpleText(a.reader, "Category", a.out)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	attachment, err := GetSimpleText(a.reader, "Attachment URL (optional)", a.out)
	if err != nil {
		return err
	}

	c, err := a.model.SubmitComplaint(ctx, title, category, description, attachment)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Complaint submitted successfully! ID: %s\n", c.ID)
	return a.ListMine(ctx)
}
