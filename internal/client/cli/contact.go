package cli

import (
	"context"

	"github.com/dmitrijs2005/sitecms/internal/models"
)

func (a *App) Contact(ctx context.Context) error {
	var m models.ContactMessage
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Name", &m.Name},
		{"Email", &m.Email},
		{"Phone (optional)", &m.Phone},
		{"Company (optional)", &m.Company},
		{"Service (optional)", &m.Service},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	msg, err := getMultiline(a.reader, "Message", a.out)
	if err != nil {
		return err
	}
	m.Message = msg

	if err := a.contactService.Submit(ctx, m); err != nil {
		return err
	}
	printlnFn("Thank you, your message has been sent.")
	return nil
}

func (a *App) Subscribe(ctx context.Context, email string) error {
	if err := a.contactService.Subscribe(ctx, email); err != nil {
		return err
	}
	printlnFn("Subscribed " + email)
	return nil
}
