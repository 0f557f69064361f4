// Package cli is the interactive front end of the complaint desk. It owns no
// business rules: every command calls into the session model and renders the
// result.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/complaintdesk/internal/config"
	"github.com/dmitrijs2005/complaintdesk/internal/logging"
	"github.com/dmitrijs2005/complaintdesk/internal/session"
	"github.com/dmitrijs2005/complaintdesk/internal/storage"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  *storage.Store
	model  *session.Model
	reader *bufio.Reader
	out    io.Writer
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(c.LogLevel)})
	logger := logging.NewSlogLogger(slog.New(h))

	store, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	model := session.New(store.Users, store.Complaints, logger)

	return &App{
		config: c,
		logger: logger,
		store:  store,
		model:  model,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run bootstraps the session model (seeded admin, collection load) and hands
// control to the REPL until the user exits or the context is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.store.Close()

	if err := a.model.Bootstrap(ctx, a.config.AdminEmail, a.config.AdminPassword); err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.model.Current() != nil
}

func (a *App) isAdmin() bool {
	return a.model.Current().IsAdmin()
}

// getStatus renders the prompt suffix, e.g. "(alice@x.com user)".
func (a *App) getStatus() string {
	s := a.model.Current()
	if s == nil {
		return ""
	}
	return "(" + s.Email + " " + string(s.Role) + ")"
}
