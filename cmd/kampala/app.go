package main

import (
	"context"
	"fmt"
	"os"

	"kampala_finance_backend/internal/config"
	"kampala_finance_backend/internal/models"
	"kampala_finance_backend/internal/services"
	"kampala_finance_backend/pkg/utils"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/afero"
)

// fsys is where the tool reads and writes files.
var fsys = afero.NewOsFs()

// openStore loads the configuration and opens the store it names.
func openStore(ctx context.Context) (services.DataStore, func(), error) {
	cfg := config.Load()
	// stdout carries command output such as exported JSON.
	utils.InitLogger(cfg.App.LogLevel, cfg.App.LogPretty, os.Stderr)

	store, closeStore, err := services.OpenDataStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	release := func() {
		if err := closeStore(); err != nil {
			utils.LogError(err, "Failed to close storage")
		}
	}
	return store, release, nil
}

// asOperator stamps ctx with the named user so records made from the command
// line carry a real author. An empty name leaves ctx anonymous.
func asOperator(ctx context.Context, store services.DataStore, username string) (context.Context, error) {
	if username == "" {
		return ctx, nil
	}
	name := utils.NormalizeUsername(username)
	u, err := store.GetUser(ctx, name)
	if err != nil {
		return nil, err
	}
	return services.WithPrincipal(ctx, &models.Principal{
		Username:    name,
		Name:        u.Name,
		Role:        u.Role,
		Email:       u.Email,
		Permissions: u.Permissions,
	}), nil
}

func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		if out, err := r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
}
