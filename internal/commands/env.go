package commands

import (
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/billcal-dev/billcal/internal/api"
	"github.com/billcal-dev/billcal/internal/config"
	"github.com/billcal-dev/billcal/internal/token"
)

// appEnv bundles what every command needs: the resolved home, the config,
// the token store, and an API client wired to both.
type appEnv struct {
	home   string
	cfg    *config.Config
	tokens *token.Store
	client *api.Client
}

func loadEnv(cmd *cobra.Command) (*appEnv, error) {
	home, err := config.HomeDir(cmd.Flag("home").Value.String())
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(home)
	if err != nil {
		return nil, err
	}
	tokens := token.NewStore(filepath.Join(home, config.TokenFileName))
	return &appEnv{
		home:   home,
		cfg:    cfg,
		tokens: tokens,
		client: api.NewClient(cfg.API.BaseURL, tokens),
	}, nil
}

// requireToken fails fast before any network call when no session exists.
func (e *appEnv) requireToken() error {
	if _, err := e.tokens.Read(); errors.Is(err, token.ErrNotFound) {
		return errors.New(`not logged in (run "billcal login")`)
	} else if err != nil {
		return err
	}
	return nil
}

// serverMessage prefers the server-provided message and falls back to a
// generic one, mirroring how errors are shown to the user on auth and
// creation flows.
func serverMessage(err error, fallback string) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return errors.New(apiErr.Message)
	}
	return errors.New(fallback)
}
