package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-auth-gate/internal/adapter"
	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/atotto/clipboard"
)

type App struct {
	cfg     *config.ClientConfig
	adapter adapter.ServerAdapter

	// copyToClipboard is clipboard.WriteAll outside of tests.
	copyToClipboard func(string) error

	// out receives the token only, status lines go to the logger.
	out io.Writer

	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{
		cfg:             cfg,
		adapter:         serverAdapter,
		copyToClipboard: clipboard.WriteAll,
		out:             out,
		logger:          logger,
	}
}

func (a *App) Run(ctx context.Context) error {
	resp, err := a.authenticate(ctx)
	if err != nil {
		return errors.New(describe(err, MsgInvalidCredentials))
	}

	a.logger.Info().Int64("id", resp.User.UserID).Str("email", resp.User.Email).Msg("signed in")
	fmt.Fprintln(a.out, resp.ServiceToken)

	if a.cfg.CopyToken {
		if err = a.copyToClipboard(resp.ServiceToken); err != nil {
			return fmt.Errorf("copy token to clipboard: %w", err)
		}
		a.logger.Info().Msg("token copied to clipboard")
	}

	if a.cfg.Profile {
		profile, err := a.adapter.Profile(ctx)
		if err != nil {
			return errors.New(describe(err, MsgSessionExpired))
		}
		fmt.Fprintf(a.out, "id=%d email=%s name=%q created_at=%s\n",
			profile.UserID, profile.Email, profile.Name, profile.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return nil
}

func (a *App) authenticate(ctx context.Context) (models.AuthResponse, error) {
	if a.cfg.Register {
		return a.adapter.Register(ctx, models.Registration{
			Email:    a.cfg.Email,
			Password: a.cfg.Password,
			Name:     a.cfg.Name,
		})
	}
	return a.adapter.Login(ctx, models.Credentials{Email: a.cfg.Email, Password: a.cfg.Password})
}
