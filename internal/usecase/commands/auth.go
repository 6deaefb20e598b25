package commands

import (
	"context"
	"log/slog"

	"staykit/internal/auth"
)

// AuthCommands produce and destroy the signed-in identity; the gate owns
// every state transition triggered here.
type AuthCommands interface {
	Login(ctx context.Context, email, password string) error
	Logout()
}

type authCommandsImpl struct {
	endpoints AuthEndpoints
	gate      *auth.Gate
	logger    *slog.Logger
}

func NewAuthCommands(endpoints AuthEndpoints, gate *auth.Gate, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		endpoints: endpoints,
		gate:      gate,
		logger:    logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, password string) error {
	token, err := a.endpoints.Login(ctx, email, password)
	if err != nil {
		return err
	}
	a.logger.Info("login accepted", "email", email)
	return a.gate.SignIn(ctx, token)
}

func (a *authCommandsImpl) Logout() {
	a.gate.SignOut()
}
