package api

import (
	"context"

	"staykit/internal/pkg/errs"
	"staykit/internal/transport"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

// AuthClient exchanges credentials for an access token. Token decoding
// and persistence belong to the auth gate, not here.
type AuthClient struct {
	client *transport.Client
}

func NewAuthClient(client *transport.Client) *AuthClient {
	return &AuthClient{client: client}
}

func (c *AuthClient) Login(ctx context.Context, email, password string) (string, error) {
	var envelope dataEnvelope[loginResponse]
	if err := c.client.Post(ctx, "/api/auth/login", loginRequest{Email: email, Password: password}, &envelope); err != nil {
		return "", err
	}
	if envelope.Data.AccessToken == "" {
		return "", errs.New("login response carried no access token")
	}
	return envelope.Data.AccessToken, nil
}
