package api

import (
	"context"

	"staykit/internal/pkg/errs"
	"staykit/internal/transport"
	"staykit/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type profileDTO struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatarUrl"`
}

// ProfileClient resolves the profile of whoever owns the bearer token.
type ProfileClient struct {
	client *transport.Client
}

func NewProfileClient(client *transport.Client) *ProfileClient {
	return &ProfileClient{client: client}
}

func (c *ProfileClient) GetProfile(ctx context.Context) (*queries.ProfileView, error) {
	var envelope dataEnvelope[profileDTO]
	if err := c.client.Get(ctx, "/api/users/me", nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data.ID == "" {
		return nil, errs.ErrProfileMissing
	}

	view := &queries.ProfileView{}
	if err := copier.Copy(view, &envelope.Data); err != nil {
		return nil, errs.Wrap(err, "failed to map profile response")
	}
	return view, nil
}
