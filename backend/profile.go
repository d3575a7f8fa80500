package backend

import (
	"context"
	"net/url"

	"github.com/artisanlearn/storefront-api/models"
)

// ProfileClient reads user profiles from the external profile store.
type ProfileClient struct {
	*Client
}

func NewProfileClient(baseURL string) *ProfileClient {
	return &ProfileClient{Client: newClient(baseURL)}
}

func (p *ProfileClient) GetProfile(ctx context.Context, userID string) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := p.getJSON(ctx, "/profiles/"+url.PathEscape(userID), &profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}
