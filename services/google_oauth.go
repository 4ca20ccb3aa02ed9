package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

const userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Profile is what the identity provider hands back after a successful
// callback exchange.
type Profile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// IdentityProvider abstracts the external sign-in federation. The callback
// handler only ever sees an email and a display name.
type IdentityProvider interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*Profile, error)
}

type GoogleProvider struct {
	cfg *oauth2.Config
}

func NewGoogleProvider(cfg *oauth2.Config) *GoogleProvider {
	return &GoogleProvider{cfg: cfg}
}

func (gp *GoogleProvider) AuthURL(state string) string {
	return gp.cfg.AuthCodeURL(state)
}

func (gp *GoogleProvider) Exchange(ctx context.Context, code string) (*Profile, error) {
	token, err := gp.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	resp, err := gp.cfg.Client(ctx, token).Get(userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info request returned %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode user info: %w", err)
	}
	if profile.Email == "" {
		return nil, errors.New("provider returned no email")
	}
	if profile.Name == "" {
		profile.Name = "No Name"
	}

	return &profile, nil
}
