package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/mwhitfield/stillwaters/internal/client/models"
)

type credentialsPayload struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName,omitempty"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type userResponse struct {
	User *models.User `json:"user"`
}

type profilePayload struct {
	DisplayName           string `json:"displayName"`
	PreferredBibleVersion string `json:"preferredBibleVersion"`
}

// Login exchanges credentials for a session token.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", credentialsPayload{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errors.New("login response missing token")
	}
	return resp.Token, nil
}

// Signup creates an account and returns its session token.
func (c *HTTPClient) Signup(ctx context.Context, email, password, displayName string) (string, error) {
	payload := credentialsPayload{Email: email, Password: password, DisplayName: displayName}
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", payload, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errors.New("signup response missing token")
	}
	return resp.Token, nil
}

// FetchMe returns the profile of the token's owner.
func (c *HTTPClient) FetchMe(ctx context.Context) (*models.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil || resp.User.ID == "" {
		return nil, errors.New("user response missing user")
	}
	return resp.User, nil
}

// UpdateProfile patches the mutable profile fields and returns the updated user.
func (c *HTTPClient) UpdateProfile(ctx context.Context, displayName, preferredBibleVersion string) (*models.User, error) {
	payload := profilePayload{DisplayName: displayName, PreferredBibleVersion: preferredBibleVersion}
	var resp userResponse
	if err := c.do(ctx, http.MethodPatch, "/users/me", payload, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, errors.New("profile response missing user")
	}
	return resp.User, nil
}
