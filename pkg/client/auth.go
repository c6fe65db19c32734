package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/linskybing/bootcamp-go/internal/domain/user"
)

type tokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	User        user.User `json:"user"`
}

// Login exchanges credentials for a token. Only active administrators are
// let in; any other account gets ErrInsufficientPrivilege and the session
// stays anonymous.
func (c *Client) Login(ctx context.Context, username, password string) (user.User, error) {
	c.session.begin()

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	req := request{
		method:      http.MethodPost,
		path:        "/auth/token",
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	}

	var tok tokenResponse
	if err := c.do(ctx, req, &tok); err != nil {
		c.session.fail()
		var apiErr *APIError
		if errors.As(err, &apiErr) &&
			(apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusBadRequest) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, err
	}

	if tok.AccessToken == "" || !tok.User.CanModerate() {
		c.session.fail()
		if tok.AccessToken != "" {
			c.revoke(ctx, tok.AccessToken)
		}
		return user.User{}, ErrInsufficientPrivilege
	}

	c.session.establish(tok.AccessToken, tok.User)
	return tok.User, nil
}

// Logout revokes the token on the server when possible and always discards
// it locally. Calling it while anonymous does nothing.
func (c *Client) Logout(ctx context.Context) {
	token, ok := c.session.Token()
	if !ok {
		return
	}
	c.revoke(ctx, token)
	c.session.end()
}

// Me refreshes the profile of the logged-in account.
func (c *Client) Me(ctx context.Context) (user.User, error) {
	var u user.User
	err := c.do(ctx, request{method: http.MethodGet, path: "/users/me", auth: true}, &u)
	return u, err
}

// revoke is best effort: the credential is discarded either way.
func (c *Client) revoke(ctx context.Context, token string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/logout", nil)
	if err != nil {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := c.http.Do(req)
	if err != nil {
		return
	}
	resp.Body.Close()
}
