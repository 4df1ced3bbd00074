package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrNoRefreshToken is returned when a refresh is requested but the
// session holds no refresh token.
var ErrNoRefreshToken = errors.New("authclient: no refresh token stored")

// APIError is a non-2xx response from the API, carrying the machine
// code the auth endpoints attach to 401s.
type APIError struct {
	Status  int
	Message string
	Code    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

const codeTokenExpired = "TOKEN_EXPIRED"

type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type loginData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
	ExpiresIn    int    `json:"expiresIn"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

// Client wraps the repair-shop API for backend consumers. It holds a
// SessionManager that keeps tokens rotated in the background.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *SessionManager
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithStorage(s Storage) Option {
	return func(c *Client) { c.session.storage = s }
}

func WithClock(cl Clock) Option {
	return func(c *Client) { c.session.clock = cl }
}

// WithOnSessionExpired registers a callback invoked when a background
// refresh fails and the session is purged.
func WithOnSessionExpired(f func()) Option {
	return func(c *Client) { c.session.onExpired = f }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		session: NewSessionManager(nil, nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.session.refresh = c.backgroundRefresh
	return c
}

func (c *Client) Session() *SessionManager { return c.session }

// Login authenticates and installs the returned pair into the session.
func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	env, err := c.roundTrip(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, "")
	if err != nil {
		return nil, err
	}

	var data loginData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("authclient: decode login data: %w", err)
	}

	c.session.SetTokens(data.AccessToken, data.RefreshToken, data.ExpiresIn)
	return &data.User, nil
}

// RefreshTokens rotates the pair using the stored refresh token.
func (c *Client) RefreshTokens(ctx context.Context) error {
	refresh, ok := c.session.RefreshToken()
	if !ok {
		return ErrNoRefreshToken
	}

	env, err := c.roundTrip(ctx, http.MethodPost, "/api/auth/refresh", map[string]string{
		"refreshToken": refresh,
	}, "")
	if err != nil {
		// A rejected refresh token ends the session; transport failures
		// leave it intact for a later attempt.
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			c.session.Clear()
		}
		return err
	}

	var data loginData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return fmt.Errorf("authclient: decode refresh data: %w", err)
	}

	c.session.UpdateTokens(data.AccessToken, data.RefreshToken, data.ExpiresIn)
	return nil
}

// Logout clears the local session. The server call is best-effort; the
// tokens are stateless either way.
func (c *Client) Logout(ctx context.Context) error {
	access, _ := c.session.AccessToken()
	c.session.Clear()

	if access == "" {
		return nil
	}
	_, err := c.roundTrip(ctx, http.MethodPost, "/api/auth/logout", nil, access)
	return err
}

func (c *Client) Verify(ctx context.Context) (*User, error) {
	env, err := c.authorized(ctx, http.MethodGet, "/api/auth/verify", nil)
	if err != nil {
		return nil, err
	}

	var data struct {
		User User `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("authclient: decode verify data: %w", err)
	}
	return &data.User, nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	env, err := c.authorized(ctx, http.MethodGet, "/api/auth/me", nil)
	if err != nil {
		return nil, err
	}

	var data struct {
		User User `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("authclient: decode me data: %w", err)
	}
	return &data.User, nil
}

// Do performs an authorized API call and returns the envelope data.
// On a 401 with the expired code it refreshes once and retries once.
func (c *Client) Do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	env, err := c.authorized(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) authorized(ctx context.Context, method, path string, body any) (*envelope, error) {
	access, _ := c.session.AccessToken()

	env, err := c.roundTrip(ctx, method, path, body, access)
	if err == nil {
		return env, nil
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized || apiErr.Code != codeTokenExpired {
		return nil, err
	}

	if refreshErr := c.RefreshTokens(ctx); refreshErr != nil {
		return nil, refreshErr
	}

	access, _ = c.session.AccessToken()
	return c.roundTrip(ctx, method, path, body, access)
}

// backgroundRefresh adapts RefreshTokens for the session timer. Updating
// the stored pair is left to the manager itself.
func (c *Client) backgroundRefresh(refreshToken string) (string, string, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	env, err := c.roundTrip(ctx, http.MethodPost, "/api/auth/refresh", map[string]string{
		"refreshToken": refreshToken,
	}, "")
	if err != nil {
		return "", "", 0, err
	}

	var data loginData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", "", 0, fmt.Errorf("authclient: decode refresh data: %w", err)
	}
	return data.AccessToken, data.RefreshToken, data.ExpiresIn, nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body any, bearer string) (*envelope, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("authclient: encode body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("authclient: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("authclient: do request: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("authclient: decode response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		return nil, &APIError{Status: resp.StatusCode, Message: env.Error, Code: env.Code}
	}
	return &env, nil
}
