package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tableflip.dev/voyage/pkg/planner"
	"tableflip.dev/voyage/pkg/trip"
)

// Client talks to the itinerary service. All responses arrive in a
// `{success, message, data}` envelope.
type Client struct {
	base       string
	httpClient *http.Client
	creds      Credentials
}

// New creates a client for the given base URL, e.g.
// "https://itinerary.example.com/api/v1".
func New(base string, creds Credentials) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		creds: creds,
	}
}

// SetCredentials swaps the session tokens used on subsequent calls.
func (c *Client) SetCredentials(creds Credentials) {
	c.creds = creds
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	User    json.RawMessage `json:"user"`
}

// User is the profile attached to a session.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Tokens is the credential pair issued by login and register. Register nests
// it under createToken; login returns it at the top level.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("remote: encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("remote: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if !c.creds.Empty() {
		// The service reads session tokens from cookies.
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: c.creds.AccessToken})
		if c.creds.RefreshToken != "" {
			req.AddCookie(&http.Cookie{Name: "refreshToken", Value: c.creds.RefreshToken})
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode == http.StatusUnauthorized {
			return ErrUnauthorized
		}
		if resp.StatusCode >= 400 {
			return &RejectionError{Status: resp.StatusCode}
		}
		return fmt.Errorf("remote: decode response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode >= 400 || !env.Success {
		return &RejectionError{Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil {
		payload := env.Data
		if len(payload) == 0 && len(env.User) > 0 {
			payload = env.User
		}
		if len(payload) == 0 || string(payload) == "null" {
			return nil
		}
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("remote: decode payload: %w", err)
		}
	}
	return nil
}

// AllTrips retrieves the authoritative trip collection, nested days and
// activities included.
func (c *Client) AllTrips(ctx context.Context) ([]*trip.Trip, error) {
	var trips []*trip.Trip
	if err := c.do(ctx, http.MethodGet, "/trips/allTrips", nil, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

type createTripRequest struct {
	Name        string `json:"name"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Color       string `json:"color"`
}

// CreateTrip registers a new trip. The server generates the id; callers
// should re-fetch afterwards.
func (c *Client) CreateTrip(ctx context.Context, d trip.Draft) error {
	return c.do(ctx, http.MethodPost, "/trips/create", createTripRequest{
		Name:        d.Name,
		Destination: d.Destination,
		StartDate:   d.StartDate.String(),
		EndDate:     d.EndDate.String(),
		Color:       d.Color.String(),
	}, nil)
}

// UpdateTrip sends a partial trip update.
func (c *Client) UpdateTrip(ctx context.Context, id string, p trip.TripPatch) error {
	return c.do(ctx, http.MethodPatch, "/trips/"+id, p, nil)
}

type pushDaysRequest struct {
	Days []*trip.Day `json:"days"`
}

// PushDays uploads the trip's full day tree. Day and activity mutations ride
// the trip patch endpoint; the server stores the tree as a document.
func (c *Client) PushDays(ctx context.Context, id string, days []*trip.Day) error {
	return c.do(ctx, http.MethodPatch, "/trips/"+id, pushDaysRequest{Days: days}, nil)
}

// DeleteTrip removes the trip server-side.
func (c *Client) DeleteTrip(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/trips/"+id, nil, nil)
}

// ActivateTrip marks the trip active; the server enforces exclusivity.
func (c *Client) ActivateTrip(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPatch, "/trips/"+id+"/activate", nil, nil)
}

// Stats fetches the dashboard aggregates.
func (c *Client) Stats(ctx context.Context) (planner.Stats, error) {
	var st planner.Stats
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, &st); err != nil {
		return planner.Stats{}, err
	}
	return st, nil
}

// Verify checks the stored session and returns the profile attached to it.
func (c *Client) Verify(ctx context.Context) (User, error) {
	if c.creds.Empty() {
		return User{}, ErrUnauthorized
	}
	var u User
	if err := c.do(ctx, http.MethodGet, "/auth/verify", nil, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Tokens
	CreateToken *Tokens `json:"createToken"`
}

func (r tokenResponse) tokens() Tokens {
	if r.CreateToken != nil {
		return *r.CreateToken
	}
	return r.Tokens
}

// Login exchanges credentials for session tokens and adopts them.
func (c *Client) Login(ctx context.Context, email, password string) (Credentials, error) {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/user/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return Credentials{}, err
	}
	tk := resp.tokens()
	creds := Credentials{AccessToken: tk.AccessToken, RefreshToken: tk.RefreshToken}
	c.creds = creds
	return creds, nil
}

// Register creates an account and adopts the issued tokens.
func (c *Client) Register(ctx context.Context, name, email, password string) (Credentials, error) {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/user/register", registerRequest{Name: name, Email: email, Password: password}, &resp); err != nil {
		return Credentials{}, err
	}
	tk := resp.tokens()
	creds := Credentials{AccessToken: tk.AccessToken, RefreshToken: tk.RefreshToken}
	c.creds = creds
	return creds, nil
}
