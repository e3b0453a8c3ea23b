// Package supabase is a small REST client for the Supabase PostgREST and
// GoTrue endpoints. It covers only the operations the backend needs rather
// than wrapping the full API surface.
package supabase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to one Supabase project.
type Client struct {
	URL        string
	ServiceKey string
	HTTPClient *http.Client
}

// NewClient creates a client for the given project URL and service role key.
func NewClient(url, serviceKey string) *Client {
	return &Client{
		URL:        url,
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// User is the subset of the Supabase auth user the backend cares about.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is a GoTrue password-grant session.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`
}

// do sends one request with the standard Supabase headers. The user token, if
// present, becomes the bearer so PostgREST row level security applies; the
// service key is the fallback for trusted server-side calls.
func (c *Client) do(method, url string, query map[string]string, body interface{}, userToken string, extra http.Header) ([]byte, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, payload)
	if err != nil {
		return nil, err
	}

	if len(query) > 0 {
		q := req.URL.Query()
		for k, v := range query {
			q.Add(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}

	req.Header.Set("apikey", c.ServiceKey)
	bearer := c.ServiceKey
	if userToken != "" {
		bearer = userToken
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range extra {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("supabase: %s %s returned %d: %s", method, req.URL.Path, resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

func (c *Client) restURL(table string) string {
	return fmt.Sprintf("%s/rest/v1/%s", c.URL, table)
}

// Query reads rows from a table. The query map holds PostgREST filter
// parameters, e.g. {"user_id": "eq.<uuid>", "order": "date.asc"}.
func (c *Client) Query(table string, query map[string]string, userToken string) ([]byte, error) {
	return c.do(http.MethodGet, c.restURL(table), query, nil, userToken, nil)
}

// Insert creates rows and returns the created representation.
func (c *Client) Insert(table string, data interface{}, userToken string) ([]byte, error) {
	h := http.Header{}
	h.Set("Prefer", "return=representation")
	return c.do(http.MethodPost, c.restURL(table), nil, data, userToken, h)
}

// Upsert inserts or merges rows keyed on the onConflict column list
// (e.g. "user_id,date") and returns the resulting representation.
func (c *Client) Upsert(table string, data interface{}, onConflict, userToken string) ([]byte, error) {
	h := http.Header{}
	h.Set("Prefer", "return=representation,resolution=merge-duplicates")
	q := map[string]string{"on_conflict": onConflict}
	return c.do(http.MethodPost, c.restURL(table), q, data, userToken, h)
}

// UpdateWhere patches rows matching the filter and returns the updated
// representation.
func (c *Client) UpdateWhere(table string, query map[string]string, data interface{}, userToken string) ([]byte, error) {
	h := http.Header{}
	h.Set("Prefer", "return=representation")
	return c.do(http.MethodPatch, c.restURL(table), query, data, userToken, h)
}

// DeleteWhere removes rows matching the filter.
func (c *Client) DeleteWhere(table string, query map[string]string, userToken string) error {
	_, err := c.do(http.MethodDelete, c.restURL(table), query, nil, userToken, nil)
	return err
}

// SignUp registers a new user with the auth endpoint.
func (c *Client) SignUp(email, password string) (*Session, error) {
	return c.authSession(fmt.Sprintf("%s/auth/v1/signup", c.URL), nil, email, password)
}

// SignIn exchanges credentials for a session via the password grant.
func (c *Client) SignIn(email, password string) (*Session, error) {
	q := map[string]string{"grant_type": "password"}
	return c.authSession(fmt.Sprintf("%s/auth/v1/token", c.URL), q, email, password)
}

func (c *Client) authSession(url string, query map[string]string, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	resp, err := c.do(http.MethodPost, url, query, body, "", nil)
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(resp, &session); err != nil {
		return nil, fmt.Errorf("supabase: decode session: %w", err)
	}
	return &session, nil
}

// SignOut revokes the user's session.
func (c *Client) SignOut(userToken string) error {
	_, err := c.do(http.MethodPost, fmt.Sprintf("%s/auth/v1/logout", c.URL), nil, nil, userToken, nil)
	return err
}

// VerifyToken resolves a JWT to its auth user. A rejected token surfaces as
// an error, never as a nil user.
func (c *Client) VerifyToken(token string) (*User, error) {
	resp, err := c.do(http.MethodGet, fmt.Sprintf("%s/auth/v1/user", c.URL), nil, nil, token, nil)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}

	var user User
	if err := json.Unmarshal(resp, &user); err != nil {
		return nil, fmt.Errorf("verify token: decode user: %w", err)
	}
	return &user, nil
}
