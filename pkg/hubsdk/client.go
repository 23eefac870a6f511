package hubsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// Client drives the hub over HTTP. It keeps the session cookie in a jar and
// never follows redirects, so callers can observe the hub's locale and
// authorization redirects directly.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a hub client with a fresh cookie jar.
func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}

// Response is the observable outcome of one request: final status, redirect
// target (if any) and raw body.
type Response struct {
	StatusCode int
	Location   string
	Body       []byte
}

// Get performs a GET against path (which may carry a query string).
func (c *Client) Get(ctx context.Context, path string, headers map[string]string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return c.do(req)
}

// PostForm performs a form-encoded POST against path.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*Response, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Location:   resp.Header.Get("Location"),
		Body:       body,
	}, nil
}

// Login submits credentials to the locale-prefixed login endpoint. The
// session cookie, when granted, lands in the client's jar.
func (c *Client) Login(ctx context.Context, locale, email, password, totpCode string) (*Response, error) {
	form := url.Values{
		"email":    {email},
		"password": {password},
	}
	if totpCode != "" {
		form.Set("totp_code", totpCode)
	}
	return c.PostForm(ctx, "/"+locale+"/login", form)
}

// Logout revokes the current session.
func (c *Client) Logout(ctx context.Context, locale string) (*Response, error) {
	return c.PostForm(ctx, "/"+locale+"/logout", url.Values{})
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context, locale string) (*ProfileResponse, error) {
	resp, err := c.Get(ctx, "/"+locale+"/profile", nil)
	if err != nil {
		return nil, err
	}
	if err := c.check(resp); err != nil {
		return nil, err
	}
	var out ProfileResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, fmt.Errorf("decoding profile response: %w", err)
	}
	return &out, nil
}

// ListUsers fetches one page of the admin user directory.
func (c *Client) ListUsers(ctx context.Context, locale string, limit, offset int) (*UserListResponse, error) {
	path := fmt.Sprintf("/%s/admin/users?limit=%d&offset=%d", locale, limit, offset)
	resp, err := c.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	if err := c.check(resp); err != nil {
		return nil, err
	}
	var out UserListResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, fmt.Errorf("decoding user list response: %w", err)
	}
	return &out, nil
}

// SetUserRole repoints a user to the named role via the admin endpoint.
func (c *Client) SetUserRole(ctx context.Context, locale, userID, roleName string) (*Response, error) {
	path := fmt.Sprintf("/%s/admin/users/%s/role", locale, userID)
	return c.PostForm(ctx, path, url.Values{"role": {roleName}})
}

// EnrollTOTP starts TOTP enrollment for the current session's user.
func (c *Client) EnrollTOTP(ctx context.Context) (*TOTPEnrollResponse, error) {
	resp, err := c.PostForm(ctx, "/v1/mfa/totp/enroll", url.Values{})
	if err != nil {
		return nil, err
	}
	if err := c.check(resp); err != nil {
		return nil, err
	}
	var out TOTPEnrollResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, fmt.Errorf("decoding enrollment response: %w", err)
	}
	return &out, nil
}

// ActivateTOTP confirms a pending enrollment with a code from the
// authenticator app.
func (c *Client) ActivateTOTP(ctx context.Context, code string) error {
	resp, err := c.PostForm(ctx, "/v1/mfa/totp/activate", url.Values{"code": {code}})
	if err != nil {
		return err
	}
	return c.check(resp)
}

// DisableTOTP removes TOTP from the current session's account.
func (c *Client) DisableTOTP(ctx context.Context, code string) error {
	form := url.Values{}
	if code != "" {
		form.Set("code", code)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		c.BaseURL+"/v1/mfa/totp", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	return c.check(resp)
}

func (c *Client) check(resp *Response) error {
	return parseErrorResponse(&http.Response{StatusCode: resp.StatusCode}, resp.Body)
}
