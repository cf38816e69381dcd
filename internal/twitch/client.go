package twitch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/five82/afkscreen/internal/state"
)

// StatusFetcher looks up the live status of one channel. Implementations
// never return an error; failures are reported inside the record.
type StatusFetcher interface {
	Fetch(ctx context.Context) state.StatusRecord
}

// Ensure Client implements StatusFetcher at compile time.
var _ StatusFetcher = (*Client)(nil)

// Credentials authenticate Helix requests.
type Credentials struct {
	ClientID    string
	AccessToken string
}

// Client talks to the Twitch Helix API for a single channel.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	creds     Credentials
	userLogin string
	userAgent string
	now       func() time.Time
}

const (
	defaultBaseURL   = "https://api.twitch.tv/helix"
	defaultUserAgent = "afkscreen/0.1"
	requestTimeout   = 10 * time.Second
	defaultTitle     = "No Title"
)

// NewClient builds a Client for userLogin against the public Helix API.
func NewClient(creds Credentials, userLogin string) (*Client, error) {
	return newClient(defaultBaseURL, creds, userLogin)
}

func newClient(baseURL string, creds Credentials, userLogin string) (*Client, error) {
	if strings.TrimSpace(creds.ClientID) == "" || strings.TrimSpace(creds.AccessToken) == "" {
		return nil, errors.New("twitch credentials are incomplete")
	}
	if strings.TrimSpace(userLogin) == "" {
		return nil, errors.New("twitch user login is empty")
	}
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		creds:     creds,
		userLogin: strings.TrimSpace(userLogin),
		userAgent: defaultUserAgent,
		now:       time.Now,
	}, nil
}

// Fetch performs one lookup and folds any failure into the record.
func (c *Client) Fetch(ctx context.Context) state.StatusRecord {
	if c == nil {
		return state.StatusRecord{Err: "client is nil"}
	}
	stream, err := c.FetchStream(ctx)
	fetchedAt := c.now()
	if err != nil {
		return state.StatusRecord{Err: err.Error(), FetchedAt: fetchedAt}
	}
	if stream == nil {
		return state.StatusRecord{FetchedAt: fetchedAt}
	}

	title := defaultTitle
	if stream.Title != nil {
		title = *stream.Title
	}
	viewers := stream.ViewerCount
	if viewers < 0 {
		viewers = 0
	}
	return state.StatusRecord{
		Live:        true,
		ViewerCount: viewers,
		Title:       title,
		FetchedAt:   fetchedAt,
	}
}

// FetchStream returns the channel's current stream, or nil when offline.
func (c *Client) FetchStream(ctx context.Context) (*Stream, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("user_login", c.userLogin)
	rel := &url.URL{Path: "streams", RawQuery: values.Encode()}

	var payload streamsResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	if len(payload.Data) == 0 {
		return nil, nil
	}
	stream := payload.Data[0]
	return &stream, nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.resolve(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Client-ID", c.creds.ClientID)
	req.Header.Set("Authorization", "Bearer "+c.creds.AccessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// resolve appends rel to the base path; ResolveReference would drop the
// "/helix" segment.
func (c *Client) resolve(rel *url.URL) *url.URL {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(rel.Path, "/")
	u.RawQuery = rel.RawQuery
	return &u
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
