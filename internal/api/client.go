package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Red1144/VRChatAppi/internal/cache"
	"github.com/Red1144/VRChatAppi/internal/models"
	"github.com/Red1144/VRChatAppi/internal/ratelimit"
	"github.com/Red1144/VRChatAppi/internal/store"
)

const (
	// DefaultBaseURL is the remote API host. Overridable for tests.
	DefaultBaseURL = "https://api.vrchat.cloud"

	apiBase = "/api/1"
)

// Options configures a Client. The zero value is usable; defaults fill in the
// production base URL, a plain HTTP client and a disabled logger.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client owns the whole session context: both tokens, the login identity, the
// request and world caches, the rate limiter and the durable store. All
// remote interaction flows through it; all mutation of session state is
// funneled through its methods and serialized by c.mu.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger

	// ReloginOnLoad makes LoadSession replay the stored username/password
	// through a fresh login instead of trusting the cached tokens. Off by
	// default; only useful to force a new server-side session.
	ReloginOnLoad bool

	mu          sync.Mutex
	clientToken string
	authToken   string
	identity    models.LoginIdentity
	settings    models.Settings

	requests *cache.Requests
	worlds   *cache.Worlds
	limits   *ratelimit.Limiter
	store    *store.Store
}

// New returns a client persisting through st.
func New(st *store.Store, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:  opts.BaseURL,
		http:     opts.HTTPClient,
		log:      opts.Logger,
		settings: models.DefaultSettings(),
		requests: cache.NewRequests(),
		worlds:   cache.NewWorlds(st),
		limits:   ratelimit.New(),
		store:    st,
	}
}

// Limiter exposes the rate limiter so callers can decide cached vs live
// before invoking a gateway operation.
func (c *Client) Limiter() *ratelimit.Limiter { return c.limits }

// LoadLocal reads the durable world cache and settings. Call once at startup,
// before any gateway operation.
func (c *Client) LoadLocal() error {
	if err := c.worlds.Load(); err != nil {
		return err
	}
	return c.LoadSettings()
}

// formatPath appends the apiKey query parameter every API call carries. Fails
// when the client token has not been acquired yet.
func (c *Client) formatPath(p string) (string, error) {
	c.mu.Lock()
	token := c.clientToken
	c.mu.Unlock()
	if token == "" {
		return "", ErrClientTokenMissing
	}
	return p + "?apiKey=" + url.QueryEscape(token), nil
}

// do issues one HTTP call against the API. It attaches the session cookie
// when an auth token is held, optional basic credentials (login only), and
// returns the raw JSON body together with the response headers. Transport
// failures surface as *NetworkError; response bodies are passed through
// unparsed so callers can inspect error payloads.
func (c *Client) do(ctx context.Context, method, path string, body any, basicAuth string) (json.RawMessage, http.Header, error) {
	fullURL := c.baseURL + apiBase + path

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if basicAuth != "" {
		req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(basicAuth)))
	}
	c.mu.Lock()
	auth := c.authToken
	c.mu.Unlock()
	if auth != "" {
		req.Header.Set("Cookie", "auth="+auth)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return nil, nil, &NetworkError{Op: method, URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &NetworkError{Op: method, URL: fullURL, Err: err}
	}
	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("request sent")
	return data, resp.Header, nil
}

// get issues an authenticated-if-possible GET.
func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	raw, _, err := c.do(ctx, http.MethodGet, path, nil, "")
	return raw, err
}

// put issues a PUT with a JSON body.
func (c *Client) put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	raw, _, err := c.do(ctx, http.MethodPut, path, body, "")
	return raw, err
}

// apiError extracts a structured error body, or nil when raw is a success
// payload.
func apiError(raw json.RawMessage) *APIError {
	var body apiErrorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil
	}
	return body.Error
}

// requireAuth checks both token preconditions without touching the network.
func (c *Client) requireAuth() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.clientToken == "" {
		return ErrClientTokenMissing
	}
	if c.authToken == "" {
		return ErrAuthTokenMissing
	}
	return nil
}
