package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Red1144/VRChatAppi/internal/models"
	"github.com/Red1144/VRChatAppi/internal/store"
)

// sessionBlob is the plaintext inside the sealed session envelope. The field
// names are part of the wire format and must not change.
type sessionBlob struct {
	AuthToken   string               `json:"authToken"`
	ClientToken string               `json:"clientToken"`
	LoginInfo   models.LoginIdentity `json:"loginInfo"`
}

// sessionRecord is the durable "session" record: the sealed blob plus the
// identity's trust tags in the clear, so the UI can show a trust rank without
// decrypting first.
type sessionRecord struct {
	Encrypted string   `json:"encrypted"`
	Tags      []string `json:"tags,omitempty"`
}

// configResponse is the part of /config this client cares about.
type configResponse struct {
	APIKey string `json:"apiKey"`
}

// authUser is the /auth/user response shape.
type authUser struct {
	Username         string   `json:"username"`
	DisplayName      string   `json:"displayName"`
	AvatarImageURL   string   `json:"currentAvatarThumbnailImageUrl"`
	ID               string   `json:"id"`
	Tags             []string `json:"tags"`
	FriendGroupNames []string `json:"friendGroupNames"`
}

// AcquireClientToken fetches the anonymous API key from the configuration
// endpoint. It must succeed before any other remote call.
func (c *Client) AcquireClientToken(ctx context.Context) error {
	raw, err := c.get(ctx, "/config")
	if err != nil {
		return err
	}
	var cfg configResponse
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parse config response: %w", err)
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("config response carried no api key")
	}
	c.mu.Lock()
	c.clientToken = cfg.APIKey
	c.mu.Unlock()
	c.log.Debug().Msg("client token acquired")
	return nil
}

// Login authenticates with basic credentials against /auth/user, stores the
// session token from the response cookie, replaces the login identity and
// persists the session. On an API error nothing is mutated.
func (c *Client) Login(ctx context.Context, name, password string) (models.LoginIdentity, error) {
	path, err := c.formatPath("/auth/user")
	if err != nil {
		return models.LoginIdentity{}, err
	}

	raw, header, err := c.do(ctx, http.MethodGet, path, nil, name+":"+password)
	if err != nil {
		return models.LoginIdentity{}, err
	}
	if apiErr := apiError(raw); apiErr != nil {
		return models.LoginIdentity{}, apiErr
	}

	token := authCookie(header)
	if token == "" {
		return models.LoginIdentity{}, fmt.Errorf("login response carried no auth cookie")
	}

	var u authUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return models.LoginIdentity{}, fmt.Errorf("parse login response: %w", err)
	}

	identity := models.LoginIdentity{
		Username:         u.Username,
		DisplayName:      u.DisplayName,
		AvatarImageURL:   u.AvatarImageURL,
		ID:               u.ID,
		Tags:             u.Tags,
		FriendGroupNames: u.FriendGroupNames,
		LoginName:        name,
		LoginPassword:    password,
	}

	c.mu.Lock()
	c.authToken = token
	c.identity = identity
	c.mu.Unlock()

	if err := c.persistSession(); err != nil {
		return models.LoginIdentity{}, fmt.Errorf("persist session: %w", err)
	}
	c.log.Info().Str("user", identity.DisplayName).Msg("logged in")
	return identity, nil
}

// Logout deletes the persisted session if present and clears all in-memory
// session state. Logging out twice is a no-op.
func (c *Client) Logout() error {
	if err := c.store.Remove(store.KeySession); err != nil {
		return err
	}
	c.mu.Lock()
	c.clientToken = ""
	c.authToken = ""
	c.identity = models.LoginIdentity{}
	c.mu.Unlock()
	c.log.Info().Msg("logged out")
	return nil
}

// LoadSession restores a previously persisted session. It reports false when
// no session record exists, which is not an error. A record that fails to
// decrypt is fatal: the error propagates and nothing is guessed at.
//
// By default tokens and identity come straight from the decrypted blob
// without contacting the server. With ReloginOnLoad set, the stored
// credentials are replayed through AcquireClientToken and Login instead,
// forcing a fresh server-side session.
func (c *Client) LoadSession(ctx context.Context) (bool, error) {
	var rec sessionRecord
	ok, err := c.store.Get(store.KeySession, &rec)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	plain, err := store.Open(rec.Encrypted)
	if err != nil {
		return false, err
	}
	var blob sessionBlob
	if err := json.Unmarshal(plain, &blob); err != nil {
		return false, fmt.Errorf("%w: %v", store.ErrDecrypt, err)
	}

	if c.ReloginOnLoad {
		if err := c.AcquireClientToken(ctx); err != nil {
			return false, err
		}
		if _, err := c.Login(ctx, blob.LoginInfo.LoginName, blob.LoginInfo.LoginPassword); err != nil {
			return false, err
		}
		return true, nil
	}

	c.mu.Lock()
	c.clientToken = blob.ClientToken
	c.authToken = blob.AuthToken
	c.identity = blob.LoginInfo
	c.mu.Unlock()
	c.log.Debug().Str("user", blob.LoginInfo.DisplayName).Msg("session restored")
	return true, nil
}

// IsAuthenticated reports whether a login has succeeded and not been undone.
func (c *Client) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authToken != ""
}

// HasClientToken reports whether the anonymous API key is held.
func (c *Client) HasClientToken() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clientToken != ""
}

// LoginInfo returns the identity captured by the last successful login.
func (c *Client) LoginInfo() models.LoginIdentity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.identity
}

// UserTags returns the identity's trust tags, or nil before login. They also
// ride in the clear on the session record so they survive without decryption.
func (c *Client) UserTags() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.identity.Tags
}

// persistSession seals the current tokens and identity into the durable
// session record.
func (c *Client) persistSession() error {
	c.mu.Lock()
	blob := sessionBlob{
		AuthToken:   c.authToken,
		ClientToken: c.clientToken,
		LoginInfo:   c.identity,
	}
	tags := c.identity.Tags
	c.mu.Unlock()

	plain, err := json.Marshal(blob)
	if err != nil {
		return err
	}
	encrypted, err := store.Seal(plain)
	if err != nil {
		return err
	}
	return c.store.Set(store.KeySession, sessionRecord{Encrypted: encrypted, Tags: tags})
}

// authCookie extracts the session token from the login response's Set-Cookie
// headers.
func authCookie(header http.Header) string {
	for _, sc := range header.Values("Set-Cookie") {
		for _, part := range strings.Split(sc, ";") {
			kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
			if len(kv) == 2 && kv[0] == "auth" {
				return kv[1]
			}
		}
	}
	return ""
}
