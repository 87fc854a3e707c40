package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"
)

// Profile is what the identity provider knows about an access token's
// subject.
type Profile struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

type IdentityClient interface {
	GetProfile(ctx context.Context, accessToken string) (*Profile, error)
}

type Client struct {
	baseURL string
	client  *http.Client
	cache   *cache.Cache
}

func NewClient(baseURL string) *Client {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	return &Client{
		baseURL: baseURL,
		client:  client,
		cache:   cache.New(1*time.Minute, 5*time.Minute),
	}
}

// GetProfile resolves an access token to its profile. Lookups are cached
// briefly so a burst of requests from one caller costs one round trip.
func (c *Client) GetProfile(ctx context.Context, accessToken string) (*Profile, error) {
	cachedProfile, found := c.cache.Get(accessToken)

	if found {
		return cachedProfile.(*Profile), nil
	}

	profileURL, err := url.JoinPath(c.baseURL, "users", "@me")

	if err != nil {
		return nil, fmt.Errorf("failed to create URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", profileURL, http.NoBody)

	if err != nil {
		return nil, fmt.Errorf("failed create new request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	res, err := c.client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	bodyBytes, readErr := io.ReadAll(res.Body)

	if res.StatusCode != http.StatusOK {
		if readErr != nil {
			return nil, fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr)
		}
		return nil, fmt.Errorf("request failed with status '%v' and body:\n%v", res.StatusCode, string(bodyBytes))
	}

	if readErr != nil {
		return nil, fmt.Errorf("failed to read body: %w", readErr)
	}

	var profile = Profile{}
	err = json.Unmarshal(bodyBytes, &profile)

	if err != nil {
		return nil, fmt.Errorf("failed reading body: %w", err)
	}

	c.cache.Set(accessToken, &profile, cache.DefaultExpiration)

	return &profile, nil
}
