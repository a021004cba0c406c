// Package github is a read-only client for the public GitHub API, used to
// list a user's most recently created repositories.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var ErrNoProfile = errors.New("no github profile found")

const defaultBaseURL = "https://api.github.com"

type Client struct {
	BaseURL      string
	httpClient   *http.Client
	clientID     string
	clientSecret string
}

func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// ListRecentRepos fetches the 5 most recently created public repositories of
// the given user and passes the upstream JSON array through untouched. Any
// non-200 upstream response maps to ErrNoProfile.
func (c *Client) ListRecentRepos(ctx context.Context, username string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos", c.BaseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("per_page", "5")
	q.Set("sort", "created")
	q.Set("client_id", c.clientID)
	q.Set("client_secret", c.clientSecret)
	req.URL.RawQuery = q.Encode()

	req.Header.Set("User-Agent", "devConnector")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNoProfile
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}
