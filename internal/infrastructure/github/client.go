// Package github fetches public repository summaries from the GitHub REST
// API for the profile github endpoint.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/devconnect/profile-api/internal/core/domain"
)

const defaultBaseURL = "https://api.github.com"

// Client is a thin wrapper over the public GitHub API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client. baseURL is overridable for tests; empty means
// the public API.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// LatestRepos returns the username's most recently created public repos.
// Any upstream failure, including an unknown username, surfaces as
// domain.ErrGithubNotFound; upstream detail is never exposed to callers.
func (c *Client) LatestRepos(ctx context.Context, username string, count int) ([]domain.GithubRepo, error) {
	if count <= 0 {
		count = 5
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=%d&sort=created:asc",
		c.baseURL, url.PathEscape(username), count)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("github request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, domain.ErrGithubNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrGithubNotFound
	}

	var repos []domain.GithubRepo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("github decode: %w", err)
	}
	return repos, nil
}
