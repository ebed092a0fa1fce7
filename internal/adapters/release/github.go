package release

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/paramdex/paramdex/internal/ports"
)

const (
	defaultBaseURL = "https://api.github.com"
	requestTimeout = 5 * time.Second
)

// GitHubChecker implements ports.UpdateChecker with the GitHub releases API
type GitHubChecker struct {
	baseURL string
	client  *http.Client
	repo    string
}

// Verify interface compliance at compile time
var _ ports.UpdateChecker = (*GitHubChecker)(nil)

// NewGitHubChecker creates a checker for owner/name
func NewGitHubChecker(repo string) *GitHubChecker {
	return &GitHubChecker{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
		repo:    repo,
	}
}

// WithBaseURL points the checker at another API host
func (c *GitHubChecker) WithBaseURL(url string) *GitHubChecker {
	c.baseURL = url
	return c
}

type latestRelease struct {
	HTMLURL string `json:"html_url"`
	TagName string `json:"tag_name"`
}

// LatestRelease fetches the newest published release
func (c *GitHubChecker) LatestRelease(ctx context.Context) (ports.Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", c.baseURL, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.Release{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return ports.Release{}, fmt.Errorf("failed to query releases: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.Release{}, fmt.Errorf("unexpected status from releases API: %s", resp.Status)
	}

	var body latestRelease
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.Release{}, fmt.Errorf("failed to decode release: %w", err)
	}
	if body.TagName == "" {
		return ports.Release{}, fmt.Errorf("release has no tag")
	}
	return ports.Release{Version: body.TagName, URL: body.HTMLURL}, nil
}
