package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
)

// DefaultAPIBaseURL is the public GitHub REST endpoint.
const DefaultAPIBaseURL = "https://api.github.com"

// GitHubClient talks to the GitHub REST API.
type GitHubClient struct {
	baseURL    string
	httpClient *http.Client
}

// GitHubClientOption configures a GitHubClient.
type GitHubClientOption func(*GitHubClient)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) GitHubClientOption {
	return func(c *GitHubClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(httpClient *http.Client) GitHubClientOption {
	return func(c *GitHubClient) {
		c.httpClient = httpClient
	}
}

// NewGitHubClient returns a client for the public API unless overridden.
func NewGitHubClient(opts ...GitHubClientOption) *GitHubClient {
	c := &GitHubClient{
		baseURL:    DefaultAPIBaseURL,
		httpClient: cleanhttp.DefaultClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIResponse is the status and raw body of an API call.
type APIResponse struct {
	StatusCode int
	Body       string
}

// OK reports whether the call returned 200.
func (r APIResponse) OK() bool {
	return r.StatusCode == http.StatusOK
}

// SetTemplate flags owner/repo as a template repository. A non-2xx status is
// not an error; callers inspect the returned response.
func (c *GitHubClient) SetTemplate(ctx context.Context, owner, repo, token string) (APIResponse, error) {
	body, err := json.Marshal(map[string]bool{"is_template": true})
	if err != nil {
		return APIResponse{}, fmt.Errorf("encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return APIResponse{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "token "+token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return APIResponse{}, fmt.Errorf("PATCH %s: %w", url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return APIResponse{}, fmt.Errorf("reading response: %w", err)
	}
	return APIResponse{StatusCode: resp.StatusCode, Body: string(data)}, nil
}
