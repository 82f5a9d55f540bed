// Package github looks up commit authors through the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"badgeofshame/internal/upstream"

	gh "github.com/google/go-github/v37/github"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// APIBaseURL is the public GitHub API.
const APIBaseURL = "https://api.github.com/"

// Author identifies who pushed a commit and where the commit can be viewed.
type Author struct {
	Login   string `json:"login"`
	HTMLURL string `json:"html_url"`
}

// Client wraps a go-github client with the headers the badge service sends.
type Client struct {
	gh *gh.Client
}

// NewClient creates a GitHub client. A non-empty token authenticates requests
// and lifts the anonymous rate limit.
func NewClient(baseURL, token string, timeout time.Duration) (*Client, error) {
	httpClient := &http.Client{Timeout: timeout}
	if token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
		httpClient.Timeout = timeout
	}

	client := gh.NewClient(httpClient)
	client.UserAgent = upstream.UserAgent

	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = APIBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid GitHub API URL %q", baseURL)
	}
	client.BaseURL = parsed

	return &Client{gh: client}, nil
}

// CommitAuthor resolves the author login and page URL of sha in slug.
func (c *Client) CommitAuthor(ctx context.Context, slug, sha string) (Author, error) {
	req, err := c.gh.NewRequest(http.MethodGet, fmt.Sprintf("repos/%s/commits/%s", slug, sha), nil)
	if err != nil {
		return Author{}, errors.Wrap(err, "building GitHub request")
	}
	req.Header.Set("Accept", "application/json")

	endpoint := req.URL.String()

	commit := new(gh.RepositoryCommit)
	resp, err := c.gh.Do(ctx, req, commit)
	if resp != nil && resp.StatusCode != http.StatusOK {
		return Author{}, &upstream.StatusError{Status: resp.StatusCode, URL: endpoint}
	}
	if err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Author{}, errors.Wrap(upstream.ErrInvalidJSON, err.Error())
		}

		return Author{}, errors.Wrapf(err, "github request to %s failed", endpoint)
	}

	login := commit.GetAuthor().GetLogin()
	htmlURL := commit.GetHTMLURL()
	if login == "" || htmlURL == "" {
		return Author{}, upstream.ErrMissingData
	}

	return Author{Login: login, HTMLURL: htmlURL}, nil
}
