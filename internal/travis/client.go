// Package travis provides a client for the Travis CI v2 repository API.
package travis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"badgeofshame/internal/upstream"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/client"
	"github.com/pkg/errors"
)

const (
	// APIBaseURL is the public Travis CI API.
	APIBaseURL = "https://api.travis-ci.org"

	acceptHeader = "application/vnd.travis-ci.2+json"
)

// Client talks to the Travis CI API.
type Client struct {
	baseURL string
	http    *client.Client
}

// NewClient creates a Travis client; an empty baseURL selects APIBaseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = APIBaseURL
	}

	cc := client.New()
	cc.SetUserAgent(upstream.UserAgent)
	cc.SetHeader("Accept", acceptHeader)
	if timeout > 0 {
		cc.SetTimeout(timeout)
	}

	return &Client{baseURL: baseURL, http: cc}
}

// Repo fetches the build summary for slug.
func (c *Client) Repo(ctx context.Context, slug string) (Repo, error) {
	var payload repoPayload
	if err := c.getJSON(ctx, fmt.Sprintf("%s/repos/%s", c.baseURL, slug), &payload); err != nil {
		return Repo{}, err
	}

	fields := payload.repoFields
	if payload.Repo != nil {
		fields = *payload.Repo
	}

	if fields.LastBuildID == nil || fields.LastBuildState == nil {
		return Repo{}, upstream.ErrMissingData
	}

	slugOut := fields.Slug
	if slugOut == "" {
		slugOut = slug
	}

	return Repo{
		Slug:           slugOut,
		LastBuildID:    *fields.LastBuildID,
		LastBuildState: *fields.LastBuildState,
	}, nil
}

// Builds fetches the recent build history for slug, newest first.
func (c *Client) Builds(ctx context.Context, slug string) (BuildList, error) {
	var payload buildListPayload
	if err := c.getJSON(ctx, fmt.Sprintf("%s/repos/%s/builds", c.baseURL, slug), &payload); err != nil {
		return BuildList{}, err
	}

	if payload.Builds == nil || payload.Commits == nil {
		return BuildList{}, upstream.ErrMissingData
	}

	list := BuildList{
		Builds:  make([]Build, 0, len(*payload.Builds)),
		Commits: *payload.Commits,
	}

	for _, b := range *payload.Builds {
		build := Build{ID: b.ID, EventType: b.EventType}
		if b.CommitID != nil {
			build.CommitID = *b.CommitID
		}
		// Older payloads carry "status" instead of "state".
		switch {
		case b.State != nil:
			build.State = *b.State
		case b.Status != nil:
			build.State = *b.Status
		}
		list.Builds = append(list.Builds, build)
	}

	return list, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	resp, err := c.http.Get(url, client.Config{Ctx: ctx})
	if err != nil {
		return errors.Wrapf(err, "travis request to %s failed", url)
	}
	defer resp.Close()

	if resp.StatusCode() != fiber.StatusOK {
		return &upstream.StatusError{Status: resp.StatusCode(), URL: url}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return errors.Wrap(upstream.ErrInvalidJSON, err.Error())
	}

	return nil
}
