// Package resolver decides which badge a repository gets, consulting the
// cache, Travis CI and GitHub in turn.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"badgeofshame/internal/badge"
	"badgeofshame/internal/cache"
	"badgeofshame/internal/github"
	"badgeofshame/internal/metrics"
	"badgeofshame/internal/travis"
	"badgeofshame/internal/upstream"

	"github.com/sirupsen/logrus"
)

type Outcome string

const (
	OutcomePassing       Outcome = "passing"
	OutcomeFailing       Outcome = "failing"
	OutcomeCachedPassing Outcome = "cached_passing"
	OutcomeCachedFailing Outcome = "cached_failing"
	OutcomeError         Outcome = "error"
)

var (
	ErrNoCommitID  = errors.New("No commit ID")
	ErrNoCommitSHA = errors.New("No commit SHA")
)

// Cache is the part of cache.Store the resolver needs.
type Cache interface {
	Get(ctx context.Context, slug string) (cache.Entry, bool, error)
	Set(ctx context.Context, slug string, entry cache.Entry) error
}

// CIProvider serves build summaries and build history.
type CIProvider interface {
	Repo(ctx context.Context, slug string) (travis.Repo, error)
	Builds(ctx context.Context, slug string) (travis.BuildList, error)
}

// CodeHost resolves commit authors.
type CodeHost interface {
	CommitAuthor(ctx context.Context, slug, sha string) (github.Author, error)
}

// Result is the outcome of one resolution. Body is always a complete SVG
// document; Err carries the diagnostic when Outcome is OutcomeError.
type Result struct {
	Outcome Outcome
	Body    string
	BuildID int64
	Login   string
	URL     string
	Err     error
}

type Resolver struct {
	cache Cache
	ci    CIProvider
	host  CodeHost
	log   logrus.FieldLogger
}

func New(c Cache, ci CIProvider, host CodeHost, log logrus.FieldLogger) *Resolver {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Resolver{cache: c, ci: ci, host: host, log: log}
}

// Resolve runs the pipeline for slug ("owner/repo"). It never fails: every
// error yields the empty badge and is logged.
func (r *Resolver) Resolve(ctx context.Context, slug string) Result {
	log := r.log.WithField("repo", slug)

	res := r.resolve(ctx, slug, log)
	if res.Err != nil {
		log.Warn(res.Err.Error())
		res.Outcome = OutcomeError
		res.Body = badge.Empty
	}

	metrics.BadgesServed.WithLabelValues(string(res.Outcome)).Inc()

	return res
}

func (r *Resolver) resolve(ctx context.Context, slug string, log logrus.FieldLogger) Result {
	start := time.Now()
	summary, err := r.ci.Repo(ctx, slug)
	metrics.ObserveUpstream("travis.repo", start)
	if err != nil {
		return Result{Err: describe(travisSummary, err)}
	}

	buildID := summary.LastBuildID

	if res, ok := r.fromCache(ctx, slug, buildID, log); ok {
		return res
	}

	if isSuccess(summary.LastBuildState) {
		r.store(ctx, slug, cache.Entry{LastBuildID: buildID, LastBuildSuccess: true}, log)
		return Result{Outcome: OutcomePassing, Body: badge.Empty, BuildID: buildID}
	}

	start = time.Now()
	list, err := r.ci.Builds(ctx, slug)
	metrics.ObserveUpstream("travis.builds", start)
	if err != nil {
		return Result{BuildID: buildID, Err: describe(travisBuilds, err)}
	}

	commitID, ok := FindFailingCommit(list.Builds)
	if !ok {
		return Result{BuildID: buildID, Err: ErrNoCommitID}
	}

	sha, ok := ResolveSHA(list.Commits, commitID)
	if !ok {
		return Result{BuildID: buildID, Err: ErrNoCommitSHA}
	}

	start = time.Now()
	author, err := r.host.CommitAuthor(ctx, slug, sha)
	metrics.ObserveUpstream("github.commit", start)
	if err != nil {
		return Result{BuildID: buildID, Err: describe(githubCommit, err)}
	}

	r.store(ctx, slug, cache.Entry{
		LastBuildID: buildID,
		LastLogin:   author.Login,
		LastURL:     author.HTMLURL,
	}, log)

	return Result{
		Outcome: OutcomeFailing,
		Body:    badge.Render(author.Login, author.HTMLURL),
		BuildID: buildID,
		Login:   author.Login,
		URL:     author.HTMLURL,
	}
}

// fromCache answers from a cached entry recorded for the same build.
func (r *Resolver) fromCache(ctx context.Context, slug string, buildID int64, log logrus.FieldLogger) (Result, bool) {
	entry, ok, err := r.cache.Get(ctx, slug)
	if err != nil {
		log.WithError(err).Warn("cache read failed, treating as miss")
		metrics.CacheLookups.WithLabelValues("error").Inc()
		return Result{}, false
	}
	if !ok || entry.LastBuildID != buildID {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return Result{}, false
	}

	metrics.CacheLookups.WithLabelValues("hit").Inc()
	log.WithField("build", buildID).Debug("cache hit")

	if entry.LastBuildSuccess {
		return Result{Outcome: OutcomeCachedPassing, Body: badge.Empty, BuildID: buildID}, true
	}

	return Result{
		Outcome: OutcomeCachedFailing,
		Body:    badge.Render(entry.LastLogin, entry.LastURL),
		BuildID: buildID,
		Login:   entry.LastLogin,
		URL:     entry.LastURL,
	}, true
}

func (r *Resolver) store(ctx context.Context, slug string, entry cache.Entry, log logrus.FieldLogger) {
	if err := r.cache.Set(ctx, slug, entry); err != nil {
		log.WithError(err).Warn("cache write failed")
	}
}

// Travis v2 reports "passed"; "success" is kept for older summaries.
func isSuccess(state string) bool {
	return state == "success" || state == "passed"
}

type call struct {
	request  string
	response string
}

var (
	travisSummary = call{request: "Travis API request #1", response: "Travis API response #1"}
	travisBuilds  = call{request: "Travis API request #2", response: "Travis API response #2"}
	githubCommit  = call{request: "Github API request", response: "Github API response"}
)

// describe turns a client error into the diagnostic for that call.
func describe(c call, err error) error {
	var se *upstream.StatusError
	switch {
	case errors.As(err, &se):
		if c == githubCommit {
			return fmt.Errorf("%s returned %d for %s: %w", c.request, se.Status, se.URL, err)
		}
		return fmt.Errorf("%s returned %d: %w", c.request, se.Status, err)
	case errors.Is(err, upstream.ErrInvalidJSON):
		return fmt.Errorf("%s returned invalid JSON: %w", c.request, err)
	case errors.Is(err, upstream.ErrMissingData):
		return fmt.Errorf("%s missing data: %w", c.response, err)
	default:
		return fmt.Errorf("%s failed: %w", c.request, err)
	}
}
