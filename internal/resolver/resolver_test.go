package resolver

import (
	"context"
	"errors"
	"strings"
	"testing"

	"badgeofshame/internal/badge"
	"badgeofshame/internal/cache"
	"badgeofshame/internal/github"
	"badgeofshame/internal/travis"
	"badgeofshame/internal/upstream"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

const testSlug = "octo/widget"

type fakeCI struct {
	repo      travis.Repo
	repoErr   error
	builds    travis.BuildList
	buildsErr error

	repoCalls   int
	buildsCalls int
}

func (f *fakeCI) Repo(_ context.Context, slug string) (travis.Repo, error) {
	f.repoCalls++
	return f.repo, f.repoErr
}

func (f *fakeCI) Builds(_ context.Context, slug string) (travis.BuildList, error) {
	f.buildsCalls++
	return f.builds, f.buildsErr
}

type fakeHost struct {
	author github.Author
	err    error
	shas   []string
}

func (f *fakeHost) CommitAuthor(_ context.Context, slug, sha string) (github.Author, error) {
	f.shas = append(f.shas, sha)
	return f.author, f.err
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) (cache.Entry, bool, error) {
	return cache.Entry{}, false, errors.New("connection refused")
}

func (brokenCache) Set(context.Context, string, cache.Entry) error {
	return errors.New("connection refused")
}

func failingBuilds() travis.BuildList {
	return travis.BuildList{
		Builds: []travis.Build{
			{ID: 12, CommitID: 5, EventType: "push", State: "failed"},
			{ID: 11, CommitID: 4, EventType: "push", State: "passed"},
		},
		Commits: []travis.Commit{{ID: 4, SHA: "def456"}, {ID: 5, SHA: "abc123"}},
	}
}

func newTestResolver(c Cache, ci *fakeCI, host *fakeHost) (*Resolver, *logtest.Hook) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	return New(c, ci, host, logger), hook
}

func TestResolveSuccessStoresEntry(t *testing.T) {
	store := cache.NewMemoryStore()
	ci := &fakeCI{repo: travis.Repo{LastBuildID: 100, LastBuildState: "success"}}
	host := &fakeHost{}
	r, _ := newTestResolver(store, ci, host)

	res := r.Resolve(context.Background(), testSlug)

	require.NoError(t, res.Err)
	require.Equal(t, OutcomePassing, res.Outcome)
	require.Equal(t, badge.Empty, res.Body)
	require.Equal(t, 0, ci.buildsCalls)

	entry, ok, err := store.Get(context.Background(), testSlug)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, cache.Entry{LastBuildID: 100, LastBuildSuccess: true}, entry)
}

func TestResolvePassedStateCountsAsSuccess(t *testing.T) {
	ci := &fakeCI{repo: travis.Repo{LastBuildID: 1, LastBuildState: "passed"}}
	r, _ := newTestResolver(cache.NewMemoryStore(), ci, &fakeHost{})

	res := r.Resolve(context.Background(), testSlug)
	require.Equal(t, OutcomePassing, res.Outcome)
}

func TestResolveCachedSuccessSkipsUpstream(t *testing.T) {
	store := cache.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), testSlug, cache.Entry{LastBuildID: 100, LastBuildSuccess: true}))

	// The summary now says failed; the matching cache entry still wins.
	ci := &fakeCI{repo: travis.Repo{LastBuildID: 100, LastBuildState: "failed"}}
	host := &fakeHost{}
	r, _ := newTestResolver(store, ci, host)

	res := r.Resolve(context.Background(), testSlug)

	require.Equal(t, OutcomeCachedPassing, res.Outcome)
	require.Equal(t, badge.Empty, res.Body)
	require.Equal(t, 1, ci.repoCalls)
	require.Equal(t, 0, ci.buildsCalls)
	require.Empty(t, host.shas)
}

func TestResolveCachedFailureRendersCachedAuthor(t *testing.T) {
	store := cache.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), testSlug, cache.Entry{
		LastBuildID: 100,
		LastLogin:   "cached-dev",
		LastURL:     "https://github.com/octo/widget/commit/cafe",
	}))

	ci := &fakeCI{repo: travis.Repo{LastBuildID: 100, LastBuildState: "failed"}}
	host := &fakeHost{}
	r, _ := newTestResolver(store, ci, host)

	res := r.Resolve(context.Background(), testSlug)

	require.Equal(t, OutcomeCachedFailing, res.Outcome)
	require.Equal(t, badge.Render("cached-dev", "https://github.com/octo/widget/commit/cafe"), res.Body)
	require.Equal(t, "cached-dev", res.Login)
	require.Equal(t, 0, ci.buildsCalls)
	require.Empty(t, host.shas)
}

func TestResolveStaleCacheEntryIsIgnored(t *testing.T) {
	store := cache.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), testSlug, cache.Entry{LastBuildID: 99, LastBuildSuccess: true}))

	ci := &fakeCI{
		repo:   travis.Repo{LastBuildID: 100, LastBuildState: "failed"},
		builds: failingBuilds(),
	}
	host := &fakeHost{author: github.Author{Login: "dev", HTMLURL: "https://github.com/octo/widget/commit/abc123"}}
	r, _ := newTestResolver(store, ci, host)

	res := r.Resolve(context.Background(), testSlug)

	require.NoError(t, res.Err)
	require.Equal(t, OutcomeFailing, res.Outcome)
	require.Equal(t, 1, ci.buildsCalls)
}

func TestResolveFailureRendersAndStoresAuthor(t *testing.T) {
	store := cache.NewMemoryStore()
	ci := &fakeCI{
		repo:   travis.Repo{LastBuildID: 100, LastBuildState: "failed"},
		builds: failingBuilds(),
	}
	host := &fakeHost{author: github.Author{Login: "dev", HTMLURL: "https://github.com/octo/widget/commit/abc123"}}
	r, _ := newTestResolver(store, ci, host)

	res := r.Resolve(context.Background(), testSlug)

	require.NoError(t, res.Err)
	require.Equal(t, OutcomeFailing, res.Outcome)
	require.Equal(t, []string{"abc123"}, host.shas)
	require.Equal(t, badge.Render("dev", "https://github.com/octo/widget/commit/abc123"), res.Body)

	entry, ok, err := store.Get(context.Background(), testSlug)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, cache.Entry{
		LastBuildID: 100,
		LastLogin:   "dev",
		LastURL:     "https://github.com/octo/widget/commit/abc123",
	}, entry)

	// A second request for the same build is answered from the cache.
	res = r.Resolve(context.Background(), testSlug)
	require.Equal(t, OutcomeCachedFailing, res.Outcome)
	require.Equal(t, 1, ci.buildsCalls)
	require.Len(t, host.shas, 1)
}

func TestResolveUpstreamFailuresYieldEmptyBadgeWithoutCacheWrite(t *testing.T) {
	tests := []struct {
		name    string
		ci      *fakeCI
		host    *fakeHost
		message string
	}{
		{
			name:    "summary non-200",
			ci:      &fakeCI{repoErr: &upstream.StatusError{Status: 404, URL: "https://travis/repos/octo/widget"}},
			message: "Travis API request #1 returned 404",
		},
		{
			name:    "summary invalid JSON",
			ci:      &fakeCI{repoErr: upstream.ErrInvalidJSON},
			message: "Travis API request #1 returned invalid JSON",
		},
		{
			name:    "summary missing data",
			ci:      &fakeCI{repoErr: upstream.ErrMissingData},
			message: "Travis API response #1 missing data",
		},
		{
			name: "builds non-200",
			ci: &fakeCI{
				repo:      travis.Repo{LastBuildID: 1, LastBuildState: "failed"},
				buildsErr: &upstream.StatusError{Status: 500, URL: "https://travis/repos/octo/widget/builds"},
			},
			message: "Travis API request #2 returned 500",
		},
		{
			name: "builds invalid JSON",
			ci: &fakeCI{
				repo:      travis.Repo{LastBuildID: 1, LastBuildState: "failed"},
				buildsErr: upstream.ErrInvalidJSON,
			},
			message: "Travis API request #2 returned invalid JSON",
		},
		{
			name: "github non-200",
			ci: &fakeCI{
				repo:   travis.Repo{LastBuildID: 1, LastBuildState: "failed"},
				builds: failingBuilds(),
			},
			host:    &fakeHost{err: &upstream.StatusError{Status: 404, URL: "https://api.github.com/repos/octo/widget/commits/abc123"}},
			message: "Github API request returned 404 for https://api.github.com/repos/octo/widget/commits/abc123",
		},
		{
			name: "github missing data",
			ci: &fakeCI{
				repo:   travis.Repo{LastBuildID: 1, LastBuildState: "failed"},
				builds: failingBuilds(),
			},
			host:    &fakeHost{err: upstream.ErrMissingData},
			message: "Github API response missing data",
		},
		{
			name: "no qualifying build",
			ci: &fakeCI{
				repo: travis.Repo{LastBuildID: 1, LastBuildState: "failed"},
				builds: travis.BuildList{
					Builds:  []travis.Build{{CommitID: 5, EventType: "push", State: "passed"}},
					Commits: []travis.Commit{{ID: 5, SHA: "abc123"}},
				},
			},
			message: "No commit ID",
		},
		{
			name: "no matching commit",
			ci: &fakeCI{
				repo: travis.Repo{LastBuildID: 1, LastBuildState: "failed"},
				builds: travis.BuildList{
					Builds:  []travis.Build{{CommitID: 5, EventType: "push", State: "failed"}},
					Commits: []travis.Commit{{ID: 6, SHA: "abc123"}},
				},
			},
			message: "No commit SHA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := tt.host
			if host == nil {
				host = &fakeHost{}
			}

			store := cache.NewMemoryStore()
			r, hook := newTestResolver(store, tt.ci, host)

			res := r.Resolve(context.Background(), testSlug)

			require.Equal(t, OutcomeError, res.Outcome)
			require.Equal(t, badge.Empty, res.Body)
			require.Error(t, res.Err)
			require.True(t, strings.HasPrefix(res.Err.Error(), tt.message), "got %q", res.Err.Error())

			require.Equal(t, 0, store.Len())

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			require.Equal(t, logrus.WarnLevel, entry.Level)
			require.Equal(t, res.Err.Error(), entry.Message)
			require.Equal(t, testSlug, entry.Data["repo"])
		})
	}
}

func TestResolveCacheErrorsAreNotFatal(t *testing.T) {
	ci := &fakeCI{
		repo:   travis.Repo{LastBuildID: 100, LastBuildState: "failed"},
		builds: failingBuilds(),
	}
	host := &fakeHost{author: github.Author{Login: "dev", HTMLURL: "https://github.com/octo/widget/commit/abc123"}}
	r, hook := newTestResolver(brokenCache{}, ci, host)

	res := r.Resolve(context.Background(), testSlug)

	require.NoError(t, res.Err)
	require.Equal(t, OutcomeFailing, res.Outcome)

	var warnings []string
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings = append(warnings, e.Message)
		}
	}
	require.Equal(t, []string{"cache read failed, treating as miss", "cache write failed"}, warnings)
}
