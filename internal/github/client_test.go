package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pradeepaul/devConnector/internal/github"
)

func TestListRecentRepos_PassesJSONThrough(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"repo-one"},{"name":"repo-two"}]`))
	}))
	defer srv.Close()

	c := github.NewClient("client-id", "client-secret")
	c.BaseURL = srv.URL

	repos, err := c.ListRecentRepos(context.Background(), "octocat")
	require.NoError(t, err)
	require.JSONEq(t, `[{"name":"repo-one"},{"name":"repo-two"}]`, string(repos))

	require.Equal(t, "/users/octocat/repos", gotPath)
	require.Equal(t, []string{"5"}, gotQuery["per_page"])
	require.Equal(t, []string{"created"}, gotQuery["sort"])
	require.Equal(t, []string{"client-id"}, gotQuery["client_id"])
	require.Equal(t, []string{"client-secret"}, gotQuery["client_secret"])
}

func TestListRecentRepos_NotFoundUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := github.NewClient("id", "secret")
	c.BaseURL = srv.URL

	_, err := c.ListRecentRepos(context.Background(), "nobody")
	require.ErrorIs(t, err, github.ErrNoProfile)
}

func TestListRecentRepos_UpstreamErrorIsNoProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := github.NewClient("id", "secret")
	c.BaseURL = srv.URL

	_, err := c.ListRecentRepos(context.Background(), "octocat")
	require.ErrorIs(t, err, github.ErrNoProfile)
}
