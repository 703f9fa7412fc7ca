package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devconnect/profile-api/internal/core/domain"
)

func TestClient_LatestRepos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/alice/repos" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("per_page"); got != "5" {
			t.Errorf("unexpected per_page: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":"repo1","html_url":"https://github.com/alice/repo1","stargazers_count":3},
			{"name":"repo2","html_url":"https://github.com/alice/repo2"}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	repos, err := client.LatestRepos(context.Background(), "alice", 5)
	if err != nil {
		t.Fatalf("latest repos: %v", err)
	}
	if len(repos) != 2 {
		t.Fatalf("expected 2 repos, got %d", len(repos))
	}
	if repos[0].Name != "repo1" || repos[0].Stars != 3 {
		t.Fatalf("unexpected repo: %+v", repos[0])
	}
}

func TestClient_LatestRepos_UnknownUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	if _, err := client.LatestRepos(context.Background(), "ghost", 5); !errors.Is(err, domain.ErrGithubNotFound) {
		t.Fatalf("expected ErrGithubNotFound, got %v", err)
	}
}

func TestClient_LatestRepos_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, time.Second)

	if _, err := client.LatestRepos(context.Background(), "alice", 5); !errors.Is(err, domain.ErrGithubNotFound) {
		t.Fatalf("expected ErrGithubNotFound, got %v", err)
	}
}
