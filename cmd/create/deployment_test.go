package create

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adamlahbib/pagesdeploy/models"
	"github.com/adamlahbib/pagesdeploy/testutil"
	"github.com/google/go-github/v66/github"
)

var testRepo = models.GitContext{Owner: "octo", Repo: "site", Branch: "feature", Ref: "feature"}

func newTestClient(t *testing.T, handler http.HandlerFunc) *github.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(), "gh-token", srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestNewClientPublicAPI(t *testing.T) {
	client, err := NewClient(context.Background(), "gh-token", "https://api.github.com/")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if client.BaseURL.String() != "https://api.github.com/" {
		t.Fatalf("unexpected base url %s", client.BaseURL)
	}
}

func TestCreateDeployment(t *testing.T) {
	testutil.StartLog(t)

	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/repos/octo/site/deployments" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer gh-token" {
			t.Errorf("authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 42, "environment": "p1 (Preview)"}`))
	})

	deployment, err := CreateDeployment(context.Background(), client, testRepo, "p1 (Preview)", false)
	if err != nil {
		t.Fatalf("create deployment: %v", err)
	}
	if deployment == nil || deployment.GetID() != 42 {
		t.Fatalf("unexpected deployment %+v", deployment)
	}

	if got["ref"] != "feature" || got["environment"] != "p1 (Preview)" || got["description"] != Description {
		t.Fatalf("unexpected request body %v", got)
	}
	if got["auto_merge"] != false || got["production_environment"] != false {
		t.Fatalf("unexpected flags %v", got)
	}
	if contexts, ok := got["required_contexts"].([]any); !ok || len(contexts) != 0 {
		t.Fatalf("required_contexts should be an empty list, got %v", got["required_contexts"])
	}
}

func TestCreateDeploymentNotCreated(t *testing.T) {
	testutil.StartLog(t)

	for _, status := range []int{http.StatusAccepted, http.StatusConflict} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"message": "Auto-merged main into feature on deployment."}`))
		})

		deployment, err := CreateDeployment(context.Background(), client, testRepo, "p1 (Preview)", false)
		if err != nil {
			t.Fatalf("status %d: unexpected error %v", status, err)
		}
		if deployment != nil {
			t.Fatalf("status %d: expected no deployment, got %+v", status, deployment)
		}
	}
}

func TestCreateDeploymentMissingRepository(t *testing.T) {
	client := github.NewClient(nil)
	_, err := CreateDeployment(context.Background(), client, models.GitContext{Ref: "main"}, "p1 (Production)", true)
	if !errors.Is(err, ErrMissingRepository) {
		t.Fatalf("expected ErrMissingRepository, got %v", err)
	}
}

func TestCreateDeploymentStatus(t *testing.T) {
	testutil.StartLog(t)

	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/repos/octo/site/deployments/42/statuses" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 7, "state": "success"}`))
	})

	linker := Linker{Client: client}
	err := linker.CreateDeploymentStatus(context.Background(), testRepo, DeploymentStatusParams{
		DeploymentID:   42,
		Environment:    "p1 (Preview)",
		EnvironmentURL: "https://abc.p1.pages.dev",
		LogURL:         "https://dash.cloudflare.com/a1/pages/view/p1/abc",
	})
	if err != nil {
		t.Fatalf("create status: %v", err)
	}

	want := map[string]any{
		"state":           "success",
		"description":     Description,
		"environment":     "p1 (Preview)",
		"environment_url": "https://abc.p1.pages.dev",
		"log_url":         "https://dash.cloudflare.com/a1/pages/view/p1/abc",
		"auto_inactive":   false,
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v, want %v", k, got[k], v)
		}
	}
}
