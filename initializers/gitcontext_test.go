package initializers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adamlahbib/pagesdeploy/testutil"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func TestLoadGitContextPush(t *testing.T) {
	testutil.StartLog(t)

	repo, err := LoadGitContext(newAction(map[string]string{
		"GITHUB_REPOSITORY": "octo/site",
		"GITHUB_REF":        "refs/heads/main",
		"GITHUB_REF_NAME":   "main",
		"GITHUB_SHA":        "abc123",
		"GITHUB_API_URL":    "https://api.github.com",
	}), "")
	if err != nil {
		t.Fatalf("load context: %v", err)
	}

	if repo.Owner != "octo" || repo.Repo != "site" {
		t.Fatalf("repository = %s/%s", repo.Owner, repo.Repo)
	}
	if repo.Branch != "main" || repo.Ref != "main" || repo.SHA != "abc123" {
		t.Fatalf("unexpected context %+v", repo)
	}
}

func TestLoadGitContextPullRequest(t *testing.T) {
	testutil.StartLog(t)

	repo, err := LoadGitContext(newAction(map[string]string{
		"GITHUB_REPOSITORY": "octo/site",
		"GITHUB_HEAD_REF":   "feature",
		"GITHUB_REF":        "refs/pull/12/merge",
		"GITHUB_REF_NAME":   "12/merge",
	}), "")
	if err != nil {
		t.Fatalf("load context: %v", err)
	}
	if repo.Branch != "feature" || repo.Ref != "feature" {
		t.Fatalf("head ref should win, got %+v", repo)
	}
}

func TestLoadGitContextLocalRepository(t *testing.T) {
	testutil.StartLog(t)

	dir := t.TempDir()
	r, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	wt, _ := r.Worktree()
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("site"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := wt.Add("README.md"); err != nil {
		t.Fatalf("add: %v", err)
	}
	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "ci", Email: "ci@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := wt.Checkout(&git.CheckoutOptions{Branch: plumbing.NewBranchReferenceName("preview"), Create: true}); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	repo, err := LoadGitContext(newAction(map[string]string{}), dir)
	if err != nil {
		t.Fatalf("load context: %v", err)
	}
	if repo.Branch != "preview" || repo.Ref != "preview" || repo.SHA != hash.String() {
		t.Fatalf("unexpected context %+v", repo)
	}
}
