package create

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

const (
	// Description is shown on GitHub deployments and their statuses.
	Description = "Cloudflare Pages"

	publicAPIURL = "https://api.github.com"
)

// new github client

// NewClient authenticates with a static token. apiURL points the client at
// a GitHub Enterprise Server API when it is not the public one.
func NewClient(ctx context.Context, token string, apiURL string) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	apiURL = strings.TrimRight(strings.TrimSpace(apiURL), "/")
	if apiURL == "" || apiURL == publicAPIURL {
		return client, nil
	}

	base, err := url.Parse(apiURL + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API url %q: %w", apiURL, err)
	}
	client.BaseURL = base

	return client, nil
}
