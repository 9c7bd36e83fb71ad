package create

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/adamlahbib/pagesdeploy/models"
	"github.com/google/go-github/v66/github"
	"github.com/rs/zerolog/log"
)

var ErrMissingRepository = errors.New("repository owner and name are required")

// CreateDeployment records a deployment for the ref on GitHub. It returns
// nil without an error when GitHub answers with anything but 201 Created;
// the caller then skips the status update.
func CreateDeployment(ctx context.Context, client *github.Client, repo models.GitContext, environment string, production bool) (*github.Deployment, error) {
	if repo.Owner == "" || repo.Repo == "" {
		return nil, ErrMissingRepository
	}

	deploymentRequest := &github.DeploymentRequest{
		Ref:                   github.String(repo.Ref),
		Environment:           github.String(environment),
		Description:           github.String(Description),
		AutoMerge:             github.Bool(false),
		ProductionEnvironment: github.Bool(production),
		RequiredContexts:      &[]string{},
	}

	deployment, resp, err := client.Repositories.CreateDeployment(ctx, repo.Owner, repo.Repo, deploymentRequest)
	if resp == nil {
		if err == nil {
			err = errors.New("no response")
		}
		return nil, fmt.Errorf("failed to create GitHub deployment: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		event := log.Warn().Int("status", resp.StatusCode).Str("ref", repo.Ref)
		if err != nil {
			event = event.Err(err)
		}
		event.Msg("GitHub deployment was not created, skipping deployment status")
		return nil, nil
	}

	log.Info().
		Int64("id", deployment.GetID()).
		Str("environment", environment).
		Msg("created GitHub deployment")

	return deployment, nil
}
