package create

import (
	"context"

	"github.com/adamlahbib/pagesdeploy/models"
	"github.com/google/go-github/v66/github"
)

// DeploymentStatusParams link a GitHub deployment to a Pages deployment.
type DeploymentStatusParams struct {
	DeploymentID   int64
	Environment    string
	EnvironmentURL string
	LogURL         string
}

// CreateDeploymentStatus marks the deployment successful. The state is
// always "success"; the Pages deploy stage is not consulted.
func CreateDeploymentStatus(ctx context.Context, client *github.Client, repo models.GitContext, params DeploymentStatusParams) (*github.DeploymentStatus, error) {

	deploymentStatusRequest := &github.DeploymentStatusRequest{
		State:          github.String("success"),
		Description:    github.String(Description),
		Environment:    github.String(params.Environment),
		EnvironmentURL: github.String(params.EnvironmentURL),
		LogURL:         github.String(params.LogURL),
		AutoInactive:   github.Bool(false),
	}

	deploymentStatus, _, err := client.Repositories.CreateDeploymentStatus(ctx, repo.Owner, repo.Repo, params.DeploymentID, deploymentStatusRequest)
	if err != nil {
		return nil, err
	}

	return deploymentStatus, nil
}

// Linker binds the deployment functions to one client.
type Linker struct {
	Client *github.Client
}

func (l Linker) CreateDeployment(ctx context.Context, repo models.GitContext, environment string, production bool) (*github.Deployment, error) {
	return CreateDeployment(ctx, l.Client, repo, environment, production)
}

func (l Linker) CreateDeploymentStatus(ctx context.Context, repo models.GitContext, params DeploymentStatusParams) error {
	_, err := CreateDeploymentStatus(ctx, l.Client, repo, params)
	return err
}
