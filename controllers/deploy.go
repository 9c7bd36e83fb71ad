package controllers

import (
	"context"
	"fmt"

	"github.com/adamlahbib/pagesdeploy/cmd/create"
	"github.com/adamlahbib/pagesdeploy/cmd/fetch"
	"github.com/adamlahbib/pagesdeploy/lib"
	"github.com/adamlahbib/pagesdeploy/models"
	"github.com/cloudflare/cloudflare-go"
	"github.com/google/go-github/v66/github"
	"github.com/rs/zerolog/log"
)

type PagesAPI interface {
	GetProject(ctx context.Context, accountID, projectName string) (cloudflare.PagesProject, error)
	LatestDeployment(ctx context.Context, accountID, projectName string) (cloudflare.PagesProjectDeployment, error)
}

type DeploymentLinker interface {
	CreateDeployment(ctx context.Context, repo models.GitContext, environment string, production bool) (*github.Deployment, error)
	CreateDeploymentStatus(ctx context.Context, repo models.GitContext, params create.DeploymentStatusParams) error
}

// Reporter publishes step outputs and the job summary.
type Reporter interface {
	SetOutput(key, value string)
	AddStepSummary(markdown string)
}

// Services are the collaborators of a run. GitHub may be nil when no
// token was supplied.
type Services struct {
	Pages    PagesAPI
	Deployer lib.Deployer
	GitHub   DeploymentLinker
	Reporter Reporter
}

// Deploy runs one deployment: project lookup, optional GitHub deployment,
// wrangler upload, outputs, summary and the optional GitHub status.
func Deploy(ctx context.Context, in models.Inputs, repo models.GitContext, svc Services) (models.Outputs, error) {
	if err := in.Validate(); err != nil {
		return models.Outputs{}, err
	}

	project, err := svc.Pages.GetProject(ctx, in.AccountID, in.ProjectName)
	if err != nil {
		return models.Outputs{}, err
	}

	env := models.EnvironmentFor(project.ProductionBranch, repo.Branch, in.Branch)
	environmentName := env.Label(in.ProjectName)
	log.Info().
		Str("project", in.ProjectName).
		Str("environment", environmentName).
		Str("branch", repo.Branch).
		Msg("deploying")

	linkGitHub := in.HasGitHubToken() && svc.GitHub != nil

	var gitHubDeployment *github.Deployment
	if linkGitHub {
		gitHubDeployment, err = svc.GitHub.CreateDeployment(ctx, repo, environmentName, env.IsProduction())
		if err != nil {
			return models.Outputs{}, err
		}
	}

	err = svc.Deployer.Deploy(ctx, lib.DeployRequest{
		Directory:        in.Directory,
		ProjectName:      in.ProjectName,
		Branch:           in.Branch,
		WorkingDirectory: in.WorkingDirectory,
		APIToken:         in.APIToken,
		AccountID:        in.AccountID,
	})
	if err != nil {
		return models.Outputs{}, fmt.Errorf("pages deploy failed: %w", err)
	}

	// The deploy command does not return the deployment, so the newest one
	// is read back. It may still be in progress.
	deployment, err := svc.Pages.LatestDeployment(ctx, in.AccountID, in.ProjectName)
	if err != nil {
		return models.Outputs{}, err
	}

	out := models.Outputs{
		ID:          deployment.ID,
		URL:         deployment.URL,
		Environment: deployment.Environment,
		Alias:       models.AliasURL(env, deployment.URL, deployment.Aliases),
	}
	svc.Reporter.SetOutput("id", out.ID)
	svc.Reporter.SetOutput("url", out.URL)
	svc.Reporter.SetOutput("environment", out.Environment)
	svc.Reporter.SetOutput("alias", out.Alias)

	svc.Reporter.AddStepSummary(JobSummary(out.Alias, deployment))

	if gitHubDeployment != nil {
		err = svc.GitHub.CreateDeploymentStatus(ctx, repo, create.DeploymentStatusParams{
			DeploymentID:   gitHubDeployment.GetID(),
			Environment:    environmentName,
			EnvironmentURL: deployment.URL,
			LogURL:         fetch.DashboardURL(in.AccountID, in.ProjectName, deployment.ID),
		})
		if err != nil {
			return out, fmt.Errorf("failed to create GitHub deployment status: %w", err)
		}
	}

	log.Info().Str("id", out.ID).Str("url", out.URL).Str("alias", out.Alias).Msg("deployed")

	return out, nil
}
