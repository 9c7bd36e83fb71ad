package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/cloudflare/cloudflare-go"
	"github.com/rs/zerolog/log"
)

var (
	ErrProjectNotFound = errors.New("failed to get Pages project, project does not exist")
	ErrNoDeployments   = errors.New("no Pages deployments found")
)

// APIError is a project lookup answered with anything but 200 OK.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("failed to get Pages project, API returned non-200 (%d): %s", e.Status, e.Body)
}

// get the pages project

func GetPagesProject(ctx context.Context, api *cloudflare.API, accountID string, projectName string) (cloudflare.PagesProject, error) {
	endpoint := fmt.Sprintf("/accounts/%s/pages/projects/%s", url.PathEscape(accountID), url.PathEscape(projectName))

	ctx, capture := withResponseCapture(ctx)
	res, err := api.Raw(ctx, http.MethodGet, endpoint, nil, nil)

	// The SDK rewrites error bodies and accepts any 2xx, so the status and
	// body come from the transport when it recorded them.
	if capture.status != 0 && capture.status != http.StatusOK {
		body := strings.TrimSpace(string(capture.body))
		log.Error().
			Int("status", capture.status).
			Str("project", projectName).
			Str("body", body).
			Msg("Cloudflare API returned non-200")
		return cloudflare.PagesProject{}, &APIError{Status: capture.status, Body: body}
	}
	if err != nil {
		log.Error().Err(err).Str("project", projectName).Msg("Cloudflare API request failed")
		return cloudflare.PagesProject{}, fmt.Errorf("failed to get Pages project: %w", err)
	}

	raw := bytes.TrimSpace(res.Result)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return cloudflare.PagesProject{}, fmt.Errorf("%w: check the project name or create it", ErrProjectNotFound)
	}

	var project cloudflare.PagesProject
	if err := json.Unmarshal(raw, &project); err != nil {
		return cloudflare.PagesProject{}, fmt.Errorf("failed to decode Pages project: %w", err)
	}

	log.Debug().
		Str("project", project.Name).
		Str("production_branch", project.ProductionBranch).
		Msg("resolved Pages project")

	return project, nil
}

// get the most recent deployment of a project

func LatestPagesDeployment(ctx context.Context, api *cloudflare.API, accountID string, projectName string) (cloudflare.PagesProjectDeployment, error) {
	// Page is set so the SDK stops after the first page; the API lists newest first.
	deployments, _, err := api.ListPagesDeployments(ctx, cloudflare.AccountIdentifier(accountID), cloudflare.ListPagesDeploymentsParams{
		ProjectName: projectName,
		ResultInfo:  cloudflare.ResultInfo{Page: 1},
	})
	if err != nil {
		return cloudflare.PagesProjectDeployment{}, fmt.Errorf("failed to list Pages deployments: %w", err)
	}

	if len(deployments) == 0 {
		return cloudflare.PagesProjectDeployment{}, fmt.Errorf("%w for project %s", ErrNoDeployments, projectName)
	}

	return deployments[0], nil
}

// DashboardURL links to the deployment in the Cloudflare dashboard.
func DashboardURL(accountID string, projectName string, deploymentID string) string {
	return fmt.Sprintf("https://dash.cloudflare.com/%s/pages/view/%s/%s", accountID, projectName, deploymentID)
}
