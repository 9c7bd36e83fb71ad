package controllers

import (
	"fmt"

	"github.com/adamlahbib/pagesdeploy/models"
	"github.com/cloudflare/cloudflare-go"
)

const summaryTemplate = `
# Deploying with Cloudflare Pages

| Name                    | Result |
| ----------------------- | - |
| **Last commit:**        | ` + "`%s`" + ` |
| **Status**:             | %s |
| **Preview URL**:        | %s |
| **Branch Preview URL**: | %s |
`

// DeployStageStatus reads the "deploy" stage; a missing stage counts as in
// progress.
func DeployStageStatus(deployment cloudflare.PagesProjectDeployment) models.StageStatus {
	for _, stage := range deployment.Stages {
		if stage.Name == models.DeployStageName {
			return models.ParseStageStatus(stage.Status)
		}
	}
	return models.StageInProgress
}

func StatusText(status models.StageStatus) string {
	switch status {
	case models.StageSuccess:
		return "✅  Deploy successful!"
	case models.StageFailure:
		return "🚫  Deployment failed"
	default:
		return "⚡️  Deployment in progress..."
	}
}

func JobSummary(aliasURL string, deployment cloudflare.PagesProjectDeployment) string {
	return fmt.Sprintf(summaryTemplate,
		commitPrefix(deployment),
		StatusText(DeployStageStatus(deployment)),
		deployment.URL,
		aliasURL,
	)
}

func commitPrefix(deployment cloudflare.PagesProjectDeployment) string {
	meta := deployment.DeploymentTrigger.Metadata
	if meta == nil {
		return ""
	}
	if len(meta.CommitHash) > 8 {
		return meta.CommitHash[:8]
	}
	return meta.CommitHash
}
