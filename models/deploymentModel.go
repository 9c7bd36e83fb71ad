package models

import "fmt"

// Environment classifies a Pages deployment as production or preview.
type Environment int

const (
	Preview Environment = iota
	Production
)

// EnvironmentFor reports Production when either the git branch or the
// requested deploy branch is the project's production branch.
func EnvironmentFor(productionBranch, gitBranch, deployBranch string) Environment {
	if productionBranch == "" {
		return Preview
	}
	if gitBranch == productionBranch || deployBranch == productionBranch {
		return Production
	}
	return Preview
}

func (e Environment) IsProduction() bool {
	return e == Production
}

func (e Environment) String() string {
	switch e {
	case Production:
		return "Production"
	case Preview:
		return "Preview"
	}
	return fmt.Sprintf("Environment(%d)", int(e))
}

// Label is the environment name shown on the GitHub deployment.
func (e Environment) Label(projectName string) string {
	return fmt.Sprintf("%s (%s)", projectName, e)
}

// Outputs are published as step outputs for later workflow steps.
type Outputs struct {
	ID          string
	URL         string
	Environment string
	Alias       string
}

// AliasURL picks the branch preview URL for preview deployments and falls
// back to the canonical deployment URL.
func AliasURL(env Environment, url string, aliases []string) string {
	if !env.IsProduction() && len(aliases) > 0 {
		return aliases[0]
	}
	return url
}
