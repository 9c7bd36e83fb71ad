package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMissingInput = errors.New("input required and not supplied")

// Inputs are the parameters of a single deploy run.
type Inputs struct {
	APIToken         string `toml:"apiToken"`
	AccountID        string `toml:"accountId"`
	ProjectName      string `toml:"projectName"`
	Directory        string `toml:"directory"`
	GitHubToken      string `toml:"gitHubToken"`
	Branch           string `toml:"branch"`
	WorkingDirectory string `toml:"workingDirectory"`
	WranglerCommand  string `toml:"wranglerCommand"`
}

// Validate returns the first required input that is empty.
func (in Inputs) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"apiToken", in.APIToken},
		{"accountId", in.AccountID},
		{"projectName", in.ProjectName},
		{"directory", in.Directory},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingInput, r.name)
		}
	}
	return nil
}

func (in Inputs) HasGitHubToken() bool {
	return strings.TrimSpace(in.GitHubToken) != ""
}
