package initializers

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/adamlahbib/pagesdeploy/lib"
	"github.com/adamlahbib/pagesdeploy/models"
	"github.com/sethvargo/go-githubactions"
)

// EnvConfigFile names an optional TOML file with default inputs for local
// runs. Action inputs override it.
const EnvConfigFile = "PAGES_DEPLOY_CONFIG"

func LoadInputs(action *githubactions.Action) (models.Inputs, error) {
	in := models.Inputs{WranglerCommand: lib.DefaultWranglerCommand}

	if path := action.Getenv(EnvConfigFile); path != "" {
		if _, err := toml.DecodeFile(path, &in); err != nil {
			return models.Inputs{}, fmt.Errorf("config load failed (%s): %w", path, err)
		}
	}

	fields := []struct {
		name string
		dst  *string
	}{
		{"apiToken", &in.APIToken},
		{"accountId", &in.AccountID},
		{"projectName", &in.ProjectName},
		{"directory", &in.Directory},
		{"gitHubToken", &in.GitHubToken},
		{"branch", &in.Branch},
		{"workingDirectory", &in.WorkingDirectory},
		{"wranglerCommand", &in.WranglerCommand},
	}
	for _, f := range fields {
		if v := action.GetInput(f.name); v != "" {
			*f.dst = v
		}
	}

	return in, nil
}
