package initializers

import (
	"fmt"
	"strings"

	"github.com/adamlahbib/pagesdeploy/cmd/resolve"
	"github.com/adamlahbib/pagesdeploy/models"
	"github.com/rs/zerolog/log"
	"github.com/sethvargo/go-githubactions"
)

// LoadGitContext reads the repository and branch from the workflow
// environment. Outside of a workflow the branch comes from the local
// repository in workingDirectory.
func LoadGitContext(action *githubactions.Action, workingDirectory string) (models.GitContext, error) {
	gh, err := action.Context()
	if err != nil {
		return models.GitContext{}, fmt.Errorf("failed to read GitHub context: %w", err)
	}

	repo := models.GitContext{
		APIURL: gh.APIURL,
		SHA:    gh.SHA,
		Branch: firstNonEmpty(gh.HeadRef, gh.RefName),
	}
	repo.Owner, repo.Repo, _ = strings.Cut(gh.Repository, "/")

	if repo.Branch == "" {
		dir := workingDirectory
		if dir == "" {
			dir = "."
		}
		branch, sha, err := resolve.Head(dir)
		if err != nil {
			log.Debug().Err(err).Str("dir", dir).Msg("no branch in environment or local repository")
		} else {
			repo.Branch = branch
			repo.SHA = firstNonEmpty(repo.SHA, sha)
		}
	}

	repo.Ref = firstNonEmpty(repo.Branch, gh.Ref, repo.SHA)

	return repo, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
