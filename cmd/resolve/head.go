package resolve

import (
	git "github.com/go-git/go-git/v5"
)

// Head reads the checked-out branch and commit of the repository that
// contains dir. branch is empty on a detached HEAD.
func Head(dir string) (branch string, sha string, err error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", "", err
	}

	ref, err := repo.Head()
	if err != nil {
		return "", "", err
	}

	if ref.Name().IsBranch() {
		branch = ref.Name().Short()
	}

	return branch, ref.Hash().String(), nil
}
