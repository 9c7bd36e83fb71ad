package models

// GitContext identifies the repository and ref a deployment belongs to.
type GitContext struct {
	Owner  string
	Repo   string
	Branch string
	Ref    string
	SHA    string
	APIURL string
}
