package models

// StageStatus is the coarse state of a deployment's "deploy" stage.
type StageStatus int

const (
	StageInProgress StageStatus = iota
	StageSuccess
	StageFailure
)

// DeployStageName is the stage whose status drives the job summary.
const DeployStageName = "deploy"

func ParseStageStatus(raw string) StageStatus {
	switch raw {
	case "success":
		return StageSuccess
	case "failure":
		return StageFailure
	default:
		return StageInProgress
	}
}

func (s StageStatus) String() string {
	switch s {
	case StageSuccess:
		return "success"
	case StageFailure:
		return "failure"
	default:
		return "in progress"
	}
}
