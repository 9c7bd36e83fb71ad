package lib

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

const DefaultWranglerCommand = "wrangler"

// DeployRequest is everything the deploy command needs. Credentials are
// passed to the child process only, never set on this process.
type DeployRequest struct {
	Directory        string
	ProjectName      string
	Branch           string
	WorkingDirectory string
	APIToken         string
	AccountID        string
}

func (r DeployRequest) Args() []string {
	args := []string{"pages", "deploy", r.Directory, "--project-name=" + r.ProjectName}
	if r.Branch != "" {
		args = append(args, "--branch="+r.Branch)
	}
	return args
}

func (r DeployRequest) Env() []string {
	env := []string{"CLOUDFLARE_API_TOKEN=" + r.APIToken}
	if r.AccountID != "" {
		env = append(env, "CLOUDFLARE_ACCOUNT_ID="+r.AccountID)
	}
	return env
}

// Dir resolves the working directory against the current one.
func (r DeployRequest) Dir() (string, error) {
	if filepath.IsAbs(r.WorkingDirectory) {
		return r.WorkingDirectory, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, r.WorkingDirectory), nil
}

// Deployer uploads a build directory. It reports only success or failure;
// the resulting deployment has to be looked up afterwards.
type Deployer interface {
	Deploy(ctx context.Context, req DeployRequest) error
}

type ExitError struct {
	Command string
	Code    int
	Err     error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Command, e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Wrangler runs the wrangler CLI. Command may carry a prefix such as
// "npx wrangler".
type Wrangler struct {
	Command string
	Stdout  io.Writer
	Stderr  io.Writer
}

func (w Wrangler) Deploy(ctx context.Context, req DeployRequest) error {
	fields := strings.Fields(w.Command)
	if len(fields) == 0 {
		fields = []string{DefaultWranglerCommand}
	}
	name := fields[0]
	args := append(fields[1:], req.Args()...)

	dir, err := req.Dir()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), req.Env()...)
	cmd.Stdout = w.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = w.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	log.Info().Str("dir", dir).Str("command", name).Strs("args", args).Msg("running deploy command")

	err = cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Command: name, Code: exitErr.ExitCode(), Err: err}
	}

	code := 1
	var execErr *exec.Error
	if errors.As(err, &execErr) || errors.Is(err, fs.ErrNotExist) {
		code = 127
	}
	return &ExitError{Command: name, Code: code, Err: err}
}
