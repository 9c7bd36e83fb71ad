package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/adamlahbib/pagesdeploy/cmd/create"
	"github.com/adamlahbib/pagesdeploy/cmd/fetch"
	"github.com/adamlahbib/pagesdeploy/controllers"
	"github.com/adamlahbib/pagesdeploy/initializers"
	"github.com/adamlahbib/pagesdeploy/lib"
	"github.com/cloudflare/cloudflare-go"
	"github.com/rs/zerolog/log"
	"github.com/sethvargo/go-githubactions"
)

// extra client options, tests point the client at a local server
var cloudflareOptions []cloudflare.Option

func init() {
	// loads values from .env into the system for local runs
	if err := initializers.LoadEnv(); err != nil {
		log.Warn().Err(err).Msg("could not load .env")
	}
}

func main() {
	action := githubactions.New()
	initializers.InitLogger("pages-deploy", action.Getenv, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, action); err != nil {
		stop()
		action.Fatalf("%s", err)
	}
}

func run(ctx context.Context, action *githubactions.Action) error {
	in, err := initializers.LoadInputs(action)
	if err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}

	// inputs may come from a config file or .env, which the runner does not mask
	action.AddMask(in.APIToken)
	if in.HasGitHubToken() {
		action.AddMask(in.GitHubToken)
	}

	repo, err := initializers.LoadGitContext(action, in.WorkingDirectory)
	if err != nil {
		return err
	}

	api, err := fetch.NewCloudflareClient(in.APIToken, cloudflareOptions...)
	if err != nil {
		return err
	}

	svc := controllers.Services{
		Pages:    fetch.Pages{API: api},
		Deployer: lib.Wrangler{Command: in.WranglerCommand},
		Reporter: action,
	}

	if in.HasGitHubToken() {
		client, err := create.NewClient(ctx, in.GitHubToken, repo.APIURL)
		if err != nil {
			return err
		}
		svc.GitHub = create.Linker{Client: client}
	}

	_, err = controllers.Deploy(ctx, in, repo, svc)
	return err
}
