package main

import (
	"context"
	"fmt"
	netHttp "net/http"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/stargazer-dev/stargazer/internal/adapter/github"
	"github.com/stargazer-dev/stargazer/internal/app"
	"github.com/stargazer-dev/stargazer/internal/cli"
	"github.com/stargazer-dev/stargazer/internal/database"
	"github.com/stargazer-dev/stargazer/internal/limiter"
	"github.com/stargazer-dev/stargazer/internal/readme"
	"github.com/stargazer-dev/stargazer/internal/render"
)

// version is overridden at build time via ldflags.
var version = "dev"

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	opts, shouldExit, err := cli.Parse(os.Args[1:], os.Stderr, version)
	if err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		l.Fatalf("couldn't parse arguments: %v", err)
	}
	if shouldExit {
		return
	}

	var conf Config
	if err := envconfig.Process("stargazer", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}
	if conf.Debug {
		l.Level = logrus.DebugLevel
	}
	if opts.Token == "" {
		opts.Token = conf.GithubAPIToken
	}

	httpClient := &netHttp.Client{
		Timeout: 30 * time.Second,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
	)

	githubClient := github.NewClient(
		limitedHTTPClient,
		conf.GithubAPIAddress,
		opts.Token,
		conf.GithubTimeout,
		l.WithField("component", "githubClient"),
	)

	var client app.GithubClient = githubClient
	if conf.CachePath != "" {
		kvStore, err := database.NewBoltKVStore(conf.CachePath, conf.CacheBucketName)
		if err != nil {
			l.Fatalf("couldn't create bolt kv store: %v", err)
		}
		defer kvStore.Close()

		cachedClient, err := github.NewCachedClient(
			githubClient,
			kvStore,
			conf.CacheTTL,
			l.WithField("component", "githubCachedClient"),
		)
		if err != nil {
			l.Fatalf("couldn't create github client cache: %v", err)
		}
		client = cachedClient
	}

	renderer, err := render.NewTemplateRenderer(conf.TemplatePath)
	if err != nil {
		l.Fatalf("couldn't create renderer: %v", err)
	}

	writer := readme.NewWriter(
		conf.OutputPath,
		l.WithField("component", "readmeWriter"),
	)

	service := app.NewService(
		client,
		renderer,
		writer,
		l.WithField("component", "service"),
	)

	if err := service.Run(context.Background(), opts); err != nil {
		l.Fatalf("generating readme: %v", err)
	}
}
