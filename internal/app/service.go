package app

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GithubClient gives access to a user's starred repositories and to
// repository contents.
//go:generate mockgen -destination mock/app.go -package mock github.com/stargazer-dev/stargazer/internal/app GithubClient,Renderer,ReadmeStore
type GithubClient interface {
	StarredByUser(ctx context.Context, username string) ([]StarredRepo, error)
	UpdateReadme(ctx context.Context, owner string, repo string, message string, content []byte) error
}

// Renderer produces document text from readme data.
type Renderer interface {
	Render(data ReadmeData) ([]byte, error)
}

// ReadmeStore persists the rendered document.
type ReadmeStore interface {
	Write(content []byte) error
}

// Service is main apps entry point. Runs the whole readme pipeline.
type Service struct {
	github   GithubClient
	renderer Renderer
	store    ReadmeStore
	l        logrus.FieldLogger
}

// NewService creates new Service instance.
func NewService(github GithubClient, renderer Renderer, store ReadmeStore, l logrus.FieldLogger) *Service {
	return &Service{
		github:   github,
		renderer: renderer,
		store:    store,
		l:        l,
	}
}

// Run executes the pipeline for given options: validate, fetch all
// starred repositories, group them by language, render the readme and
// write it. When opts.Repo is set the readme is also pushed to that
// repository. The first failing stage aborts the run.
func (s *Service) Run(ctx context.Context, opts Options) error {
	if err := opts.Validate(); err != nil {
		return errors.Wrap(err, "validating options")
	}
	if opts.Sort {
		s.l.Warn("sort option is not implemented yet, keeping language discovery order")
	}

	repos, err := s.github.StarredByUser(ctx, opts.Username)
	if err != nil {
		return errors.Wrap(err, "retrieving starred repositories")
	}
	s.l.Infof("fetched %d starred repositories for %s", len(repos), opts.Username)

	grouping := GroupByLanguage(repos)

	content, err := s.renderer.Render(grouping.ReadmeData(opts.Username))
	if err != nil {
		return errors.Wrap(err, "rendering readme")
	}

	if err := s.store.Write(content); err != nil {
		return errors.Wrap(err, "writing readme")
	}

	if opts.Repo != "" {
		if err := s.github.UpdateReadme(ctx, opts.Username, opts.Repo, opts.Message, content); err != nil {
			return errors.Wrap(err, "pushing readme to repository")
		}
		s.l.Infof("pushed readme to %s/%s", opts.Username, opts.Repo)
	}

	return nil
}
