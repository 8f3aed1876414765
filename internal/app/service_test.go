package app_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/stargazer-dev/stargazer/internal/app"
	"github.com/stargazer-dev/stargazer/internal/app/mock"
)

func TestServiceRun(t *testing.T) {
	t.Parallel()

	repos := []app.StarredRepo{
		{ID: 1, Name: "go", URL: "https://github.com/golang/go", Language: "Go"},
		{ID: 2, Name: "dotfiles", URL: "https://github.com/someone/dotfiles"},
	}
	readmeData := app.ReadmeData{
		Username:  "octocat",
		Languages: []string{"Go", app.OtherLanguage},
		Stargazed: map[string][]app.RepoSummary{
			"Go": {
				{Name: "go", URL: "https://github.com/golang/go"},
			},
			app.OtherLanguage: {
				{Name: "dotfiles", URL: "https://github.com/someone/dotfiles"},
			},
		},
	}
	content := []byte("# rendered readme")

	tests := []struct {
		name       string
		opts       app.Options
		setupMocks func(*mock.MockGithubClient, *mock.MockRenderer, *mock.MockReadmeStore)
		wantErr    bool
	}{
		{
			name: "missing username fails before any client call",
			opts: app.Options{},
			setupMocks: func(g *mock.MockGithubClient, r *mock.MockRenderer, s *mock.MockReadmeStore) {
			},
			wantErr: true,
		},
		{
			name: "repo without token fails before any client call",
			opts: app.Options{
				Username: "octocat",
				Repo:     "awesome-stars",
			},
			setupMocks: func(g *mock.MockGithubClient, r *mock.MockRenderer, s *mock.MockReadmeStore) {
			},
			wantErr: true,
		},
		{
			name: "fetch error aborts pipeline",
			opts: app.Options{
				Username: "octocat",
			},
			setupMocks: func(g *mock.MockGithubClient, r *mock.MockRenderer, s *mock.MockReadmeStore) {
				g.EXPECT().
					StarredByUser(gomock.Any(), "octocat").
					Return(nil, errors.New("api error"))
			},
			wantErr: true,
		},
		{
			name: "render error aborts pipeline",
			opts: app.Options{
				Username: "octocat",
			},
			setupMocks: func(g *mock.MockGithubClient, r *mock.MockRenderer, s *mock.MockReadmeStore) {
				g.EXPECT().
					StarredByUser(gomock.Any(), "octocat").
					Return(repos, nil)
				r.EXPECT().
					Render(readmeData).
					Return(nil, errors.New("template error"))
			},
			wantErr: true,
		},
		{
			name: "write error aborts pipeline",
			opts: app.Options{
				Username: "octocat",
			},
			setupMocks: func(g *mock.MockGithubClient, r *mock.MockRenderer, s *mock.MockReadmeStore) {
				g.EXPECT().
					StarredByUser(gomock.Any(), "octocat").
					Return(repos, nil)
				r.EXPECT().
					Render(readmeData).
					Return(content, nil)
				s.EXPECT().
					Write(content).
					Return(errors.New("disk full"))
			},
			wantErr: true,
		},
		{
			name: "username only, no token, no push",
			opts: app.Options{
				Username: "octocat",
			},
			setupMocks: func(g *mock.MockGithubClient, r *mock.MockRenderer, s *mock.MockReadmeStore) {
				g.EXPECT().
					StarredByUser(gomock.Any(), "octocat").
					Return(repos, nil)
				r.EXPECT().
					Render(readmeData).
					Return(content, nil)
				s.EXPECT().
					Write(content).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "zero starred repositories still renders and writes",
			opts: app.Options{
				Username: "octocat",
			},
			setupMocks: func(g *mock.MockGithubClient, r *mock.MockRenderer, s *mock.MockReadmeStore) {
				g.EXPECT().
					StarredByUser(gomock.Any(), "octocat").
					Return(nil, nil)
				r.EXPECT().
					Render(app.ReadmeData{
						Username:  "octocat",
						Stargazed: map[string][]app.RepoSummary{},
					}).
					Return(content, nil)
				s.EXPECT().
					Write(content).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repo set, readme is pushed after writing",
			opts: app.Options{
				Username: "octocat",
				Token:    "secret",
				Repo:     "awesome-stars",
				Message:  "Update stars",
			},
			setupMocks: func(g *mock.MockGithubClient, r *mock.MockRenderer, s *mock.MockReadmeStore) {
				g.EXPECT().
					StarredByUser(gomock.Any(), "octocat").
					Return(repos, nil)
				r.EXPECT().
					Render(readmeData).
					Return(content, nil)
				s.EXPECT().
					Write(content).
					Return(nil)
				g.EXPECT().
					UpdateReadme(gomock.Any(), "octocat", "awesome-stars", "Update stars", content).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "push error aborts run",
			opts: app.Options{
				Username: "octocat",
				Token:    "secret",
				Repo:     "awesome-stars",
				Message:  "Update stars",
			},
			setupMocks: func(g *mock.MockGithubClient, r *mock.MockRenderer, s *mock.MockReadmeStore) {
				g.EXPECT().
					StarredByUser(gomock.Any(), "octocat").
					Return(repos, nil)
				r.EXPECT().
					Render(readmeData).
					Return(content, nil)
				s.EXPECT().
					Write(content).
					Return(nil)
				g.EXPECT().
					UpdateReadme(gomock.Any(), "octocat", "awesome-stars", "Update stars", content).
					Return(errors.New("permission denied"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			githubClient := mock.NewMockGithubClient(ctrl)
			renderer := mock.NewMockRenderer(ctrl)
			store := mock.NewMockReadmeStore(ctrl)
			tt.setupMocks(githubClient, renderer, store)

			l := logrus.New()
			l.SetOutput(io.Discard)

			service := app.NewService(githubClient, renderer, store, l)
			err := service.Run(context.Background(), tt.opts)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
