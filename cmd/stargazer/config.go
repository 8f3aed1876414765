package main

import "time"

// Config is the container for ambient app configuration, read from the
// environment. Per-run input (username, token, target repo) comes from
// the command line instead.
type Config struct {
	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIToken - auth token used when none is given on the command line
	GithubAPIToken string `default:""`

	// GithubAPIRateLimit - max frequency for github rest api calls per second
	GithubAPIRateLimit float64 `default:"5"`

	// GithubTimeout - timeout for single github api calls
	GithubTimeout time.Duration `default:"15s"`

	// CachePath - filepath for the bolt-backed starred list cache. Empty disables caching
	CachePath string `default:""`

	// CacheBucketName - bolt db bucket name
	CacheBucketName string `default:"stargazer"`

	// CacheTTL - maximum lifetime for cached starred lists
	CacheTTL time.Duration `default:"30m"`

	// TemplatePath - path to a custom readme template. Empty uses the bundled template
	TemplatePath string `default:""`

	// OutputPath - filepath for the generated readme
	OutputPath string `default:"README.md"`

	// Debug - enables debug logging
	Debug bool `default:"false"`
}
