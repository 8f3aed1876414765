package app

// StarredRepo entity. One repository starred by the user.
type StarredRepo struct {
	ID          int
	Name        string
	Description string
	URL         string
	Language    string
}

// RepoSummary is the readme view of a starred repository: name, link and
// a description cleaned for embedding in a single markdown line.
type RepoSummary struct {
	Name        string
	URL         string
	Description string
}

// ReadmeData is the variable set bound into the readme template.
type ReadmeData struct {
	Username  string
	Languages []string
	Stargazed map[string][]RepoSummary
}
