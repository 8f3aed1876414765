package github

import "github.com/stargazer-dev/stargazer/internal/app"

// starredRepository is one item of the starred listing response.
// Nullable api fields are pointers.
type starredRepository struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	HTMLURL     string  `json:"html_url"`
	Language    *string `json:"language"`
}

type starredResponse []starredRepository

// ToStarredRepos maps api response to entities.
func (r starredResponse) ToStarredRepos() []app.StarredRepo {
	repos := make([]app.StarredRepo, 0, len(r))
	for _, item := range r {
		repo := app.StarredRepo{
			ID:   item.ID,
			Name: item.Name,
			URL:  item.HTMLURL,
		}
		if item.Description != nil {
			repo.Description = *item.Description
		}
		if item.Language != nil {
			repo.Language = *item.Language
		}
		repos = append(repos, repo)
	}

	return repos
}

// contentsResponse is the subset of the repository contents response used
// for readme updates.
type contentsResponse struct {
	SHA string `json:"sha"`
}
