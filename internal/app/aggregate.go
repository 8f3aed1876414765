package app

import "strings"

// OtherLanguage is the grouping key for repositories without a primary
// language.
const OtherLanguage = "Others"

// Grouping buckets starred repositories by primary language. Languages
// keep the order in which they were first seen, summaries keep fetch
// order within each language.
type Grouping struct {
	languages []string
	entries   map[string][]RepoSummary
}

// GroupByLanguage builds a grouping from fetched repositories.
func GroupByLanguage(repos []StarredRepo) *Grouping {
	g := Grouping{
		entries: make(map[string][]RepoSummary),
	}

	for _, r := range repos {
		language := r.Language
		if language == "" {
			language = OtherLanguage
		}

		if _, ok := g.entries[language]; !ok {
			g.languages = append(g.languages, language)
		}
		g.entries[language] = append(g.entries[language], RepoSummary{
			Name:        r.Name,
			URL:         r.URL,
			Description: CleanDescription(r.Description),
		})
	}

	return &g
}

// Languages returns language keys in first-seen order.
func (g *Grouping) Languages() []string {
	return g.languages
}

// ByLanguage returns summaries grouped under given language.
func (g *Grouping) ByLanguage(language string) []RepoSummary {
	return g.entries[language]
}

// Stargazed returns the full language to summaries mapping.
func (g *Grouping) Stargazed() map[string][]RepoSummary {
	return g.entries
}

// Len returns the total number of summaries across all languages.
func (g *Grouping) Len() int {
	var n int
	for _, summaries := range g.entries {
		n += len(summaries)
	}

	return n
}

// ReadmeData binds the grouping and the username into template input.
func (g *Grouping) ReadmeData(username string) ReadmeData {
	return ReadmeData{
		Username:  username,
		Languages: g.Languages(),
		Stargazed: g.Stargazed(),
	}
}

// EscapeMarkup replaces every angle bracket with its html entity, so that
// free-text descriptions cannot break the readme markup.
func EscapeMarkup(text string) string {
	text = strings.ReplaceAll(text, "<", "&lt;")

	return strings.ReplaceAll(text, ">", "&gt;")
}

// CleanDescription normalizes a repository description for embedding in a
// single markdown line: markup is escaped, every literal newline is
// removed and surrounding whitespace is trimmed.
func CleanDescription(text string) string {
	text = EscapeMarkup(text)
	text = strings.ReplaceAll(text, "\n", "")

	return strings.TrimSpace(text)
}
