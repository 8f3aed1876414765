package github

import "strings"

// hasNextPage reports whether a Link response header (RFC 5988) contains
// a rel="next" relation. Missing or malformed headers mean "last page".
func hasNextPage(linkHeader string) bool {
	for _, link := range strings.Split(linkHeader, ",") {
		sections := strings.Split(link, ";")
		if len(sections) < 2 {
			continue
		}
		for _, param := range sections[1:] {
			if strings.TrimSpace(param) == `rel="next"` {
				return true
			}
		}
	}

	return false
}
