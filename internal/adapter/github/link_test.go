package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasNextPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{
			name:   "empty header",
			header: "",
			want:   false,
		},
		{
			name:   "next and last relations",
			header: `<https://api.github.com/user/1/starred?page=2>; rel="next", <https://api.github.com/user/1/starred?page=4>; rel="last"`,
			want:   true,
		},
		{
			name:   "only prev and first relations",
			header: `<https://api.github.com/user/1/starred?page=3>; rel="prev", <https://api.github.com/user/1/starred?page=1>; rel="first"`,
			want:   false,
		},
		{
			name:   "malformed header",
			header: "not-a-link-header",
			want:   false,
		},
		{
			name:   "url without relation",
			header: "<https://api.github.com/user/1/starred?page=2>",
			want:   false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasNextPage(tt.header))
		})
	}
}
