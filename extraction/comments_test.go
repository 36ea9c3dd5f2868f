package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripComments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "single comment",
			in:   "<p>a</p><!-- gone --><p>b</p>",
			want: "<p>a</p><p>b</p>",
		},
		{
			name: "comment spanning newlines",
			in:   "<p>a</p><!--\ntracking\npayload\n--><p>b</p>",
			want: "<p>a</p><p>b</p>",
		},
		{
			name: "adjacent comments removed individually",
			in:   "<!-- one --><!-- two --><p>kept</p>",
			want: "<p>kept</p>",
		},
		{
			name: "no comments",
			in:   "<p>untouched</p>",
			want: "<p>untouched</p>",
		},
		{
			name: "markup between comments survives",
			in:   "<!-- a --><p>mid</p><!-- b -->",
			want: "<p>mid</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripComments(tt.in))
		})
	}
}
