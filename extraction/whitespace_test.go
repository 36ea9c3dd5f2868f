package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses runs of three or more newlines",
			in:   "a\n\n\n\nb",
			want: "a\n\nb",
		},
		{
			name: "single blank line preserved",
			in:   "a\n\nb",
			want: "a\n\nb",
		},
		{
			name: "strips trailing whitespace per line",
			in:   "a  \nb\t\nc",
			want: "a\nb\nc",
		},
		{
			name: "trims leading and trailing whitespace",
			in:   "\n\n  text  \n\n",
			want: "text",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeWhitespace(tt.in))
		})
	}
}

func TestNormalizeWhitespaceIdempotent(t *testing.T) {
	in := "Чек № 5  \n\n\n\nИтого: 99.00\n \n\nКонец   "
	once := NormalizeWhitespace(in)
	assert.Equal(t, once, NormalizeWhitespace(once))
}
