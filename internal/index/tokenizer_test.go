package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "hyphenated word splits",
			input: "file-upload",
			want:  []string{"file", "upload"},
		},
		{
			name:  "short token dropped",
			input: "id",
			want:  []string{},
		},
		{
			name:  "three letter token kept",
			input: "api",
			want:  []string{"api"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
		{
			name:  "whitespace only",
			input: "  \t\n  ",
			want:  []string{},
		},
		{
			name:  "mixed case lowered",
			input: "List ALL Files",
			want:  []string{"list", "all", "files"},
		},
		{
			name:  "punctuation becomes separator",
			input: "nodes/{node_id}/files",
			want:  []string{"nodes", "node", "files"},
		},
		{
			name:  "digits kept",
			input: "osf v2 api2",
			want:  []string{"osf", "api2"},
		},
		{
			name:  "short words filtered from sentence",
			input: "a is to",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			assert.ElementsMatch(t, tt.want, got)
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	first := Tokenize("Upload a new file-version to OSF storage")
	second := Tokenize("Upload a new file-version to OSF storage")
	assert.Equal(t, first, second)
}
