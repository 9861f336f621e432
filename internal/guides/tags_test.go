package guides

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"medguides/internal/models"
)

func TestNormalizeTags(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want models.StringList
	}{
		{"plain", "a,b,c", models.StringList{"a", "b", "c"}},
		{"whitespace and empties", "a, b ,,  c", models.StringList{"a", "b", "c"}},
		{"single", "icu", models.StringList{"icu"}},
		{"empty input", "", nil},
		{"blank input", "   ", nil},
		{"only commas", ",,,", nil},
		{"inner spaces preserved", "intensive care, er", models.StringList{"intensive care", "er"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeTags(tc.in))
		})
	}
}

func TestNormalizeTagsBlankIsAbsentNotEmpty(t *testing.T) {
	// nil persists as SQL NULL; an empty slice would persist as [].
	assert.Nil(t, NormalizeTags("  "))
}
