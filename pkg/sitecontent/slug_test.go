package sitecontent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/icodeu/site-content/pkg/sitecontent"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple word", input: "Blog", expected: "blog"},
		{name: "spaces become hyphens", input: "Summer Trip 2024", expected: "summer-trip-2024"},
		{name: "underscores become hyphens", input: "my_album", expected: "my-album"},
		{name: "special characters stripped", input: "Café & Bar!", expected: "caf-bar"},
		{name: "whitespace runs collapse", input: "  a   b  ", expected: "a-b"},
		{name: "trailing hyphens trimmed", input: "name--", expected: "name"},
		{name: "empty input", input: "", expected: ""},
		{name: "only specials", input: "!!!", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sitecontent.Slugify(tt.input))
		})
	}
}
