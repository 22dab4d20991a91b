package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Acme Inc":            "acme-inc",
		"  Go  Developer  ":   "go-developer",
		"C++ / Rust Engineer": "c-rust-engineer",
		"---":                 "",
		"Ünïcode Nämé":        "ünïcode-nämé",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestJobSlugIsUniquePerCall(t *testing.T) {
	a := JobSlug("Backend Engineer")
	b := JobSlug("Backend Engineer")

	assert.True(t, strings.HasPrefix(a, "backend-engineer-"))
	assert.NotEqual(t, a, b)
}

func TestJobSlugHandlesEmptyTitle(t *testing.T) {
	assert.NotEmpty(t, JobSlug("!!!"))
}
