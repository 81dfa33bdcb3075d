package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Plateau", "plateau"},
		{"MONTREAL", "montreal"},
		{"Caf\u00e9", "cafe\u0301"}, // NFKD splits the accent into a combining mark
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in))
	}
}

func TestContainsNormalized(t *testing.T) {
	assert.True(t, ContainsNormalized("Anticafé Montréal", "cafe"))
	assert.True(t, ContainsNormalized("360 Rue Saint-Jacques, Montreal", "montreal"))
	assert.False(t, ContainsNormalized("Mile End", "plateau"))

	// Empty needle is vacuously true: an absent query filters nothing.
	assert.True(t, ContainsNormalized("anything", ""))
	assert.True(t, ContainsNormalized("", ""))
	assert.False(t, ContainsNormalized("", "x"))
}
