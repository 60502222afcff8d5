package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalizeName(t *testing.T) {
	cases := map[string]string{
		"":         "",
		"london":   "London",
		"LONDON":   "London",
		"lONDON":   "London",
		"new york": "New york",
		"москва":   "Москва",
		"é":        "É",
	}
	for in, want := range cases {
		assert.Equal(t, want, CapitalizeName(in), "input %q", in)
	}
}
