package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Vegetables", "vegetables"},
		{"spaces", "Fresh Fruits", "fresh-fruits"},
		{"ampersand", "Oils & Ghee", "oils-and-ghee"},
		{"punctuation collapses", "Pickles, Jams & Murabba!", "pickles-jams-and-murabba"},
		{"leading and trailing trimmed", "  Spices  ", "spices"},
		{"digits kept", "Rice 5kg Pack", "rice-5kg-pack"},
		{"already a slug", "dry-fruits", "dry-fruits"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}
