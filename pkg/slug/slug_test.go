// Copyright (c) 2026 Vatra. All rights reserved.
// Author: d.cebotari.dev@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dcebotari/vatra/pkg/slug"
)

/*
TestFrom verifies slug derivation for the category names that actually occur
on the menus: Romanian diacritics, mixed punctuation, and plain ASCII.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"romanian_diacritics", "Ciorbe și supe", "ciorbe-si-supe"},
		{"comma_variant_diacritics", "Bucate țărănești", "bucate-taranesti"},
		{"plain_ascii", "Sushi Rolls", "sushi-rolls"},
		{"punctuation_runs", "Vinuri & băuturi  (casă)", "vinuri-bauturi-casa"},
		{"leading_trailing_junk", "--Desert!--", "desert"},
		{"digits_kept", "Meniu 2026", "meniu-2026"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

/*
TestFrom_Idempotent verifies that slugging a slug changes nothing, so stored
folder names can be re-derived safely.
*/
func TestFrom_Idempotent(t *testing.T) {
	inputs := []string{"Ciorbe și supe", "Fel principal", "Băuturi reci"}

	for _, input := range inputs {
		once := slug.From(input)
		assert.Equal(t, once, slug.From(once))
	}
}
