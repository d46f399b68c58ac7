package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Nosara", "nosara"},
		{"Nosara / Guiones", "nosara-guiones"},
		{"  Santa Teresa  ", "santa-teresa"},
		{"Ubud's Rice Terraces", "ubud-s-rice-terraces"},
		{"Praia da Comporta", "praia-da-comporta"},
		{"Bairro Alto!", "bairro-alto"},
		{"Manuel Antonio", "manuel-antonio"},
		{"Lagos — Algarve", "lagos-algarve"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestFoldStripsDiacritics(t *testing.T) {
	assert.Equal(t, "sao miguel", Fold("São Miguel"))
	assert.Equal(t, "puerto viejo", Fold(" Puerto Viejo "))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Santa Teresa", DisplayName("santa teresa"))
	assert.Equal(t, "Nosara", DisplayName("Nosara"))
	assert.Equal(t, "uluWatu", DisplayName("uluWatu"))
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"costa", "rica", "pacific", "coast"}, Words("Costa Rica (Pacific coast)"))
}

func TestContainsEither(t *testing.T) {
	assert.True(t, ContainsEither("Costa Rica", "costa rica pacific"))
	assert.True(t, ContainsEither("Bali, Indonesia", "bali"))
	assert.False(t, ContainsEither("Bali", "Lombok"))
	assert.False(t, ContainsEither("", "Lombok"))
}
