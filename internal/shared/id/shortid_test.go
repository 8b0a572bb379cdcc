package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name       string
		length     int
		wantLength int
	}{
		{name: "default length on zero", length: 0, wantLength: DefaultLength},
		{name: "default length on negative", length: -3, wantLength: DefaultLength},
		{name: "explicit length", length: 4, wantLength: 4},
		{name: "long id", length: 32, wantLength: 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.length)
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLength)
			for _, c := range got {
				assert.True(t, strings.ContainsRune(alphabet, c), "unexpected character %q", c)
			}
		})
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := MustGenerate(SuffixLength)
		seen[id] = true
	}
	// 62^4 possibilities; a handful of collisions in 1000 draws is possible
	// but near-total collapse means the generator is broken.
	assert.Greater(t, len(seen), 950)
}
