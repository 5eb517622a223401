package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomWord(t *testing.T) {
	words := Words()
	require.NotEmpty(t, words)

	for i := 0; i < 100; i++ {
		w := RandomWord()
		assert.NotEmpty(t, w)
		assert.Contains(t, words, w)
	}
}

func TestNewSessionCode(t *testing.T) {
	code := NewSessionCode(5)
	require.Len(t, code, 5)
	for _, c := range code {
		assert.Contains(t, CodeAlphabet, string(c))
	}

	// Confusable characters stay out of the alphabet.
	for _, bad := range []string{"0", "O", "1", "I", "L"} {
		assert.NotContains(t, CodeAlphabet, bad)
	}
}

func TestNewPlayerID(t *testing.T) {
	a := NewPlayerID()
	b := NewPlayerID()

	assert.True(t, strings.HasPrefix(a, "player_"))
	assert.NotEqual(t, a, b)
}

func TestFunnyName(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.NotEmpty(t, FunnyName())
	}
}
