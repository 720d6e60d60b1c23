package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("voice")
	assert.Equal(t, "voice_1", gen.Generate())
	assert.Equal(t, "voice_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("voice")
	a, b := gen.Generate(), gen.Generate()

	assert.True(t, strings.HasPrefix(a, "voice_"))
	assert.NotEqual(t, a, b)
	assert.Len(t, strings.TrimPrefix(a, "voice_"), 36)
}
