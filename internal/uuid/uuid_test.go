package uuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleUUIDGenerator_New(t *testing.T) {
	gen := NewGoogleUUIDGenerator()

	first := gen.New()
	second := gen.New()

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestSequentialGenerator_New(t *testing.T) {
	gen := NewSequentialGenerator("actor")

	assert.Equal(t, "actor-1", gen.New())
	assert.Equal(t, "actor-2", gen.New())
}
