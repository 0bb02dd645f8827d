package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phnks/webfg-app-sub004/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("attempt")

	first := gen.Generate()
	second := gen.Generate()
	assert.NotEqual(t, first, second)

	require.True(t, strings.HasPrefix(first, "attempt_"))
	_, err := uuid.Parse(strings.TrimPrefix(first, "attempt_"))
	assert.NoError(t, err)

	bare := idgen.NewUUID("").Generate()
	_, err = uuid.Parse(bare)
	assert.NoError(t, err)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("test")
	assert.Equal(t, "test_1", gen.Generate())
	assert.Equal(t, "test_2", gen.Generate())

	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
