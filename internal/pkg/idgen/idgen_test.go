package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Arx-Game/arxii-sub002/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("draft")

	first := gen.Generate()
	second := gen.Generate()

	assert.True(t, strings.HasPrefix(first, "draft_"))
	assert.NotEqual(t, first, second)
}

func TestUUIDGeneratorNoPrefix(t *testing.T) {
	gen := idgen.NewUUID("")
	assert.NotContains(t, gen.Generate(), "_")
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("app")

	assert.Equal(t, "app_1", gen.Generate())
	assert.Equal(t, "app_2", gen.Generate())
	assert.Equal(t, "app_3", gen.Generate())
}
