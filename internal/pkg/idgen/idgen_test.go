package idgen_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-deck/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID(idgen.PrefixSheet)

	first := gen.Generate()
	second := gen.Generate()

	assert.NotEqual(t, first, second)
	assert.Regexp(t, `^sheet_[0-9a-f-]{36}$`, first)

	parsed, ok := idgen.ParseUUID(idgen.PrefixSheet, first)
	require.True(t, ok)
	assert.NotEqual(t, uuid.Nil, parsed)
}

func TestUUIDGeneratorWithoutPrefix(t *testing.T) {
	id := idgen.NewUUID("").Generate()

	_, err := uuid.Parse(id)
	assert.NoError(t, err)

	_, ok := idgen.ParseUUID("", id)
	assert.True(t, ok)
}

func TestParseUUIDRejects(t *testing.T) {
	testCases := []struct {
		name   string
		prefix string
		id     string
	}{
		{name: "wrong prefix", prefix: idgen.PrefixSheet, id: "card_" + uuid.NewString()},
		{name: "missing separator", prefix: idgen.PrefixSheet, id: "sheet" + uuid.NewString()},
		{name: "not a uuid", prefix: idgen.PrefixSheet, id: "sheet_default"},
		{name: "empty", prefix: "", id: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := idgen.ParseUUID(tc.prefix, tc.id)
			assert.False(t, ok)
		})
	}
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential(idgen.PrefixCard)
	assert.Equal(t, "card_1", gen.Generate())
	assert.Equal(t, "card_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}
