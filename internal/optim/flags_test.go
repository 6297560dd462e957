package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllAndNone(t *testing.T) {
	all := All()
	assert.True(t, all.Concatenations())
	assert.True(t, all.Groups())
	assert.True(t, all.Unions())

	none := None()
	assert.False(t, none.Concatenations())
	assert.False(t, none.Groups())
	assert.False(t, none.Unions())
}

func TestWithIsIndependentPerKind(t *testing.T) {
	f := All().With(Groups, false)

	assert.True(t, f.Concatenations())
	assert.False(t, f.Groups())
	assert.True(t, f.Unions())
}

func TestEnabledMatchesAccessor(t *testing.T) {
	f := None().With(Unions, true)

	assert.False(t, f.Enabled(Concatenations))
	assert.False(t, f.Enabled(Groups))
	assert.True(t, f.Enabled(Unions))

	assert.Equal(t, f.Concatenations(), f.Enabled(Concatenations))
	assert.Equal(t, f.Groups(), f.Enabled(Groups))
	assert.Equal(t, f.Unions(), f.Enabled(Unions))
}

func TestWithReturnsCopy(t *testing.T) {
	base := None()
	modified := base.With(Concatenations, true)

	assert.False(t, base.Concatenations())
	assert.True(t, modified.Concatenations())
}
