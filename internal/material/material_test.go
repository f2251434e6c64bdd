package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByMark(t *testing.T) {
	table := Table{
		{Name: "deposit", Mark: -2},
		{Name: "substrate", Mark: -1},
	}
	el, ok := table.ByMark(-1)
	require.True(t, ok)
	assert.Equal(t, "substrate", el.Name)

	_, ok = table.ByMark(0)
	assert.False(t, ok)
}

func TestDepositAndSubstrateFallback(t *testing.T) {
	single := Table{{Name: "only", Mark: -2}}
	assert.Equal(t, "only", single.Deposit().Name)
	assert.Equal(t, "only", single.Substrate().Name)

	pair := Table{{Name: "deposit", Mark: -2}, {Name: "substrate", Mark: -1}}
	assert.Equal(t, "substrate", pair.Substrate().Name)
}

func TestValidateRejectsEmptyAndDuplicateMarks(t *testing.T) {
	assert.Error(t, Table{}.Validate())
	assert.Error(t, Table{{Mark: -2}, {Mark: -2}}.Validate())
	assert.NoError(t, Table{{Mark: -2}, {Mark: -1}}.Validate())
}
