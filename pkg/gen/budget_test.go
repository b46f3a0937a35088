package gen_test

import (
	"context"
	"testing"

	"github.com/herohde/shogimate1/pkg/gen"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
)

func TestEnforceAttemptBudgetDefaultsWhenUnset(t *testing.T) {
	max := gen.EnforceAttemptBudget(context.Background(), lang.Optional[gen.AttemptBudget]{})
	assert.Equal(t, 10000, max)
}

func TestEnforceAttemptBudgetHonorsCaller(t *testing.T) {
	max := gen.EnforceAttemptBudget(context.Background(), lang.Some(gen.AttemptBudget{Max: 42}))
	assert.Equal(t, 42, max)
}

func TestEnforceAttemptBudgetUnboundedIsZero(t *testing.T) {
	max := gen.EnforceAttemptBudget(context.Background(), lang.Some(gen.AttemptBudget{Max: 0}))
	assert.Equal(t, 0, max)
}

func TestAttemptBudgetString(t *testing.T) {
	assert.Equal(t, "[unbounded]", gen.AttemptBudget{}.String())
	assert.Equal(t, "[max=42]", gen.AttemptBudget{Max: 42}.String())
}
