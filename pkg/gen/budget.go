package gen

import (
	"context"
	"fmt"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// AttemptBudget bounds how many random positions a generator will sample while searching for one
// that passes the quality filter.
type AttemptBudget struct {
	Max int // 0 == unbounded
}

func (b AttemptBudget) String() string {
	if b.Max == 0 {
		return "[unbounded]"
	}
	return fmt.Sprintf("[max=%v]", b.Max)
}

// defaultMaxAttempts mirrors the distilled generator's give-up threshold.
const defaultMaxAttempts = 10000

// EnforceAttemptBudget resolves the effective attempt ceiling for a generation run: the
// caller-supplied budget if set, otherwise defaultMaxAttempts. A ceiling of zero in the resolved
// budget means unbounded and is logged at Warningf, since an unbounded random search has no
// termination guarantee.
func EnforceAttemptBudget(ctx context.Context, opt lang.Optional[AttemptBudget]) int {
	b, ok := opt.V()
	if !ok {
		b = AttemptBudget{Max: defaultMaxAttempts}
	}
	if b.Max == 0 {
		logw.Warningf(ctx, "attempt budget is unbounded; generation may run indefinitely")
	} else {
		logw.Debugf(ctx, "attempt budget for generation: %v", b)
	}
	return b.Max
}
