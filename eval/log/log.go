package log

import (
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"

	"github.com/on-the-ground/evaluat_ive_go/eval"
)

// Instrument wraps ev so that every forcing emits a debug entry on logger,
// tagged with name, a per-wrapper correlation id, and the wall-clock span the
// forcing took.
//
// Wrapping is lazy and non-forcing: nothing is logged, and ev is untouched,
// until Value is called on the result. The wrapper preserves the wrapped
// strategy's semantics — a memoized ev still runs its thunk once, an Always
// ev still reruns per forcing — while the wrapper itself logs once per
// forcing.
func Instrument[A any](logger *zap.Logger, name string, ev eval.Eval[A]) eval.Eval[A] {
	id := uuid.New().String()
	return eval.Defer(func() eval.Eval[A] {
		begin := time.Now()
		return eval.Map(ev, func(a A) A {
			span := timespan.BetweenTimes(begin, time.Now())
			logger.Debug("eval forced",
				zap.String("eval_id", id),
				zap.String("name", name),
				zap.Duration("took", span.Duration()),
			)
			return a
		})
	})
}
