package replay

import (
	"context"
	"iter"

	"github.com/samueldeng/clist/journal"
)

// Handler applies a replayed operation sequence, identified by
// segment, to whatever target a caller wants rebuilt.
type Handler interface {
	Handle(ctx context.Context, segment string, ops iter.Seq[journal.OperationRecord]) error
}

// Func adapts a plain function to Handler.
type Func func(ctx context.Context, segment string, ops iter.Seq[journal.OperationRecord]) error

func (f Func) Handle(ctx context.Context, segment string, ops iter.Seq[journal.OperationRecord]) error {
	return f(ctx, segment, ops)
}
