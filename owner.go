package reactor

import "github.com/arclight-go/reactor/internal"

// Owner is an explicit lifecycle scope: every Effect and Derived is
// implicitly one, but a bare Owner is useful on its own for grouping
// cleanups or holding Context values outside of any effect.
type Owner struct {
	owner *internal.Owner
}

// NewOwner creates a new owner, nested under the current owner if this call
// happens inside another Owner.Run/Effect/Derived.
func NewOwner() *Owner {
	return &Owner{owner: internal.NewChildOwner()}
}

// Run executes fn with this owner as current for its duration.
func (o *Owner) Run(fn func()) {
	internal.RunInOwner(o.owner, fn)
}

// Dispose tears down this owner's children and runs its cleanups.
func (o *Owner) Dispose() { o.owner.Dispose() }

// OnCleanup registers a function to run whenever this owner is disposed.
func (o *Owner) OnCleanup(fn func()) { o.owner.OnCleanup(fn) }

// OnError registers a panic catcher for this owner's subtree; a panic
// inside Run propagates normally if no catcher is registered.
func (o *Owner) OnError(fn func(any)) { o.owner.OnError(fn) }
