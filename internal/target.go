package internal

// TargetKind distinguishes the three observable shapes the tracking graph
// has to special-case when computing Trigger's notification set.
type TargetKind int

const (
	KindMap TargetKind = iota
	KindSeq
	KindRef
)

// Target is implemented by every pointer that can anchor dep sets in the
// graph: *MapTarget, *SeqTarget, and *Ref (which backs both Cell and
// Derived). It is always a pointer, so two Targets are the same target iff
// they are the same pointer - exactly the identity the graph keys on.
type Target interface {
	Kind() TargetKind
}

// MapTarget is the raw backing store for a keyed-map observable plus its
// cached wrapper views: at most one mutable and one read-only view per
// shallow/deep combination, so repeated wrap calls on the same data return
// the same wrapper. The cached views are stored as `any` rather than a
// concrete wrapper type to avoid an import cycle between this package and
// the public reactor package that defines Map; reactor type-asserts them
// back on use.
type MapTarget struct {
	Data map[any]any
	Skip bool

	Reactive        any
	Readonly        any
	ShallowReactive any
	ShallowReadonly any
}

func NewMapTarget(initial map[any]any) *MapTarget {
	if initial == nil {
		initial = make(map[any]any)
	}
	return &MapTarget{Data: initial}
}

func (t *MapTarget) Kind() TargetKind { return KindMap }

// SeqTarget is the ordered-sequence analogue of MapTarget.
type SeqTarget struct {
	Data []any
	Skip bool

	Reactive        any
	Readonly        any
	ShallowReactive any
	ShallowReadonly any
}

func NewSeqTarget(initial []any) *SeqTarget {
	return &SeqTarget{Data: initial}
}

func (t *SeqTarget) Kind() TargetKind { return KindSeq }

// Ref is the shared backing for Cell and Derived: a single named slot
// ("value") that tracks/triggers like any other target, plus an IsDerived
// flag set on the Ref that backs a Derived.
type Ref struct {
	Value     any
	IsDerived bool
}

func (r *Ref) Kind() TargetKind { return KindRef }
