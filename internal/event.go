package internal

// Operation identifies which kind of access or mutation triggered a Track or
// Trigger call. The string values are part of the public contract (debug
// hooks compare against them), so they are spelled out explicitly rather
// than left as an unexported iota.
type Operation string

const (
	OpGet     Operation = "get"
	OpHas     Operation = "has"
	OpIterate Operation = "iterate"

	OpSet    Operation = "set"
	OpAdd    Operation = "add"
	OpDelete Operation = "delete"
	OpClear  Operation = "clear"
)

// Event is the payload handed to an effect's OnTrack/OnTrigger hooks.
type Event struct {
	Effect   *Effect
	Target   Target
	Type     Operation
	Key      any
	NewValue any
	OldValue any
	// OldTarget is only populated for Clear, where the prior contents are
	// no longer reachable off Target itself.
	OldTarget any
}

// sentinel is a distinguished, unexported pointer type used so the iteration
// and length slots can live in the same key space as ordinary map keys and
// slice indices without ever colliding with a real user value.
type sentinel struct{ name string }

func (s *sentinel) String() string { return s.name }

var (
	// IterateKey is tracked by enumeration (OwnKeys) on map targets and
	// notified by Add/Delete/Set-on-map so "the shape of this object"
	// readers re-run.
	IterateKey = &sentinel{"ITERATE_KEY"}

	// MapKeyIterateKey is notified in addition to IterateKey when a
	// keyed-map target gains or loses a key, modelling a separate
	// "keys of this map" iterator distinct from "own keys" enumeration.
	MapKeyIterateKey = &sentinel{"MAP_KEY_ITERATE_KEY"}

	// LengthKey is the sequence analogue of IterateKey: tracked by reads
	// of Len() and notified whenever indices are added, removed, or the
	// sequence is shrunk via SetLen.
	LengthKey = &sentinel{"length"}

	// ValueKey is the single synthetic slot backing Cell and Derived.
	ValueKey = &sentinel{"value"}
)
