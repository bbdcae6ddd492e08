package reactor

import "github.com/arclight-go/reactor/internal"

// Operation identifies which kind of access or mutation fired a Track or
// Trigger call. Track ops are Get/Has/Iterate; Trigger ops are
// Set/Add/Delete/Clear.
type Operation = internal.Operation

const (
	OpGet     = internal.OpGet
	OpHas     = internal.OpHas
	OpIterate = internal.OpIterate

	OpSet    = internal.OpSet
	OpAdd    = internal.OpAdd
	OpDelete = internal.OpDelete
	OpClear  = internal.OpClear
)

// Event is the payload delivered to an effect's OnTrack/OnTrigger hooks.
type Event = internal.Event

// ITERATE_KEY and MAP_KEY_ITERATE_KEY are the synthetic slots that model
// "the shape of this aggregate" - Map.Keys() and Map.Len() track ITERATE_KEY;
// adding or removing a map key additionally notifies MAP_KEY_ITERATE_KEY.
// Track and Trigger only accept a Target (see effect.go), which a Map or Seq
// is not, so these keys cannot be tracked against a Map or Seq from outside.
var (
	ITERATE_KEY          = internal.IterateKey
	MAP_KEY_ITERATE_KEY  = internal.MapKeyIterateKey
)
