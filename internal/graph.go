package internal

// depSet is an insertion-order-preserving set of effects subscribed to one
// (target, key) slot, realized as a slice plus an index map: dep sets in
// this engine are rebuilt from scratch on every effect re-run (cleanup-then-
// relink) rather than mutated incrementally, so a slice compacts cheaply.
type depSet struct {
	members []*Effect
	index   map[*Effect]int
}

func newDepSet() *depSet {
	return &depSet{index: make(map[*Effect]int)}
}

// add returns true if e was not already a member.
func (d *depSet) add(e *Effect) bool {
	if _, ok := d.index[e]; ok {
		return false
	}
	d.index[e] = len(d.members)
	d.members = append(d.members, e)
	return true
}

func (d *depSet) remove(e *Effect) {
	i, ok := d.index[e]
	if !ok {
		return
	}
	delete(d.index, e)
	d.members = append(d.members[:i], d.members[i+1:]...)
	for j := i; j < len(d.members); j++ {
		d.index[d.members[j]] = j
	}
}

func (d *depSet) empty() bool { return len(d.members) == 0 }

// snapshot copies the member list so callers may notify effects that remove
// themselves (or others) mid-iteration without corrupting the live set.
func (d *depSet) snapshot() []*Effect {
	out := make([]*Effect, len(d.members))
	copy(out, d.members)
	return out
}

// targetSlots is the per-target key->depSet map.
type targetSlots map[any]*depSet

// Graph is the tracking graph: target -> key -> depSet, plus the reverse
// edge recorded on each Effect's own deps list, so Cleanup visits only the
// dep sets that effect is in.
type Graph struct {
	targets map[any]targetSlots
}

func NewGraph() *Graph {
	return &Graph{targets: make(map[any]targetSlots)}
}

func (g *Graph) slotsFor(target any, create bool) targetSlots {
	slots, ok := g.targets[target]
	if !ok {
		if !create {
			return nil
		}
		slots = make(targetSlots)
		g.targets[target] = slots
	}
	return slots
}

func (g *Graph) depSetFor(target, key any, create bool) *depSet {
	slots := g.slotsFor(target, create)
	if slots == nil {
		return nil
	}
	ds, ok := slots[key]
	if !ok {
		if !create {
			return nil
		}
		ds = newDepSet()
		slots[key] = ds
	}
	return ds
}

// Track records that eff depends on (target, key). No-op if eff is nil.
func (g *Graph) Track(eff *Effect, target Target, op Operation, key any) {
	if eff == nil {
		return
	}

	ds := g.depSetFor(target, key, true)
	if ds.add(eff) {
		eff.deps = append(eff.deps, ds)
	}

	if DebugEnabled() && eff.onTrack != nil {
		eff.onTrack(Event{Effect: eff, Target: target, Type: op, Key: key})
	}
}

// Trigger notifies every effect subscribed to the slots op/key/target imply,
// splitting into deriveds-first then plain effects, each in dep-set
// insertion order. notify is called once per effect
// (after global de-duplication) to actually run it or hand it to its
// scheduler; it is supplied by Runtime.Trigger so this package stays free of
// any opinion about synchronous vs batched delivery.
func (g *Graph) Trigger(target Target, op Operation, key, newVal, oldVal any, current *Effect, tracking bool, notify func(*Effect, Event)) {
	if op == OpClear {
		slots := g.slotsFor(target, false)
		if slots == nil {
			return
		}
		var all []*depSet
		for _, ds := range slots {
			all = append(all, ds)
		}
		g.dispatch(all, target, op, key, newVal, oldVal, current, tracking, notify)
		return
	}

	var sets []*depSet

	if op == OpSet && key == LengthKey && target.Kind() == KindSeq {
		newLen, _ := newVal.(int)
		slots := g.slotsFor(target, false)
		if slots != nil {
			for k, ds := range slots {
				if k == LengthKey {
					sets = append(sets, ds)
					continue
				}
				if idx, ok := k.(int); ok && idx >= newLen {
					sets = append(sets, ds)
				}
			}
		}
	} else {
		if ds := g.depSetFor(target, key, false); ds != nil {
			sets = append(sets, ds)
		}

		extraIterate := op == OpAdd ||
			(op == OpDelete && target.Kind() != KindSeq) ||
			(op == OpSet && target.Kind() == KindMap)

		if extraIterate {
			extraKey := any(IterateKey)
			if target.Kind() == KindSeq {
				extraKey = LengthKey
			}
			if ds := g.depSetFor(target, extraKey, false); ds != nil {
				sets = append(sets, ds)
			}
		}

		if (op == OpAdd || op == OpDelete) && target.Kind() == KindMap {
			if ds := g.depSetFor(target, MapKeyIterateKey, false); ds != nil {
				sets = append(sets, ds)
			}
		}
	}

	g.dispatch(sets, target, op, key, newVal, oldVal, current, tracking, notify)
}

func (g *Graph) dispatch(sets []*depSet, target Target, op Operation, key, newVal, oldVal any, current *Effect, tracking bool, notify func(*Effect, Event)) {
	seen := make(map[*Effect]bool)
	var deriveds, plain []*Effect

	for _, ds := range sets {
		for _, eff := range ds.snapshot() {
			if seen[eff] {
				continue
			}
			seen[eff] = true

			// self-invalidation guard: skip the effect currently executing
			// when tracking is enabled, so `cell.value++` inside its own
			// effect body does not re-enter itself.
			if eff == current && tracking {
				continue
			}

			if eff.computed {
				deriveds = append(deriveds, eff)
			} else {
				plain = append(plain, eff)
			}
		}
	}

	ev := Event{Target: target, Type: op, Key: key, NewValue: newVal, OldValue: oldVal}
	if op == OpClear {
		ev.OldTarget = oldVal
	}

	for _, eff := range deriveds {
		notify(eff, ev)
	}
	for _, eff := range plain {
		notify(eff, ev)
	}
}

// Cleanup detaches eff from every dep set it is currently registered in.
func (g *Graph) Cleanup(eff *Effect) {
	for _, ds := range eff.deps {
		ds.remove(eff)
	}
	eff.deps = eff.deps[:0]
}
