package internal

// Batch defers Trigger's notification delivery until the outermost Batch
// call returns, coalescing multiple mutations into one effect-rerun pass.
// Nested calls only flush when the outermost one completes.
func (r *Runtime) Batch(fn func()) {
	r.batchDepth++
	defer func() {
		r.batchDepth--
		if r.batchDepth == 0 {
			r.flushBatch()
		}
	}()
	fn()
}

func (r *Runtime) enqueuePending(eff *Effect) {
	if r.pendingSeen == nil {
		r.pendingSeen = make(map[*Effect]bool)
	}
	if r.pendingSeen[eff] {
		return
	}
	r.pendingSeen[eff] = true

	if eff.computed {
		r.pendingD = append(r.pendingD, eff)
	} else {
		r.pendingP = append(r.pendingP, eff)
	}
}

func (r *Runtime) flushBatch() {
	deriveds := r.pendingD
	plain := r.pendingP
	r.pendingD = nil
	r.pendingP = nil
	r.pendingSeen = nil

	for _, eff := range deriveds {
		r.run(eff)
	}
	for _, eff := range plain {
		r.run(eff)
	}
}

func (r *Runtime) IsBatching() bool { return r.batchDepth > 0 }
