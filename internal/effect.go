package internal

// EffectOptions configures an Effect's laziness, scheduling, and hooks at
// construction time.
type EffectOptions struct {
	Lazy      bool
	Computed  bool
	Scheduler func()
	OnTrack   func(Event)
	OnTrigger func(Event)
	OnStop    func()
}

// Effect is a record describing one tracked computation. It is also an
// Owner, so effects/deriveds created inside its run are disposed when it is
// re-run or stopped.
type Effect struct {
	*Owner

	id uint64
	fn func()

	active   bool
	computed bool
	lazy     bool
	onStack  bool

	scheduler func()
	onTrack   func(Event)
	onTrigger func(Event)
	onStop    func()

	deps []*depSet
}

func (r *Runtime) NewEffect(fn func(), opts EffectOptions) *Effect {
	r.idCounter++

	e := &Effect{
		Owner:     NewOwner(r.currentOwner),
		id:        r.idCounter,
		fn:        fn,
		active:    true,
		computed:  opts.Computed,
		lazy:      opts.Lazy,
		scheduler: opts.Scheduler,
		onTrack:   opts.OnTrack,
		onTrigger: opts.OnTrigger,
		onStop:    opts.OnStop,
	}

	if !opts.Lazy {
		r.Invoke(e)
	}

	return e
}

// Invoke runs e's body: inactive effects either no-op (if a scheduler is
// configured) or pass straight through to fn; active effects re-subscribe
// from scratch; re-entrant self-invocation while already on the stack is a
// no-op.
func (r *Runtime) Invoke(e *Effect) {
	if !e.active {
		if e.scheduler != nil {
			return
		}
		e.fn()
		return
	}

	if e.onStack {
		return
	}

	e.Owner.DisposeChildren()
	cleanups := e.Owner.cleanups
	e.Owner.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	r.graph.Cleanup(e)

	r.trackStack = append(r.trackStack, r.shouldTrack)
	r.shouldTrack = true

	r.effectStack = append(r.effectStack, e)
	e.onStack = true

	defer func() {
		r.effectStack = r.effectStack[:len(r.effectStack)-1]
		e.onStack = false

		r.shouldTrack = r.trackStack[len(r.trackStack)-1]
		r.trackStack = r.trackStack[:len(r.trackStack)-1]
	}()

	e.Owner.Run(r, e.fn)
}

// Stop deactivates e: cleans up its graph edges, disposes nested owners,
// and fires OnStop. Idempotent.
func (r *Runtime) Stop(e *Effect) {
	if !e.active {
		return
	}
	e.active = false
	r.graph.Cleanup(e)
	e.Owner.Dispose()
	if e.onStop != nil {
		e.onStop()
	}
}

func (e *Effect) IsActive() bool { return e.active }
