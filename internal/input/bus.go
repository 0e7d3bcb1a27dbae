package input

import (
	"sort"

	"github.com/zhubert/canvas/internal/logger"
)

// Handler receives dispatched events.
type Handler func(*Event)

type registration struct {
	id      int
	kind    Kind
	owner   string
	handler Handler
}

// Bus is a registry of scoped event listeners. It is owned by the UI loop and
// is not safe for concurrent use.
type Bus struct {
	next      int
	listeners map[int]registration
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{listeners: make(map[int]registration)}
}

// Listen registers h for events of kind and returns the function that removes
// it. Release is idempotent. owner is only used for logging.
func (b *Bus) Listen(kind Kind, owner string, h Handler) (release func()) {
	b.next++
	id := b.next
	b.listeners[id] = registration{id: id, kind: kind, owner: owner, handler: h}
	logger.WithComponent("input").Debug("listener acquired", "kind", kind, "owner", owner, "total", len(b.listeners))

	released := false
	return func() {
		if released {
			return
		}
		released = true
		delete(b.listeners, id)
		logger.WithComponent("input").Debug("listener released", "kind", kind, "owner", owner, "total", len(b.listeners))
	}
}

// Dispatch delivers ev to every listener of its kind in registration order.
// Listeners may acquire or release listeners while handling; the set of
// recipients is fixed when dispatch starts, and a listener released mid-dispatch
// is skipped.
func (b *Bus) Dispatch(ev *Event) {
	var targets []registration
	for _, r := range b.listeners {
		if r.kind == ev.Kind {
			targets = append(targets, r)
		}
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i].id < targets[j].id })

	for _, r := range targets {
		if _, live := b.listeners[r.id]; !live {
			continue
		}
		r.handler(ev)
	}
}

// Count returns the number of live listeners.
func (b *Bus) Count() int {
	return len(b.listeners)
}

// CountKind returns the number of live listeners for one event kind.
func (b *Bus) CountKind(kind Kind) int {
	n := 0
	for _, r := range b.listeners {
		if r.kind == kind {
			n++
		}
	}
	return n
}

// Scope groups releases so a component can drop everything it acquired in
// one call on teardown.
type Scope struct {
	releases []func()
}

// Add records a release function.
func (s *Scope) Add(release func()) {
	s.releases = append(s.releases, release)
}

// Listen acquires a listener on bus and records its release.
func (s *Scope) Listen(bus *Bus, kind Kind, owner string, h Handler) {
	s.Add(bus.Listen(kind, owner, h))
}

// Release runs every recorded release, newest first, and empties the scope.
func (s *Scope) Release() {
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil
}

// Len returns the number of releases held.
func (s *Scope) Len() int {
	return len(s.releases)
}
