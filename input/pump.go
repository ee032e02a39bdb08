package input

import "github.com/gdamore/tcell/v2"

// EventSource is the blocking half of a terminal screen
type EventSource interface {
	PollEvent() tcell.Event
}

// Pump forwards terminal key events into a Latest slot
// Runs on its own goroutine since PollEvent blocks
type Pump struct {
	events   EventSource
	keys     *KeyTable
	latest   *Latest
	onResize func()
}

// NewPump creates a pump; a nil key table selects the defaults
func NewPump(events EventSource, keys *KeyTable, latest *Latest) *Pump {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Pump{
		events: events,
		keys:   keys,
		latest: latest,
	}
}

// OnResize registers a callback invoked on terminal resize events
func (p *Pump) OnResize(fn func()) {
	p.onResize = fn
}

// Run polls until the screen is finalized (PollEvent returns nil)
func (p *Pump) Run() {
	for {
		ev := p.events.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			p.latest.Offer(p.keys.Lookup(ev))
		case *tcell.EventResize:
			if p.onResize != nil {
				p.onResize()
			}
		}
	}
}
