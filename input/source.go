package input

import (
	"math/rand"
	"sync"
)

// Latest is a single-slot command buffer: a newer command replaces an unread
// older one, and Poll empties the slot. A pending Quit is never replaced.
// Safe for one writer goroutine and the game loop reading concurrently.
type Latest struct {
	mu  sync.Mutex
	cmd Command
}

// NewLatest creates an empty slot
func NewLatest() *Latest {
	return &Latest{}
}

// Offer stores cmd as the pending command
func (l *Latest) Offer(cmd Command) {
	if cmd == CommandNone {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cmd == CommandQuit {
		return
	}
	l.cmd = cmd
}

// Poll takes the pending command, CommandNone if the slot is empty
func (l *Latest) Poll() Command {
	l.mu.Lock()
	defer l.mu.Unlock()

	cmd := l.cmd
	l.cmd = CommandNone
	return cmd
}

// Script replays a fixed command sequence, then yields CommandNone forever
type Script struct {
	commands []Command
	pos      int
}

// NewScript creates a source over the given commands
func NewScript(commands ...Command) *Script {
	return &Script{commands: commands}
}

// Poll returns the next scripted command
func (s *Script) Poll() Command {
	if s.pos >= len(s.commands) {
		return CommandNone
	}
	cmd := s.commands[s.pos]
	s.pos++
	return cmd
}

// Remaining returns the number of commands not yet polled
func (s *Script) Remaining() int {
	return len(s.commands) - s.pos
}

// randomWeights biases the random player towards idle ticks so pieces fall
// far enough to build a stack
var randomWeights = []struct {
	cmd    Command
	weight int
}{
	{CommandNone, 6},
	{CommandLeft, 2},
	{CommandRight, 2},
	{CommandSoftDrop, 1},
	{CommandRotate, 1},
}

// Random emits a seeded pseudo-random command stream, never Quit
type Random struct {
	rng   *rand.Rand
	total int
}

// NewRandom creates a random source; equal seeds produce equal streams
func NewRandom(seed int64) *Random {
	total := 0
	for _, w := range randomWeights {
		total += w.weight
	}
	return &Random{
		rng:   rand.New(rand.NewSource(seed)),
		total: total,
	}
}

// Poll returns the next random command
func (r *Random) Poll() Command {
	n := r.rng.Intn(r.total)
	for _, w := range randomWeights {
		if n < w.weight {
			return w.cmd
		}
		n -= w.weight
	}
	return CommandNone
}
