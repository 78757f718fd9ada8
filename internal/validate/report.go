package validate

import "sync"

// Channel names a slot of findings owned by one checker.
type Channel string

const (
	ChannelValidation   Channel = "validation"
	ChannelArguments    Channel = "arguments"
	ChannelEnumerations Channel = "enumerations"
	ChannelCommands     Channel = "commands"
)

// channelOrder fixes the merge order of known channels.
var channelOrder = []Channel{ChannelValidation, ChannelArguments, ChannelEnumerations, ChannelCommands}

// Report collects findings from independent checkers. Each checker writes
// only to its own channel, so re-running one checker never erases the
// findings of another.
type Report struct {
	mu    sync.RWMutex
	slots map[Channel][]string
	extra []Channel
}

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{slots: make(map[Channel][]string)}
}

// Set replaces the findings of ch.
func (r *Report) Set(ch Channel, msgs []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, known := r.slots[ch]; !known && !isBuiltin(ch) {
		r.extra = append(r.extra, ch)
	}
	if len(msgs) == 0 {
		r.slots[ch] = nil
		return
	}
	r.slots[ch] = append([]string(nil), msgs...)
}

// Clear empties ch.
func (r *Report) Clear(ch Channel) {
	r.Set(ch, nil)
}

// Get returns a copy of the findings of ch.
func (r *Report) Get(ch Channel) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.slots[ch]...)
}

// Messages merges all channels, built-in channels first, in a stable order.
func (r *Report) Messages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	for _, ch := range r.order() {
		out = append(out, r.slots[ch]...)
	}
	return out
}

// Unique returns Messages with repeats removed, keeping first occurrences.
func (r *Report) Unique() []string {
	return Dedupe(r.Messages())
}

// Empty reports whether no channel holds a finding.
func (r *Report) Empty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, msgs := range r.slots {
		if len(msgs) > 0 {
			return false
		}
	}
	return true
}

func (r *Report) order() []Channel {
	return append(append([]Channel{}, channelOrder...), r.extra...)
}

func isBuiltin(ch Channel) bool {
	for _, c := range channelOrder {
		if c == ch {
			return true
		}
	}
	return false
}

// Dedupe removes repeated messages while keeping first-seen order.
func Dedupe(msgs []string) []string {
	seen := make(map[string]bool, len(msgs))
	var out []string
	for _, m := range msgs {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}
