// Implements the Timeline, the unit-by-unit record of which process held the CPU.

package sim

// IdleSlot is the sentinel stored in a timeline slot when no process ran.
const IdleSlot = "Idle"

// Segment is a run-length view of consecutive identical timeline slots.
// Start is inclusive, Stop is exclusive.
type Segment struct {
	ID    string `json:"id" yaml:"id"`
	Start int64  `json:"start" yaml:"start"`
	Stop  int64  `json:"stop" yaml:"stop"`
}

// Len returns the number of time units the segment covers.
func (s Segment) Len() int64 {
	return s.Stop - s.Start
}

// Timeline is an append-only sequence of unit-length slots. Its length equals
// the makespan of the run that produced it. Policies only ever append to it.
type Timeline struct {
	slots []string
}

// NewTimeline returns an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{slots: make([]string, 0)}
}

// Append adds n slots for process id. n <= 0 is a no-op.
func (tl *Timeline) Append(id string, n int64) {
	for i := int64(0); i < n; i++ {
		tl.slots = append(tl.slots, id)
	}
}

// AppendIdle adds n idle slots.
func (tl *Timeline) AppendIdle(n int64) {
	tl.Append(IdleSlot, n)
}

// Len returns the number of slots, i.e. the makespan so far.
func (tl *Timeline) Len() int64 {
	return int64(len(tl.slots))
}

// Slots returns a copy of the slot sequence.
func (tl *Timeline) Slots() []string {
	out := make([]string, len(tl.slots))
	copy(out, tl.slots)
	return out
}

// Segments collapses consecutive identical slots into run-length segments.
func (tl *Timeline) Segments() []Segment {
	segments := make([]Segment, 0)
	for i, id := range tl.slots {
		n := len(segments)
		if n > 0 && segments[n-1].ID == id {
			segments[n-1].Stop = int64(i + 1)
			continue
		}
		segments = append(segments, Segment{ID: id, Start: int64(i), Stop: int64(i + 1)})
	}
	return segments
}

// Counts returns the number of slots held by each ID, idle included.
func (tl *Timeline) Counts() map[string]int64 {
	counts := make(map[string]int64)
	for _, id := range tl.slots {
		counts[id]++
	}
	return counts
}

// IdleSlots returns the number of idle slots.
func (tl *Timeline) IdleSlots() int64 {
	var n int64
	for _, id := range tl.slots {
		if id == IdleSlot {
			n++
		}
	}
	return n
}
