package contact

// Kind is the outcome a feedback message reports.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Feedback is one transient message. Seq identifies it for expiry.
type Feedback struct {
	Kind    Kind
	Message string
	Seq     int
}

// Board holds at most one feedback message. Showing a new message replaces
// the old one immediately; an expiry only removes the message it was
// scheduled for, so a superseded timer has no effect.
type Board struct {
	current *Feedback
	seq     int
}

// Show replaces any current message and returns the new one.
func (b *Board) Show(kind Kind, msg string) Feedback {
	b.seq++
	fb := Feedback{Kind: kind, Message: msg, Seq: b.seq}
	b.current = &fb
	return fb
}

// Expire removes the message with the given sequence number if it is still
// current. It reports whether anything was removed.
func (b *Board) Expire(seq int) bool {
	if b.current == nil || b.current.Seq != seq {
		return false
	}
	b.current = nil
	return true
}

// Current returns the visible message.
func (b *Board) Current() (Feedback, bool) {
	if b.current == nil {
		return Feedback{}, false
	}
	return *b.current, true
}
