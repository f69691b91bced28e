package pagecontrol

// EventSink receives selection and completion events from a page control.
// Calls happen synchronously on the Bubble Tea update loop.
type EventSink interface {
	// OnSequenceEnded fires once the last page's fill and collapse complete.
	OnSequenceEnded()
	// OnIndicatorSelected fires on every tap, whether or not the page changes.
	OnIndicatorSelected(index int)
}

// NopSink ignores all events.
type NopSink struct{}

func (NopSink) OnSequenceEnded()          {}
func (NopSink) OnIndicatorSelected(_ int) {}

// SinkFuncs adapts plain functions to an EventSink. Nil fields are skipped.
type SinkFuncs struct {
	Ended    func()
	Selected func(index int)
}

func (s SinkFuncs) OnSequenceEnded() {
	if s.Ended != nil {
		s.Ended()
	}
}

func (s SinkFuncs) OnIndicatorSelected(index int) {
	if s.Selected != nil {
		s.Selected(index)
	}
}
