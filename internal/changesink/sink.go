// Package changesink provides the ChangeSink capability: the external observer notified after every membership
// mutation, used by the out-of-scope downstream "MP3" service to know when to re-read the view.
package changesink

// Sink is called synchronously after every membership mutation, while the view's internal mutex is still held by
// the caller (see view.View's AppendAndNotify/ReplaceAllAndNotify/RemoveByIDAndNotify/ClearAndNotify). Because of
// this, an implementation must never call back into the engine or the view from OnMembershipChanged, or it will
// deadlock; if it needs to inspect the view, it must do so from a separate goroutine, after OnMembershipChanged
// has returned.
type Sink interface {
	OnMembershipChanged()
}

// Noop is a Sink which does nothing. Useful as a default when no downstream observer is configured.
type Noop struct{}

// Noop implements Sink.
var _ Sink = Noop{}

func (Noop) OnMembershipChanged() {}

// Func adapts a plain function to the Sink interface.
type Func func()

// Func implements Sink.
var _ Sink = Func(nil)

func (f Func) OnMembershipChanged() {
	if f != nil {
		f()
	}
}
