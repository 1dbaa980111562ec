package parley

// Event is a sealed interface representing a change the UI should render.
// The unexported marker method prevents external implementations.
type Event interface {
	event()
}

// EventMessageAppended reports a message added to the conversation.
type EventMessageAppended struct {
	Message Message
}

func (EventMessageAppended) event() {}

// EventWorkingStarted signals that a remote call is outstanding.
type EventWorkingStarted struct{}

func (EventWorkingStarted) event() {}

// EventWorkingStopped signals that the outstanding remote call returned.
type EventWorkingStopped struct{}

func (EventWorkingStopped) event() {}

// EventStatus carries a transient status-line text.
type EventStatus struct {
	Text string
}

func (EventStatus) event() {}

// EventKeyRequired asks the UI to prompt for an API key.
type EventKeyRequired struct{}

func (EventKeyRequired) event() {}

// EventListeningStarted signals that speech capture began.
type EventListeningStarted struct{}

func (EventListeningStarted) event() {}

// EventListeningStopped signals that speech capture ended, whatever the outcome.
type EventListeningStopped struct{}

func (EventListeningStopped) event() {}

// Interface compliance checks.
var (
	_ Event = EventMessageAppended{}
	_ Event = EventWorkingStarted{}
	_ Event = EventWorkingStopped{}
	_ Event = EventStatus{}
	_ Event = EventKeyRequired{}
	_ Event = EventListeningStarted{}
	_ Event = EventListeningStopped{}
)

// Renderer receives events from the core. Implementations must be safe to
// call from any goroutine.
type Renderer interface {
	Render(Event)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(Event)

// Render calls f(e).
func (f RendererFunc) Render(e Event) { f(e) }

// discardRenderer drops all events.
type discardRenderer struct{}

func (discardRenderer) Render(Event) {}
