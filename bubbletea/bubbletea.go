// Package bubbletea provides the Bubble Tea terminal UI for parley.
package bubbletea

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/parley"
)

// Run creates and runs the Bubble Tea program. It blocks until the program
// exits. Cancelling ctx quits the program.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// EventMsg wraps a core event for delivery to the model.
type EventMsg struct {
	Event parley.Event
}

// SubmitDoneMsg signals that a Chat.Submit returned. Text is the submitted
// input, handed back so it can be restored when the submit was rejected.
type SubmitDoneMsg struct {
	Text string
	Err  error
}

// VoiceDoneMsg signals that a Voice.Listen returned.
type VoiceDoneMsg struct {
	Text string
	Err  error
}

// ExportDoneMsg signals that an export file was written, or failed to be.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// Interface compliance check.
var _ parley.Renderer = (*ChannelRenderer)(nil)

// ChannelRenderer forwards events to the UI through a buffered channel.
// Render blocks while the buffer is full, until Close is called.
type ChannelRenderer struct {
	ch        chan parley.Event
	done      chan struct{}
	closeOnce sync.Once
}

// NewChannelRenderer creates a ChannelRenderer with the given buffer size.
func NewChannelRenderer(size int) *ChannelRenderer {
	return &ChannelRenderer{
		ch:   make(chan parley.Event, size),
		done: make(chan struct{}),
	}
}

// Render sends e to the UI. After Close it drops e.
func (r *ChannelRenderer) Render(e parley.Event) {
	select {
	case <-r.done:
		return
	default:
	}
	select {
	case r.ch <- e:
	case <-r.done:
	}
}

// Events returns the receive side of the channel.
func (r *ChannelRenderer) Events() <-chan parley.Event {
	return r.ch
}

// Close stops delivery. Pending and future Render calls return immediately.
func (r *ChannelRenderer) Close() {
	r.closeOnce.Do(func() { close(r.done) })
}

// listenForEvent waits for the next event. The model re-arms it after every
// EventMsg.
func listenForEvent(ch <-chan parley.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return EventMsg{Event: e}
	}
}

func submit(ctx context.Context, chat *parley.Chat, text string) tea.Cmd {
	return func() tea.Msg {
		_, err := chat.Submit(ctx, text)
		return SubmitDoneMsg{Text: text, Err: err}
	}
}

func listen(ctx context.Context, voice *parley.Voice) tea.Cmd {
	return func() tea.Msg {
		text, err := voice.Listen(ctx)
		return VoiceDoneMsg{Text: text, Err: err}
	}
}

func save(fn func(parley.ExportFile) (string, error), f parley.ExportFile) tea.Cmd {
	return func() tea.Msg {
		path, err := fn(f)
		return ExportDoneMsg{Path: path, Err: err}
	}
}
