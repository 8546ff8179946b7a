package command

import (
	"fmt"

	"github.com/atomicstack/tvgrid/internal/logging/events"
	"github.com/atomicstack/tvgrid/internal/population"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Request is one queued background job.
type Request struct {
	ID    string
	Label string
	Job   func() tea.Msg
}

// Bus collects jobs raised during an update and hands them to Bubble Tea as
// commands.
type Bus struct {
	pending []Request
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Spawn queues a population fetch. The Completion is delivered as a message.
func (b *Bus) Spawn(label string, job func() population.Completion) {
	b.Enqueue(label, func() tea.Msg { return job() })
}

// Enqueue queues an arbitrary job.
func (b *Bus) Enqueue(label string, job func() tea.Msg) {
	req := Request{ID: uuid.NewString(), Label: label, Job: job}
	events.Command.Queue(req.ID, req.Label)
	b.pending = append(b.pending, req)
}

// Len returns the number of queued jobs.
func (b *Bus) Len() int { return len(b.pending) }

// Drain returns the queued jobs as a single command and empties the queue.
func (b *Bus) Drain() tea.Cmd {
	if len(b.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(b.pending))
	for _, req := range b.pending {
		cmds = append(cmds, b.Execute(req))
	}
	b.pending = nil
	return tea.Batch(cmds...)
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	return func() tea.Msg {
		if req.Job == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		msg := req.Job()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
