package events

import (
	"fmt"
	"io"
	"strings"
)

type EventType string

const (
	WouldChange EventType = "would-change"
	DidChange   EventType = "did-change"
	Skip        EventType = "skip"
)

// Event is one auditable convergence decision. Pass groups every event that
// belongs to the same convergence pass.
type Event struct {
	Pass     string
	Type     EventType
	Resource string
	Action   string
	Detail   string
}

type Sink interface {
	Record(event Event)
}

type NopSink struct{}

func (NopSink) Record(Event) {}

type WriterSink struct {
	out io.Writer
}

func NewWriterSink(out io.Writer) *WriterSink {
	return &WriterSink{out: out}
}

func (s *WriterSink) Record(event Event) {
	if s == nil || s.out == nil {
		return
	}

	detail := strings.TrimSpace(event.Detail)
	if detail == "" {
		detail = string(event.Type)
	}

	_, _ = fmt.Fprintf(s.out, "%s %s [%s]: %s\n", event.Type, event.Resource, event.Action, detail)
}
