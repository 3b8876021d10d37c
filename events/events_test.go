package events

import (
	"bytes"
	"testing"
)

func TestWriterSinkRecord(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := NewWriterSink(&buf)

	sink.Record(Event{
		Type:     WouldChange,
		Resource: "qa",
		Action:   "create",
		Detail:   "create view qa",
	})

	if got := buf.String(); got != "would-change qa [create]: create view qa\n" {
		t.Fatalf("unexpected sink output %q", got)
	}
}

func TestWriterSinkEmptyDetailFallsBackToType(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := NewWriterSink(&buf)

	sink.Record(Event{Type: Skip, Resource: "qa", Action: "delete"})

	if got := buf.String(); got != "skip qa [delete]: skip\n" {
		t.Fatalf("unexpected sink output %q", got)
	}
}

func TestNilWriterSinkIsSafe(t *testing.T) {
	t.Parallel()

	var sink *WriterSink
	sink.Record(Event{Type: DidChange})
}
