package view

import (
	"strings"
	"testing"

	"github.com/beevik/etree"

	"github.com/crmarques/jenkview/faults"
)

func TestCanonicalIsStableAcrossRoundTrips(t *testing.T) {
	t.Parallel()

	doc := RenderTemplate("release-1.0")
	first, err := Canonical(doc)
	if err != nil {
		t.Fatalf("Canonical returned error: %v", err)
	}

	reparsed := etree.NewDocument()
	if err := reparsed.ReadFromString(first); err != nil {
		t.Fatalf("failed to reparse canonical text: %v", err)
	}

	second, err := Canonical(reparsed)
	if err != nil {
		t.Fatalf("Canonical returned error after round trip: %v", err)
	}
	if first != second {
		t.Fatalf("canonical form changed across round trip:\n%s\n---\n%s", first, second)
	}
}

func TestCanonicalIgnoresIndentationDifferences(t *testing.T) {
	t.Parallel()

	desired, err := Canonical(RenderTemplate("release-1.0"))
	if err != nil {
		t.Fatalf("Canonical returned error: %v", err)
	}

	// Same content, server-side indentation and an XML declaration.
	observed := etree.NewDocument()
	raw := "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
		strings.ReplaceAll(desired, "  ", "        ")
	if err := observed.ReadFromString(raw); err != nil {
		t.Fatalf("failed to parse observed document: %v", err)
	}

	got, err := Canonical(observed)
	if err != nil {
		t.Fatalf("Canonical returned error: %v", err)
	}
	if got != desired {
		t.Fatalf("expected indentation-only differences to normalize away:\n%s\n---\n%s", got, desired)
	}
}

func TestCanonicalDetectsContentDifferences(t *testing.T) {
	t.Parallel()

	desired, err := Canonical(RenderTemplate("release-1.0"))
	if err != nil {
		t.Fatalf("Canonical returned error: %v", err)
	}

	drifted, err := Canonical(RenderTemplate("release-1.0-old"))
	if err != nil {
		t.Fatalf("Canonical returned error: %v", err)
	}

	if desired == drifted {
		t.Fatalf("expected differing name nodes to produce differing canonical texts")
	}
}

func TestCanonicalRejectsEmptyDocument(t *testing.T) {
	t.Parallel()

	_, err := Canonical(etree.NewDocument())
	if !faults.IsCategory(err, faults.MalformedStateError) {
		t.Fatalf("expected malformed-state error, got %v", err)
	}
}

func TestCanonicalDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	doc := etree.NewDocument()
	if err := doc.ReadFromString("<hudson.model.ListView><name>qa</name></hudson.model.ListView>"); err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}
	before, err := doc.WriteToString()
	if err != nil {
		t.Fatalf("failed to serialize document: %v", err)
	}

	if _, err := Canonical(doc); err != nil {
		t.Fatalf("Canonical returned error: %v", err)
	}

	after, err := doc.WriteToString()
	if err != nil {
		t.Fatalf("failed to serialize document: %v", err)
	}
	if before != after {
		t.Fatalf("Canonical mutated its input:\n%s\n---\n%s", before, after)
	}
}
