package view

import (
	"github.com/beevik/etree"

	"github.com/crmarques/jenkview/faults"
)

const canonicalIndent = 2

// Canonical renders a descriptor document to its canonical text: the root
// element serialized with fixed two-space indentation and no surrounding
// whitespace. Two documents describe the same configuration iff their
// canonical texts are byte-identical.
//
// The scope is deliberately narrow. Only serialization whitespace and the XML
// declaration are normalized away; element order, attribute order, and
// comments all still count as drift. Downstream skip/update decisions depend
// on this serialization staying deterministic, so this must not grow into a
// semantic XML diff.
func Canonical(doc *etree.Document) (string, error) {
	if doc == nil || doc.Root() == nil {
		return "", faults.NewTypedError(faults.MalformedStateError, "descriptor document has no root element", nil)
	}

	canonical := etree.NewDocument()
	canonical.AddChild(doc.Root().Copy())
	canonical.Indent(canonicalIndent)

	text, err := canonical.WriteToString()
	if err != nil {
		return "", faults.NewTypedError(faults.InternalError, "failed to serialize descriptor document", err)
	}
	return text, nil
}

// DesiredXML is the payload piped to create-view and update-view.
func DesiredXML(name string) (string, error) {
	return Canonical(RenderTemplate(name))
}
