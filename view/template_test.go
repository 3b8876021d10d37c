package view

import (
	"strings"
	"testing"
)

func TestRenderTemplateInterpolatesName(t *testing.T) {
	t.Parallel()

	doc := RenderTemplate("release-1.0")

	name := doc.FindElement("/hudson.model.ListView/name")
	if name == nil {
		t.Fatalf("expected a name element")
	}
	if got := name.Text(); got != "release-1.0" {
		t.Fatalf("expected name %q, got %q", "release-1.0", got)
	}

	comparator := doc.FindElement("/hudson.model.ListView/jobNames/comparator")
	if comparator == nil {
		t.Fatalf("expected the case-insensitive comparator element")
	}
	if got := comparator.SelectAttrValue("class", ""); got != "hudson.util.CaseInsensitiveComparator" {
		t.Fatalf("unexpected comparator class %q", got)
	}
}

func TestRenderTemplateEscapesName(t *testing.T) {
	t.Parallel()

	xml, err := DesiredXML("ops <&> nightly")
	if err != nil {
		t.Fatalf("DesiredXML returned error: %v", err)
	}

	if strings.Contains(xml, "<&>") {
		t.Fatalf("expected markup characters in the name to be escaped:\n%s", xml)
	}
	if !strings.Contains(xml, "ops &lt;&amp;&gt; nightly") {
		t.Fatalf("expected escaped name text in:\n%s", xml)
	}
}

func TestValidateArgument(t *testing.T) {
	t.Parallel()

	if err := ValidateArgument("release-1.0"); err != nil {
		t.Fatalf("expected plain name to validate, got %v", err)
	}
	if err := ValidateArgument("-rf"); err == nil {
		t.Fatalf("expected flag-alike argument to be rejected")
	}
	if err := ValidateArgument("qa\nextra"); err == nil {
		t.Fatalf("expected newline in argument to be rejected")
	}
}

func TestDesiredViewValidate(t *testing.T) {
	t.Parallel()

	if err := (DesiredView{Name: "qa"}).Validate(); err != nil {
		t.Fatalf("expected valid view, got %v", err)
	}
	if err := (DesiredView{}).Validate(); err == nil {
		t.Fatalf("expected missing name to be rejected")
	}
	if err := (DesiredView{Name: "   "}).Validate(); err == nil {
		t.Fatalf("expected blank name to be rejected")
	}
}
