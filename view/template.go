package view

import "github.com/beevik/etree"

// RenderTemplate builds the desired descriptor for a list view: standard
// columns, empty job list, case-insensitive job comparator. Everything except
// the name node is static. etree escapes the name text, so callers never need
// to pre-escape.
func RenderTemplate(name string) *etree.Document {
	doc := etree.NewDocument()

	root := doc.CreateElement("hudson.model.ListView")
	root.CreateElement("name").SetText(name)
	root.CreateElement("filterExecutors").SetText("false")
	root.CreateElement("filterQueue").SetText("false")
	root.CreateElement("properties").CreateAttr("class", "hudson.model.View$PropertyList")

	jobNames := root.CreateElement("jobNames")
	jobNames.CreateElement("comparator").CreateAttr("class", "hudson.util.CaseInsensitiveComparator")

	root.CreateElement("jobFilters")

	columns := root.CreateElement("columns")
	columns.CreateElement("hudson.views.StatusColumn")
	columns.CreateElement("hudson.views.WeatherColumn")
	columns.CreateElement("hudson.views.BuildButtonColumn")

	return doc
}
