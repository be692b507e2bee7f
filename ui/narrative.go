package ui

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Section blurbs shown under each chart heading, authored in Markdown so
// wording tweaks don't touch the template.
var sectionNarratives = map[string]string{
	"map":      "Explore accommodation locations across the city. Marker color and size follow the **listing price**.",
	"boroughs": "How the filtered listings distribute across the five boroughs.",
	"beds":     "Compare **average prices** across different numbers of beds and room types.",
	"scatter":  "Explore how the total number of reviews relates to how often listings are reviewed monthly.",
	"prices":   "Distribution of nightly prices for the filtered listings, with a box summary for outlier detection.",
	"table":    "The filtered data behind every chart on this page. Scroll to see all columns.",
}

// renderNarratives converts the Markdown blurbs to template-safe HTML.
func renderNarratives() map[string]template.HTML {
	out := make(map[string]template.HTML, len(sectionNarratives))
	for key, src := range sectionNarratives {
		p := parser.NewWithExtensions(parser.CommonExtensions)
		renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
		out[key] = template.HTML(markdown.ToHTML([]byte(src), p, renderer))
	}
	return out
}
