// Package renderer turns fee reports into markdown for the CLI and for
// review notes attached to invoices.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/Ghiles-CTO/fundfees"
)

//go:embed templates/*.md
var templates embed.FS

// RenderValidation renders an invoice validation report to a markdown string.
func RenderValidation(r *fundfees.InvoiceValidationReport) string {
	partials := map[string]string{
		"validation_details": "validation_details.md",
	}
	return renderTemplate("validation", "validation.md", partials, newValidationView(r))
}

// RenderFeePlan renders a fee plan schedule to a markdown string.
func RenderFeePlan(p *fundfees.FeePlan) string {
	return renderTemplate("feeplan", "feeplan.md", nil, newFeePlanView(p))
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
