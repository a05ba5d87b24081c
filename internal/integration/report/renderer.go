// Package report renders project reports to HTML and delivers them via Resend.
package report

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"

	"github.com/sitepulse/backend/internal/application/adapter"
)

//go:embed *.html
var templateFS embed.FS

// Renderer renders report documents from embedded HTML templates.
type Renderer struct {
	templates *htmltemplate.Template
}

// NewRenderer creates a new report renderer.
func NewRenderer() (*Renderer, error) {
	funcs := htmltemplate.FuncMap{
		"money": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
	}

	tmpl, err := htmltemplate.New("reports").Funcs(funcs).ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse report templates: %w", err)
	}

	return &Renderer{templates: tmpl}, nil
}

// RenderBudgetReport renders the budget report document.
func (r *Renderer) RenderBudgetReport(data adapter.BudgetReportData) (string, error) {
	return r.render("budget_report.html", data)
}

// RenderDelayReport renders the delay report document.
func (r *Renderer) RenderDelayReport(data adapter.DelayReportData) (string, error) {
	return r.render("delay_report.html", data)
}

func (r *Renderer) render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}

// Ensure implementation satisfies the interface.
var _ adapter.ReportRenderer = (*Renderer)(nil)
