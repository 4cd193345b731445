package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

//go:embed templates/report.html
var reportTemplate string

// WriteHTML renders the run summary to an HTML file at the given path,
// creating parent directories as needed.
func WriteHTML(path string, summary *Summary) error {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, summary); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
