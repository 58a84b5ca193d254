package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"sync"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

var (
	cachedPage *template.Template
	cacheMu    sync.RWMutex
)

// pageTemplate returns the parsed embedded page template, parsing it on first use.
func pageTemplate() (*template.Template, error) {
	cacheMu.RLock()
	if cachedPage != nil {
		defer cacheMu.RUnlock()
		return cachedPage, nil
	}
	cacheMu.RUnlock()

	tmpl, err := template.New("site").Funcs(funcMap()).ParseFS(templateFiles, "templates/*.tmpl")
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse embedded templates",
			Cause:   err,
		}
	}

	cacheMu.Lock()
	cachedPage = tmpl
	cacheMu.Unlock()

	return tmpl, nil
}

// parseTemplateFile reads and parses a page template from disk
func parseTemplateFile(templatePath string) (*template.Template, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}

	tmpl, err := template.New("site").Funcs(funcMap()).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	if tmpl.Lookup("page") == nil {
		return nil, &TemplateError{Message: fmt.Sprintf("template %s does not define \"page\"", templatePath)}
	}
	return tmpl, nil
}

// ClearCache drops the parsed embedded template. Useful for testing.
func ClearCache() {
	cacheMu.Lock()
	cachedPage = nil
	cacheMu.Unlock()
}
