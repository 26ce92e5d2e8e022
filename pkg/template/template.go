package template

import (
	"bytes"
	"fmt"
	"sync"
	"text/template"
)

var cache sync.Map // template text -> *template.Template

// Parse executes a template string against fields. Parsed templates are
// cached by their text since every caller uses static constants.
func Parse(text string, fields any) (string, error) {
	var tmpl *template.Template
	if cached, ok := cache.Load(text); ok {
		tmpl = cached.(*template.Template)
	} else {
		var err error
		tmpl, err = template.New("").Parse(text)
		if err != nil {
			return "", fmt.Errorf("parse: %w", err)
		}
		cache.Store(text, tmpl)
	}

	var result bytes.Buffer
	if err := tmpl.Execute(&result, fields); err != nil {
		return "", fmt.Errorf("execute: %w", err)
	}

	return result.String(), nil
}
