package app

import (
	"errors"
	"html/template"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cast"
)

// InitTemplates initializes the HTML templates with custom functions.
func InitTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, errors.New("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, errors.New("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		// formatMoney renders whole KES amounts with thousands separators.
		"formatMoney": func(val interface{}) string {
			return humanize.Comma(cast.ToInt64(val))
		},
		"mul": func(a, b int) int {
			return a * b
		},
	}

	t := template.New("").Funcs(funcMap)

	if _, err := t.ParseGlob("views/layouts/*.html"); err != nil {
		log.Println("Warning: Layouts error:", err)
	}

	log.Printf("✅ Loaded Templates: %q", t.DefinedTemplates())

	return t, nil
}
