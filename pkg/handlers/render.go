package handlers

import (
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/pocketbase/pocketbase/core"
)

// RenderPage renders a page. It detects HTMX requests to render only the content block.
func RenderPage(t *template.Template, e *core.RequestEvent, layoutName string, pagePath string, data interface{}) error {
	tmpl, err := t.Clone()
	if err != nil {
		fmt.Println("❌ Template Clone Error:", err)
		return e.String(500, "Template error")
	}

	fullPath := filepath.Join("views", "pages", pagePath)
	_, err = tmpl.ParseFiles(fullPath)
	if err != nil {
		fmt.Printf("❌ Error parsing file %s: %v\n", fullPath, err)
		return e.String(500, "Page not found")
	}

	e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")

	// HTMX navigation swaps only the content block; full loads get the layout.
	isHtmxNav := e.Request.Header.Get("HX-Request") == "true" && e.Request.Header.Get("HX-Target") == "main-content"

	if isHtmxNav {
		if err := tmpl.ExecuteTemplate(e.Response, "content", data); err != nil {
			fmt.Println("❌ Render Content Error:", err)
			return e.String(500, "Render error")
		}
	} else {
		if err := tmpl.ExecuteTemplate(e.Response, layoutName, data); err != nil {
			fmt.Println("❌ Render Layout Error:", err)
			return e.String(500, "Render error")
		}
	}

	return nil
}
