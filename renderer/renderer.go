package renderer

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// markdownTemplates holds every embedded template, named after its file
// without extension, so that templates include each other by name.
var markdownTemplates = parseTemplates(templates)

func parseTemplates(fsys fs.FS) *template.Template {
	set := template.New("")
	files, err := fs.Glob(fsys, "*.md")
	if err != nil {
		panic(err)
	}
	for _, file := range files {
		content, err := fs.ReadFile(fsys, file)
		if err != nil {
			panic(err)
		}
		template.Must(set.New(strings.TrimSuffix(file, ".md")).Parse(string(content)))
	}
	return set
}

// WriteMarkdown writes the report in markdown: a title, then for each bucket
// a heading, the totals table and the trades table.
func WriteMarkdown(w io.Writer, r *Report) error {
	return markdownTemplates.ExecuteTemplate(w, "report", r)
}

// RenderReport returns the markdown report, or the error message in its
// place.
func RenderReport(r *Report) string {
	var b strings.Builder
	if err := WriteMarkdown(&b, r); err != nil {
		return fmt.Sprintf("error rendering the report: %v\n", err)
	}
	return b.String()
}
