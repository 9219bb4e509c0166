package renderer

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// style of the exported HTML document.
const style = `h1, h2 {
  margin-bottom: 0px;
}
table {
  border-collapse: collapse;
  width: 100%;
  margin-bottom: 16px;
}
th, td {
  text-align: left;
  padding: 8px;
  border: 1px solid #ddd;
}
tr:nth-child(even) {
  background-color: #f2f2f2;
}
th {
  background-color: #4CAF50;
  color: white;
}
`

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// WriteHTML writes the report as a standalone HTML document.
func WriteHTML(w io.Writer, r *Report) error {
	var md, body bytes.Buffer
	if err := WriteMarkdown(&md, r); err != nil {
		return err
	}
	if err := markdown.Convert(md.Bytes(), &body); err != nil {
		return fmt.Errorf("could not convert report to HTML: %w", err)
	}
	var b bytes.Buffer
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(r.Title))
	fmt.Fprintf(&b, "<style>\n%s</style>\n", style)
	b.WriteString("</head>\n<body>\n")
	b.Write(body.Bytes())
	b.WriteString("</body>\n</html>\n")
	_, err := w.Write(b.Bytes())
	return err
}
