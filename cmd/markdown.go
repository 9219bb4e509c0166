package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const wordWrap = 120

// printMarkdown prints md rendered for the terminal, or as is when it cannot
// be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
