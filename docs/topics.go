// Package docs holds the help topics of the tradereport command.
//
// A topic is a markdown file of this directory, its name is the file name
// without extension and its title the first level-one heading.
package docs

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var files embed.FS

// Readme is the topic introducing the others.
const Readme = "readme"

// All selects every topic but the readme.
const All = "*"

// ErrUnknownTopic is returned for a topic without file.
var ErrUnknownTopic = errors.New("unknown topic")

// Topic describes a help topic.
type Topic struct {
	Name  string
	Title string
}

// Read returns the markdown content of a topic.
func Read(name string) (string, error) {
	content, err := files.ReadFile(name + ".md")
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w %q", ErrUnknownTopic, name)
	}
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// ReadAll returns the content of the topics, separated by a blank line.
// All expands to every listed topic.
func ReadAll(names ...string) (string, error) {
	var parts []string
	for _, name := range expand(names) {
		content, err := Read(name)
		if err != nil {
			return "", err
		}
		parts = append(parts, strings.TrimRight(content, "\n"))
	}
	return strings.Join(parts, "\n\n") + "\n", nil
}

func expand(names []string) []string {
	var out []string
	for _, name := range names {
		if name == All {
			out = append(out, Names()...)
			continue
		}
		out = append(out, name)
	}
	return out
}

// List returns the topics sorted by name, the readme excluded.
func List() ([]Topic, error) {
	matches, err := fs.Glob(files, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []Topic
	for _, file := range matches {
		name := strings.TrimSuffix(file, ".md")
		if name == Readme {
			continue
		}
		content, err := files.ReadFile(file)
		if err != nil {
			return nil, err
		}
		topics = append(topics, Topic{Name: name, Title: title(content)})
	}
	slices.SortFunc(topics, func(a, b Topic) int { return strings.Compare(a.Name, b.Name) })
	return topics, nil
}

// Names returns the names of the listed topics.
func Names() []string {
	topics, _ := List()
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = t.Name
	}
	return names
}

func title(content []byte) string {
	s := bufio.NewScanner(bytes.NewReader(content))
	for s.Scan() {
		if t, ok := strings.CutPrefix(s.Text(), "# "); ok {
			return strings.TrimSpace(t)
		}
	}
	return ""
}
