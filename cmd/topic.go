package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/tradereport/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the documentation" }
func (*topicCmd) Usage() string {
	return `tradereport topic [-list] [<topic>...]

  Displays the documentation topics one after the other, '*' for all of them.
  Without topic, displays the introduction and the list of topics.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "List the topic names and titles only")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		md, err := topicList()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(md)
		return subcommands.ExitSuccess
	}

	names := f.Args()
	if len(names) == 0 {
		names = []string{docs.Readme}
	}
	md, err := docs.ReadAll(names...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

// topicList is the markdown table of the topics.
func topicList() (string, error) {
	topics, err := docs.List()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("| Topic | Title |\n|:---|:---|\n")
	for _, t := range topics {
		fmt.Fprintf(&b, "| `%s` | %s |\n", t.Name, t.Title)
	}
	return b.String(), nil
}
