package cmd

import (
	"flag"
	"sort"

	"github.com/etnz/tradereport/date"
	"github.com/etnz/tradereport/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors complete the values of flags, by name.
var flagPredictors = map[string]complete.Predictor{
	"config":           predict.Files("*.yaml"),
	"currency":         predict.Set{"USD", "EUR", "GBP", "JPY", "CHF", "CAD", "AUD"},
	"commission-field": predict.Set{"Realized P&L (value)", "P&L"},
	"p":                predict.Set(periodNames()),
	"format":           predict.Set{FormatMarkdown, FormatTable, FormatJSON},
	"o":                predict.Files("*"),
}

// Completion returns the shell completion of the commands registered in c.
//
// Calling Complete on the result completes the command line when run by the
// shell, or installs the completion when COMP_INSTALL=1.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{},
	}
	c.VisitAll(func(f *flag.Flag) {
		root.Flags[f.Name] = predictor(f.Name)
	})
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}, Args: args(cmd)}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = predictor(f.Name)
		})
		root.Sub[cmd.Name()] = sub
	})
	return root
}

func predictor(name string) complete.Predictor {
	if p, ok := flagPredictors[name]; ok {
		return p
	}
	return predict.Nothing
}

// args completes the positional arguments of cmd.
func args(cmd subcommands.Command) complete.Predictor {
	switch cmd.(type) {
	case *reportCmd, *periodicCmd, *exportCmd:
		return predict.Files("*.csv")
	case *topicCmd:
		return predict.Set(append(docs.Names(), docs.All))
	default:
		return predict.Nothing
	}
}

func periodNames() []string {
	var names []string
	for p := date.Daily; p.Valid(); p++ {
		names = append(names, p.String())
	}
	sort.Strings(names)
	return names
}
