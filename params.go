package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/launchdarkly/spec-contract-tests/framework"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	serviceURL string
	port       int
	filters    framework.RegexFilters
	reportPath string
	debug      bool
	noColor    bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.serviceURL, "url", "", "datastore service URL (if omitted, a local reference service is started)")
	fs.IntVar(&c.port, "port", defaultPort, "port for the local reference service")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select contracts to check")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select contracts not to check")
	fs.StringVar(&c.reportPath, "report", "", "write a YAML report of the run to this file")
	fs.BoolVar(&c.debug, "debug", false, "print each case and its debug output instead of progress markers")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand builds a command line that checks only the named contracts again.
func rerunCommand(args []string, c commandParams, contracts []string) string {
	var b commandBuilder
	b.add(args[0])
	if c.serviceURL != "" {
		b.add("-url", c.serviceURL)
	}
	if c.debug {
		b.add("-debug")
	}
	for _, name := range contracts {
		b.add("-run", "^"+name+"$")
	}
	return b.String()
}
