package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/launchdarkly/spec-contract-tests/conformance"
	"github.com/launchdarkly/spec-contract-tests/framework"
	"github.com/launchdarkly/spec-contract-tests/samples/datastore"

	"github.com/fatih/color"
)

const defaultPort = 8111
const statusQueryTimeout = time.Second * 10

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}
	os.Exit(run(params))
}

// run returns the process exit code, so that deferred cleanup happens before main exits.
func run(params commandParams) int {
	if params.noColor {
		color.NoColor = true
	}

	var debugLogger framework.Logger = framework.NullLogger()
	if params.debug {
		debugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	serviceURL := params.serviceURL
	if serviceURL == "" {
		handler := datastore.NewHandler(datastore.NewMemoryStore(), "reference datastore service",
			framework.LoggerWithPrefix(debugLogger, "[reference service] "))
		server, err := datastore.StartServer(params.port, handler, debugLogger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Reference service error: %s\n", err)
			return 1
		}
		defer server.Close()
		serviceURL = fmt.Sprintf("http://localhost:%d", params.port)
	}

	info, err := datastore.QueryServiceInfo(serviceURL, statusQueryTimeout, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Datastore service error: %s\n", err)
		return 1
	}

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	registry := append(datastore.MemoryRegistry(),
		datastore.HTTPRegistry(serviceURL, info, framework.LoggerWithPrefix(debugLogger, "[http store] "))...)

	collector := &framework.Collector{TestLogger: framework.ProgressLogger{Out: os.Stdout}}
	if params.debug {
		collector.TestLogger = &ConsoleTestLogger{DebugOutputOnFailure: true}
	}

	fmt.Println("Running specification tests")
	started := time.Now()
	datastore.RunSuite(collector, registry, params.filters.AsFilter)
	fmt.Println()

	framework.PrintReport(os.Stdout, collector)

	if params.reportPath != "" {
		if err := framework.WriteReport(params.reportPath, framework.NewReport(collector, started)); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	if !collector.Summary().OK() {
		if failed := failedContracts(collector, datastore.Validators()); len(failed) > 0 {
			fmt.Println()
			fmt.Println("To check only the failed contracts again:")
			fmt.Printf("  %s\n", rerunCommand(os.Args, params, failed))
		}
		return 1
	}
	return 0
}

// failedContracts returns the names of the contracts mentioned in any recorded failure.
func failedContracts(c *framework.Collector, validators conformance.Validators) []string {
	var ret []string
	for _, cv := range validators {
		name := cv.Contract.Name
		for _, f := range c.Failures() {
			if strings.HasPrefix(f.Message, name+" ") || strings.HasSuffix(f.Message, " "+name) {
				ret = append(ret, name)
				break
			}
		}
	}
	return ret
}
