// Command innerdd solves a multiobjective linear program by the inner
// approximation (double description) method and prints its extremal
// vertices and, optionally, the facets of the approximating polyhedron.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/csirmaz-dd/innerdd/config"
	"github.com/csirmaz-dd/innerdd/driver"
	"github.com/csirmaz-dd/innerdd/vlp"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	action, p, err := config.Load(args)
	if err != nil {
		var ie *config.InputError
		if errors.As(err, &ie) {
			fmt.Fprintln(os.Stderr, ie.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		fmt.Fprintf(os.Stderr, "Use '%s --help' for a complete list of options.\n", programName)
		return int(driver.ExitInputError)
	}

	switch action {
	case config.ActionShortHelp:
		fmt.Print(shortHelpText)
		return int(driver.ExitOK)
	case config.ActionLongHelp:
		fmt.Print(longHelpText)
		return int(driver.ExitOK)
	case config.ActionVLPHelp:
		fmt.Print(vlpHelpText)
		return int(driver.ExitOK)
	case config.ActionOutHelp:
		fmt.Print(outHelpText)
		return int(driver.ExitOK)
	case config.ActionVersion:
		fmt.Print(versionText())
		return int(driver.ExitOK)
	case config.ActionDumpConfig:
		fmt.Print(config.DumpDefaultConfig())
		return int(driver.ExitOK)
	}

	f, err := os.Open(p.VlpFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot open %q: %v\n", programName, p.VlpFile, err)
		return int(driver.ExitInputError)
	}
	problem, err := vlp.Parse(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", programName, err)
		return int(driver.ExitInputError)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var breakFlag int32
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		for range sigCh {
			atomic.AddInt32(&breakFlag, 1)
		}
	}()

	return int(driver.Execute(ctx, *p, problem, &breakFlag))
}
