package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"

	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"

	"github.com/sanverite/locale-shim/internal/build"
	"github.com/sanverite/locale-shim/internal/core"
	"github.com/sanverite/locale-shim/internal/env"
	"github.com/sanverite/locale-shim/internal/probe"
	"github.com/sanverite/locale-shim/internal/report"
)

func main() {
	var (
		format       = pflag.String("format", "text", "report format: text, json or yaml")
		warnCLocale  = pflag.Bool("warn-c-locale", build.WarnOnCLocaleEnabled(), "emit the degenerate-locale advisory when the process stays ASCII-classified")
		probeTimeout = pflag.Duration("probe-timeout", probe.DefaultTimeout, "bound for each OS locale consultation")
		showVersion  = pflag.Bool("version", false, "print version and exit")
	)
	pflag.Parse()

	logger := log.Default()

	if *showVersion {
		fmt.Printf("%s %s\n", build.AppName, build.Version)
		return
	}

	f, err := report.ParseFormat(*format)
	if err != nil {
		logger.Fatalf("localeshim: %v", err)
	}

	// Startup sequence: snapshot the environment, negotiate, derive the
	// encoding policy, report the outcome. Order matters; the policy and
	// the diagnostics both read the terminal snapshot.
	view := env.Snapshot()
	activator := probe.NewSystemActivator(probe.Config{Timeout: *probeTimeout})

	ctx := context.Background()
	state, err := core.NewNegotiator(activator).Run(ctx, view)
	if err != nil {
		// Degraded, not fatal: the state is still terminal and valid.
		logger.Printf("localeshim: %v", err)
	}
	snap := state.GetSnapshot()
	enc := core.ResolveEncoding(ctx, snap, activator)
	core.NewEmitter(os.Stderr, *warnCLocale).Emit(snap, enc)

	if args := pflag.Args(); len(args) > 0 {
		execChild(logger, args)
		return
	}
	if err := report.Render(os.Stdout, f, report.FromCoreSnapshot(snap, enc)); err != nil {
		logger.Fatalf("localeshim: render report: %v", err)
	}
}

// execChild replaces this process with the wrapped command, which inherits
// the coerced environment. Does not return on success.
func execChild(logger *log.Logger, args []string) {
	path, err := exec.LookPath(args[0])
	if err != nil {
		logger.Printf("localeshim: %v", err)
		os.Exit(127)
	}
	if err := unix.Exec(path, args, os.Environ()); err != nil {
		logger.Printf("localeshim: exec %s: %v", path, err)
		os.Exit(126)
	}
}
