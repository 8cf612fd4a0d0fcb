package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bashhack/committer/internal/config"
	committerErrors "github.com/bashhack/committer/internal/errors"
	"github.com/bashhack/committer/internal/scheduler"
)

// Version information - injected at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	app := NewDefaultApp(config.VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		sig := <-c
		_, _ = fmt.Fprintf(app.Stdout, "\nReceived signal %v, stopping committer...\n", sig)

		cancel()

		// A git push can ignore the cancelled context for a while; give up
		// waiting after a grace period.
		time.Sleep(5 * time.Second)
		app.CleanupOnSignal()
		app.exit(app.SignalExitCode())
	}()

	app.exit(execute(ctx, app, os.Args[1:]))
}

// execute runs the root command and maps its outcome to an exit status:
// 0 for a finished --once run or a signal, 1 for everything else.
func execute(ctx context.Context, app *App, args []string) int {
	root := newRootCommand(app)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			_, _ = fmt.Fprintf(app.Stderr, "❌ Error during cleanup: %v\n", closeErr)
		}
	}()

	switch {
	case err == nil:
		if app.initialized {
			app.Runner.PrintSummary()
		}
		return 0
	case committerErrors.Is(err, context.Canceled):
		if app.initialized {
			app.Runner.PrintSummary()
		}
		return 0
	}

	// Step failures were already logged and acknowledged by the loop.
	var abortErr *scheduler.AbortError
	if !committerErrors.As(err, &abortErr) {
		_, _ = fmt.Fprintf(app.Stderr, "❌ Error: %v\n", err)
	}
	return 1
}

func newRootCommand(app *App) *cobra.Command {
	info := app.Options.VersionInfo

	cmd := &cobra.Command{
		Use:   "committer",
		Short: "Periodically edit a file, commit it and push the commit",
		Long: `committer loads committer.json, then forever: edits the configured file,
runs git add, git commit and git push, and sleeps for a fixed or random
interval. Any failed step stops the run.`,
		Version:       fmt.Sprintf("%s (%s) built on %s", info.Version, info.Commit, info.Date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.Options.ApplyFlags(cmd.Flags())
			return app.Run(cmd.Context())
		},
	}

	cmd.SetOut(app.Stdout)
	cmd.SetErr(app.Stderr)
	cmd.SetVersionTemplate("committer {{.Version}}\n")
	app.Options.SetupFlags(cmd.Flags())

	return cmd
}
