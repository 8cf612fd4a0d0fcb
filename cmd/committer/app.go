package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/spf13/afero"

	"github.com/bashhack/committer/internal/config"
	committerErrors "github.com/bashhack/committer/internal/errors"
	"github.com/bashhack/committer/internal/git"
	"github.com/bashhack/committer/internal/lock"
	"github.com/bashhack/committer/internal/logger"
	"github.com/bashhack/committer/internal/mutate"
	"github.com/bashhack/committer/internal/prompt"
	"github.com/bashhack/committer/internal/scheduler"
)

// Runner drives the commit loop
type Runner interface {
	PrintSummary()
	Run(ctx context.Context) error
	State() scheduler.State
}

// Locker manages file locking
type Locker interface {
	Acquire() error
	Release() error
}

// AppOptions contains app configuration and dependencies.
// Every field except Options is optional; nil fields get production defaults.
type AppOptions struct {
	// Options holds the runtime options (required).
	// The application will panic if this field is nil.
	Options *config.Options

	// Logger provides logging functionality.
	Logger logger.Logger

	// Locker keeps a second instance away from the same target file.
	Locker Locker

	// Runner performs the commit loop.
	Runner Runner

	// Executor runs git. Only used when Runner is nil.
	Executor git.CommandExecutor

	// Fs is the filesystem for the settings file and the target file.
	Fs afero.Fs

	// Stdin is read by the acknowledgment prompt.
	Stdin io.Reader

	// Stdout is the writer for standard output.
	Stdout io.Writer

	// Stderr is the writer for error output.
	Stderr io.Writer

	// Exit terminates the application (defaults to os.Exit).
	Exit func(code int)

	// ExecLookPath finds executables in PATH (defaults to exec.LookPath).
	ExecLookPath func(file string) (string, error)

	// IsRepository checks for a git work tree (defaults to git.IsRepository).
	IsRepository func(string) (bool, error)

	// CurrentBranch reads the checked-out branch (defaults to git.CurrentBranch).
	CurrentBranch func(string) (string, error)
}

// App is the main committer application.
// It wires the settings, the lock and the commit loop together and manages
// their lifecycle.
type App struct {
	Options  *config.Options
	Settings config.Settings
	Logger   logger.Logger
	Locker   Locker
	Runner   Runner

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	executor      git.CommandExecutor
	fs            afero.Fs
	exit          func(code int)
	execLookPath  func(file string) (string, error)
	isRepository  func(string) (bool, error)
	currentBranch func(string) (string, error)

	target      string
	initialized bool
}

// NewDefaultApp creates an App with standard dependencies and options loaded
// from the environment.
func NewDefaultApp(versionInfo config.VersionInfo) *App {
	opts := config.NewOptions()
	opts.VersionInfo = versionInfo
	opts.LoadFromEnvironment()

	return NewApp(AppOptions{Options: opts})
}

// NewApp creates an App with custom dependencies specified in opts.
func NewApp(opts AppOptions) *App {
	if opts.Options == nil {
		panic("Options is required in AppOptions")
	}

	app := &App{
		Options:       opts.Options,
		Logger:        opts.Logger,
		Locker:        opts.Locker,
		Runner:        opts.Runner,
		Stdin:         opts.Stdin,
		Stdout:        opts.Stdout,
		Stderr:        opts.Stderr,
		executor:      opts.Executor,
		fs:            opts.Fs,
		exit:          opts.Exit,
		execLookPath:  opts.ExecLookPath,
		isRepository:  opts.IsRepository,
		currentBranch: opts.CurrentBranch,
	}

	if app.Stdin == nil {
		app.Stdin = os.Stdin
	}
	if app.Stdout == nil {
		app.Stdout = os.Stdout
	}
	if app.Stderr == nil {
		app.Stderr = os.Stderr
	}
	if app.fs == nil {
		app.fs = afero.NewOsFs()
	}
	if app.exit == nil {
		app.exit = os.Exit
	}
	if app.execLookPath == nil {
		app.execLookPath = exec.LookPath
	}
	if app.isRepository == nil {
		app.isRepository = git.IsRepository
	}
	if app.currentBranch == nil {
		app.currentBranch = git.CurrentBranch
	}

	return app
}

// Initialize finalizes the options, loads the settings file once and builds
// the components not provided during construction. A settings error is
// logged and returned before any git command runs.
func (a *App) Initialize() error {
	if a.initialized {
		return nil
	}

	if err := a.Options.Finalize(a.fs); err != nil {
		return err
	}

	if a.Logger == nil {
		a.Logger = logger.NewWithOutput(a.Options.Debug, a.Options.LogFile, a.Options.Verbose, a.Stdout, a.Stderr)
	}

	settings, err := config.Load(a.fs, a.Options.ConfigPath)
	if err != nil {
		a.Logger.Error("failed to load settings from %s: %v", a.Options.ConfigPath, err)
		return err
	}
	a.Logger.Info("loaded settings from %s", a.Options.ConfigPath)
	a.Settings = settings
	a.target = a.Options.ResolveTarget(settings)

	if a.Locker == nil {
		locker, err := lock.New(a.target)
		if err != nil {
			return committerErrors.Wrap(err, "failed to initialize lock")
		}
		a.Locker = locker
	}

	if a.Runner == nil {
		a.Runner = a.newScheduler()
	}

	a.initialized = true
	return nil
}

func (a *App) newScheduler() *scheduler.Scheduler {
	var ack prompt.Acknowledger = &prompt.DefaultAcknowledger{Reader: a.Stdin, Writer: a.Stdout}
	if a.Options.NonInteractive {
		ack = prompt.NewNonInteractiveAcknowledger()
	}

	executor := a.executor
	if executor == nil {
		executor = git.NewExecExecutor()
	}

	return scheduler.NewWithDeps(scheduler.Config{
		Settings:       a.Settings,
		Target:         a.target,
		RepoPath:       a.Options.RepoPath,
		Once:           a.Options.Once,
		NonInteractive: a.Options.NonInteractive,
	}, a.Logger, scheduler.Dependencies{
		VCS:          git.NewInvokerWithExecutor(a.Options.RepoPath, a.Logger, executor),
		Mutator:      mutate.New(a.fs, nil),
		Acknowledger: ack,
	})
}

// Run executes the application with the given context
func (a *App) Run(ctx context.Context) error {
	if err := a.Initialize(); err != nil {
		return err
	}

	if err := a.checkRequiredCommands(); err != nil {
		_, _ = fmt.Fprintf(a.Stderr, "❌ Error: %v. Please install it and try again.\n", err)
		return err
	}

	isRepo, err := a.isRepository(a.Options.RepoPath)
	if err != nil {
		a.Logger.Warning("Failed to check if path is a git repository: %v", err)
		return committerErrors.Wrap(err, "failed to inspect repository")
	}
	if !isRepo {
		return committerErrors.ErrNotGitRepository
	}
	a.Logger.Info("Git repository verified")

	a.checkBranch()

	if err := a.Locker.Acquire(); err != nil {
		if committerErrors.Is(err, committerErrors.ErrAlreadyRunning) {
			return err
		}
		return committerErrors.Wrap(committerErrors.ErrLockAcquisitionFailure, err.Error())
	}

	a.displayStartupInfo()

	return a.Runner.Run(ctx)
}

// checkRequiredCommands verifies git is available in PATH
func (a *App) checkRequiredCommands() error {
	if _, err := a.execLookPath("git"); err != nil {
		return committerErrors.NewToolLaunchError("git", nil, committerErrors.New("git is not found in PATH"))
	}
	return nil
}

// checkBranch warns when pushes would publish a branch other than the one
// checked out.
func (a *App) checkBranch() {
	branch, err := a.currentBranch(a.Options.RepoPath)
	if err != nil {
		a.Logger.Warning("Failed to determine current branch: %v", err)
		return
	}
	if branch == "" {
		a.Logger.WarningToUser("HEAD is detached; pushes go to %s", a.Settings.BranchName)
		return
	}
	if branch != a.Settings.BranchName {
		a.Logger.WarningToUser("Current branch %q differs from branch_name %q", branch, a.Settings.BranchName)
	}
}

func (a *App) displayStartupInfo() {
	a.Logger.StatusMessage("🔄 committer started at %s", time.Now().Format("2006-01-02 15:04:05"))
	a.Logger.StatusMessage("📂 Repository: %s", a.Options.RepoPath)
	a.Logger.StatusMessage("📝 Target file: %s", a.target)
	a.Logger.StatusMessage("🌐 Remote: %s %s", a.Settings.RemoteOriginURL, a.Settings.BranchName)
	if a.Settings.RandomSchedule {
		a.Logger.StatusMessage("⏱️  Interval: random, %d-%d minutes", scheduler.MinRandomMinutes, scheduler.MaxRandomMinutes-1)
	} else {
		a.Logger.StatusMessage("⏱️  Interval: %d minutes", a.Settings.CommitSchedule)
	}
	a.Logger.StatusMessage("❓ Press Ctrl+C to stop and view session summary")
}

// Close releases resources held by the App
func (a *App) Close() error {
	var errs []error

	if a.Locker != nil {
		if err := a.Locker.Release(); err != nil {
			if a.Logger != nil {
				a.Logger.Error("Failed to release lock during cleanup: %v", err)
			} else {
				_, _ = fmt.Fprintf(a.Stderr, "❌ Failed to release lock during cleanup: %v\n", err)
			}
			errs = append(errs, err)
		}
	}

	if a.Logger != nil {
		if err := a.Logger.Close(); err != nil {
			_, _ = fmt.Fprintf(a.Stderr, "❌ Failed to close logger: %v\n", err)
			errs = append(errs, err)
		}
	}

	return committerErrors.Join(errs...)
}

// SignalExitCode is the status to exit with when a signal ends the run.
// A loop that already aborted on a failed step and was waiting for
// acknowledgment still exits 1.
func (a *App) SignalExitCode() int {
	if a.Runner != nil && a.Runner.State() == scheduler.Aborted {
		return 1
	}
	return 0
}

// CleanupOnSignal releases resources and shows a summary on interruption
func (a *App) CleanupOnSignal() {
	if err := a.Close(); err != nil {
		_, _ = fmt.Fprintf(a.Stderr, "❌ Error during cleanup: %v\n", err)
	}
	if a.Runner != nil {
		a.Runner.PrintSummary()
	}
}
