package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/bashhack/committer/internal/config"
	committerErrors "github.com/bashhack/committer/internal/errors"
	"github.com/bashhack/committer/internal/git"
	"github.com/bashhack/committer/internal/idgen"
	"github.com/bashhack/committer/internal/logger"
	"github.com/bashhack/committer/internal/mutate"
	"github.com/bashhack/committer/internal/prompt"
	"github.com/bashhack/committer/internal/random"
)

// VersionControl runs the three git operations of an iteration.
type VersionControl interface {
	Stage(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	Publish(ctx context.Context, remote, branch string) error
}

// FileMutator applies one random edit to the target file.
type FileMutator interface {
	Apply(path, id string) (mutate.Result, error)
}

// Config holds what the loop needs besides its collaborators.
type Config struct {
	Settings config.Settings

	// Target is the resolved path of Settings.FilePath.
	Target string

	// RepoPath is the work tree git runs in.
	RepoPath string

	// Once stops after the first successful push instead of sleeping.
	Once bool

	// NonInteractive skips the acknowledgment prompt after a failure.
	NonInteractive bool
}

// Dependencies are the injectable collaborators of a Scheduler.
// Nil fields are replaced with production implementations by NewWithDeps.
type Dependencies struct {
	VCS          VersionControl
	Mutator      FileMutator
	Random       random.Source
	Clock        Clock
	Acknowledger prompt.Acknowledger
}

// Stats summarizes a run for PrintSummary.
type Stats struct {
	Iterations  int
	Pushes      int
	Appends     int
	Truncations int
	LastID      string
	StartTime   time.Time
}

// AbortError is returned by Run after a failed step has been logged and
// acknowledged.
type AbortError struct {
	Step State
	Err  error
}

func (e *AbortError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the step's error for use with errors.Is and errors.As.
func (e *AbortError) Unwrap() error {
	return e.Err
}

// Scheduler runs the mutate, stage, commit, publish, sleep cycle.
// It is not safe for concurrent use.
type Scheduler struct {
	config       Config
	logger       logger.Logger
	vcs          VersionControl
	mutator      FileMutator
	rand         random.Source
	clock        Clock
	acknowledger prompt.Acknowledger

	// mu guards state, which a signal handler may read while Run is blocked.
	mu    sync.Mutex
	state State
	stats Stats

	// OnTransition, when set, is called on every state change.
	OnTransition func(State)
}

// New creates a Scheduler wired to git, the OS filesystem and the global
// random source.
func New(cfg Config, log logger.Logger) *Scheduler {
	return NewWithDeps(cfg, log, Dependencies{})
}

// NewWithDeps creates a Scheduler with custom collaborators.
func NewWithDeps(cfg Config, log logger.Logger, deps Dependencies) *Scheduler {
	if deps.Random == nil {
		deps.Random = random.Default()
	}
	if deps.VCS == nil {
		deps.VCS = git.NewInvoker(cfg.RepoPath, log)
	}
	if deps.Mutator == nil {
		deps.Mutator = mutate.New(nil, deps.Random)
	}
	if deps.Clock == nil {
		deps.Clock = SystemClock()
	}
	if deps.Acknowledger == nil {
		if cfg.NonInteractive {
			deps.Acknowledger = prompt.NewNonInteractiveAcknowledger()
		} else {
			deps.Acknowledger = prompt.NewDefaultAcknowledger()
		}
	}

	return &Scheduler{
		config:       cfg,
		logger:       log,
		vcs:          deps.VCS,
		mutator:      deps.Mutator,
		rand:         deps.Random,
		clock:        deps.Clock,
		acknowledger: deps.Acknowledger,
		state:        Mutating,
	}
}

// State returns the step the loop is in, or Aborted after a failure.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Stats returns a copy of the run statistics.
func (s *Scheduler) Stats() Stats {
	return s.stats
}

// Run executes iterations until one fails, ctx is cancelled, or (in once
// mode) the first iteration succeeds.
//
// A failed step is logged, the acknowledgment prompt is shown and an
// *AbortError is returned. A git launch failure is returned as is, without
// logging or the prompt.
// Cancellation returns ctx.Err().
func (s *Scheduler) Run(ctx context.Context) error {
	s.stats.StartTime = s.clock.Now()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		started := s.clock.Now()
		if err := s.RunIteration(ctx); err != nil {
			return s.abort(ctx, err)
		}

		if s.config.Once {
			return nil
		}

		delay := SleepDuration(TargetInterval(s.config.Settings, s.rand), s.clock.Now().Sub(started))
		s.transition(Sleeping)
		s.logger.Info("sleeping %s before the next commit (next commit %s)",
			delay, humanize.Time(s.clock.Now().Add(delay)))

		if err := s.clock.Sleep(ctx, delay); err != nil {
			s.logger.Info("Received cancellation signal, shutting down gracefully...")
			return err
		}
	}
}

// RunIteration performs one mutate, stage, commit, publish sequence and
// stops at the first failing step. The returned error wraps the step's
// cause with the step's failure message.
func (s *Scheduler) RunIteration(ctx context.Context) error {
	id := idgen.Generate(s.rand)

	s.transition(Mutating)
	result, err := s.mutator.Apply(s.config.Target, id)
	if err != nil {
		return s.fail(err)
	}
	s.logger.Info("%s %s: %d -> %d bytes", result.Kind, s.config.Target, result.LengthBefore, result.LengthAfter)

	s.transition(Staging)
	if err := s.vcs.Stage(ctx); err != nil {
		return s.fail(err)
	}

	s.transition(Committing)
	if err := s.vcs.Commit(ctx, git.CommitMessage(id)); err != nil {
		return s.fail(err)
	}

	s.transition(Publishing)
	if err := s.vcs.Publish(ctx, s.config.Settings.RemoteOriginURL, s.config.Settings.BranchName); err != nil {
		return s.fail(err)
	}

	s.stats.Iterations++
	s.stats.Pushes++
	s.stats.LastID = id
	if result.Kind == mutate.Truncated {
		s.stats.Truncations++
	} else {
		s.stats.Appends++
	}

	s.logger.Success("pushed a commit with ID: %s", id)
	return nil
}

// fail wraps err with the current step's message.
func (s *Scheduler) fail(err error) error {
	return committerErrors.Wrap(err, s.state.failureMessage())
}

func (s *Scheduler) abort(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		s.logger.Info("Received cancellation signal, shutting down gracefully...")
		return ctxErr
	}

	failed := s.state
	s.transition(Aborted)

	if committerErrors.Is(err, committerErrors.ErrToolLaunch) {
		return err
	}

	s.logger.Error("%v", err)
	s.logger.Info("aborting after %s failed", failed)
	s.acknowledger.WaitForAcknowledgment()
	return &AbortError{Step: failed, Err: err}
}

func (s *Scheduler) transition(next State) {
	s.mu.Lock()
	s.state = next
	s.mu.Unlock()
	if s.OnTransition != nil {
		s.OnTransition(next)
	}
}

// PrintSummary prints a summary of the committer session
func (s *Scheduler) PrintSummary() {
	duration := s.clock.Now().Sub(s.stats.StartTime)
	if s.stats.StartTime.IsZero() {
		duration = 0
	}
	hours := int(duration.Hours())
	minutes := int(duration.Minutes()) % 60
	seconds := int(duration.Seconds()) % 60

	s.logger.StatusMessage("")
	s.logger.StatusMessage("---------------------------------------------")
	s.logger.StatusMessage("📊 committer Session Summary")
	s.logger.StatusMessage("---------------------------------------------")
	s.logger.StatusMessage("✅ Commits pushed: %s", humanize.Comma(int64(s.stats.Pushes)))
	s.logger.StatusMessage("✂️  Truncations: %d, appends: %d", s.stats.Truncations, s.stats.Appends)
	if s.stats.LastID != "" {
		s.logger.StatusMessage("🏷️  Last identifier: %s", s.stats.LastID)
	}
	s.logger.StatusMessage("⏱️  Session duration: %dh %dm %ds", hours, minutes, seconds)
	s.logger.StatusMessage("🌿 Target: %s -> %s %s", s.config.Target,
		s.config.Settings.RemoteOriginURL, s.config.Settings.BranchName)
	s.logger.StatusMessage("---------------------------------------------")
	s.logger.StatusMessage("🛑 committer terminated at %s", s.clock.Now().Format("2006-01-02 15:04:05"))
}
