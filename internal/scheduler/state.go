package scheduler

// State identifies the step the loop is currently executing.
type State int

const (
	// Mutating applies one random edit to the target file.
	Mutating State = iota
	// Staging runs git add.
	Staging
	// Committing runs git commit.
	Committing
	// Publishing runs git push.
	Publishing
	// Sleeping waits out the rest of the interval.
	Sleeping
	// Aborted is terminal. It is entered when any step fails.
	Aborted
)

func (s State) String() string {
	switch s {
	case Mutating:
		return "MUTATING"
	case Staging:
		return "STAGING"
	case Committing:
		return "COMMITTING"
	case Publishing:
		return "PUBLISHING"
	case Sleeping:
		return "SLEEPING"
	case Aborted:
		return "ABORTED"
	default:
		return "UNKNOWN"
	}
}

// failureMessage is the log line written when the step fails.
func (s State) failureMessage() string {
	switch s {
	case Mutating:
		return "failed to modify file"
	case Staging:
		return "failed to stage changes with `git add .`"
	case Committing:
		return "failed to commit changes"
	case Publishing:
		return "failed to push changes to remote"
	default:
		return "step failed"
	}
}
