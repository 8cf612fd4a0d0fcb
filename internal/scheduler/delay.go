package scheduler

import (
	"time"

	"github.com/bashhack/committer/internal/config"
	"github.com/bashhack/committer/internal/random"
)

const (
	// MinRandomMinutes is the shortest interval random mode can draw.
	MinRandomMinutes = 5
	// MaxRandomMinutes is the exclusive upper bound of random mode.
	MaxRandomMinutes = 61
)

// TargetInterval returns the delay between the start of two iterations before
// the time spent working is subtracted. Random mode draws whole minutes in
// [MinRandomMinutes, MaxRandomMinutes); fixed mode uses CommitSchedule.
func TargetInterval(s config.Settings, src random.Source) time.Duration {
	if s.RandomSchedule {
		minutes := MinRandomMinutes + src.IntN(MaxRandomMinutes-MinRandomMinutes)
		return time.Duration(minutes) * time.Minute
	}
	return time.Duration(s.CommitSchedule) * time.Minute
}

// SleepDuration subtracts elapsed from target, never going below zero.
// An overrun does not shorten later intervals.
func SleepDuration(target, elapsed time.Duration) time.Duration {
	if elapsed >= target {
		return 0
	}
	return target - elapsed
}
