package config

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"

	committerErrors "github.com/bashhack/committer/internal/errors"
)

// Settings is the record read from the settings file. It is loaded once at
// startup and passed by value; nothing mutates it afterwards.
type Settings struct {
	// RemoteOriginURL is the remote (name or URL) passed to git push.
	RemoteOriginURL string

	// BranchName is the branch reference passed to git push.
	BranchName string

	// FilePath is the file edited on every iteration.
	FilePath string

	// CommitSchedule is the fixed interval between iterations, in minutes.
	CommitSchedule int

	// RandomSchedule selects a random interval of 5 to 60 minutes instead of
	// CommitSchedule.
	RandomSchedule bool
}

// MaxCommitSchedule is the largest interval, in minutes, that fits in a
// time.Duration. The max tag on commit_schedule must stay equal to it.
const MaxCommitSchedule = math.MaxInt64 / int64(time.Minute)

// rawSettings mirrors the file shape. Pointers let validation tell a missing
// field apart from a zero value such as false or 0.
type rawSettings struct {
	RemoteOriginURL *string `json:"remote_origin_url" validate:"required,min=1"`
	BranchName      *string `json:"branch_name" validate:"required,min=1"`
	FilePath        *string `json:"file_path" validate:"required,min=1"`
	CommitSchedule  *int    `json:"commit_schedule" validate:"required,min=0,max=153722867"`
	RandomSchedule  *bool   `json:"random_schedule" validate:"required"`
}

var (
	jsonAPI  = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load reads and validates the settings file at path.
// Every failure is returned as a *errors.ConfigError wrapping
// errors.ErrInvalidConfiguration; there is no fallback to defaults.
func Load(fs afero.Fs, path string) (Settings, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Settings{}, committerErrors.NewConfigError("file", path,
			fmt.Errorf("%w: %w", committerErrors.ErrInvalidConfiguration, err))
	}

	return Parse(data)
}

// Parse decodes and validates a settings document. Unknown fields are ignored.
func Parse(data []byte) (Settings, error) {
	var raw rawSettings
	if err := jsonAPI.Unmarshal(data, &raw); err != nil {
		return Settings{}, committerErrors.NewConfigError("json", nil,
			fmt.Errorf("%w: failed to parse config: %w", committerErrors.ErrInvalidConfiguration, err))
	}

	if err := validate.Struct(&raw); err != nil {
		return Settings{}, validationError(err)
	}

	return Settings{
		RemoteOriginURL: *raw.RemoteOriginURL,
		BranchName:      *raw.BranchName,
		FilePath:        *raw.FilePath,
		CommitSchedule:  *raw.CommitSchedule,
		RandomSchedule:  *raw.RandomSchedule,
	}, nil
}

// validationError reports the first failing field.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !committerErrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return committerErrors.NewConfigError("settings", nil,
			fmt.Errorf("%w: %w", committerErrors.ErrInvalidConfiguration, err))
	}

	fe := fieldErrs[0]
	var reason string
	switch fe.Tag() {
	case "required":
		reason = "missing required field"
	case "min":
		reason = fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		reason = fmt.Sprintf("must be at most %s", fe.Param())
	default:
		reason = fmt.Sprintf("failed %q check", fe.Tag())
	}

	var value interface{}
	if fe.Tag() != "required" {
		value = fe.Value()
	}

	return committerErrors.NewConfigError(fe.Field(), value,
		fmt.Errorf("%w: %s", committerErrors.ErrInvalidConfiguration, reason))
}
