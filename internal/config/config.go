package config

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	committerErrors "github.com/bashhack/committer/internal/errors"
)

const (
	// DefaultConfigFile is the settings file looked up in the working directory.
	DefaultConfigFile = "committer.json"

	// LegacyConfigFile is the historical, misspelled settings file name.
	// It is used only when DefaultConfigFile does not exist.
	LegacyConfigFile = "comitter.json"

	// EnvPrefix prefixes every environment variable read by LoadFromEnvironment.
	EnvPrefix = "COMMITTER_"
)

// Options holds the runtime options of the application: where to find the
// settings file and the repository, and how to log. They come from defaults,
// environment variables and command-line flags, in that order of precedence.
type Options struct {
	// ConfigPath is the settings file. Relative paths are resolved against
	// the current working directory.
	ConfigPath string

	// RepoPath is the git work tree to operate in.
	// If empty, the current working directory is used.
	RepoPath string

	// Verbose echoes internal info and warnings to stdout.
	Verbose bool

	// NonInteractive skips the acknowledgment prompt after a failed step.
	NonInteractive bool

	// Once runs a single iteration and exits instead of looping.
	Once bool

	// Debug enables the structured log file.
	Debug bool

	// LogFile is where structured logs are written when Debug is set.
	// If empty, a per-repository file under the XDG data directory is used.
	LogFile string

	// VersionInfo contains version, commit, and build date information.
	VersionInfo VersionInfo

	quiet bool
}

// VersionInfo contains build-time version metadata.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewOptions creates Options with default values
func NewOptions() *Options {
	return &Options{
		ConfigPath: DefaultConfigFile,
		Verbose:    true,
		VersionInfo: VersionInfo{
			Version: "dev",
			Commit:  "unknown",
			Date:    "unknown",
		},
	}
}

// LoadFromEnvironment updates options from COMMITTER_* environment variables
func (o *Options) LoadFromEnvironment() {
	o.ConfigPath = getEnvString("CONFIG", o.ConfigPath)
	o.RepoPath = getEnvString("REPO_PATH", o.RepoPath)
	o.Verbose = getEnvBool("VERBOSE", o.Verbose)
	o.NonInteractive = getEnvBool("NON_INTERACTIVE", o.NonInteractive)
	o.Debug = getEnvBool("DEBUG", o.Debug)
	o.LogFile = getEnvString("LOG_FILE", o.LogFile)
}

// SetupFlags registers command-line flags that override the current values
func (o *Options) SetupFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ConfigPath, "config", "c", o.ConfigPath, "Path to the settings file")
	fs.StringVar(&o.RepoPath, "repo", o.RepoPath, "Path to the git work tree (default: current directory)")
	fs.BoolVar(&o.quiet, "quiet", !o.Verbose, "Hide informational messages")
	fs.BoolVar(&o.NonInteractive, "non-interactive", o.NonInteractive, "Exit without waiting for a key press after a failure")
	fs.BoolVar(&o.Once, "once", o.Once, "Run a single iteration and exit")
	fs.BoolVar(&o.Debug, "debug", o.Debug, "Enable structured debug logging to a file")
	fs.StringVar(&o.LogFile, "log-file", o.LogFile, "Path to log file (default: ~/.local/share/committer/logs/committer-{repo-hash}.log)")
}

// ApplyFlags applies inverted flags once parsing succeeded
func (o *Options) ApplyFlags(fs *pflag.FlagSet) {
	if fs.Changed("quiet") {
		o.Verbose = !o.quiet
	}
}

// Finalize validates the options and fills in derived values: absolute repo
// path, resolved settings path, and default log file location.
func (o *Options) Finalize(fs afero.Fs) error {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	if o.RepoPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return committerErrors.NewConfigError("repoPath", "", committerErrors.Wrap(err, "failed to get current directory"))
		}
		o.RepoPath = wd
	}

	absRepoPath, err := filepath.Abs(o.RepoPath)
	if err != nil {
		return committerErrors.NewConfigError("repoPath", o.RepoPath, committerErrors.Wrap(err, "failed to resolve absolute path"))
	}
	o.RepoPath = absRepoPath

	if o.ConfigPath == "" {
		return committerErrors.NewConfigError("config", nil, committerErrors.Wrap(committerErrors.ErrInvalidConfiguration, "settings file path must not be empty"))
	}

	if o.ConfigPath == DefaultConfigFile {
		if exists, _ := afero.Exists(fs, DefaultConfigFile); !exists {
			if legacy, _ := afero.Exists(fs, LegacyConfigFile); legacy {
				o.ConfigPath = LegacyConfigFile
			}
		}
	}

	if o.LogFile == "" {
		o.LogFile = defaultLogFile(o.RepoPath)
	}

	return nil
}

// ResolveTarget returns the absolute location of the settings' target file.
// Relative paths are interpreted inside the repository.
func (o *Options) ResolveTarget(s Settings) string {
	if filepath.IsAbs(s.FilePath) {
		return filepath.Clean(s.FilePath)
	}
	return filepath.Join(o.RepoPath, s.FilePath)
}

// defaultLogFile follows the XDG Base Directory Specification
func defaultLogFile(repoPath string) string {
	logDir := os.Getenv("XDG_DATA_HOME")
	if logDir == "" {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			logDir = filepath.Join(homeDir, ".local", "share")
		} else {
			logDir = os.TempDir()
		}
	}

	repoHash := fmt.Sprintf("%x", sha256OfString(repoPath)[:8])
	return filepath.Join(logDir, "committer", "logs", fmt.Sprintf("committer-%s.log", repoHash))
}

// getEnvString returns an environment variable string or a default value
func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(EnvPrefix + key); exists {
		return value
	}
	return defaultValue
}

// getEnvBool returns an environment variable as bool or a default value
func getEnvBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(EnvPrefix + key); exists {
		switch strings.ToLower(valueStr) {
		case "true", "yes":
			return true
		case "false", "no":
			return false
		}
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
		// For any other value, fall back to default
	}
	return defaultValue
}

// sha256OfString returns the SHA256 hash of a string
func sha256OfString(input string) []byte {
	hash := sha256.Sum256([]byte(input))
	return hash[:]
}
