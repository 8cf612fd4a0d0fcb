// Package logger provides logging facilities for the committer application.
//
// The Logger interface distinguishes two audiences:
//
//   - Internal records (Info, Warning, Error) go to a structured JSON log file
//     through go.uber.org/zap when file logging is enabled. Info and Warning are
//     echoed to stdout in verbose mode; Error always reaches stderr.
//   - User-facing messages (InfoToUser, WarningToUser, Success, StatusMessage)
//     are always printed, with emoji prefixes and colour when stdout is a
//     terminal.
//
// # Usage
//
//	log := logger.NewWithOutput(debug, "/path/to/committer.log", verbose, os.Stdout, os.Stderr)
//	defer log.Close()
//
//	log.InfoToUser("parsed config")
//	log.Error("failed to push changes to remote: %v", err)
//
// Close must be called before exit so buffered records reach the file.
// All methods are safe for concurrent use.
package logger
