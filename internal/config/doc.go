// Package config provides configuration handling for committer.
//
// Two kinds of configuration live here:
//
//   - Settings: the immutable record read once from the JSON settings file
//     (remote_origin_url, branch_name, file_path, commit_schedule,
//     random_schedule). Every field is required; a missing field, a value of
//     the wrong type or a document that does not parse is a *errors.ConfigError.
//   - Options: how the program itself runs (settings file location, work
//     tree, verbosity, logging, --once, --non-interactive).
//
// # Configuration Sources
//
// Options are loaded with the following precedence:
//
// 1. Command-line flags (highest priority)
// 2. Environment variables (COMMITTER_*)
// 3. Default values (lowest priority)
//
// # Usage
//
//	opts := config.NewOptions()
//	opts.LoadFromEnvironment()
//	opts.SetupFlags(flags)
//	// parse flags
//	opts.ApplyFlags(flags)
//	if err := opts.Finalize(nil); err != nil {
//	    // Handle error
//	}
//
//	settings, err := config.Load(nil, opts.ConfigPath)
//	if err != nil {
//	    // Handle error; there is no fallback to defaults
//	}
//	target := opts.ResolveTarget(settings)
package config
