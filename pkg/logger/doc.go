// Package logger provides the structured logging interface used across the
// influencer finder.
//
// It wraps zerolog. Console output is human readable and coloured unless
// disabled; setting format to "json" emits one JSON object per line for
// server deployments. When a file is configured, lines are also written to
// it and the file is rotated by size.
//
//	err := logger.Initialize(&cfg.Logging)
//	logger.WithField("mode", cfg.Mode).Info("Server starting")
//
// Components take a Logger in their constructors. Tests pass
// NewTestLogger() to assert on captured messages or NewNopLogger() to
// silence output.
package logger
