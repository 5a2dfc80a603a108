// Package logging configures the slog default logger for the command line
// tool.
//
// Records are written to stderr so that reports on stdout stay clean. Every
// record carries the service name and, when the context holds one, the path
// of the input file being processed.
package logging
