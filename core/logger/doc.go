// Package logger is the activity log format for the shell: one JSON object
// per line, appended after each command finishes.
package logger
