// Package log provides the global zerolog logger for herald diagnostics.
//
// User-facing output (progress lines, the success/failure banner) goes to
// stdout via the cli package; this logger carries diagnostic detail on
// stderr. Output is human-readable when stderr is a terminal and JSON
// otherwise. The default level is warn so normal runs stay quiet.
package log
