// Package main hosts the gradecheck CLI entrypoint and command graph.
//
// Every report command takes one transcript export, loads it into a session,
// applies the window and category flags as the selection, and prints tables
// or JSON. Configuration and logging are resolved once per invocation by the
// command context so subcommands only deal with presentation.
package main
