// Package clicommon holds the input-selection, formatting, and logging glue
// shared by the five cmd/ executables, so each command's main.go only wires
// its own flags and business logic. Grounded on nektos/act's cmd/root.go,
// generalized from one Cobra command with subcommands to five independent
// single-command binaries (matching the five separate original_source/*.cpp
// programs this module's cmd/ package mirrors).
package clicommon
