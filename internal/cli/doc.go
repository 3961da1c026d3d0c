// Package cli builds the corenotes command line: flag parsing, logging setup,
// API endpoint resolution and the Fyne application start-up.
package cli
