// Package cli assembles the declaudit command-line application: the Cobra
// root command, layered configuration loading, structured logging, and the
// audit subcommand.
package cli
