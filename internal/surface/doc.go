// Package surface drives the declaration-surface audit exposed by the
// declaudit CLI.
//
// It exposes CommandBuilder for wiring the audit Cobra command, Service for
// running the audit programmatically, and the collaborator abstractions for
// snapshot loading, reachability analysis, and convention evaluation.
package surface
