// Package reachability reports public enum and capability declarations that
// the audited module's own structural surface never references.
//
// It builds the usage counter table, seeds the fixed root set of
// implementation-marker declarations, and collects every tracked declaration
// whose counter stays zero into a deterministically ordered violation list.
package reachability
