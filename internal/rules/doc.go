// Package rules evaluates independent convention rules over a declaration
// snapshot.
//
// Each rule is a pure, order-independent predicate producing its own
// violation list: visibility locality, capability/annotation pairing,
// required-option typing, single default option, and alias naming. Engine
// runs every registered rule and concatenates the findings.
package rules
