package usage

import (
	"fmt"

	"declaudit/internal/metadata"
)

const (
	unknownSeedTemplateConstant = "seeded declaration %s does not exist in the snapshot"
)

// Graph maps every declared type ordinal to a non-negative reference
// counter. It is built once per run from a fixed snapshot.
type Graph struct {
	snapshot *metadata.Snapshot
	counters []int
}

// BuildGraph walks every declaration in the snapshot and counts each
// structural reference to a module-owned type.
//
// Open generic definitions are skipped as traversal sources; their unbound
// signatures never charge references, but the definitions remain valid
// targets of closed instantiations. Foreign types are ignored wherever they
// appear in an unwrap chain.
func BuildGraph(snapshot *metadata.Snapshot) *Graph {
	graph := &Graph{
		snapshot: snapshot,
		counters: make([]int, snapshot.Count()),
	}

	declaredTypes := snapshot.Types()
	for typeIndex := range declaredTypes {
		declaredType := &declaredTypes[typeIndex]
		if declaredType.IsOpenGeneric() {
			continue
		}

		graph.countName(declaredType.BaseName)
		for _, capabilityName := range declaredType.Implements {
			graph.countName(capabilityName)
		}

		for memberIndex := range declaredType.Members {
			member := &declaredType.Members[memberIndex]
			graph.countReference(member.Returns)
			for parameterIndex := range member.Parameters {
				graph.countReference(member.Parameters[parameterIndex])
			}
		}
	}

	return graph
}

// ReferenceCount returns the counter for the named declaration, or zero for
// foreign names.
func (graph *Graph) ReferenceCount(fullName string) int {
	declaredType, found := graph.snapshot.Lookup(fullName)
	if !found {
		return 0
	}
	return graph.counters[declaredType.Ordinal]
}

// Seed marks a declaration as referenced regardless of the module surface.
// Seeding a name absent from the snapshot is a defect in the auditor's own
// configuration and reported as an error.
func (graph *Graph) Seed(fullName string) error {
	declaredType, found := graph.snapshot.Lookup(fullName)
	if !found {
		return fmt.Errorf(unknownSeedTemplateConstant, fullName)
	}
	graph.counters[declaredType.Ordinal]++
	return nil
}

// countReference unwraps arrays to the element type, charges generic
// instantiations to their open definition plus each type argument, and
// otherwise charges the named type when module-owned.
func (graph *Graph) countReference(reference metadata.TypeReference) {
	unwrapped := reference.Unwrap()

	if unwrapped.IsInstantiation() {
		graph.countName(unwrapped.Name)
		for argumentIndex := range unwrapped.Arguments {
			graph.countReference(unwrapped.Arguments[argumentIndex])
		}
		return
	}

	graph.countName(unwrapped.Name)
}

func (graph *Graph) countName(fullName string) {
	if len(fullName) == 0 {
		return
	}
	declaredType, found := graph.snapshot.Lookup(fullName)
	if !found {
		return
	}
	graph.counters[declaredType.Ordinal]++
}
