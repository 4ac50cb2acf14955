package metadata

// Snapshot is the immutable per-run view of every type declared by the
// audited module. All audit state derives from one snapshot and is discarded
// when the run ends.
type Snapshot struct {
	ModuleName     string
	declaredTypes  []DeclaredType
	ordinalsByName map[string]int
}

// NewSnapshot indexes the provided declarations and assigns each a stable
// ordinal in declaration order.
func NewSnapshot(moduleName string, declaredTypes []DeclaredType) *Snapshot {
	snapshot := &Snapshot{
		ModuleName:     moduleName,
		declaredTypes:  make([]DeclaredType, len(declaredTypes)),
		ordinalsByName: make(map[string]int, len(declaredTypes)),
	}

	copy(snapshot.declaredTypes, declaredTypes)
	for ordinal := range snapshot.declaredTypes {
		snapshot.declaredTypes[ordinal].Ordinal = ordinal
		snapshot.ordinalsByName[snapshot.declaredTypes[ordinal].FullName] = ordinal
	}

	return snapshot
}

// Count returns the number of declared types in the snapshot.
func (snapshot *Snapshot) Count() int {
	return len(snapshot.declaredTypes)
}

// Types returns the declared types in declaration order. Callers must treat
// the returned slice as read-only.
func (snapshot *Snapshot) Types() []DeclaredType {
	return snapshot.declaredTypes
}

// Lookup resolves a fully-qualified name to its declaration.
func (snapshot *Snapshot) Lookup(fullName string) (*DeclaredType, bool) {
	ordinal, found := snapshot.ordinalsByName[fullName]
	if !found {
		return nil, false
	}
	return &snapshot.declaredTypes[ordinal], true
}

// Owns reports whether the fully-qualified name belongs to the audited
// module. Names that do not resolve are foreign.
func (snapshot *Snapshot) Owns(fullName string) bool {
	_, found := snapshot.ordinalsByName[fullName]
	return found
}

// DerivesFrom reports whether the declaration's base chain reaches the named
// ancestor. The walk tolerates cycles and foreign bases.
func (snapshot *Snapshot) DerivesFrom(declaredType *DeclaredType, ancestorFullName string) bool {
	visited := make(map[string]struct{})
	current := declaredType
	for current != nil {
		if len(current.BaseName) == 0 {
			return false
		}
		if current.BaseName == ancestorFullName {
			return true
		}
		if _, seen := visited[current.FullName]; seen {
			return false
		}
		visited[current.FullName] = struct{}{}

		next, found := snapshot.Lookup(current.BaseName)
		if !found {
			return false
		}
		current = next
	}
	return false
}

// CapabilityClosure collects every module-owned capability the declaration
// implements, directly or through its base chain, including capabilities
// extended by other capabilities.
func (snapshot *Snapshot) CapabilityClosure(declaredType *DeclaredType) []*DeclaredType {
	closure := make([]*DeclaredType, 0, len(declaredType.Implements))
	visitedTypes := make(map[string]struct{})
	visitedCapabilities := make(map[string]struct{})

	current := declaredType
	for current != nil {
		if _, seen := visitedTypes[current.FullName]; seen {
			break
		}
		visitedTypes[current.FullName] = struct{}{}

		closure = snapshot.appendCapabilities(closure, current.Implements, visitedCapabilities)

		if len(current.BaseName) == 0 {
			break
		}
		next, found := snapshot.Lookup(current.BaseName)
		if !found {
			break
		}
		current = next
	}

	return closure
}

func (snapshot *Snapshot) appendCapabilities(closure []*DeclaredType, capabilityNames []string, visited map[string]struct{}) []*DeclaredType {
	for _, capabilityName := range capabilityNames {
		if _, seen := visited[capabilityName]; seen {
			continue
		}
		visited[capabilityName] = struct{}{}

		capability, found := snapshot.Lookup(capabilityName)
		if !found {
			continue
		}
		closure = append(closure, capability)
		closure = snapshot.appendCapabilities(closure, capability.Implements, visited)
	}
	return closure
}
