package reachability

// rootSetMembers lists declarations exempted from the reference requirement.
// These are meaningful only as implementation markers the host discovers at
// runtime and never appear in any declared signature. The list is maintained
// alongside the analyzer and is not runtime-configurable.
var rootSetMembers = []string{
	"Prism.Config.StartupPhase",
	"Prism.Render.IDiagnosticSource",
}

// RootSet returns a copy of the fixed exemption list.
func RootSet() []string {
	return append([]string(nil), rootSetMembers...)
}
