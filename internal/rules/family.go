package rules

import "declaudit/internal/metadata"

// The extensible rendering plug-in family of the audited Prism module.
// Concrete renderers subclass RendererBase; wrapping renderers subclass
// WrapperRendererBase, which itself derives from RendererBase.
const (
	rendererBaseTypeNameConstant        = "Prism.Render.RendererBase"
	wrapperRendererBaseTypeNameConstant = "Prism.Render.WrapperRendererBase"
	rendererNameSuffixConstant          = "Renderer"
	wrapperRendererNameSuffixConstant   = "RendererWrapper"
)

// isRendererFamilyMember reports whether the declaration's base chain
// reaches the renderer base.
func isRendererFamilyMember(snapshot *metadata.Snapshot, declaredType *metadata.DeclaredType) bool {
	return snapshot.DerivesFrom(declaredType, rendererBaseTypeNameConstant)
}

// isWrapperRenderer reports whether the declaration's base chain reaches the
// wrapper renderer base.
func isWrapperRenderer(snapshot *metadata.Snapshot, declaredType *metadata.DeclaredType) bool {
	return snapshot.DerivesFrom(declaredType, wrapperRendererBaseTypeNameConstant)
}

// isConcreteClass reports whether the declaration is an instantiable class.
func isConcreteClass(declaredType *metadata.DeclaredType) bool {
	return declaredType.Kind == metadata.TypeKindClass && !declaredType.IsAbstract
}
