package metadata

//go:generate go tool stringer -type=TypeKind -linecomment

// TypeKind classifies a declaration within the audited module.
type TypeKind int

// Supported declaration kinds.
const (
	TypeKindClass      TypeKind = iota // class
	TypeKindCapability                 // capability
	TypeKindEnum                       // enum
)

// Visibility describes whether a declaration is reachable from outside the
// audited module.
type Visibility string

// Supported visibility values.
const (
	VisibilityPublic    Visibility = "public"
	VisibilityNonPublic Visibility = "non-public"
)

// AnnotationKind tags an annotation attached to a declaration or member.
type AnnotationKind string

// Annotation kinds recognized by the audit rules.
const (
	AnnotationKindRequiredOption      AnnotationKind = "required-option"
	AnnotationKindDefaultOption       AnnotationKind = "default-option"
	AnnotationKindThreadAgnostic      AnnotationKind = "thread-agnostic"
	AnnotationKindFixedOutput         AnnotationKind = "app-domain-fixed-output"
	AnnotationKindRawValueCapable     AnnotationKind = "raw-value-capable"
	AnnotationKindStringValueRenderer AnnotationKind = "string-value-renderer"
	AnnotationKindAlias               AnnotationKind = "alias"
)

// Annotation is a kind tag with an optional payload attached to a declared
// type or member.
type Annotation struct {
	Kind  AnnotationKind
	Value string
}

// MemberSignature captures the structural surface of one declared member.
type MemberSignature struct {
	Name        string
	Returns     TypeReference
	Parameters  []TypeReference
	Annotations []Annotation
}

// HasAnnotation reports whether the member carries an annotation of the given kind.
func (member MemberSignature) HasAnnotation(kind AnnotationKind) bool {
	_, found := member.AnnotationValue(kind)
	return found
}

// AnnotationValue returns the payload of the first annotation of the given kind.
func (member MemberSignature) AnnotationValue(kind AnnotationKind) (string, bool) {
	for annotationIndex := range member.Annotations {
		if member.Annotations[annotationIndex].Kind == kind {
			return member.Annotations[annotationIndex].Value, true
		}
	}
	return "", false
}

// DeclaredType describes one type declared within the audited module.
//
// Ordinal is a stable small-integer identity assigned in declaration order by
// the loader; it indexes the flat counter table maintained by the usage graph.
type DeclaredType struct {
	Ordinal        int
	FullName       string
	Kind           TypeKind
	Visibility     Visibility
	Namespace      string
	IsAbstract     bool
	IsNested       bool
	TypeParameters []string
	BaseName       string
	Implements     []string
	Members        []MemberSignature
	Annotations    []Annotation
}

// IsOpenGeneric reports whether the declaration is an open generic definition.
func (declaredType *DeclaredType) IsOpenGeneric() bool {
	return len(declaredType.TypeParameters) > 0
}

// IsPublic reports whether the declaration is externally visible.
func (declaredType *DeclaredType) IsPublic() bool {
	return declaredType.Visibility == VisibilityPublic
}

// LocalName returns the declaration name without its namespace path.
func (declaredType *DeclaredType) LocalName() string {
	fullName := declaredType.FullName
	for index := len(fullName) - 1; index >= 0; index-- {
		if fullName[index] == namespaceSeparatorByte {
			return fullName[index+1:]
		}
	}
	return fullName
}

// HasAnnotation reports whether the declaration carries an annotation of the given kind.
func (declaredType *DeclaredType) HasAnnotation(kind AnnotationKind) bool {
	_, found := declaredType.AnnotationValue(kind)
	return found
}

// AnnotationValue returns the payload of the first annotation of the given kind.
func (declaredType *DeclaredType) AnnotationValue(kind AnnotationKind) (string, bool) {
	for annotationIndex := range declaredType.Annotations {
		if declaredType.Annotations[annotationIndex].Kind == kind {
			return declaredType.Annotations[annotationIndex].Value, true
		}
	}
	return "", false
}

const namespaceSeparatorByte = '.'
