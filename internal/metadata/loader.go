package metadata

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	snapshotPathRequiredMessageConstant   = "snapshot path must be provided"
	snapshotReadErrorTemplateConstant     = "failed to read declaration snapshot: %w"
	snapshotParseErrorTemplateConstant    = "failed to parse declaration snapshot: %w"
	snapshotModuleMissingMessageConstant  = "declaration snapshot must name the audited module"
	snapshotEmptyTypesMessageConstant     = "declaration snapshot must declare at least one type"
	typeNameMissingTemplateConstant       = "declaration snapshot entry %d is missing a type name"
	typeDuplicateTemplateConstant         = "declaration snapshot declares %s more than once"
	typeKindUnknownTemplateConstant       = "declared type %s has unknown kind %q"
	typeVisibilityUnknownTemplateConstant = "declared type %s has unknown visibility %q"
	annotationKindMissingTemplateConstant = "declared type %s carries an annotation without a kind"
	memberNameMissingTemplateConstant     = "declared type %s contains a member without a name"
	memberSkippedMessageConstant          = "member signature skipped"
	logFieldDeclaredTypeConstant          = "declared_type"
	logFieldMemberNameConstant            = "member_name"
	logFieldParseErrorConstant            = "parse_error"
	snapshotLoadedMessageConstant         = "declaration snapshot loaded"
	logFieldModuleNameConstant            = "module_name"
	logFieldDeclaredTypeCountConstant     = "declared_type_count"

	typeKindClassNameConstant      = "class"
	typeKindCapabilityNameConstant = "capability"
	typeKindEnumNameConstant       = "enum"
)

// Loader constructs declaration snapshots from YAML documents emitted by the
// build-time extraction step.
type Loader struct {
	logger *zap.Logger
}

// NewLoader constructs a Loader writing diagnostics to the provided logger.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

type snapshotDocument struct {
	Module string         `yaml:"module"`
	Types  []typeDocument `yaml:"types"`
}

type typeDocument struct {
	Name           string               `yaml:"name"`
	Kind           string               `yaml:"kind"`
	Visibility     string               `yaml:"visibility"`
	Abstract       bool                 `yaml:"abstract"`
	Nested         bool                 `yaml:"nested"`
	TypeParameters []string             `yaml:"type_parameters"`
	Base           string               `yaml:"base"`
	Implements     []string             `yaml:"implements"`
	Annotations    []annotationDocument `yaml:"annotations"`
	Members        []memberDocument     `yaml:"members"`
}

type memberDocument struct {
	Name        string               `yaml:"name"`
	Returns     string               `yaml:"returns"`
	Parameters  []string             `yaml:"parameters"`
	Annotations []annotationDocument `yaml:"annotations"`
}

type annotationDocument struct {
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`
}

// Load reads and decodes the snapshot file at the provided path.
func (loader *Loader) Load(snapshotPath string) (*Snapshot, error) {
	trimmedPath := strings.TrimSpace(snapshotPath)
	if len(trimmedPath) == 0 {
		return nil, errors.New(snapshotPathRequiredMessageConstant)
	}

	contentBytes, readError := os.ReadFile(trimmedPath)
	if readError != nil {
		return nil, fmt.Errorf(snapshotReadErrorTemplateConstant, readError)
	}

	return loader.Decode(contentBytes)
}

// Decode parses snapshot content. Every declared type is retained; only
// individual members whose signatures fail to parse are skipped, with a
// diagnostic, so one malformed member cannot abort the audit.
func (loader *Loader) Decode(content []byte) (*Snapshot, error) {
	var document snapshotDocument
	if unmarshalError := yaml.Unmarshal(content, &document); unmarshalError != nil {
		return nil, fmt.Errorf(snapshotParseErrorTemplateConstant, unmarshalError)
	}

	if len(strings.TrimSpace(document.Module)) == 0 {
		return nil, errors.New(snapshotModuleMissingMessageConstant)
	}
	if len(document.Types) == 0 {
		return nil, errors.New(snapshotEmptyTypesMessageConstant)
	}

	declaredTypes := make([]DeclaredType, 0, len(document.Types))
	seenNames := make(map[string]struct{}, len(document.Types))
	for typeIndex := range document.Types {
		declaredType, conversionError := loader.convertType(document.Types[typeIndex], typeIndex)
		if conversionError != nil {
			return nil, conversionError
		}
		if _, duplicate := seenNames[declaredType.FullName]; duplicate {
			return nil, fmt.Errorf(typeDuplicateTemplateConstant, declaredType.FullName)
		}
		seenNames[declaredType.FullName] = struct{}{}
		declaredTypes = append(declaredTypes, declaredType)
	}

	snapshot := NewSnapshot(strings.TrimSpace(document.Module), declaredTypes)

	loader.logger.Debug(
		snapshotLoadedMessageConstant,
		zap.String(logFieldModuleNameConstant, snapshot.ModuleName),
		zap.Int(logFieldDeclaredTypeCountConstant, snapshot.Count()),
	)

	return snapshot, nil
}

func (loader *Loader) convertType(document typeDocument, typeIndex int) (DeclaredType, error) {
	fullName := strings.TrimSpace(document.Name)
	if len(fullName) == 0 {
		return DeclaredType{}, fmt.Errorf(typeNameMissingTemplateConstant, typeIndex)
	}

	kind, kindError := parseTypeKind(document.Kind)
	if kindError != nil {
		return DeclaredType{}, fmt.Errorf(typeKindUnknownTemplateConstant, fullName, document.Kind)
	}

	visibility, visibilityError := parseVisibility(document.Visibility)
	if visibilityError != nil {
		return DeclaredType{}, fmt.Errorf(typeVisibilityUnknownTemplateConstant, fullName, document.Visibility)
	}

	annotations, annotationsError := convertAnnotations(document.Annotations, fullName)
	if annotationsError != nil {
		return DeclaredType{}, annotationsError
	}

	declaredType := DeclaredType{
		FullName:       fullName,
		Kind:           kind,
		Visibility:     visibility,
		Namespace:      namespaceOf(fullName),
		IsAbstract:     document.Abstract,
		IsNested:       document.Nested,
		TypeParameters: append([]string(nil), document.TypeParameters...),
		BaseName:       strings.TrimSpace(document.Base),
		Implements:     trimmedNames(document.Implements),
		Annotations:    annotations,
	}

	for memberIndex := range document.Members {
		member, memberError := loader.convertMember(document.Members[memberIndex], fullName)
		if memberError != nil {
			return DeclaredType{}, memberError
		}
		if member == nil {
			continue
		}
		declaredType.Members = append(declaredType.Members, *member)
	}

	return declaredType, nil
}

// convertMember returns a nil member without an error when the signature
// cannot be introspected; the caller keeps the declaring type.
func (loader *Loader) convertMember(document memberDocument, declaringTypeName string) (*MemberSignature, error) {
	memberName := strings.TrimSpace(document.Name)
	if len(memberName) == 0 {
		return nil, fmt.Errorf(memberNameMissingTemplateConstant, declaringTypeName)
	}

	annotations, annotationsError := convertAnnotations(document.Annotations, declaringTypeName)
	if annotationsError != nil {
		return nil, annotationsError
	}

	member := MemberSignature{Name: memberName, Annotations: annotations}

	if len(strings.TrimSpace(document.Returns)) > 0 {
		returnReference, returnError := ParseTypeReference(document.Returns)
		if returnError != nil {
			loader.logSkippedMember(declaringTypeName, memberName, returnError)
			return nil, nil
		}
		member.Returns = returnReference
	}

	for _, rawParameter := range document.Parameters {
		parameterReference, parameterError := ParseTypeReference(rawParameter)
		if parameterError != nil {
			loader.logSkippedMember(declaringTypeName, memberName, parameterError)
			return nil, nil
		}
		member.Parameters = append(member.Parameters, parameterReference)
	}

	return &member, nil
}

func (loader *Loader) logSkippedMember(declaringTypeName string, memberName string, parseError error) {
	loader.logger.Warn(
		memberSkippedMessageConstant,
		zap.String(logFieldDeclaredTypeConstant, declaringTypeName),
		zap.String(logFieldMemberNameConstant, memberName),
		zap.String(logFieldParseErrorConstant, parseError.Error()),
	)
}

func convertAnnotations(documents []annotationDocument, subjectName string) ([]Annotation, error) {
	if len(documents) == 0 {
		return nil, nil
	}

	annotations := make([]Annotation, 0, len(documents))
	for documentIndex := range documents {
		kind := strings.TrimSpace(documents[documentIndex].Kind)
		if len(kind) == 0 {
			return nil, fmt.Errorf(annotationKindMissingTemplateConstant, subjectName)
		}
		annotations = append(annotations, Annotation{
			Kind:  AnnotationKind(kind),
			Value: documents[documentIndex].Value,
		})
	}
	return annotations, nil
}

func parseTypeKind(rawKind string) (TypeKind, error) {
	switch strings.TrimSpace(rawKind) {
	case typeKindClassNameConstant:
		return TypeKindClass, nil
	case typeKindCapabilityNameConstant:
		return TypeKindCapability, nil
	case typeKindEnumNameConstant:
		return TypeKindEnum, nil
	default:
		return TypeKindClass, fmt.Errorf("unknown type kind %q", rawKind)
	}
}

func parseVisibility(rawVisibility string) (Visibility, error) {
	switch strings.TrimSpace(rawVisibility) {
	case string(VisibilityPublic):
		return VisibilityPublic, nil
	case string(VisibilityNonPublic):
		return VisibilityNonPublic, nil
	default:
		return VisibilityNonPublic, fmt.Errorf("unknown visibility %q", rawVisibility)
	}
}

func namespaceOf(fullName string) string {
	lastSeparator := strings.LastIndexByte(fullName, namespaceSeparatorByte)
	if lastSeparator < 0 {
		return ""
	}
	return fullName[:lastSeparator]
}

func trimmedNames(rawNames []string) []string {
	if len(rawNames) == 0 {
		return nil
	}
	names := make([]string, 0, len(rawNames))
	for _, rawName := range rawNames {
		trimmed := strings.TrimSpace(rawName)
		if len(trimmed) == 0 {
			continue
		}
		names = append(names, trimmed)
	}
	return names
}
