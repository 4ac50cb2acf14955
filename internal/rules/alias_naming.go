package rules

import (
	"fmt"
	"strings"

	"declaudit/internal/metadata"
)

const (
	aliasNamingRuleNameConstant   = "alias-naming"
	aliasMismatchTemplateConstant = "alias %q requires the type name %s"
	aliasSeparatorHyphenRune      = '-'
	aliasSeparatorUnderscoreRune  = '_'
)

// legacyAliasExceptions freezes type names grandfathered before the naming
// convention existed. The list is permanently exempt and must never grow.
var legacyAliasExceptions = map[string]struct{}{
	"LineFeedRenderer":           {},
	"HexDumpRenderer":            {},
	"OnExceptionRendererWrapper": {},
}

// AliasNamingRule checks that concrete renderer-family plug-ins are named
// after their registered alias: the separator-delimited alias segments
// capitalized and concatenated, followed by the family suffix, compared
// case-insensitively. Wrapper-base subclasses take the wrapper suffix.
type AliasNamingRule struct{}

// Name identifies the rule in reports.
func (AliasNamingRule) Name() string {
	return aliasNamingRuleNameConstant
}

// Evaluate applies the rule to every aliased renderer in the snapshot.
func (AliasNamingRule) Evaluate(snapshot *metadata.Snapshot) []metadata.Violation {
	violations := make([]metadata.Violation, 0)
	declaredTypes := snapshot.Types()
	for typeIndex := range declaredTypes {
		declaredType := &declaredTypes[typeIndex]
		if !isConcreteClass(declaredType) {
			continue
		}
		if !isRendererFamilyMember(snapshot, declaredType) {
			continue
		}

		aliasValue, hasAlias := declaredType.AnnotationValue(metadata.AnnotationKindAlias)
		if !hasAlias {
			continue
		}

		localName := declaredType.LocalName()
		if _, exempt := legacyAliasExceptions[localName]; exempt {
			continue
		}

		expectedName := capitalizedAliasSegments(aliasValue) + familySuffix(snapshot, declaredType)
		if strings.EqualFold(localName, expectedName) {
			continue
		}

		violations = append(violations, metadata.Violation{
			Subject: declaredType.FullName,
			Reason:  fmt.Sprintf(aliasMismatchTemplateConstant, aliasValue, expectedName),
		})
	}
	return violations
}

func familySuffix(snapshot *metadata.Snapshot, declaredType *metadata.DeclaredType) string {
	if isWrapperRenderer(snapshot, declaredType) {
		return wrapperRendererNameSuffixConstant
	}
	return rendererNameSuffixConstant
}

// capitalizedAliasSegments joins the separator-delimited alias segments,
// capitalizing the first letter of each, so the expected name shown in the
// violation reason reads in the family's naming style.
func capitalizedAliasSegments(aliasValue string) string {
	segments := strings.FieldsFunc(aliasValue, isAliasSeparator)

	nameBuilder := strings.Builder{}
	for _, segment := range segments {
		nameBuilder.WriteString(strings.ToUpper(segment[:1]))
		nameBuilder.WriteString(segment[1:])
	}
	return nameBuilder.String()
}

func isAliasSeparator(candidate rune) bool {
	return candidate == aliasSeparatorHyphenRune || candidate == aliasSeparatorUnderscoreRune
}
