package metadata

import (
	"errors"
	"fmt"
	"strings"
)

const (
	genericOpenToken               = "<"
	genericCloseToken              = ">"
	genericArgumentSeparatorToken  = ","
	arraySuffixToken               = "[]"
	emptyReferenceMessageConstant  = "type reference is empty"
	danglingInputTemplateConstant  = "unexpected trailing input %q in type reference %q"
	unterminatedTemplateConstant   = "unterminated generic argument list in type reference %q"
	missingNameTemplateConstant    = "missing type name at offset %d in type reference %q"
	malformedArrayTemplateConstant = "malformed array suffix at offset %d in type reference %q"
)

// TypeReference denotes a type appearing in a declaration's structure: a
// plain named type, an array of some reference, or a generic instantiation
// naming an open definition together with ordered type arguments. Names that
// do not resolve inside the audited module are foreign and carry no further
// structure.
type TypeReference struct {
	Name      string
	Element   *TypeReference
	Arguments []TypeReference
}

// IsArray reports whether the reference wraps an element type.
func (reference TypeReference) IsArray() bool {
	return reference.Element != nil
}

// IsInstantiation reports whether the reference closes a generic definition.
func (reference TypeReference) IsInstantiation() bool {
	return len(reference.Arguments) > 0
}

// Unwrap strips array wrappers until a non-array reference remains.
func (reference TypeReference) Unwrap() TypeReference {
	current := reference
	for current.Element != nil {
		current = *current.Element
	}
	return current
}

// ParseTypeReference decodes the textual reference syntax used in snapshot
// member signatures: a qualified name, optionally followed by a generic
// argument list in angle brackets, optionally followed by array suffixes.
// Arguments recurse over the same grammar, so nested instantiations and
// arrays of instantiations round-trip.
func ParseTypeReference(rawReference string) (TypeReference, error) {
	parser := referenceParser{input: rawReference}
	reference, parseError := parser.parseReference()
	if parseError != nil {
		return TypeReference{}, parseError
	}

	parser.skipSpaces()
	if parser.offset != len(parser.input) {
		return TypeReference{}, fmt.Errorf(danglingInputTemplateConstant, parser.input[parser.offset:], rawReference)
	}

	return reference, nil
}

type referenceParser struct {
	input  string
	offset int
}

func (parser *referenceParser) parseReference() (TypeReference, error) {
	parser.skipSpaces()

	nameStart := parser.offset
	for parser.offset < len(parser.input) && !isReferenceDelimiter(parser.input[parser.offset]) {
		parser.offset++
	}

	name := strings.TrimSpace(parser.input[nameStart:parser.offset])
	if len(name) == 0 {
		if len(strings.TrimSpace(parser.input)) == 0 {
			return TypeReference{}, errors.New(emptyReferenceMessageConstant)
		}
		return TypeReference{}, fmt.Errorf(missingNameTemplateConstant, nameStart, parser.input)
	}

	reference := TypeReference{Name: name}

	if parser.peek(genericOpenToken) {
		arguments, argumentsError := parser.parseArgumentList()
		if argumentsError != nil {
			return TypeReference{}, argumentsError
		}
		reference.Arguments = arguments
	}

	return parser.parseArraySuffixes(reference)
}

func (parser *referenceParser) parseArgumentList() ([]TypeReference, error) {
	parser.offset++ // consume '<'

	arguments := make([]TypeReference, 0, 1)
	for {
		argument, argumentError := parser.parseReference()
		if argumentError != nil {
			return nil, argumentError
		}
		arguments = append(arguments, argument)

		parser.skipSpaces()
		switch {
		case parser.peek(genericArgumentSeparatorToken):
			parser.offset++
		case parser.peek(genericCloseToken):
			parser.offset++
			return arguments, nil
		default:
			return nil, fmt.Errorf(unterminatedTemplateConstant, parser.input)
		}
	}
}

func (parser *referenceParser) parseArraySuffixes(reference TypeReference) (TypeReference, error) {
	for {
		parser.skipSpaces()
		if parser.offset >= len(parser.input) || parser.input[parser.offset] != '[' {
			return reference, nil
		}
		if !strings.HasPrefix(parser.input[parser.offset:], arraySuffixToken) {
			return TypeReference{}, fmt.Errorf(malformedArrayTemplateConstant, parser.offset, parser.input)
		}
		parser.offset += len(arraySuffixToken)
		element := reference
		reference = TypeReference{Element: &element}
	}
}

func (parser *referenceParser) skipSpaces() {
	for parser.offset < len(parser.input) && parser.input[parser.offset] == ' ' {
		parser.offset++
	}
}

func (parser *referenceParser) peek(token string) bool {
	return strings.HasPrefix(parser.input[parser.offset:], token)
}

func isReferenceDelimiter(candidate byte) bool {
	switch candidate {
	case '<', '>', ',', '[', ']':
		return true
	default:
		return false
	}
}
