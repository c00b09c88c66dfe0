package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// TypeSpec is the textual request for a type: the five attributes that
// identify an interned descriptor.
type TypeSpec struct {
	Basic         BasicType
	Precision     Precision
	Qualifier     Qualifier
	PrimarySize   uint8
	SecondarySize uint8
}

// Key returns the interning key of the described type.
func (s TypeSpec) Key() TypeKey {
	return NewTypeKey(s.Basic, s.Precision, s.Qualifier, s.PrimarySize, s.SecondarySize)
}

const (
	minComponents = 2
	maxComponents = 4
)

// ParseTypeSpec parses "[precision] [qualifier] typename", for example
// "highp in vec4", "uniform mat3x2" or "bool".
func ParseTypeSpec(text string) (TypeSpec, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 || len(fields) > 3 {
		return TypeSpec{}, zerr.With(ErrInvalidTypeSpec, "spec", text)
	}

	spec := TypeSpec{PrimarySize: 1, SecondarySize: 1}
	rest := fields[:len(fields)-1]

	if len(rest) > 0 {
		if p, err := ParsePrecision(rest[0]); err == nil {
			spec.Precision = p
			rest = rest[1:]
		}
	}
	if len(rest) > 0 {
		q, err := ParseQualifier(rest[0])
		if err != nil {
			return TypeSpec{}, zerr.With(err, "spec", text)
		}
		spec.Qualifier = q
		rest = rest[1:]
	}
	if len(rest) > 0 {
		return TypeSpec{}, zerr.With(ErrInvalidTypeSpec, "spec", text)
	}

	if err := spec.parseTypeName(fields[len(fields)-1]); err != nil {
		return TypeSpec{}, zerr.With(err, "spec", text)
	}
	return spec, nil
}

func (s *TypeSpec) parseTypeName(name string) error {
	if b, err := ParseBasicType(name); err == nil && b != BasicStruct && b != BasicInterfaceBlock {
		s.Basic = b
		return nil
	}

	if rest, ok := strings.CutPrefix(name, "mat"); ok {
		cols, rows, err := parseMatrixDims(rest)
		if err != nil {
			return zerr.With(err, "name", name)
		}
		s.Basic, s.PrimarySize, s.SecondarySize = BasicFloat, cols, rows
		return nil
	}

	for basic, prefix := range vectorPrefixes {
		rest, ok := strings.CutPrefix(name, prefix+"vec")
		if !ok {
			continue
		}
		n, err := parseDim(rest)
		if err != nil {
			return zerr.With(err, "name", name)
		}
		s.Basic, s.PrimarySize = basic, n
		return nil
	}

	return zerr.With(ErrUnknownTypeName, "name", name)
}

func parseMatrixDims(s string) (uint8, uint8, error) {
	colText, rowText, hasRows := strings.Cut(s, "x")
	cols, err := parseDim(colText)
	if err != nil {
		return 0, 0, err
	}
	if !hasRows {
		return cols, cols, nil
	}
	rows, err := parseDim(rowText)
	if err != nil {
		return 0, 0, err
	}
	return cols, rows, nil
}

func parseDim(s string) (uint8, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < minComponents || n > maxComponents {
		return 0, zerr.With(ErrInvalidDimension, "dimension", s)
	}
	return uint8(n), nil
}
