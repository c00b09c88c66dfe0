package domain

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Type describes a shader value type: basic type, precision, storage qualifier
// and dimensions. Vectors have SecondarySize 1; matrices store columns in
// PrimarySize and rows in SecondarySize.
//
// A Type is built with NewType and finalized once with Realize. After Realize
// it is immutable and may be shared between goroutines.
type Type struct {
	basic         BasicType
	precision     Precision
	qualifier     Qualifier
	primarySize   uint8
	secondarySize uint8

	realized    bool
	mangledName string
	fingerprint uint64
}

// NewType creates an unrealized type descriptor.
func NewType(
	basic BasicType,
	precision Precision,
	qualifier Qualifier,
	primarySize, secondarySize uint8,
) Type {
	return Type{
		basic:         basic,
		precision:     precision,
		qualifier:     qualifier,
		primarySize:   primarySize,
		secondarySize: secondarySize,
	}
}

// Realize precomputes the derived data of the type. It must be called exactly
// once per descriptor.
func (t *Type) Realize() error {
	if t.realized {
		return zerr.With(ErrTypeAlreadyRealized, "type", t.String())
	}

	t.mangledName = t.buildMangledName()
	t.fingerprint = t.computeFingerprint(t.mangledName)
	t.realized = true

	return nil
}

// Realized reports whether Realize has been called.
func (t *Type) Realized() bool { return t.realized }

// BasicType returns the basic type.
func (t *Type) BasicType() BasicType { return t.basic }

// Precision returns the precision qualifier.
func (t *Type) Precision() Precision { return t.precision }

// Qualifier returns the storage qualifier.
func (t *Type) Qualifier() Qualifier { return t.qualifier }

// PrimarySize returns the vector size, or the column count of a matrix.
func (t *Type) PrimarySize() uint8 { return t.primarySize }

// SecondarySize returns the row count of a matrix, 1 otherwise.
func (t *Type) SecondarySize() uint8 { return t.secondarySize }

// Key returns the interning key of the type.
func (t *Type) Key() TypeKey {
	return NewTypeKey(t.basic, t.precision, t.qualifier, t.primarySize, t.secondarySize)
}

// IsMatrix reports whether the type has more than one row.
func (t *Type) IsMatrix() bool { return t.secondarySize > 1 }

// IsVector reports whether the type is a vector.
func (t *Type) IsVector() bool { return t.primarySize > 1 && !t.IsMatrix() }

// IsScalar reports whether the type is a single component.
func (t *Type) IsScalar() bool { return t.primarySize == 1 && !t.IsMatrix() }

// IsSampler reports whether the type is an opaque sampler.
func (t *Type) IsSampler() bool { return t.basic.IsSampler() }

// CheckShape reports whether the dimensions describe a type GLSL can spell:
// each size is 1..4, and a matrix (secondarySize > 1) is a float matrix with
// at least two columns.
func CheckShape(basic BasicType, primarySize, secondarySize uint8) error {
	if primarySize < 1 || primarySize > maxComponents {
		return zerr.With(ErrInvalidDimension, "primary_size", primarySize)
	}
	if secondarySize < 1 || secondarySize > maxComponents {
		return zerr.With(ErrInvalidDimension, "secondary_size", secondarySize)
	}
	if secondarySize == 1 {
		return nil
	}
	if basic != BasicFloat {
		return zerr.With(ErrNonFloatMatrix, "basic", basic.String())
	}
	if primarySize < minComponents {
		return zerr.With(ErrInvalidDimension, "primary_size", primarySize)
	}
	return nil
}

// ObjectSize returns the number of components of the type.
func (t *Type) ObjectSize() int {
	return int(t.primarySize) * int(max(t.secondarySize, 1))
}

// MangledName returns the name used to distinguish overloads.
// Precision and qualifier do not participate.
func (t *Type) MangledName() string {
	if t.realized {
		return t.mangledName
	}
	return t.buildMangledName()
}

// Fingerprint returns a 64-bit hash covering every attribute of the type.
func (t *Type) Fingerprint() uint64 {
	if t.realized {
		return t.fingerprint
	}
	return t.computeFingerprint(t.buildMangledName())
}

// TypeName returns the GLSL spelling of the type without qualifiers,
// e.g. "vec4" or "mat3x2". Shapes rejected by CheckShape have no GLSL
// spelling and render as "<basic>[<cols>x<rows>]".
func (t *Type) TypeName() string {
	prefix, ok := vectorPrefixes[t.basic]
	switch {
	case !ok || t.IsScalar():
		return t.basic.String()
	case t.IsVector():
		return prefix + "vec" + strconv.Itoa(int(t.primarySize))
	case t.basic == BasicFloat && t.primarySize == t.secondarySize:
		return "mat" + strconv.Itoa(int(t.primarySize))
	case t.basic == BasicFloat:
		return "mat" + strconv.Itoa(int(t.primarySize)) + "x" + strconv.Itoa(int(t.secondarySize))
	default:
		return t.basic.String() + "[" + strconv.Itoa(int(t.primarySize)) + "x" + strconv.Itoa(int(t.secondarySize)) + "]"
	}
}

// String renders the type the way it would be declared, e.g. "highp in vec4".
// Temporaries and globals carry no storage qualifier in source.
func (t *Type) String() string {
	parts := make([]string, 0, 3)
	if t.precision != PrecisionUndefined {
		parts = append(parts, t.precision.String())
	}
	if t.qualifier != QualifierTemporary && t.qualifier != QualifierGlobal {
		parts = append(parts, t.qualifier.String())
	}
	parts = append(parts, t.TypeName())
	return strings.Join(parts, " ")
}

var vectorPrefixes = map[BasicType]string{
	BasicFloat: "",
	BasicInt:   "i",
	BasicUInt:  "u",
	BasicBool:  "b",
}

var mangledCodes = [basicTypeCount]string{
	BasicVoid:               "x",
	BasicFloat:              "f",
	BasicInt:                "i",
	BasicUInt:               "u",
	BasicBool:               "b",
	BasicSampler2D:          "s2",
	BasicSampler3D:          "s3",
	BasicSamplerCube:        "sC",
	BasicSampler2DArray:     "s2a",
	BasicSamplerExternalOES: "sE",
	BasicISampler2D:         "is2",
	BasicUSampler2D:         "us2",
	BasicSampler2DShadow:    "s2s",
	BasicStruct:             "S",
	BasicInterfaceBlock:     "I",
}

func (t *Type) buildMangledName() string {
	var b strings.Builder

	switch {
	case t.IsMatrix():
		b.WriteByte('m')
		b.WriteString(strconv.Itoa(int(t.primarySize)))
		b.WriteString(strconv.Itoa(int(t.secondarySize)))
	case t.IsVector():
		b.WriteByte('v')
		b.WriteString(strconv.Itoa(int(t.primarySize)))
	}

	if t.basic < basicTypeCount {
		b.WriteString(mangledCodes[t.basic])
	} else {
		b.WriteString("?" + strconv.Itoa(int(t.basic)))
	}
	b.WriteByte(';')

	return b.String()
}

func (t *Type) computeFingerprint(mangled string) uint64 {
	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], uint64(t.Key()))

	hasher := xxhash.New()
	_, _ = hasher.Write(key[:])
	_, _ = hasher.WriteString(mangled)
	return hasher.Sum64()
}
