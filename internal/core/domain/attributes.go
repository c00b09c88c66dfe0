package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// BasicType is the scalar or opaque kind of a shader value.
type BasicType uint8

const (
	// BasicVoid is the type of functions without a return value.
	BasicVoid BasicType = iota
	// BasicFloat is a 32-bit floating point component.
	BasicFloat
	// BasicInt is a signed integer component.
	BasicInt
	// BasicUInt is an unsigned integer component.
	BasicUInt
	// BasicBool is a boolean component.
	BasicBool
	// BasicSampler2D is a 2D texture sampler.
	BasicSampler2D
	// BasicSampler3D is a 3D texture sampler.
	BasicSampler3D
	// BasicSamplerCube is a cube map sampler.
	BasicSamplerCube
	// BasicSampler2DArray is a 2D array texture sampler.
	BasicSampler2DArray
	// BasicSamplerExternalOES is an external image sampler (OES_EGL_image_external).
	BasicSamplerExternalOES
	// BasicISampler2D is a signed integer 2D sampler.
	BasicISampler2D
	// BasicUSampler2D is an unsigned integer 2D sampler.
	BasicUSampler2D
	// BasicSampler2DShadow is a 2D depth comparison sampler.
	BasicSampler2DShadow
	// BasicStruct is a user-defined structure.
	BasicStruct
	// BasicInterfaceBlock is a uniform or storage block.
	BasicInterfaceBlock

	basicTypeCount
)

var basicTypeNames = [basicTypeCount]string{
	BasicVoid:               "void",
	BasicFloat:              "float",
	BasicInt:                "int",
	BasicUInt:               "uint",
	BasicBool:               "bool",
	BasicSampler2D:          "sampler2D",
	BasicSampler3D:          "sampler3D",
	BasicSamplerCube:        "samplerCube",
	BasicSampler2DArray:     "sampler2DArray",
	BasicSamplerExternalOES: "samplerExternalOES",
	BasicISampler2D:         "isampler2D",
	BasicUSampler2D:         "usampler2D",
	BasicSampler2DShadow:    "sampler2DShadow",
	BasicStruct:             "struct",
	BasicInterfaceBlock:     "interface block",
}

func (b BasicType) String() string {
	if b < basicTypeCount {
		return basicTypeNames[b]
	}
	return fmt.Sprintf("BasicType(%d)", uint8(b))
}

// IsSampler reports whether b is one of the sampler kinds.
func (b BasicType) IsSampler() bool {
	return b >= BasicSampler2D && b <= BasicSampler2DShadow
}

// Precision is the GLSL ES precision qualifier.
type Precision uint8

const (
	// PrecisionUndefined means no precision was declared or inherited.
	PrecisionUndefined Precision = iota
	// PrecisionLow is lowp.
	PrecisionLow
	// PrecisionMedium is mediump.
	PrecisionMedium
	// PrecisionHigh is highp.
	PrecisionHigh

	precisionCount
)

var precisionNames = [precisionCount]string{
	PrecisionUndefined: "",
	PrecisionLow:       "lowp",
	PrecisionMedium:    "mediump",
	PrecisionHigh:      "highp",
}

func (p Precision) String() string {
	if p < precisionCount {
		return precisionNames[p]
	}
	return fmt.Sprintf("Precision(%d)", uint8(p))
}

// Qualifier is the storage qualifier of a value.
type Qualifier uint8

const (
	// QualifierTemporary is a function-local temporary.
	QualifierTemporary Qualifier = iota
	// QualifierGlobal is a global without storage qualifier.
	QualifierGlobal
	// QualifierConst is a compile-time constant.
	QualifierConst
	// QualifierAttribute is a vertex attribute (ESSL 1.00).
	QualifierAttribute
	// QualifierVaryingIn is a varying read by the fragment stage.
	QualifierVaryingIn
	// QualifierVaryingOut is a varying written by the vertex stage.
	QualifierVaryingOut
	// QualifierUniform is a uniform.
	QualifierUniform
	// QualifierIn is a function or stage input.
	QualifierIn
	// QualifierOut is a function or stage output.
	QualifierOut
	// QualifierInOut is a function parameter that is both read and written.
	QualifierInOut
	// QualifierConstReadOnly is a const function parameter.
	QualifierConstReadOnly

	qualifierCount
)

var qualifierNames = [qualifierCount]string{
	QualifierTemporary:     "temporary",
	QualifierGlobal:        "global",
	QualifierConst:         "const",
	QualifierAttribute:     "attribute",
	QualifierVaryingIn:     "varying",
	QualifierVaryingOut:    "varying",
	QualifierUniform:       "uniform",
	QualifierIn:            "in",
	QualifierOut:           "out",
	QualifierInOut:         "inout",
	QualifierConstReadOnly: "const",
}

// qualifierParseNames are the spellings accepted by ParseQualifier. They stay
// distinct where the GLSL spelling is shared by more than one qualifier.
var qualifierParseNames = [qualifierCount]string{
	QualifierTemporary:     "temporary",
	QualifierGlobal:        "global",
	QualifierConst:         "const",
	QualifierAttribute:     "attribute",
	QualifierVaryingIn:     "varying_in",
	QualifierVaryingOut:    "varying_out",
	QualifierUniform:       "uniform",
	QualifierIn:            "in",
	QualifierOut:           "out",
	QualifierInOut:         "inout",
	QualifierConstReadOnly: "const_readonly",
}

// String returns the qualifier as written in GLSL source.
func (q Qualifier) String() string {
	if q < qualifierCount {
		return qualifierNames[q]
	}
	return fmt.Sprintf("Qualifier(%d)", uint8(q))
}

// ParseName returns the unambiguous spelling ParseQualifier accepts.
func (q Qualifier) ParseName() string {
	if q < qualifierCount {
		return qualifierParseNames[q]
	}
	return q.String()
}

// ParseBasicType returns the BasicType spelled s.
func ParseBasicType(s string) (BasicType, error) {
	for i, name := range basicTypeNames {
		if name == s {
			return BasicType(i), nil
		}
	}
	return 0, zerr.With(ErrUnknownTypeName, "name", s)
}

// ParsePrecision returns the Precision spelled s (lowp, mediump or highp).
func ParsePrecision(s string) (Precision, error) {
	for i, name := range precisionNames {
		if name != "" && name == s {
			return Precision(i), nil
		}
	}
	return 0, zerr.With(ErrUnknownPrecision, "precision", s)
}

// ParseQualifier returns the Qualifier whose ParseName is s.
func ParseQualifier(s string) (Qualifier, error) {
	for i, name := range qualifierParseNames {
		if name == s {
			return Qualifier(i), nil
		}
	}
	return 0, zerr.With(ErrUnknownQualifier, "qualifier", s)
}
