package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glint/internal/core/domain"
)

func TestType_Realize(t *testing.T) {
	typ := domain.NewType(domain.BasicFloat, domain.PrecisionHigh, domain.QualifierIn, 4, 1)
	assert.False(t, typ.Realized())

	unrealizedName := typ.MangledName()
	unrealizedFingerprint := typ.Fingerprint()

	require.NoError(t, typ.Realize())
	assert.True(t, typ.Realized())
	assert.Equal(t, unrealizedName, typ.MangledName())
	assert.Equal(t, unrealizedFingerprint, typ.Fingerprint())

	err := typ.Realize()
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTypeAlreadyRealized.Error())
}

func TestType_MangledName(t *testing.T) {
	tests := []struct {
		name string
		typ  domain.Type
		want string
	}{
		{"scalar float", domain.NewType(domain.BasicFloat, domain.PrecisionHigh, domain.QualifierTemporary, 1, 1), "f;"},
		{"vec4", domain.NewType(domain.BasicFloat, domain.PrecisionMedium, domain.QualifierIn, 4, 1), "v4f;"},
		{"ivec2", domain.NewType(domain.BasicInt, domain.PrecisionUndefined, domain.QualifierTemporary, 2, 1), "v2i;"},
		{"mat3x2", domain.NewType(domain.BasicFloat, domain.PrecisionLow, domain.QualifierUniform, 3, 2), "m32f;"},
		{"mat4", domain.NewType(domain.BasicFloat, domain.PrecisionHigh, domain.QualifierUniform, 4, 4), "m44f;"},
		{"samplerCube", domain.NewType(domain.BasicSamplerCube, domain.PrecisionLow, domain.QualifierUniform, 1, 1), "sC;"},
		{"bool", domain.NewType(domain.BasicBool, domain.PrecisionUndefined, domain.QualifierTemporary, 1, 1), "b;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := tt.typ
			require.NoError(t, typ.Realize())
			assert.Equal(t, tt.want, typ.MangledName())
		})
	}
}

func TestType_String(t *testing.T) {
	tests := []struct {
		typ  domain.Type
		want string
	}{
		{domain.NewType(domain.BasicFloat, domain.PrecisionHigh, domain.QualifierIn, 4, 1), "highp in vec4"},
		{domain.NewType(domain.BasicFloat, domain.PrecisionLow, domain.QualifierUniform, 3, 2), "lowp uniform mat3x2"},
		{domain.NewType(domain.BasicFloat, domain.PrecisionUndefined, domain.QualifierTemporary, 2, 2), "mat2"},
		{domain.NewType(domain.BasicUInt, domain.PrecisionMedium, domain.QualifierOut, 3, 1), "mediump out uvec3"},
		{domain.NewType(domain.BasicBool, domain.PrecisionUndefined, domain.QualifierConst, 1, 1), "const bool"},
		{domain.NewType(domain.BasicSampler2D, domain.PrecisionLow, domain.QualifierUniform, 1, 1), "lowp uniform sampler2D"},
		{domain.NewType(domain.BasicFloat, domain.PrecisionMedium, domain.QualifierVaryingIn, 2, 1), "mediump varying vec2"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestType_Shape(t *testing.T) {
	scalar := domain.NewType(domain.BasicInt, domain.PrecisionHigh, domain.QualifierTemporary, 1, 1)
	vector := domain.NewType(domain.BasicInt, domain.PrecisionHigh, domain.QualifierTemporary, 3, 1)
	matrix := domain.NewType(domain.BasicFloat, domain.PrecisionHigh, domain.QualifierTemporary, 4, 3)
	sampler := domain.NewType(domain.BasicSampler3D, domain.PrecisionHigh, domain.QualifierUniform, 1, 1)

	assert.True(t, scalar.IsScalar())
	assert.True(t, vector.IsVector())
	assert.True(t, matrix.IsMatrix())
	assert.True(t, sampler.IsSampler())
	assert.False(t, matrix.IsVector())
	assert.False(t, vector.IsSampler())

	assert.Equal(t, 1, scalar.ObjectSize())
	assert.Equal(t, 3, vector.ObjectSize())
	assert.Equal(t, 12, matrix.ObjectSize())
}

func TestType_FingerprintCoversQualifiers(t *testing.T) {
	in := domain.NewType(domain.BasicFloat, domain.PrecisionHigh, domain.QualifierIn, 4, 1)
	out := domain.NewType(domain.BasicFloat, domain.PrecisionHigh, domain.QualifierOut, 4, 1)

	assert.Equal(t, in.MangledName(), out.MangledName())
	assert.NotEqual(t, in.Fingerprint(), out.Fingerprint())
}

func TestCheckShape(t *testing.T) {
	tests := []struct {
		name          string
		basic         domain.BasicType
		primarySize   uint8
		secondarySize uint8
		want          error
	}{
		{"scalar", domain.BasicInt, 1, 1, nil},
		{"vector", domain.BasicBool, 4, 1, nil},
		{"sampler", domain.BasicSampler2D, 1, 1, nil},
		{"float matrix", domain.BasicFloat, 3, 2, nil},
		{"uint matrix", domain.BasicUInt, 2, 2, domain.ErrNonFloatMatrix},
		{"zero rows", domain.BasicFloat, 2, 0, domain.ErrInvalidDimension},
		{"five columns", domain.BasicFloat, 5, 2, domain.ErrInvalidDimension},
		{"one column", domain.BasicFloat, 1, 2, domain.ErrInvalidDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.CheckShape(tt.basic, tt.primarySize, tt.secondarySize)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want.Error())
		})
	}
}

func TestType_StringOmitsGlobalQualifier(t *testing.T) {
	typ := domain.NewType(domain.BasicFloat, domain.PrecisionHigh, domain.QualifierGlobal, 3, 1)
	assert.Equal(t, "highp vec3", typ.String())
}
