package domain

import (
	"cmp"
	"fmt"
	"math"
	"unsafe"
)

// TypeKey packs the five attributes of a type descriptor into one integer.
// Two keys are equal exactly when all five attributes are equal, so a TypeKey
// can be used directly as a map key or compared for ordering.
//
// Layout, least significant byte first:
//
//	basic type | precision | qualifier | primary size | secondary size
type TypeKey uint64

// keyComponent is the width every attribute is narrowed to.
type keyComponent = uint8

const (
	keyComponentBits  = 8
	keyComponentBytes = 5

	precisionShift     = 1 * keyComponentBits
	qualifierShift     = 2 * keyComponentBits
	primarySizeShift   = 3 * keyComponentBits
	secondarySizeShift = 4 * keyComponentBits

	componentMask = math.MaxUint8
)

// Build-time capacity checks. Each array length goes negative, and the
// package stops compiling, when the invariant it names is broken.
var (
	// The packed components must fit inside the key's storage.
	_ [unsafe.Sizeof(TypeKey(0)) - keyComponentBytes]struct{}

	// Every enumerator must be representable in one component.
	_ [math.MaxUint8 - (uint64(basicTypeCount) - 1)]struct{}
	_ [math.MaxUint8 - (uint64(precisionCount) - 1)]struct{}
	_ [math.MaxUint8 - (uint64(qualifierCount) - 1)]struct{}
)

// NewTypeKey encodes the given attributes.
func NewTypeKey(
	basic BasicType,
	precision Precision,
	qualifier Qualifier,
	primarySize, secondarySize uint8,
) TypeKey {
	return TypeKey(uint64(keyComponent(basic)) |
		uint64(keyComponent(precision))<<precisionShift |
		uint64(keyComponent(qualifier))<<qualifierShift |
		uint64(keyComponent(primarySize))<<primarySizeShift |
		uint64(keyComponent(secondarySize))<<secondarySizeShift)
}

// BasicType returns the encoded basic type.
func (k TypeKey) BasicType() BasicType {
	return BasicType(uint64(k) & componentMask)
}

// Precision returns the encoded precision.
func (k TypeKey) Precision() Precision {
	return Precision(uint64(k) >> precisionShift & componentMask)
}

// Qualifier returns the encoded qualifier.
func (k TypeKey) Qualifier() Qualifier {
	return Qualifier(uint64(k) >> qualifierShift & componentMask)
}

// PrimarySize returns the encoded primary size.
func (k TypeKey) PrimarySize() uint8 {
	return uint8(uint64(k) >> primarySizeShift & componentMask)
}

// SecondarySize returns the encoded secondary size.
func (k TypeKey) SecondarySize() uint8 {
	return uint8(uint64(k) >> secondarySizeShift & componentMask)
}

// Fields unpacks the key into its five attributes.
func (k TypeKey) Fields() (BasicType, Precision, Qualifier, uint8, uint8) {
	return k.BasicType(), k.Precision(), k.Qualifier(), k.PrimarySize(), k.SecondarySize()
}

// String renders the key as a fixed-width hexadecimal literal.
func (k TypeKey) String() string {
	return fmt.Sprintf("0x%010x", uint64(k))
}

// Compare orders keys by their integer value.
func (k TypeKey) Compare(other TypeKey) int {
	return cmp.Compare(k, other)
}
