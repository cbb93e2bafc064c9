// Copyright 2025 UAForge Authors. All rights reserved.

package ua

// StatusCode is the result of a service call or the quality of a value.
// A StatusCode is also a Go error, so operations may return one directly.
type StatusCode uint32

// Bit masks and info bits of StatusCode.
const (
	SeverityMask     uint32 = 0xC0000000
	SeverityGood     uint32 = 0x00000000
	SeverityUncertain uint32 = 0x40000000
	SeverityBad      uint32 = 0x80000000
	SubCodeMask      uint32 = 0x0FFF0000
	StructureChanged uint32 = 0x00008000
	SemanticsChanged uint32 = 0x00004000
	InfoTypeMask     uint32 = 0x00000C00
	InfoTypeDataValue uint32 = 0x00000400
	InfoBitsMask     uint32 = 0x000003FF
	LimitBitsMask    uint32 = 0x00000300
	LimitBitsNone    uint32 = 0x00000000
	LimitBitsLow     uint32 = 0x00000100
	LimitBitsHigh    uint32 = 0x00000200
	LimitBitsConstant uint32 = 0x00000300
	Overflow         uint32 = 0x00000080
)

// IsGood returns true when the severity is good.
func (c StatusCode) IsGood() bool {
	return (uint32(c) & SeverityMask) == SeverityGood
}

// IsUncertain returns true when the severity is uncertain.
func (c StatusCode) IsUncertain() bool {
	return (uint32(c) & SeverityMask) == SeverityUncertain
}

// IsBad returns true when the severity is bad.
func (c StatusCode) IsBad() bool {
	return (uint32(c) & SeverityMask) == SeverityBad
}

// IsStructureChanged returns true when the structure changed bit is set.
func (c StatusCode) IsStructureChanged() bool {
	return (uint32(c) & StructureChanged) == StructureChanged
}

// IsSemanticsChanged returns true when the semantics changed bit is set.
func (c StatusCode) IsSemanticsChanged() bool {
	return (uint32(c) & SemanticsChanged) == SemanticsChanged
}

// IsOverflow returns true when the value is of type DataValue and the overflow bit is set.
func (c StatusCode) IsOverflow() bool {
	return (uint32(c)&InfoTypeMask) == InfoTypeDataValue && (uint32(c)&Overflow) == Overflow
}
