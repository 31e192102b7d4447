// Package catalogue assembles the full set of topics the bridge knows
// about: one Topic per named quantity read from, or written to, a main or
// optional-PCB frame. Build returns a fresh, immutable slice every time so
// callers never share mutable catalogue state.
package catalogue

import (
	"github.com/pkrahmer/aquabridge/internal/bitfield"
	"github.com/pkrahmer/aquabridge/internal/topic"
)

// Build returns the complete topic catalogue in source order.
func Build() []*topic.Topic {
	return append(append([]*topic.Topic{}, mainTopics()...), optionalTopics()...)
}

func rng(min, max float64) *topic.Range {
	return &topic.Range{Min: min, Max: max}
}

// ntcRange is the domain of every NTC-derived sensor topic: the lowest and
// highest temperature the lookup table can report.
func ntcRange() *topic.Range {
	return rng(float64(bitfield.NTCTable[255]), float64(bitfield.NTCTable[0]))
}

// --- decode descriptor constructors -----------------------------------

func bitsAt(index int, shift uint, mask, bias int) topic.DecodeSpec {
	return topic.DecodeSpec{Kind: topic.DecodeBitsAt, Index: index, Shift: shift, Mask: mask, Bias: bias}
}

func bit1(index int) topic.DecodeSpec   { return bitsAt(index, 7, 1, 0) }
func bits12(index int) topic.DecodeSpec { return bitsAt(index, 6, 3, 1) }
func bits34(index int) topic.DecodeSpec { return bitsAt(index, 4, 3, 1) }
func bits56(index int) topic.DecodeSpec { return bitsAt(index, 2, 3, 1) }
func bits78(index int) topic.DecodeSpec { return bitsAt(index, 0, 3, 1) }
func bits35(index int) topic.DecodeSpec { return bitsAt(index, 3, 7, 1) }
func right3(index int) topic.DecodeSpec { return bitsAt(index, 0, 7, 1) }

func iMinus1(index int) topic.DecodeSpec {
	return topic.DecodeSpec{Kind: topic.DecodeIMinus1, Index: index}
}
func iMinus128(index int) topic.DecodeSpec {
	return topic.DecodeSpec{Kind: topic.DecodeIMinus128, Index: index}
}
func iMinus1Div5(index int) topic.DecodeSpec {
	return topic.DecodeSpec{Kind: topic.DecodeIMinus1Div5, Index: index}
}
func iMinus1Times10(index int) topic.DecodeSpec {
	return topic.DecodeSpec{Kind: topic.DecodeIMinus1Times10, Index: index}
}
func iMinus1Times50(index int) topic.DecodeSpec {
	return topic.DecodeSpec{Kind: topic.DecodeIMinus1Times50, Index: index}
}
func energy(index int) topic.DecodeSpec {
	return topic.DecodeSpec{Kind: topic.DecodeEnergy, Index: index}
}
func composite(index int, kind topic.CompositeKind) topic.DecodeSpec {
	return topic.DecodeSpec{Kind: topic.DecodeComposite, Index: index, Composite: kind}
}

// --- encode descriptor constructors -----------------------------------

func encBias(index, bias int) *topic.EncodeSpec {
	return &topic.EncodeSpec{Kind: topic.EncodeBias, Index: index, Bias: bias}
}

func encBool(index int, on, off byte) *topic.EncodeSpec {
	return &topic.EncodeSpec{Kind: topic.EncodeBoolPair, Index: index, OnByte: on, OffByte: off}
}

func encTable(index int, table []int, fallback int) *topic.EncodeSpec {
	return &topic.EncodeSpec{Kind: topic.EncodeTable, Index: index, Table: table, Fallback: fallback}
}

func encBitfield(index, mask int, shift uint, min, max int) *topic.EncodeSpec {
	return &topic.EncodeSpec{Kind: topic.EncodeBitfield, Index: index, Mask: mask, Shift: shift, Min: min, Max: max}
}

func encNTC(index int) *topic.EncodeSpec {
	return &topic.EncodeSpec{Kind: topic.EncodeNTC, Index: index}
}

func encComposite(index int, kind topic.CompositeEncodeKind) *topic.EncodeSpec {
	return &topic.EncodeSpec{Kind: topic.EncodeComposite, Index: index, Composite: kind}
}
