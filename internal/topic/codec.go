package topic

// DecodeKind tags which byte-extraction rule a topic's Decode uses. Using a
// tagged struct plus a dispatcher switch (in package frame) instead of a
// per-topic closure keeps the ~140-entry catalogue a plain data table.
type DecodeKind int

const (
	// DecodeBitsAt shifts frame[Index] right by Shift, keeps the bits
	// selected by Mask, then subtracts Bias. This single shape covers every named bit
	// primitive (bit_1, bits_1_2, ... right_3) as well as the one-off bit
	// extractions the optional-PCB actuator/status topics use.
	DecodeBitsAt DecodeKind = iota
	// DecodeIMinus1 returns int(frame[Index]) - 1.
	DecodeIMinus1
	// DecodeIMinus128 returns int(frame[Index]) - 128.
	DecodeIMinus128
	// DecodeIMinus1Div5 returns (frame[Index]-1)/5, rounded to 1 decimal.
	DecodeIMinus1Div5
	// DecodeIMinus1Times10 returns (int(frame[Index])-1)*10.
	DecodeIMinus1Times10
	// DecodeIMinus1Times50 returns (int(frame[Index])-1)*50.
	DecodeIMinus1Times50
	// DecodeEnergy returns (int(frame[Index])-1)*200.
	DecodeEnergy
	// DecodeComposite hands off to a named multi-byte decoder.
	DecodeComposite
)

// CompositeKind names one of the catalogue's bespoke multi-byte decoders,
// the ones spec.md §4.1 calls out individually because they read more than
// one byte or apply model-specific logic.
type CompositeKind int

const (
	CompositeOpMode CompositeKind = iota
	CompositeModel
	CompositeModelName
	CompositeErrorInfo
	CompositePumpFlow
	CompositeInletTemp
	CompositeOutletTemp
	CompositeDemandControl
	CompositeNTCSensor
	CompositeServiceMode
	CompositeConstZero
	CompositeWord1LowHigh
)

// DecodeSpec is the tagged decode descriptor stored on a Topic.
type DecodeSpec struct {
	Kind  DecodeKind
	Index int // primary byte index; composites may read others too

	// Parameters for DecodeBitsAt.
	Shift uint
	Mask  int
	Bias  int

	// Composite selects the dispatcher branch when Kind == DecodeComposite.
	Composite CompositeKind
}

// EncodeKind tags which byte-composition rule a topic's Encode uses.
type EncodeKind int

const (
	// EncodeBias writes byte(value + Bias) at Index.
	EncodeBias EncodeKind = iota
	// EncodeBoolPair writes OnByte when value is truthy (non-zero int),
	// else OffByte, at Index.
	EncodeBoolPair
	// EncodeTable writes Table[value] at Index, or Fallback if value is
	// out of range for Table.
	EncodeTable
	// EncodeBitfield splices clamp(value, Min, Max) into frame[Index] at
	// Shift (the bits selected by Mask) without disturbing neighbouring bits —
	// needed because several optional-PCB actuator topics share a byte.
	EncodeBitfield
	// EncodeNTC writes bitfield.NTCCodeOfTemp(value) at Index.
	EncodeNTC
	// EncodeComposite hands off to a named bespoke encoder.
	EncodeComposite
)

// CompositeEncodeKind names a bespoke encoder, for the handful of writable
// topics whose byte value isn't a plain bias/table/bitfield transform.
type CompositeEncodeKind int

const (
	CompositeEncodePowerfulMode CompositeEncodeKind = iota
	CompositeEncodeQuietLevel
	CompositeEncodeDemandControl
)

// EncodeSpec is the tagged encode descriptor stored on a Topic. A nil
// *EncodeSpec on a Topic means the topic is read-only.
type EncodeSpec struct {
	Kind  EncodeKind
	Index int

	Bias     int   // EncodeBias
	OnByte   byte  // EncodeBoolPair
	OffByte  byte  // EncodeBoolPair
	Table    []int // EncodeTable
	Fallback int   // EncodeTable

	Shift uint // EncodeBitfield
	Mask  int  // EncodeBitfield
	Min   int  // EncodeBitfield
	Max   int  // EncodeBitfield

	Composite CompositeEncodeKind // EncodeComposite
}
