// Package frame implements spec.md §4.3's frame codec: checksum-gated
// decoding of a received buffer into topic-state updates, and composition
// of an outbound frame from a single topic write.
package frame

import (
	"time"

	"github.com/pkrahmer/aquabridge/internal/bitfield"
	"github.com/pkrahmer/aquabridge/internal/topic"
)

// Kind names which of the two frame classes a buffer belongs to.
type Kind int

const (
	Main Kind = iota
	Optional
)

func (k Kind) String() string {
	if k == Optional {
		return "optional"
	}
	return "main"
}

const (
	MainFrameLen     = 203
	OptionalFrameLen = 20
	mainSendLen      = 110 // header + zero payload, before checksum
	optionalSeedLen  = 19  // before checksum
)

var pollHeader = []byte{0x71, 0x6C, 0x01, 0x10}
var sendHeader = []byte{0xF1, 0x6C, 0x01, 0x10}

// OptionalTemplateSeed is the fixed 19-byte optional-PCB frame the bridge
// presents as itself: used both to poll as an impersonated accessory board
// and, mutated in place, to answer the heat pump's query to that board.
var OptionalTemplateSeed = []byte{
	0xF1, 0x11, 0x01, 0x50, 0x00, 0x00, 0x40, 0xFF, 0xFF, 0xE5,
	0xFF, 0xFF, 0x00, 0xFF, 0xEB, 0xFF, 0xFF, 0x00, 0x00,
}

// NewOptionalTemplate returns a fresh copy of the seed, owned by the
// caller (normally the scheduler keeps exactly one of these across ticks
// so bitfield-spliced commands on shared bytes accumulate correctly).
func NewOptionalTemplate() []byte {
	t := make([]byte, optionalSeedLen)
	copy(t, OptionalTemplateSeed)
	return t
}

// NewPollFrame returns the 110-byte main poll query, checksummed.
func NewPollFrame() []byte {
	t := make([]byte, mainSendLen)
	copy(t, pollHeader)
	return append(t, bitfield.Checksum(t))
}

// NewOptionalPollFrame returns template, checksummed, as the 20-byte
// optional-PCB poll/reply frame.
func NewOptionalPollFrame(template []byte) []byte {
	out := append([]byte{}, template...)
	return append(out, bitfield.Checksum(out))
}

func newMainSendTemplate() []byte {
	t := make([]byte, mainSendLen)
	copy(t, sendHeader)
	return t
}

// Codec binds a topic catalogue to the decode/encode logic that reads and
// writes its topics against the wire format.
type Codec struct {
	cat *topic.Catalogue
}

// NewCodec returns a Codec operating over cat.
func NewCodec(cat *topic.Catalogue) *Codec {
	return &Codec{cat: cat}
}

// DecodeAndUpdate implements spec.md §4.3's decode_and_update: validates
// length and checksum, then dispatches every topic whose `optional` flag
// matches this frame's length, updating topic state in place. It reports
// whether the frame was valid (regardless of whether any topic changed).
func (c *Codec) DecodeAndUpdate(data []byte, now time.Time) bool {
	if len(data) != OptionalFrameLen && len(data) != MainFrameLen {
		return false
	}
	if !bitfield.ValidChecksum(data) {
		return false
	}
	optional := len(data) == OptionalFrameLen
	for i, t := range c.cat.Topics() {
		if t.Optional != optional {
			continue
		}
		val := decodeValue(t.Decode, data)
		if val == nil || !t.Accepts(val) {
			continue
		}
		c.cat.StateAt(i).Update(val, now)
	}
	return true
}

// EncodeOutbound implements spec.md §4.3's encode_outbound: chooses the
// main or optional template, asks the topic's encoder where to splice the
// value, and appends the checksum. For a main-frame topic a fresh template
// is used every call; for an optional-PCB topic optionalTemplate is
// mutated in place so that multiple writable bits sharing one byte (see
// Control/Optional/* in the catalogue) accumulate instead of clobbering
// each other.
func (c *Codec) EncodeOutbound(t *topic.Topic, value int, optionalTemplate []byte) ([]byte, error) {
	var template []byte
	if t.Optional {
		template = optionalTemplate
	} else {
		template = newMainSendTemplate()
	}
	idx, b, err := encodeValue(t.Encode, template, value)
	if err != nil {
		return nil, err
	}
	template[idx] = b
	out := append([]byte{}, template...)
	return append(out, bitfield.Checksum(out)), nil
}
