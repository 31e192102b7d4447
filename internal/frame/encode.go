package frame

import (
	"fmt"

	"github.com/pkrahmer/aquabridge/internal/bitfield"
	"github.com/pkrahmer/aquabridge/internal/topic"
)

// encodeValue dispatches a topic's tagged EncodeSpec, returning the byte
// index to splice into template and the value to splice there.
func encodeValue(e *topic.EncodeSpec, template []byte, value int) (int, byte, error) {
	switch e.Kind {
	case topic.EncodeBias:
		return e.Index, byte(value + e.Bias), nil
	case topic.EncodeBoolPair:
		if value != 0 {
			return e.Index, e.OnByte, nil
		}
		return e.Index, e.OffByte, nil
	case topic.EncodeTable:
		if value < 0 || value >= len(e.Table) {
			return e.Index, byte(e.Fallback), nil
		}
		return e.Index, byte(e.Table[value]), nil
	case topic.EncodeBitfield:
		v := clamp(value, e.Min, e.Max)
		return e.Index, bitfield.UpdateByte(template[e.Index], v, e.Mask, e.Shift), nil
	case topic.EncodeNTC:
		return e.Index, bitfield.NTCCodeOfTemp(value), nil
	case topic.EncodeComposite:
		return encodeComposite(e, value)
	default:
		return 0, 0, fmt.Errorf("frame: unhandled encode kind %v", e.Kind)
	}
}

func encodeComposite(e *topic.EncodeSpec, value int) (int, byte, error) {
	switch e.Composite {
	case topic.CompositeEncodePowerfulMode:
		// TODO: the +73 bias has never been confirmed against real hardware.
		v := clamp(value, 0, 3)
		return e.Index, byte(v + 73), nil
	case topic.CompositeEncodeQuietLevel:
		v := clamp(value, 0, 3)
		return e.Index, byte((v + 1) * 8), nil
	case topic.CompositeEncodeDemandControl:
		if value < 5 {
			return e.Index, 0, nil
		}
		return e.Index, byte(value*2 + 34), nil
	default:
		return 0, 0, fmt.Errorf("frame: unhandled composite encode kind %v", e.Composite)
	}
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
