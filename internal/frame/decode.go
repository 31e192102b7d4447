package frame

import (
	"fmt"
	"math"

	"github.com/pkrahmer/aquabridge/internal/bitfield"
	"github.com/pkrahmer/aquabridge/internal/catalogue"
	"github.com/pkrahmer/aquabridge/internal/topic"
)

// decodeValue dispatches a topic's tagged DecodeSpec against a validated
// frame, returning nil when the spec can't produce a value for this frame
// (should not happen given the catalogue's own length/optional bookkeeping).
func decodeValue(d topic.DecodeSpec, data []byte) any {
	switch d.Kind {
	case topic.DecodeBitsAt:
		b := data[d.Index]
		return (int(b)>>d.Shift)&d.Mask - d.Bias
	case topic.DecodeIMinus1:
		return bitfield.IMinus1(data[d.Index])
	case topic.DecodeIMinus128:
		return bitfield.IMinus128(data[d.Index])
	case topic.DecodeIMinus1Div5:
		return bitfield.IMinus1Div5(data[d.Index])
	case topic.DecodeIMinus1Times10:
		return bitfield.IMinus1Times10(data[d.Index])
	case topic.DecodeIMinus1Times50:
		return bitfield.IMinus1Times50(data[d.Index])
	case topic.DecodeEnergy:
		return bitfield.Energy(data[d.Index])
	case topic.DecodeComposite:
		return decodeComposite(d, data)
	default:
		return nil
	}
}

func decodeComposite(d topic.DecodeSpec, data []byte) any {
	switch d.Composite {
	case topic.CompositeOpMode:
		return decodeOpMode(data[d.Index])
	case topic.CompositeModel:
		return catalogue.ModelIndex(data)
	case topic.CompositeModelName:
		idx := catalogue.ModelIndex(data)
		if idx < 0 || idx >= len(catalogue.ModelNames) {
			return "Unknown"
		}
		return catalogue.ModelNames[idx]
	case topic.CompositeErrorInfo:
		return decodeErrorInfo(data)
	case topic.CompositePumpFlow:
		return decodePumpFlow(data)
	case topic.CompositeInletTemp:
		return decodeFractionalTemp(data, 143, 0)
	case topic.CompositeOutletTemp:
		return decodeFractionalTemp(data, 144, 3)
	case topic.CompositeDemandControl:
		return decodeDemandControl(data[d.Index])
	case topic.CompositeNTCSensor:
		return bitfield.NTCTemp(data[d.Index])
	case topic.CompositeServiceMode:
		if (data[d.Index]>>2)&3 == 3 {
			return 1
		}
		return 0
	case topic.CompositeConstZero:
		return 0
	case topic.CompositeWord1LowHigh:
		return int(data[d.Index+1])*256 + int(data[d.Index]) - 1
	default:
		return nil
	}
}

// decodeOpMode implements the exact frame[6]-low-6-bits mapping: any value
// outside the named set decodes to -1 (unknown), which the catalogue's own
// Accepts() then rejects as out of the 9-entry enum domain.
func decodeOpMode(b byte) int {
	switch int(b) & 0x3F {
	case 18:
		return 0
	case 19:
		return 1
	case 25:
		return 2
	case 33:
		return 3
	case 34:
		return 4
	case 35:
		return 5
	case 41:
		return 6
	case 26:
		return 7
	case 42:
		return 8
	default:
		return -1
	}
}

func decodeErrorInfo(data []byte) string {
	errType := int(data[113])
	errNumber := int(data[114]) - 17
	switch errType {
	case 49:
		return fmt.Sprintf("F%02X", errNumber)
	case 33:
		return fmt.Sprintf("H%02X", errNumber)
	default:
		return fmt.Sprintf("?%02X:%02X", errType, errNumber)
	}
}

func decodePumpFlow(data []byte) float64 {
	major := float64(data[170])
	minor := (float64(data[169]) - 1) / 256
	return math.Round((major+minor)*100) / 100
}

func decodeFractionalTemp(data []byte, tempIndex int, fracShift uint) float64 {
	value := float64(bitfield.IMinus128(data[tempIndex]))
	switch (data[118] >> fracShift) & 7 {
	case 2:
		value += 0.25
	case 3:
		value += 0.5
	case 4:
		value += 0.75
	}
	return value
}

func decodeDemandControl(b byte) float64 {
	switch {
	case b <= 43:
		return 0
	case b > 234:
		return 100
	default:
		return (float64(b) - 34) / 2
	}
}
