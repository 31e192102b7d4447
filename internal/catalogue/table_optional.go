package catalogue

import "github.com/pkrahmer/aquabridge/internal/topic"

// optionalTopics returns every topic decoded from / encoded into the
// 20-byte optional-PCB frame.
func optionalTopics() []*topic.Topic {
	return []*topic.Topic{
		{
			Name: "Actor/Zones/1/WaterPump", Help: "Zone 1 water pump action request",
			Enum: []string{"Off", "On"}, Optional: true,
			Decode: bitsAt(4, 7, 1, 0),
		},
		{
			Name: "Actor/Zones/1/MixingValve", Help: "Zone 1 mixing valve action request",
			Enum: []string{"Off", "Decrease", "Increase"}, Optional: true,
			Decode: bitsAt(4, 5, 3, 0),
		},
		{
			Name: "Actor/Zones/2/WaterPump", Help: "Zone 2 water pump action request",
			Enum: []string{"Off", "On"}, Optional: true,
			Decode: bitsAt(4, 4, 1, 0),
		},
		{
			Name: "Actor/Zones/2/MixingValve", Help: "Zone 2 mixing valve action request",
			Enum: []string{"Off", "Decrease", "Increase"}, Optional: true,
			Decode: bitsAt(4, 2, 3, 0),
		},
		{
			Name: "Actor/Zones/Pool/WaterPump", Help: "Pool water pump action request",
			Enum: []string{"Off", "On"}, Optional: true,
			Decode: bitsAt(4, 1, 1, 0),
		},
		{
			Name: "Actor/Solar/WaterPump", Help: "Solar water pump action request",
			Enum: []string{"Off", "On"}, Optional: true,
			Decode: bitsAt(4, 0, 1, 0),
		},
		{
			Name: "Status/Alarm", Help: "Alarm state",
			Enum: []string{"Off", "On"}, Optional: true,
			Decode: bitsAt(5, 0, 1, 0),
		},
		{
			Name: "Control/Optional/HeatCoolMode", Help: "Set device to heat or cool mode",
			Enum: []string{"Heat", "Cool"}, Optional: true,
			Decode: bitsAt(6, 7, 1, 0),
			Encode: encBitfield(6, 1, 7, 0, 1),
		},
		{
			Name: "Control/Optional/CompressorState", Help: "Turn compressor on or off",
			Enum: []string{"Off", "On"}, Optional: true, Default: 1,
			Decode: bitsAt(6, 6, 1, 0),
			Encode: encBitfield(6, 1, 6, 0, 1),
		},
		{
			Name: "Control/Optional/SmartGridMode", Help: "Select smart grid (SG) mode",
			Enum: []string{"Normal", "Off", "Capacity 1", "Capacity 2"}, Optional: true,
			Decode: bitsAt(6, 4, 3, 0),
			Encode: encBitfield(6, 3, 4, 0, 3),
		},
		{
			Name: "Control/Optional/ExternalThermostat1State", Help: "Action request of external thermostat 1",
			Enum: []string{"Off", "Heat", "Cool", "HeatAndCool"}, Optional: true,
			Decode: bitsAt(6, 2, 3, 0),
			Encode: encBitfield(6, 3, 2, 0, 3),
		},
		{
			Name: "Control/Optional/ExternalThermostat2State", Help: "Action request of external thermostat 2",
			Enum: []string{"Off", "Heat", "Cool", "HeatAndCool"}, Optional: true,
			Decode: bitsAt(6, 0, 3, 0),
			Encode: encBitfield(6, 3, 0, 0, 3),
		},
		{
			Name: "Control/Optional/DemandControl", Help: "Demand control setting",
			Area: rng(0, 100), Optional: true,
			Decode: composite(14, topic.CompositeDemandControl),
			Encode: encComposite(14, topic.CompositeEncodeDemandControl),
		},
		{
			Name: "Control/Optional/Sensors/PoolTemp", Help: "Pool temperature sensor reading",
			Area: ntcRange(), Optional: true,
			Decode: composite(7, topic.CompositeNTCSensor),
			Encode: encNTC(7),
		},
		{
			Name: "Control/Optional/Sensors/BufferTemp", Help: "Buffer temperature sensor reading",
			Area: ntcRange(), Optional: true,
			Decode: composite(8, topic.CompositeNTCSensor),
			Encode: encNTC(8),
		},
		{
			Name: "Control/Optional/Sensors/Zones/1/RoomTemp", Help: "Zone 1 room temperature sensor reading",
			Area: ntcRange(), Optional: true,
			Decode: composite(10, topic.CompositeNTCSensor),
			Encode: encNTC(10),
		},
		{
			Name: "Control/Optional/Sensors/Zones/1/WaterTemp", Help: "Zone 1 water temperature sensor reading",
			Area: ntcRange(), Optional: true,
			Decode: composite(16, topic.CompositeNTCSensor),
			Encode: encNTC(16),
		},
		{
			Name: "Control/Optional/Sensors/Zones/2/RoomTemp", Help: "Zone 2 room temperature sensor reading",
			Area: ntcRange(), Optional: true,
			Decode: composite(11, topic.CompositeNTCSensor),
			Encode: encNTC(11),
		},
		{
			Name: "Control/Optional/Sensors/Zones/2/WaterTemp", Help: "Zone 2 water temperature sensor reading",
			Area: ntcRange(), Optional: true,
			Decode: composite(15, topic.CompositeNTCSensor),
			Encode: encNTC(15),
		},
		{
			Name: "Control/Optional/Sensors/SolarTemp", Help: "Solar water temperature sensor reading",
			Area: ntcRange(), Optional: true,
			Decode: composite(13, topic.CompositeNTCSensor),
			Encode: encNTC(13),
		},
	}
}
