package catalogue

import "github.com/pkrahmer/aquabridge/internal/topic"

// mainTopics returns every topic decoded from / encoded into the 203-byte
// main frame, in the same order as the device dump they were reverse
// engineered from.
func mainTopics() []*topic.Topic {
	return []*topic.Topic{
		{
			Name: "Control/HeatpumpState", Help: "Heatpump state",
			Enum:   []string{"Off", "On"},
			Decode: bits78(4), Encode: encBool(4, 2, 1),
		},
		{
			Name: "Config/Pump/ServiceMode", Help: "Set Water Pump to service mode, max speed",
			Enum:   []string{"Off", "On"},
			Decode: composite(4, topic.CompositeServiceMode), Encode: encBool(4, 32, 16),
		},
		{
			Name: "Control/Reset", Help: "Perform a reset on the heat pump",
			Enum:   []string{"Off", "On"},
			Decode: composite(0, topic.CompositeConstZero), Encode: encBool(8, 1, 0),
		},
		{
			Name: "Status/Pump/Flow", Help: "Current pump flow rate", Unit: "l/min",
			Area:   rng(0, 256),
			Decode: composite(0, topic.CompositePumpFlow),
		},
		{
			Name: "Control/DHW/Force", Help: "Enforce DHW heating operation to happen now",
			Enum:   []string{"Disabled", "Enabled"},
			Decode: bits12(4), Encode: encBool(4, 128, 64),
		},
		{
			Name: "Control/OperatingMode", Help: "Operating mode of the heat pump, as settable on the remote control",
			Enum: []string{"Heat", "Cool", "Auto(heat)", "DHW", "Heat+DHW", "Cool+DHW",
				"Auto(heat)+DHW", "Auto(cool)", "Auto(cool)+DHW"},
			// Encode table byte 24 (index 2, Auto(heat)) and byte 40 (index 6,
			// Auto(heat)+DHW) don't round-trip through decodeOpMode, which maps
			// those two states from byte 25 and 41 instead; kept as-is (see DESIGN.md).
			Decode: composite(6, topic.CompositeOpMode),
			Encode: encTable(6, []int{18, 19, 24, 33, 34, 35, 40}, 0),
		},
		{
			Name: "Status/Temp/Inlet", Help: "Inlet / return-flow water temperature measurement", Unit: "°C",
			Area:   rng(-128.75, 127.75),
			Decode: composite(143, topic.CompositeInletTemp),
		},
		{
			Name: "Status/Temp/Outlet", Help: "Outlet / forward-flow water temperature measurement", Unit: "°C",
			Area:   rng(-128.75, 127.75),
			Decode: composite(144, topic.CompositeOutletTemp),
		},
		{
			Name: "Status/Temp/Target", Help: "Outlet target temperature", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(153),
		},
		{
			Name: "Status/Compressor/Freq", Help: "Compressor frequency", Unit: "Hz",
			Area: rng(-1, 254), Decode: iMinus1(166),
		},
		{
			Name: "Control/DHW/TargetTemp", Help: "Water tank target temperature", Unit: "°C",
			Area:   rng(-128, 127),
			Decode: iMinus128(42), Encode: encBias(42, 128),
		},
		{
			Name: "Status/Temp/DHW", Help: "Water tank temperature measurement", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(141),
		},
		{
			Name: "Statistics/Usage/Runtime", Help: "Total runtime of the compressor", Unit: "h",
			Area:   rng(-1, 65534),
			Decode: composite(182, topic.CompositeWord1LowHigh),
		},
		{
			Name: "Statistics/Usage/Starts", Help: "Total number of compressor starts",
			Area:   rng(-1, 65534),
			Decode: composite(179, topic.CompositeWord1LowHigh),
		},
		{
			Name: "Control/MainSchedule", Help: "Main thermostat schedule used or not used",
			Enum:   []string{"Disabled", "Enabled"},
			Decode: bits12(5), Encode: encBool(5, 128, 64),
		},
		{
			Name: "Status/Temp/Outside", Help: "Outside ambient temperature measurement", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(142),
		},
		{
			Name: "Statistics/Energy/Production/Heat", Help: "Current thermal heat power production used for heating", Unit: "W",
			Area: rng(-200, 50800), Decode: energy(194),
		},
		{
			Name: "Statistics/Energy/Consumption/Heat", Help: "Current electrical power consumption used for heating", Unit: "W",
			Area: rng(-200, 50800), Decode: energy(193),
		},
		{
			Name: "Control/PowerfulMode", Help: "Powerful mode timeout",
			Enum:   []string{"Off", "30min", "60min", "90min"},
			Decode: right3(7), Encode: encComposite(7, topic.CompositeEncodePowerfulMode),
		},
		{
			Name: "Control/QuietMode/Schedule", Help: "Quiet mode schedule used or not used",
			Enum:   []string{"Disabled", "Enabled"},
			Decode: bits12(7),
		},
		{
			Name: "Control/QuietMode/Level", Help: "Level of quiet mode (the higher the quieter)",
			Enum:   []string{"Off", "Level 1", "Level 2", "Level 3"},
			Decode: bits35(7), Encode: encComposite(7, topic.CompositeEncodeQuietLevel),
		},
		{
			Name: "Control/HolidayMode", Help: "Whether holiday mode is off, active or scheduled",
			Enum:   []string{"Off", "Scheduled", "Active"},
			Decode: bits34(5), Encode: encBool(5, 32, 16),
		},
		{
			Name: "Status/ThreeWayValve", Help: "Switch state of three way valve, heating or DHW",
			Enum:   []string{"Room", "DHW"},
			Decode: bits78(111),
		},
		{
			Name: "Status/Temp/Internal/OutsidePipe", Help: "Outside pipe temperature measurement", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(158),
		},
		{
			Name: "Config/DHW/Delta", Help: "Hysteresis for DHW tank heating", Unit: "K",
			Area:   rng(-12, -2),
			Decode: iMinus128(99), Encode: encBias(99, 128),
		},
		{
			Name: "Config/Heating/Delta", Help: "Aimed outlet-inlet temperature delta when heating", Unit: "K",
			Area:   rng(-128, 127),
			Decode: iMinus128(84), Encode: encBias(84, 128),
		},
		{
			Name: "Config/Cooling/Delta", Help: "Aimed outlet-inlet temperature delta when cooling", Unit: "K",
			Area:   rng(-128, 127),
			Decode: iMinus128(94), Encode: encBias(94, 128),
		},
		{
			Name: "Config/DHW/HolidayShiftTemp", Help: "Holiday shift temperature for DHW tank heating", Unit: "K",
			Area: rng(-15, 15), Decode: iMinus128(44),
		},
		{
			Name: "Status/Defrosting", Help: "Defrosting currently ongoing or not",
			Enum:   []string{"Disabled", "Enabled"},
			Decode: bits56(111), Encode: encBool(8, 2, 0),
		},
		{
			Name: "Status/Temp/RoomThermostat", Help: "Remote control thermostat temperature measurement", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(156),
		},
		{
			Name: "Config/Zones/1/Heat/RequestTemp", Help: "Heat Requested shift temp (-5 to 5) or direct heat temp (20 to max)", Unit: "°C",
			Area:   rng(-5, 127),
			Decode: iMinus128(38), Encode: encBias(38, 128),
		},
		{
			Name: "Config/Zones/1/Cool/RequestTemp", Help: "Cool Requested shift temp (-5 to 5) or direct cool temp (5 to 20)", Unit: "°C",
			Area:   rng(-5, 20),
			Decode: iMinus128(39), Encode: encBias(39, 128),
		},
		{
			Name: "Config/Zones/2/Heat/RequestTemp", Help: "Heat Requested shift temp (-5 to 5) or direct heat temp (20 to max)", Unit: "°C",
			Area:   rng(-5, 127),
			Decode: iMinus128(40), Encode: encBias(40, 128),
		},
		{
			Name: "Config/Zones/2/Cool/RequestTemp", Help: "Cool Requested shift temp (-5 to 5) or direct cool temp (5 to 20)", Unit: "°C",
			Area:   rng(-5, 20),
			Decode: iMinus128(41), Encode: encBias(41, 128),
		},
		{
			Name: "Status/Temp/Zones/1/Outlet", Help: "Zone 1 water outlet temperature measurement", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(145),
		},
		{
			Name: "Status/Temp/Zones/2/Outlet", Help: "Zone 2 water outlet temperature measurement", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(146),
		},
		{
			Name: "Statistics/Energy/Production/Cool", Help: "Thermal cooling power production", Unit: "W",
			Area: rng(-200, 50800), Decode: energy(196),
		},
		{
			Name: "Statistics/Energy/Consumption/Cool", Help: "Electrical power consumption for cooling", Unit: "W",
			Area: rng(-200, 50800), Decode: energy(195),
		},
		{
			Name: "Statistics/Energy/Production/DHW", Help: "Thermal heating power production for DHW", Unit: "W",
			Area: rng(-200, 50800), Decode: energy(198),
		},
		{
			Name: "Statistics/Energy/Consumption/DHW", Help: "Electrical power consumption for DHW", Unit: "W",
			Area: rng(-200, 50800), Decode: energy(197),
		},
		{
			Name: "Status/Temp/Zones/1/OutletTarget", Help: "Zone 1 water target temperature", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(147),
		},
		{
			Name: "Status/Temp/Zones/2/OutletTarget", Help: "Zone 2 water target temperature", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(148),
		},
		{
			Name: "Status/Error", Help: "Error code of the last error that happened",
			Decode: composite(113, topic.CompositeErrorInfo),
		},
		{
			Name: "Config/Heating/HolidayShiftTemp", Help: "Room heating Holiday shift temperature", Unit: "K",
			Area: rng(-15, 15), Decode: iMinus128(43),
		},
		{
			Name: "Status/Temp/Buffer", Help: "Actual buffer temperature measurement", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(149),
		},
		{
			Name: "Status/Temp/Solar", Help: "Actual solar temperature measurement", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(150),
		},
		{
			Name: "Status/Temp/Pool", Help: "Actual pool temperature measurement", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(151),
		},
		{
			Name: "Status/Temp/Internal/MainHexOutlet", Help: "Outlet 2, after heat exchanger water temperature measurement", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(154),
		},
		{
			Name: "Status/Temp/Internal/Discharge", Help: "Discharge temperature measurement", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(155),
		},
		{
			Name: "Status/Temp/Internal/InsidePipe", Help: "Inside pipe temperature measurement", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(157),
		},
		{
			Name: "Status/Temp/Internal/Defrost", Help: "Defrost temperature", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(159),
		},
		{
			Name: "Status/Temp/Internal/EvaOutlet", Help: "Eva Outlet temperature measurement", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(160),
		},
		{
			Name: "Status/Temp/Internal/BypassOutlet", Help: "Bypass Outlet temperature measurement", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(161),
		},
		{
			Name: "Status/Temp/Internal/IPM", Help: "Ipm temperature measurement", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(162),
		},
		{
			Name: "Status/Temp/Zones/1/Actual", Help: "Zone 1 actual temperature", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(139),
		},
		{
			Name: "Status/Temp/Zones/2/Actual", Help: "Zone 2 actual temperature", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(140),
		},
		{
			Name: "Config/HeatingRod/DHW", Help: "When enabled, backup/booster heater can be used for DHW heating",
			Enum:   []string{"Blocked", "Free"},
			Decode: bits56(9),
		},
		{
			Name: "Config/HeatingRod/Room", Help: "When enabled, backup/booster heater can be used for room heating",
			Enum:   []string{"Blocked", "Free"},
			Decode: bits78(9),
		},
		{
			Name: "Status/HeatingRod/Internal", Help: "Internal backup heater state",
			Enum:   []string{"Inactive", "Active"},
			Decode: bits78(112),
		},
		{
			Name: "Status/HeatingRod/External", Help: "External backup heater state",
			Enum:   []string{"Inactive", "Active"},
			Decode: bits56(112),
		},
		{
			Name: "Status/Fan/1/Speed", Help: "Fan 1 Motor rotation speed", Unit: "r/min",
			Area: rng(-10, 2540), Decode: iMinus1Times10(173),
		},
		{
			Name: "Status/Fan/2/Speed", Help: "Fan 2 Motor rotation speed", Unit: "r/min",
			Area: rng(-10, 2540), Decode: iMinus1Times10(174),
		},
		{
			Name: "Status/Pressure/High", Help: "High pressure", Unit: "Kgf/cm2",
			Area: rng(-0.2, 50.8), Decode: iMinus1Div5(163),
		},
		{
			Name: "Status/Pump/Speed", Help: "Pump rotation speed", Unit: "r/min",
			Area: rng(-50, 12700), Decode: iMinus1Times50(171),
		},
		{
			Name: "Status/Pressure/Low", Help: "Low pressure", Unit: "Kgf/cm2",
			Area: rng(-1, 254), Decode: iMinus1(164),
		},
		{
			Name: "Status/Compressor/Current", Help: "Compressor electrical current", Unit: "A",
			Area: rng(-0.2, 50.8), Decode: iMinus1Div5(165),
		},
		{
			Name: "Status/HeatingRod/Enforce", Help: "Force heating rod",
			Enum:   []string{"Inactive", "Active"},
			Decode: bits56(5),
		},
		{
			Name: "Control/DHW/Sterilization", Help: "Sterilisation state",
			Enum:   []string{"Inactive", "Active"},
			Decode: bits56(117), Encode: encBool(8, 4, 0),
		},
		{
			Name: "Config/DHW/SterilizationTemp", Help: "Sterilisation temperature", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(100),
		},
		{
			Name: "Config/DHW/SterilizationMaxTime", Help: "Sterilisation maximum time", Unit: "min",
			Area: rng(-1, 254), Decode: iMinus1(101),
		},
		{
			Name: "Config/Zones/1/HeatCurve/TargetHigh", Help: "Target temperature at highest point on the heating curve", Unit: "°C",
			Area:   rng(-128, 127),
			Decode: iMinus128(75), Encode: encBias(75, 128),
		},
		{
			Name: "Config/Zones/1/HeatCurve/TargetLow", Help: "Target temperature at lowest point on the heating curve", Unit: "°C",
			Area:   rng(-128, 127),
			Decode: iMinus128(76), Encode: encBias(76, 128),
		},
		{
			Name: "Config/Zones/1/HeatCurve/OutsideHigh", Help: "Highest outside temperature on the heating curve", Unit: "°C",
			Area:   rng(-128, 127),
			Decode: iMinus128(78), Encode: encBias(78, 128),
		},
		{
			Name: "Config/Zones/1/HeatCurve/OutsideLow", Help: "Lowest outside temperature on the heating curve", Unit: "°C",
			Area:   rng(-128, 127),
			Decode: iMinus128(77), Encode: encBias(77, 128),
		},
		{
			Name: "Config/Zones/1/CoolCurve/TargetHigh", Help: "Target temperature at highest point on the cooling curve", Unit: "°C",
			Area:   rng(-128, 127),
			Decode: iMinus128(86), Encode: encBias(86, 128),
		},
		{
			Name: "Config/Zones/1/CoolCurve/TargetLow", Help: "Target temperature at lowest point on the cooling curve", Unit: "°C",
			Area:   rng(-128, 127),
			Decode: iMinus128(87), Encode: encBias(87, 128),
		},
		{
			Name: "Config/Zones/1/CoolCurve/OutsideHigh", Help: "Highest outside temperature on the cooling curve", Unit: "°C",
			Area:   rng(-128, 127),
			Decode: iMinus128(89), Encode: encBias(89, 128),
		},
		{
			Name: "Config/Zones/1/CoolCurve/OutsideLow", Help: "Lowest outside temperature on the cooling curve", Unit: "°C",
			Area:   rng(-128, 127),
			Decode: iMinus128(88), Encode: encBias(88, 128),
		},
		{
			Name: "Config/Zones/2/HeatCurve/TargetHigh", Help: "Target temperature at highest point on the heating curve", Unit: "°C",
			Area:   rng(-128, 127),
			Decode: iMinus128(79), Encode: encBias(79, 128),
		},
		{
			Name: "Config/Zones/2/HeatCurve/TargetLow", Help: "Target temperature at lowest point on the heating curve", Unit: "°C",
			Area:   rng(-128, 127),
			Decode: iMinus128(80), Encode: encBias(80, 128),
		},
		{
			Name: "Config/Zones/2/HeatCurve/OutsideHigh", Help: "Highest outside temperature on the heating curve", Unit: "°C",
			Area:   rng(-128, 127),
			Decode: iMinus128(82), Encode: encBias(82, 128),
		},
		{
			Name: "Config/Zones/2/HeatCurve/OutsideLow", Help: "Lowest outside temperature on the heating curve", Unit: "°C",
			Area:   rng(-128, 127),
			Decode: iMinus128(81), Encode: encBias(81, 128),
		},
		{
			Name: "Config/Zones/2/CoolCurve/TargetHigh", Help: "Target temperature at highest point on the cooling curve", Unit: "°C",
			Area:   rng(-128, 127),
			Decode: iMinus128(90), Encode: encBias(90, 128),
		},
		{
			Name: "Config/Zones/2/CoolCurve/TargetLow", Help: "Target temperature at lowest point on the cooling curve", Unit: "°C",
			Area:   rng(-128, 127),
			Decode: iMinus128(91), Encode: encBias(91, 128),
		},
		{
			Name: "Config/Zones/2/CoolCurve/OutsideHigh", Help: "Highest outside temperature on the cooling curve", Unit: "°C",
			Area:   rng(-128, 127),
			Decode: iMinus128(93), Encode: encBias(93, 128),
		},
		{
			Name: "Config/Zones/2/CoolCurve/OutsideLow", Help: "Lowest outside temperature on the cooling curve", Unit: "°C",
			Area:   rng(-128, 127),
			Decode: iMinus128(92), Encode: encBias(92, 128),
		},
		{
			Name: "Config/Heating/Mode", Help: "Compensation curve or Direct mode for heating",
			Enum:   []string{"Comp. Curve", "Direct"},
			Decode: bits78(28),
		},
		{
			Name: "Config/Heating/OffOutdoorTemp", Help: "Above this outdoor temperature all heating is turned off", Unit: "°C",
			Area: rng(5, 35), Decode: iMinus128(83),
		},
		{
			Name: "Config/HeatingRod/OnOutdoorTemp", Help: "Below this temperature the backup heating rod is allowed to be used by heatpump heating logic", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(85),
		},
		{
			Name: "Config/HeatToCoolTemp", Help: "Outdoor temperature to switch from heat to cool mode when in auto setting", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(95),
		},
		{
			Name: "Config/CoolToHeatTemp", Help: "Outdoor temperature to switch from cool to heat mode when in auto setting", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(96),
		},
		{
			Name: "Config/Cooling/Mode", Help: "Compensation curve or Direct mode for cooling",
			Enum:   []string{"Comp. Curve", "Direct"},
			Decode: bits56(28),
		},
		{
			Name: "Statistics/Usage/HeatingRod/Room", Help: "Electric heater operating time for room heating", Unit: "h",
			Area:   rng(-1, 65534),
			Decode: composite(185, topic.CompositeWord1LowHigh),
		},
		{
			Name: "Statistics/Usage/HeatingRod/DHW", Help: "Electric heater operating time for DHW", Unit: "h",
			Area:   rng(-1, 65534),
			Decode: composite(188, topic.CompositeWord1LowHigh),
		},
		{
			Name: "Model/ID", Help: "Heat pump model",
			Area:   rng(0, float64(len(ModelNames)-1)),
			Decode: composite(129, topic.CompositeModel),
		},
		{
			Name: "Model/Name", Help: "Heat pump model",
			Decode: composite(129, topic.CompositeModelName),
		},
		{
			Name: "Status/Pump/Duty", Help: "Current pump duty",
			Area: rng(-1, 254), Decode: iMinus1(172),
		},
		{
			Name: "Config/Zones/State", Help: "Zones connected to the device",
			Enum:   []string{"Zone1 active", "Zone2 active", "Zone1 and zone2 active"},
			Decode: bits12(6), Encode: encTable(6, []int{64, 128, 192}, 0),
		},
		{
			Name: "Config/Pump/MaxDuty", Help: "Maximum pump duty configured",
			Area:   rng(-1, 254),
			Decode: iMinus1(45), Encode: encBias(45, 1),
		},
		{
			Name: "Config/HeatingRod/DelayTime", Help: "Heater delay time (J-series only)", Unit: "min",
			Area:   rng(-1, 254),
			Decode: iMinus1(104), Encode: encBias(104, 1),
		},
		{
			Name: "Config/HeatingRod/StartDelta", Help: "Heater start delta (J-series only)", Unit: "K",
			Area:   rng(-128, 127),
			Decode: iMinus128(105), Encode: encBias(105, 128),
		},
		{
			Name: "Config/HeatingRod/StopDelta", Help: "Heater stop delta (J-series only)", Unit: "K",
			Area:   rng(-128, 127),
			Decode: iMinus128(106), Encode: encBias(106, 128),
		},
		{
			Name: "Config/Buffer/Installed", Help: "Buffer tank installed",
			Enum:   []string{"Disabled", "Enabled"},
			Decode: bits56(24),
		},
		{
			Name: "Config/DHW/Installed", Help: "Buffer DHW tank installed",
			Enum:   []string{"Disabled", "Enabled"},
			Decode: bits78(24),
		},
		{
			Name: "Config/Solar/Mode", Help: "Solar mode (disabled, to buffer, to DHW)",
			Enum:   []string{"Disabled", "Buffer", "DHW"},
			Decode: bits34(24),
		},
		{
			Name: "Config/Solar/OnDelta", Help: "Solar heating delta on", Unit: "K",
			Area: rng(-128, 127), Decode: iMinus128(61),
		},
		{
			Name: "Config/Solar/OffDelta", Help: "Solar heating delta off", Unit: "K",
			Area: rng(-128, 127), Decode: iMinus128(62),
		},
		{
			Name: "Config/Solar/FrostProtection", Help: "Solar frost protection temperature", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(63),
		},
		{
			Name: "Config/Solar/HighLimit", Help: "Solar max temperature limit", Unit: "°C",
			Area: rng(-128, 127), Decode: iMinus128(64),
		},
		{
			Name: "Config/Pump/FlowRateMode", Help: "Mode of pump control",
			Enum:   []string{"DeltaT", "Max flow"},
			Decode: bits34(29),
		},
		{
			Name: "Config/LiquidType", Help: "Type of liquid in system",
			Enum:   []string{"Water", "Glycol"},
			Decode: bit1(20),
		},
		{
			Name: "Config/AltExternalSensor", Help: "If external outdoor sensor is used",
			Enum:   []string{"Disabled", "Enabled"},
			Decode: bits34(20), Encode: encBool(20, 32, 16),
		},
		{
			Name: "Config/AntiFreezeMode", Help: "Is anti freeze mode enabled or disabled",
			Enum:   []string{"Disabled", "Enabled"},
			Decode: bits56(20),
		},
		{
			Name: "Config/OptionalPCB", Help: "If the optional PCB is enabled (if installed)",
			Enum:   []string{"Disabled", "Enabled"},
			Decode: bits78(20),
		},
		{
			Name: "Config/Sensor/Zones/1", Help: "Setting of the sensor for zone 1",
			Enum:   []string{"Water Temperature", "External Thermostat", "Internal Thermostat", "Thermistor"},
			Decode: bitsAt(22, 0, 15, 1),
		},
		{
			Name: "Config/Sensor/Zones/2", Help: "Setting of the sensor for zone 2",
			Enum:   []string{"Water Temperature", "External Thermostat", "Internal Thermostat", "Thermistor"},
			Decode: bitsAt(22, 4, 15, 1),
		},
		{
			Name: "Config/Buffer/Delta", Help: "Delta of buffer tank setting", Unit: "K",
			Area:   rng(-128, 127),
			Decode: iMinus128(59), Encode: encBias(59, 128),
		},
		{
			Name: "Config/ExternalPadHeater", Help: "If the external pad heater is enabled (if installed)",
			Enum:   []string{"Disabled", "Type-A", "Type-B"},
			Decode: bits34(25), Encode: encTable(25, []int{16, 32, 48}, 16),
		},
	}
}
