package frame

import (
	"testing"
	"time"

	"github.com/pkrahmer/aquabridge/internal/catalogue"
	"github.com/pkrahmer/aquabridge/internal/topic"
)

func newTestCodec() (*Codec, *topic.Catalogue) {
	cat := topic.NewCatalogue(catalogue.Build())
	return NewCodec(cat), cat
}

func mainFrame() []byte {
	b := make([]byte, MainFrameLen)
	return b
}

func withChecksum(b []byte) []byte {
	return append(b[:len(b)-1], checksumOf(b[:len(b)-1]))
}

// checksumOf mirrors bitfield.Checksum without importing it twice in tests.
func checksumOf(data []byte) byte {
	sum := 0
	for _, v := range data {
		sum += int(v)
	}
	return byte((sum ^ 0xFF) + 1)
}

func TestDecodeAndUpdateRejectsBadLength(t *testing.T) {
	c, _ := newTestCodec()
	if c.DecodeAndUpdate(make([]byte, 5), time.Now()) {
		t.Fatal("expected false for an impossible frame length")
	}
}

func TestDecodeAndUpdateRejectsBadChecksum(t *testing.T) {
	c, _ := newTestCodec()
	b := mainFrame()
	b[len(b)-1] = 0xFF // almost certainly wrong
	if c.DecodeAndUpdate(b, time.Now()) {
		t.Fatal("expected false for an invalid checksum")
	}
}

func TestInletTempScenario(t *testing.T) {
	c, cat := newTestCodec()
	b := mainFrame()
	b[143] = 150 // int_minus_128 -> 22
	b[118] = 0x1B // low 3 bits = 3 -> +0.5
	b = withChecksum(b)

	if !c.DecodeAndUpdate(b, time.Now()) {
		t.Fatal("expected a valid frame")
	}
	st, ok := cat.State("Status/Temp/Inlet")
	if !ok {
		t.Fatal("topic not found")
	}
	if v := st.Value(); v != 22.5 {
		t.Fatalf("Status/Temp/Inlet = %v, want 22.5", v)
	}
}

func TestOpModeScenario(t *testing.T) {
	c, cat := newTestCodec()
	b := mainFrame()
	b[6] = 33 // DHW
	b = withChecksum(b)

	c.DecodeAndUpdate(b, time.Now())
	st, _ := cat.State("Control/OperatingMode")
	if v := st.Value(); v != 3 {
		t.Fatalf("Control/OperatingMode = %v, want 3 (DHW)", v)
	}
}

func TestEnergyScenario(t *testing.T) {
	c, cat := newTestCodec()
	b := mainFrame()
	b[194] = 6
	b = withChecksum(b)

	c.DecodeAndUpdate(b, time.Now())
	st, _ := cat.State("Statistics/Energy/Production/Heat")
	if v := st.Value(); v != 1000 {
		t.Fatalf("Production/Heat = %v, want 1000", v)
	}
}

func TestOptionalPollFrameEchoAndDecode(t *testing.T) {
	c, cat := newTestCodec()
	tpl := NewOptionalTemplate()
	incoming := make([]byte, OptionalFrameLen)
	incoming[4] = 0x12
	incoming[5] = 0x34
	incoming = withChecksum(incoming)

	// scheduler-side echo step: splice bytes 4,5 into the reply template.
	tpl[4] = incoming[4]
	tpl[5] = incoming[5]
	reply := NewOptionalPollFrame(tpl)
	if len(reply) != OptionalFrameLen {
		t.Fatalf("reply length = %d, want %d", len(reply), OptionalFrameLen)
	}
	if !c.DecodeAndUpdate(reply, time.Now()) {
		t.Fatal("expected the echoed reply to validate")
	}
	st, _ := cat.State("Status/Alarm")
	if st == nil {
		t.Fatal("Status/Alarm topic missing")
	}
}

func TestDemandControlRoundTrip(t *testing.T) {
	cat := topic.NewCatalogue(catalogue.Build())
	c := NewCodec(cat)
	topicDC, _, ok := cat.Find("Control/Optional/DemandControl")
	if !ok {
		t.Fatal("topic not found")
	}

	tpl := NewOptionalTemplate()
	out, err := c.EncodeOutbound(topicDC, 60, tpl)
	if err != nil {
		t.Fatalf("EncodeOutbound error: %v", err)
	}
	if out[14] != 154 {
		t.Fatalf("byte[14] = %d, want 154", out[14])
	}

	b := make([]byte, OptionalFrameLen)
	b[14] = 154
	b = withChecksum(b)
	c.DecodeAndUpdate(b, time.Now())
	st, _ := cat.State("Control/Optional/DemandControl")
	if v := st.Value(); v != float64(60) {
		t.Fatalf("decoded demand control = %v, want 60", v)
	}
}

func TestPowerfulModeEncode(t *testing.T) {
	cat := topic.NewCatalogue(catalogue.Build())
	c := NewCodec(cat)
	tp, _, _ := cat.Find("Control/PowerfulMode")
	out, err := c.EncodeOutbound(tp, 2, nil)
	if err != nil {
		t.Fatalf("EncodeOutbound error: %v", err)
	}
	if out[7] != 75 { // min(3,max(0,2))+73
		t.Fatalf("byte[7] = %d, want 75", out[7])
	}
}

func TestHeatpumpStateCommandEncode(t *testing.T) {
	cat := topic.NewCatalogue(catalogue.Build())
	c := NewCodec(cat)
	tp, val, err := cat.Command("control/heatpumpstate", "On")
	if err != nil {
		t.Fatalf("Command error: %v", err)
	}
	out, err := c.EncodeOutbound(tp, val, nil)
	if err != nil {
		t.Fatalf("EncodeOutbound error: %v", err)
	}
	if out[4] != 2 {
		t.Fatalf("byte[4] = %d, want 2", out[4])
	}
	if len(out) != 111 {
		t.Fatalf("main frame length = %d, want 111 (110 + checksum)", len(out))
	}
}
