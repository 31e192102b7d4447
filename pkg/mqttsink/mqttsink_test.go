package mqttsink

import (
	"testing"

	"github.com/pkrahmer/aquabridge/internal/topic"
)

type fakeCommander struct {
	name  string
	value any
	err   error
}

func (f *fakeCommander) Command(name string, value any) error {
	f.name = name
	f.value = value
	return f.err
}

func TestHandleSetParsesNumericPayload(t *testing.T) {
	cmd := &fakeCommander{}
	s := New(Config{}, cmd)
	tp := &topic.Topic{Name: "Control/Optional/DemandControl"}

	s.handleSet(tp, "60")

	if cmd.name != tp.Name {
		t.Fatalf("commander got name %q, want %q", cmd.name, tp.Name)
	}
	if cmd.value != float64(60) {
		t.Fatalf("commander got value %v (%T), want float64(60)", cmd.value, cmd.value)
	}
}

func TestHandleSetPassesThroughNonNumericPayload(t *testing.T) {
	cmd := &fakeCommander{}
	s := New(Config{}, cmd)
	tp := &topic.Topic{Name: "Control/HeatpumpState"}

	s.handleSet(tp, "On")

	if cmd.value != "On" {
		t.Fatalf("commander got value %v, want string \"On\"", cmd.value)
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	s := New(Config{}, nil)
	if s.config.Broker != DefaultBroker || s.config.ClientID != DefaultClientID {
		t.Fatalf("defaults not applied: %+v", s.config)
	}
}
