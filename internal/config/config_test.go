package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Port != DefaultPortName || cfg.Baud != DefaultBaudRate {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFlagsOverrideDefaults(t *testing.T) {
	cfg, err := Load([]string{"-port=/dev/ttyS1", "-baud=19200"})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Port != "/dev/ttyS1" || cfg.Baud != 19200 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestLoadYAMLFillsInUnsetFlags(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "aquabridge-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("port: /dev/ttyACM0\nmain_poll_interval: 5s\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	cfg, err := Load([]string{"-config=" + f.Name()})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Port != "/dev/ttyACM0" {
		t.Fatalf("YAML did not fill in unset port, got %q", cfg.Port)
	}
	if cfg.MainPollInterval != 5*time.Second {
		t.Fatalf("MainPollInterval = %v, want 5s", cfg.MainPollInterval)
	}
}

func TestLoadExplicitFlagWinsOverYAML(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "aquabridge-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("port: /dev/ttyACM0\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	cfg, err := Load([]string{"-port=/dev/ttyS1", "-config=" + f.Name()})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Port != "/dev/ttyS1" {
		t.Fatalf("explicit flag did not win over YAML, got %q", cfg.Port)
	}
}
