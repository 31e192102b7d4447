// Package config resolves the process's serial, poll-interval, and MQTT
// settings from command-line flags, optionally overridden by a YAML file.
package config

import (
	"flag"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	DefaultPortName             = "/dev/ttyUSB0"
	DefaultBaudRate             = 9600
	DefaultMainPollInterval     = 10 * time.Second
	DefaultOptionalPollInterval = 10 * time.Second
	DefaultMqttBroker           = "tcp://localhost:1883"
	DefaultMqttClientID         = "aquabridge"
)

// Config is the fully-resolved set of settings the process needs to open
// the serial link, run the scheduler, and connect to MQTT.
type Config struct {
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`

	MainPollInterval     time.Duration `yaml:"main_poll_interval"`
	OptionalPollInterval time.Duration `yaml:"optional_poll_interval"`

	MqttBroker   string `yaml:"mqtt_broker"`
	MqttClientID string `yaml:"mqtt_client_id"`
}

// defaults returns the built-in baseline before flags or YAML are applied.
func defaults() Config {
	return Config{
		Port:                 DefaultPortName,
		Baud:                 DefaultBaudRate,
		MainPollInterval:     DefaultMainPollInterval,
		OptionalPollInterval: DefaultOptionalPollInterval,
		MqttBroker:           DefaultMqttBroker,
		MqttClientID:         DefaultMqttClientID,
	}
}

// Load parses CLI flags from args (typically os.Args[1:]) against defaults,
// then applies a YAML file named by -config on top, if given. YAML fills in
// whichever settings the caller left at their flag default; a flag passed
// explicitly on the command line always wins over the YAML file, matching
// how the process is normally run: YAML for the deployment-wide baseline,
// flags for one-off overrides.
func Load(args []string) (Config, error) {
	cfg := defaults()

	fs := flag.NewFlagSet("aquabridge", flag.ContinueOnError)
	port := fs.String("port", cfg.Port, "serial port device")
	baud := fs.Int("baud", cfg.Baud, "serial baud rate")
	mainPoll := fs.Duration("main-poll-interval", cfg.MainPollInterval, "main frame poll interval (<=0 disables)")
	optPoll := fs.Duration("optional-poll-interval", cfg.OptionalPollInterval, "optional PCB poll interval (<=0 disables)")
	broker := fs.String("mqtt-broker", cfg.MqttBroker, "MQTT broker URL")
	clientID := fs.String("mqtt-client-id", cfg.MqttClientID, "MQTT client id")
	configPath := fs.String("config", "", "optional YAML config file, filling in flags left at their default")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.Port = *port
	cfg.Baud = *baud
	cfg.MainPollInterval = *mainPoll
	cfg.OptionalPollInterval = *optPoll
	cfg.MqttBroker = *broker
	cfg.MqttClientID = *clientID

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if *configPath != "" {
		yamlCfg, err := loadYAML(*configPath)
		if err != nil {
			return cfg, err
		}
		applyYAMLOverrides(&cfg, yamlCfg, explicit)
	}
	return cfg, nil
}

func loadYAML(path string) (Config, error) {
	var cfg Config
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	err = yaml.NewDecoder(f).Decode(&cfg)
	return cfg, err
}

// applyYAMLOverrides fills cfg with whichever yamlCfg fields were given a
// non-zero value, skipping any field whose flag the caller passed explicitly.
func applyYAMLOverrides(cfg *Config, yamlCfg Config, explicit map[string]bool) {
	if !explicit["port"] && yamlCfg.Port != "" {
		cfg.Port = yamlCfg.Port
	}
	if !explicit["baud"] && yamlCfg.Baud != 0 {
		cfg.Baud = yamlCfg.Baud
	}
	if !explicit["main-poll-interval"] && yamlCfg.MainPollInterval != 0 {
		cfg.MainPollInterval = yamlCfg.MainPollInterval
	}
	if !explicit["optional-poll-interval"] && yamlCfg.OptionalPollInterval != 0 {
		cfg.OptionalPollInterval = yamlCfg.OptionalPollInterval
	}
	if !explicit["mqtt-broker"] && yamlCfg.MqttBroker != "" {
		cfg.MqttBroker = yamlCfg.MqttBroker
	}
	if !explicit["mqtt-client-id"] && yamlCfg.MqttClientID != "" {
		cfg.MqttClientID = yamlCfg.MqttClientID
	}
}
