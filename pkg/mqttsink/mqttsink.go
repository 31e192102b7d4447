// Package mqttsink publishes topic values over MQTT and turns inbound
// Set/<name> messages into scheduler commands. It is one external
// collaborator behind the sink.Sink boundary; nothing in internal/ imports
// this package.
package mqttsink

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/cenkalti/backoff/v4"
	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/pkrahmer/aquabridge/internal/frame"
	"github.com/pkrahmer/aquabridge/internal/topic"
)

var logger = log.New(os.Stderr, "mqttsink: ", log.LstdFlags)

const (
	DefaultBroker   = "tcp://localhost:1883"
	DefaultClientID = "aquabridge"
	publishPrefix   = "Aquabridge/"
	setPrefix       = "Aquabridge/Set/"
)

// Commander is the subset of scheduler.Scheduler that mqttsink needs to
// turn an inbound Set/<name> message into a queued write.
type Commander interface {
	Command(name string, value any) error
}

// Config holds the broker connection settings.
type Config struct {
	Broker   string
	ClientID string
	QoS      byte
}

// Sink implements sink.Sink over an MQTT broker connection, publishing one
// retained message per topic and subscribing to a Set/<name> counterpart
// for every writable catalogue entry.
type Sink struct {
	config    Config
	client    mqtt.Client
	commander Commander
}

// New builds a Sink. Connect must be called before it can publish.
func New(config Config, commander Commander) *Sink {
	if config.Broker == "" {
		config.Broker = DefaultBroker
	}
	if config.ClientID == "" {
		config.ClientID = DefaultClientID
	}
	return &Sink{config: config, commander: commander}
}

// SetCommander attaches the command target after construction, for the
// common case where the scheduler itself needs this Sink to be built
// first.
func (s *Sink) SetCommander(commander Commander) {
	s.commander = commander
}

// Connect dials the broker, retrying with exponential backoff, then
// subscribes to the write-back topic of every writable catalogue entry.
func (s *Sink) Connect(cat *topic.Catalogue) error {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(s.config.Broker)
	opts.SetClientID(s.config.ClientID)
	opts.SetAutoReconnect(true)
	opts.SetOnConnectHandler(func(mqtt.Client) {
		logger.Println("connected to broker")
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Printf("connection lost: %v", err)
	})

	s.client = mqtt.NewClient(opts)

	connect := func() error {
		token := s.client.Connect()
		token.Wait()
		return token.Error()
	}
	if err := backoff.Retry(connect, backoff.NewExponentialBackOff()); err != nil {
		return fmt.Errorf("mqttsink: connect: %w", err)
	}

	for _, t := range cat.Topics() {
		if !t.Writable() {
			continue
		}
		if err := s.subscribeSet(t); err != nil {
			return err
		}
	}
	return nil
}

// Disconnect closes the broker connection, waiting up to 250ms for
// in-flight publishes to drain.
func (s *Sink) Disconnect() {
	if s.client != nil && s.client.IsConnected() {
		s.client.Disconnect(250)
	}
}

func (s *Sink) subscribeSet(t *topic.Topic) error {
	setTopic := setPrefix + t.Name
	handler := func(_ mqtt.Client, msg mqtt.Message) {
		s.handleSet(t, string(msg.Payload()))
	}
	token := s.client.Subscribe(setTopic, s.config.QoS, handler)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqttsink: subscribe %s: %w", setTopic, err)
	}
	return nil
}

func (s *Sink) handleSet(t *topic.Topic, payload string) {
	if s.commander == nil {
		return
	}
	var value any = payload
	if f, err := strconv.ParseFloat(payload, 64); err == nil {
		value = f
	}
	if err := s.commander.Command(t.Name, value); err != nil {
		logger.Printf("command %s=%q rejected: %v", t.Name, payload, err)
	}
}

// OnTopicReceived publishes the topic's current value; it always returns
// true, since mqttsink has no notion of partial delegation.
func (s *Sink) OnTopicReceived(t *topic.Topic, st *topic.State) bool {
	if value := st.Value(); value != nil {
		s.publish(t, value)
	}
	return true
}

func (s *Sink) publish(t *topic.Topic, value any) {
	if s.client == nil || !s.client.IsConnected() {
		return
	}
	payload := fmt.Sprintf("%v", value)
	token := s.client.Publish(publishPrefix+t.Name, s.config.QoS, true, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		logger.Printf("publish %s: %v", t.Name, err)
	}
}

// OnTopicData is a diagnostic hook; mqttsink does not publish raw frames.
func (s *Sink) OnTopicData(kind frame.Kind, data []byte) {}
