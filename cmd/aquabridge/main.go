// Command aquabridge bridges a Panasonic Aquarea-class heat pump's RS-485
// link to MQTT: it owns the serial port, runs the scheduler's tick loop,
// and wires decoded topic values out through an MQTT sink.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tarm/serial"

	"github.com/pkrahmer/aquabridge/internal/catalogue"
	"github.com/pkrahmer/aquabridge/internal/config"
	"github.com/pkrahmer/aquabridge/internal/scheduler"
	"github.com/pkrahmer/aquabridge/internal/topic"
	"github.com/pkrahmer/aquabridge/pkg/mqttsink"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	portConfig := &serial.Config{
		Name:        cfg.Port,
		Baud:        cfg.Baud,
		Parity:      serial.ParityEven,
		ReadTimeout: scheduler.ReadByteTimeout,
	}
	port, err := serial.OpenPort(portConfig)
	if err != nil {
		log.Fatalf("opening serial port %s: %v", cfg.Port, err)
	}
	defer port.Close()

	cat := topic.NewCatalogue(catalogue.Build())

	sink := mqttsink.New(mqttsink.Config{
		Broker:   cfg.MqttBroker,
		ClientID: cfg.MqttClientID,
	}, nil)

	sched := scheduler.New(port, cat, sink, cfg.MainPollInterval, cfg.OptionalPollInterval)
	sink.SetCommander(sched)

	if err := sink.Connect(cat); err != nil {
		log.Fatalf("connecting to MQTT broker %s: %v", cfg.MqttBroker, err)
	}
	defer sink.Disconnect()

	stop := make(chan struct{})
	go sched.Run(stop)

	log.Printf("aquabridge running on %s (%d baud), publishing to %s", cfg.Port, cfg.Baud, cfg.MqttBroker)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("shutting down")
	close(stop)
}
