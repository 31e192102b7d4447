// Package sink defines the boundary between the protocol core and its
// external collaborators (MQTT/D-Bus publishers, loggers, ...): the only
// two calls the scheduler makes outward.
package sink

import (
	"github.com/pkrahmer/aquabridge/internal/frame"
	"github.com/pkrahmer/aquabridge/internal/topic"
)

// Sink is implemented by whatever publishes topic values to the outside
// world. Both methods are called synchronously from the scheduler's tick,
// so implementations must return promptly — they run on the same
// goroutine that drives the serial port.
type Sink interface {
	// OnTopicReceived is invoked once per catalogue entry after every
	// successfully decoded frame, independent of whether that topic's
	// value actually changed. Returning true marks the topic delegated,
	// which the sink can use to skip redundant re-publication.
	OnTopicReceived(t *topic.Topic, st *topic.State) bool

	// OnTopicData receives the raw, checksum-validated frame for
	// diagnostic logging. Called at most once per decoded frame.
	OnTopicData(kind frame.Kind, data []byte)
}
