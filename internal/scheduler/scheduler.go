// Package scheduler drives the serial link: the half-duplex, cooperative
// single-threaded tick that interleaves incoming-frame decoding, queued
// command writes, and timed polls while enforcing the minimum inter-frame
// gap.
package scheduler

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/pkrahmer/aquabridge/internal/frame"
	"github.com/pkrahmer/aquabridge/internal/sink"
	"github.com/pkrahmer/aquabridge/internal/topic"
)

var logger = log.New(os.Stderr, "scheduler: ", log.LstdFlags)

const (
	tickInterval        = 50 * time.Millisecond
	minimumPollInterval = 2 * time.Second

	// ReadByteTimeout is the serial port read deadline a caller should
	// configure when opening the port. drainIncoming's last read, the one
	// that finds no byte, waits up to this long, so a tick can take longer
	// than tickInterval.
	ReadByteTimeout = 200 * time.Millisecond
)

// Port is the minimal serial port surface the scheduler needs; satisfied
// by *serial.Port, and small enough to fake in tests.
type Port interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
}

type commandEntry struct {
	topic *topic.Topic
	value int
}

// Scheduler owns the serial port exclusively and must only be driven by
// one goroutine (Run); Command is the one method safe to call from
// elsewhere, handing writes off through a mutex-guarded queue.
type Scheduler struct {
	port  Port
	codec *frame.Codec
	cat   *topic.Catalogue
	sink  sink.Sink

	pollInterval         time.Duration // 0 == disabled
	optionalPollInterval time.Duration

	nextPoll         time.Time
	nextOptionalPoll time.Time
	nextAllowedSend  time.Time

	optionalTemplate []byte

	mu    sync.Mutex
	queue []commandEntry
}

// New builds a Scheduler. pollInterval and optionalPollInterval are
// clamped per spec.md §4.4: <=0 disables the poll, <2s is raised to 2s.
func New(port Port, cat *topic.Catalogue, sk sink.Sink, pollInterval, optionalPollInterval time.Duration) *Scheduler {
	now := time.Now()
	s := &Scheduler{
		port:                 port,
		codec:                frame.NewCodec(cat),
		cat:                  cat,
		sink:                 sk,
		pollInterval:         clampInterval(pollInterval),
		optionalPollInterval: clampInterval(optionalPollInterval),
		optionalTemplate:     frame.NewOptionalTemplate(),
		nextAllowedSend:      now.Add(minimumPollInterval),
	}
	if s.pollInterval > 0 {
		s.nextPoll = now.Add(minimumPollInterval)
	}
	if s.optionalPollInterval > 0 {
		s.nextOptionalPoll = now
	}
	return s
}

func clampInterval(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	if d < minimumPollInterval {
		return minimumPollInterval
	}
	return d
}

// Command resolves and enqueues an external write request; it returns
// promptly, the actual serial write happens at the next eligible tick.
func (s *Scheduler) Command(name string, value any) error {
	t, parsed, err := s.cat.Command(name, value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.queue = append(s.queue, commandEntry{topic: t, value: parsed})
	s.mu.Unlock()
	return nil
}

// Run drives the tick loop until stop is closed. It must be called from
// its own goroutine and must be the only goroutine touching the port.
func (s *Scheduler) Run(stop <-chan struct{}) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			s.tick(now)
		}
	}
}

func (s *Scheduler) tick(now time.Time) {
	s.drainIncoming(now)

	if now.Before(s.nextAllowedSend) {
		return
	}

	if entry, ok := s.popCommand(); ok {
		out, err := s.codec.EncodeOutbound(entry.topic, entry.value, s.optionalTemplate)
		if err != nil {
			logger.Printf("encode %s: %v", entry.topic.Name, err)
			return
		}
		s.write(out, now)
		return
	}

	if s.pollInterval > 0 && !now.Before(s.nextPoll) {
		s.write(frame.NewPollFrame(), now)
		s.nextPoll = now.Add(s.pollInterval)
		return
	}

	if s.optionalPollInterval > 0 && !now.Before(s.nextOptionalPoll) {
		s.write(frame.NewOptionalPollFrame(s.optionalTemplate), now)
		s.nextOptionalPoll = now.Add(s.optionalPollInterval)
		return
	}
}

func (s *Scheduler) write(out []byte, now time.Time) {
	s.nextAllowedSend = now.Add(minimumPollInterval)
	if _, err := s.port.Write(out); err != nil {
		logger.Printf("write failed: %v", err)
	}
}

func (s *Scheduler) popCommand() (commandEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return commandEntry{}, false
	}
	e := s.queue[0]
	s.queue = s.queue[1:]
	return e, true
}

// drainIncoming reads one byte at a time until the port reports nothing
// more is available right now, matching spec.md §5's "no more bytes
// available right now" framing boundary, then hands the whole buffer to
// onReceive.
func (s *Scheduler) drainIncoming(now time.Time) {
	var buf []byte
	one := make([]byte, 1)
	for {
		n, err := s.port.Read(one)
		if n <= 0 || err != nil {
			break
		}
		buf = append(buf, one[0])
	}
	if len(buf) == 0 {
		return
	}
	s.onReceive(buf, now)
}

func (s *Scheduler) onReceive(buf []byte, now time.Time) {
	data := buf
	kind := frame.Main
	if len(data) == frame.OptionalFrameLen {
		kind = frame.Optional
		s.optionalTemplate[4] = data[4]
		s.optionalTemplate[5] = data[5]
		data = frame.NewOptionalPollFrame(s.optionalTemplate)
	}

	if !s.codec.DecodeAndUpdate(data, now) {
		return
	}
	if s.sink == nil {
		return
	}
	s.sink.OnTopicData(kind, data)
	for i, t := range s.cat.Topics() {
		st := s.cat.StateAt(i)
		if s.sink.OnTopicReceived(t, st) {
			st.Delegate()
		}
	}
}

// String aids log messages that name the scheduler's poll configuration.
func (s *Scheduler) String() string {
	return fmt.Sprintf("scheduler(poll=%s, optionalPoll=%s)", s.pollInterval, s.optionalPollInterval)
}
