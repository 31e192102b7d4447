package scheduler

import (
	"testing"
	"time"

	"github.com/pkrahmer/aquabridge/internal/catalogue"
	"github.com/pkrahmer/aquabridge/internal/frame"
	"github.com/pkrahmer/aquabridge/internal/topic"
)

// fakePort is an in-memory stand-in for a serial.Port: inbound is consumed
// byte-by-byte by Read, outbound writes are recorded whole.
type fakePort struct {
	inbound []byte
	writes  [][]byte
}

func (p *fakePort) Read(buf []byte) (int, error) {
	if len(p.inbound) == 0 {
		return 0, nil
	}
	buf[0] = p.inbound[0]
	p.inbound = p.inbound[1:]
	return 1, nil
}

func (p *fakePort) Write(buf []byte) (int, error) {
	cp := append([]byte{}, buf...)
	p.writes = append(p.writes, cp)
	return len(buf), nil
}

type fakeSink struct {
	received int
	data     [][]byte
}

func (s *fakeSink) OnTopicReceived(t *topic.Topic, st *topic.State) bool {
	s.received++
	return true
}

func (s *fakeSink) OnTopicData(kind frame.Kind, data []byte) {
	s.data = append(s.data, data)
}

func newTestScheduler(port Port, sk *fakeSink, mainPoll, optPoll time.Duration) *Scheduler {
	cat := topic.NewCatalogue(catalogue.Build())
	return New(port, cat, sk, mainPoll, optPoll)
}

func TestClampIntervalDisablesNonPositive(t *testing.T) {
	if got := clampInterval(0); got != 0 {
		t.Fatalf("clampInterval(0) = %v, want 0", got)
	}
	if got := clampInterval(-time.Second); got != 0 {
		t.Fatalf("clampInterval(-1s) = %v, want 0", got)
	}
}

func TestClampIntervalRaisesShortInterval(t *testing.T) {
	if got := clampInterval(500 * time.Millisecond); got != minimumPollInterval {
		t.Fatalf("clampInterval(500ms) = %v, want %v", got, minimumPollInterval)
	}
}

func TestClampIntervalKeepsLongerInterval(t *testing.T) {
	if got := clampInterval(5 * time.Second); got != 5*time.Second {
		t.Fatalf("clampInterval(5s) = %v, want 5s", got)
	}
}

func TestTickSendsMainPollWhenDue(t *testing.T) {
	port := &fakePort{}
	sk := &fakeSink{}
	s := newTestScheduler(port, sk, minimumPollInterval, 0)
	s.nextAllowedSend = time.Time{}
	s.nextPoll = time.Time{}

	s.tick(time.Now())

	if len(port.writes) != 1 {
		t.Fatalf("writes = %d, want 1", len(port.writes))
	}
	if len(port.writes[0]) != 111 {
		t.Fatalf("main poll frame length = %d, want 111", len(port.writes[0]))
	}
}

func TestTickPrefersQueuedCommandOverPoll(t *testing.T) {
	port := &fakePort{}
	sk := &fakeSink{}
	s := newTestScheduler(port, sk, minimumPollInterval, 0)
	s.nextAllowedSend = time.Time{}
	s.nextPoll = time.Time{}

	if err := s.Command("control/heatpumpstate", "On"); err != nil {
		t.Fatalf("Command error: %v", err)
	}
	s.tick(time.Now())

	if len(port.writes) != 1 {
		t.Fatalf("writes = %d, want 1", len(port.writes))
	}
	if port.writes[0][4] != 2 {
		t.Fatalf("byte[4] = %d, want 2 (On)", port.writes[0][4])
	}
}

func TestTickRespectsMinimumGap(t *testing.T) {
	port := &fakePort{}
	sk := &fakeSink{}
	s := newTestScheduler(port, sk, minimumPollInterval, 0)
	s.nextAllowedSend = time.Now().Add(time.Hour)
	s.nextPoll = time.Time{}

	s.tick(time.Now())

	if len(port.writes) != 0 {
		t.Fatalf("writes = %d, want 0 while within the minimum gap", len(port.writes))
	}
}

func TestDrainIncomingNotifiesSinkOnValidFrame(t *testing.T) {
	b := make([]byte, frame.MainFrameLen)
	b[len(b)-1] = checksumOf(b[:len(b)-1])

	port := &fakePort{inbound: b}
	sk := &fakeSink{}
	s := newTestScheduler(port, sk, 0, 0)

	s.drainIncoming(time.Now())

	if len(sk.data) != 1 {
		t.Fatalf("OnTopicData calls = %d, want 1", len(sk.data))
	}
	if sk.received == 0 {
		t.Fatal("expected OnTopicReceived to be called for catalogue topics")
	}
}

func checksumOf(data []byte) byte {
	sum := 0
	for _, v := range data {
		sum += int(v)
	}
	return byte((sum ^ 0xFF) + 1)
}
