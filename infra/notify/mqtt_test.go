package notify

import (
	"encoding/json"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/ajoux/workplan/core/metrics"
	"github.com/ajoux/workplan/internal/eventbus"
)

type fakeToken struct{}

func (fakeToken) Wait() bool { return true }

func (fakeToken) WaitTimeout(time.Duration) bool { return true }

func (fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func (fakeToken) Error() error { return nil }

type fakeClient struct {
	published chan []byte
	topics    []string
}

func (f *fakeClient) Connect() paho.Token { return fakeToken{} }

func (f *fakeClient) Disconnect(quiesce uint) {}

func (f *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token {
	f.topics = append(f.topics, topic)
	f.published <- payload.([]byte)
	return fakeToken{}
}

func TestNotifierPublishesRunEvents(t *testing.T) {
	fake := &fakeClient{published: make(chan []byte, 1)}
	orig := newMQTTClient
	newMQTTClient = func(*paho.ClientOptions) pahoClient { return fake }
	defer func() { newMQTTClient = orig }()

	cfg := Config{Enabled: true, Broker: "tcp://localhost:1883", Topic: "plans/runs"}
	cfg.SetDefaults()
	notifier, err := New(cfg)
	if err != nil {
		t.Fatalf("new notifier: %v", err)
	}

	bus := eventbus.New()
	go notifier.Run(bus.Subscribe())

	bus.Publish("not a run event") // ignored
	bus.Publish(metrics.RunEvent{RunID: "r1", Assigned: 2, Unassigned: 1})

	select {
	case payload := <-fake.published:
		var ev metrics.RunEvent
		if err := json.Unmarshal(payload, &ev); err != nil {
			t.Fatalf("payload not JSON: %v", err)
		}
		if ev.RunID != "r1" || ev.Assigned != 2 {
			t.Fatalf("unexpected payload %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no message published")
	}
	if fake.topics[0] != "plans/runs" {
		t.Fatalf("unexpected topic %q", fake.topics[0])
	}

	bus.Close()
	notifier.Close()
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Enabled: true}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("enabled notifier without broker must fail validation")
	}
	cfg.Broker = "tcp://localhost:1883"
	cfg.QoS = 3
	if err := cfg.Validate(); err == nil {
		t.Fatalf("qos 3 must fail validation")
	}
	cfg.QoS = 1
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	disabled := Config{}
	if err := disabled.Validate(); err != nil {
		t.Fatalf("disabled notifier needs no broker: %v", err)
	}
}
