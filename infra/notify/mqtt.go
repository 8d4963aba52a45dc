// Package notify publishes completed assignment runs to an MQTT topic so
// downstream consumers (dashboards, chat hooks) can react without polling.
package notify

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/ajoux/workplan/core/logger"
	"github.com/ajoux/workplan/core/metrics"
	infralogger "github.com/ajoux/workplan/infra/logger"
	"github.com/ajoux/workplan/internal/eventbus"
)

// Config defines the connection parameters for the MQTT notifier.
type Config struct {
	Enabled        bool   `json:"enabled"`
	Broker         string `json:"broker"`
	ClientID       string `json:"client_id"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	Topic          string `json:"topic"`
	QoS            byte   `json:"qos"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "workplan-notifier"
	}
	if c.Topic == "" {
		c.Topic = "workplan/runs"
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 5
	}
}

// Validate checks mandatory fields when the notifier is enabled.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("broker is required")
	}
	if c.QoS > 2 {
		return fmt.Errorf("qos must be 0, 1 or 2")
	}
	return nil
}

// pahoClient narrows the paho surface the notifier needs; tests substitute
// a fake.
type pahoClient interface {
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// MQTTNotifier publishes one JSON message per completed run.
type MQTTNotifier struct {
	cli     pahoClient
	topic   string
	qos     byte
	timeout time.Duration
	log     logger.Logger
	done    chan struct{}
}

// New connects to the broker described by cfg.
func New(cfg Config) (*MQTTNotifier, error) {
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetAutoReconnect(true)
	cli := newMQTTClient(opts)
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	tok := cli.Connect()
	if !tok.WaitTimeout(timeout) {
		return nil, fmt.Errorf("mqtt connect timeout after %s", timeout)
	}
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}
	return &MQTTNotifier{
		cli:     cli,
		topic:   cfg.Topic,
		qos:     cfg.QoS,
		timeout: timeout,
		log:     infralogger.New("mqtt-notifier"),
		done:    make(chan struct{}),
	}, nil
}

// Run consumes run events from the bus channel until it closes. Non-run
// events are ignored.
func (n *MQTTNotifier) Run(events <-chan eventbus.Event) {
	defer close(n.done)
	for e := range events {
		ev, ok := e.(metrics.RunEvent)
		if !ok {
			continue
		}
		if err := n.publish(ev); err != nil {
			n.log.Errorf("publish run %s: %v", ev.RunID, err)
		}
	}
}

func (n *MQTTNotifier) publish(ev metrics.RunEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	tok := n.cli.Publish(n.topic, n.qos, false, payload)
	if !tok.WaitTimeout(n.timeout) {
		return fmt.Errorf("publish timeout after %s", n.timeout)
	}
	return tok.Error()
}

// Close waits for the consumer loop to drain, then disconnects. The caller
// must close the subscription (via the bus) first.
func (n *MQTTNotifier) Close() {
	<-n.done
	n.cli.Disconnect(250)
}
