package notify

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/nixie-tech-llc/courier/internal/model"
)

// MQTT connection handler
var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

// MQTT connection lost handler
var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Error().Err(err).Msg("MQTT connection lost")
}

// Notifier publishes inbox events so clients can react to new messages
// without polling the listing routes. A nil *Notifier is a no-op, which is
// how the server runs when MQTT_BROKER_URL is unset.
type Notifier struct {
	client mqtt.Client
}

func New(brokerURL, clientID string) (*Notifier, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %v", token.Error())
	}
	return &Notifier{client: client}, nil
}

// MessageSent publishes the new message's headline to the recipient's
// inbox topic. Delivery is best-effort; a broker failure is logged, never
// surfaced to the sender.
func (n *Notifier) MessageSent(m *model.Message) {
	if n == nil {
		return
	}
	payload, err := json.Marshal(map[string]any{
		"title":     m.Title,
		"sender_id": m.SenderID,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal inbox event")
		return
	}

	topic := fmt.Sprintf("user/%d/inbox", m.RecipientID)
	token := n.client.Publish(topic, 1, false, payload)
	token.Wait()
	if token.Error() != nil {
		log.Error().Err(token.Error()).Str("topic", topic).Msg("failed to publish inbox event")
	}
}

// Close disconnects the underlying MQTT client.
func (n *Notifier) Close() {
	if n == nil {
		return
	}
	n.client.Disconnect(250)
}
