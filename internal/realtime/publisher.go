package realtime

import "context"

// EventNewNotification is the push event carrying a notification record
const EventNewNotification = "new_notification"

// Publisher delivers an event to whoever is subscribed to address. Delivery is
// fire-and-forget: there is no acknowledgment and nothing is replayed for
// sessions that were not subscribed at publish time.
type Publisher interface {
	Publish(ctx context.Context, address, event string, payload interface{})
}

// UserAddress is the address a user's sessions subscribe to
func UserAddress(userID string) string {
	return "user_" + userID
}

// Fanout publishes to every publisher in order
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, address, event string, payload interface{}) {
	for _, p := range f {
		p.Publish(ctx, address, event, payload)
	}
}

// Envelope is the wire frame exchanged with websocket sessions
type Envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}
