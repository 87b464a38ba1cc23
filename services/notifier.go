package services

import "fmt"

// Publisher fans a state-change event out to one channel. Delivery is
// best-effort and at-most-once; disconnected subscribers re-derive state by
// re-fetching the list endpoints.
type Publisher interface {
	Publish(channel, event string, payload any)
}

// ChannelAdmin is the staff dashboard audience; each table gets its own
// channel from TableChannel.
const ChannelAdmin = "admin"

func TableChannel(tableID uint) string {
	return fmt.Sprintf("table-%d", tableID)
}

// Event names on the wire.
const (
	EventNewOrder           = "new-order"
	EventOrderUpdate        = "order-update"        // to admin
	EventOrderStatusUpdate  = "order-status-update" // to the table
	EventOrderReady         = "order-ready"
	EventSoundAlert         = "sound-alert"
	EventWaiterCall         = "waiter-call"
	EventWaiterCallConfirm  = "waiter-call-confirmed"
	EventWaiterCallUpdate   = "waiter-call-update"
	EventWaiterCallResolved = "waiter-call-resolved"
	EventNotification       = "notification"
)

// NoopPublisher backs NOTIFY_MODE=poll: clients detect changes by polling
// the pending-calls and recent-orders endpoints, so nothing is pushed.
type NoopPublisher struct{}

func (NoopPublisher) Publish(string, string, any) {}
