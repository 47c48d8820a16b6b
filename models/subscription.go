package models

import "time"

// Subscription is a directed edge in the social graph: SubscriberID follows
// ChannelID. At most one edge exists per ordered pair.
type Subscription struct {
	// SubscriptionID is the internal unique identifier of the edge.
	SubscriptionID int64 `json:"id"`

	// SubscriberID is the user who subscribed.
	SubscriberID int64 `json:"subscriber_id"`

	// ChannelID is the user being subscribed to.
	ChannelID int64 `json:"channel_id"`

	// CreatedAt is the timestamp when the edge was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Subscription model.
func (s Subscription) TableName() string {
	return "subscriptions"
}
