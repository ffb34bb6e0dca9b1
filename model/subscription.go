package model

import "time"

// Subscription links a subscriber to a channel (both users).
type Subscription struct {
	ID           int       `json:"id"`
	SubscriberID int       `json:"subscriber_id"`
	ChannelID    int       `json:"channel_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// ChannelProfile is a channel's public profile plus its relational counts.
type ChannelProfile struct {
	PublicProfile
	SubscriberCount   int64 `json:"subscriber_count"`
	SubscribedToCount int64 `json:"subscribed_to_count"`
	IsSubscribed      bool  `json:"is_subscribed"`
}
