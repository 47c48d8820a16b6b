package models

// ChannelProfile is the derived per-channel view returned by the graph
// aggregation layer. It contains only public profile fields plus three
// derived relationship statistics; credential data never appears here.
type ChannelProfile struct {
	// PublicProfile is the channel owner's public projection.
	PublicProfile

	// CoverURL is the channel's cover image, empty when never set.
	CoverURL string `json:"cover_image,omitempty"`

	// Email is included for parity with the original profile payload;
	// it is the only non-derived field beyond the public projection.
	Email string `json:"email"`

	// SubscribersCount is the number of users subscribed to this channel.
	SubscribersCount int64 `json:"subscribers_count"`

	// ChannelsSubscribedToCount is the number of channels this user
	// subscribes to.
	ChannelsSubscribedToCount int64 `json:"channels_subscribed_to_count"`

	// IsSubscribed reports whether the requesting viewer has an active
	// subscription edge to this channel. Always false for anonymous viewers.
	IsSubscribed bool `json:"is_subscribed"`
}
