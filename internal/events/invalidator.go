package events

import "xavro/internal/domain"

// CacheFlusher drops every cached API response. *cache.Cache satisfies it.
type CacheFlusher interface {
	Flush()
}

// InvalidatingPublisher forwards booking lifecycle events to the hub and
// flushes the read cache first, so availability and timeslot responses
// reflect the change immediately instead of after the cache TTL.
type InvalidatingPublisher struct {
	hub   *Hub
	cache CacheFlusher
}

func NewInvalidatingPublisher(hub *Hub, cache CacheFlusher) *InvalidatingPublisher {
	return &InvalidatingPublisher{hub: hub, cache: cache}
}

func (p *InvalidatingPublisher) BookingCreated(b *domain.Booking) {
	p.cache.Flush()
	p.hub.BookingCreated(b)
}

func (p *InvalidatingPublisher) BookingCancelled(bookingID int64) {
	p.cache.Flush()
	p.hub.BookingCancelled(bookingID)
}
