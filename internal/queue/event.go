// Package queue defines message payloads exchanged over the message broker
// and the consumer that records them in the booking log.
package queue

import (
    "time"

    "github.com/google/uuid"
)

// Booking event types.
const (
    EventBookingPaid    = "booking.paid"
    EventBookingShipped = "booking.shipped"
)

// BookingEvent is published after a booking changes state: when a card
// payment is recorded against it or when an admin sets its shipping status.
// Consumers can log, notify or trigger analytics without querying the store.
type BookingEvent struct {
    EventID       string `json:"event_id"`
    Type          string `json:"type"`
    BookingID     string `json:"booking_id"`
    Email         string `json:"email,omitempty"`
    Status        string `json:"status,omitempty"`
    TransactionID string `json:"transaction_id,omitempty"`
    Actor         string `json:"actor,omitempty"`
    OccurredAt    string `json:"occurred_at"`
}

// NewBookingEvent stamps a new event with a random id and the current time.
func NewBookingEvent(eventType, bookingID string) BookingEvent {
    return BookingEvent{
        EventID:    uuid.NewString(),
        Type:       eventType,
        BookingID:  bookingID,
        OccurredAt: time.Now().UTC().Format(time.RFC3339),
    }
}
