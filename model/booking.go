package model

import "time"

// Raw backend status codes for a venue booking.
const (
	StatusPending         = "PENDING"
	StatusApprovedPaid    = "APPROVED_PAID"
	StatusApprovedNotPaid = "APPROVED_NOT_PAID"
	StatusCancelled       = "CANCELLED"
	StatusRejected        = "REJECTED"
)

type BookingDate struct {
	Date string `json:"date"`
}

// RawBooking is a booking record as the backend returns it. One record may
// span several calendar dates.
type RawBooking struct {
	BookingId      string        `json:"bookingId"`
	BookingDates   []BookingDate `json:"bookingDates"`
	BookingStatus  string        `json:"bookingStatus"`
	AmountToBePaid float64       `json:"amountToBePaid"`
	CreatedBy      string        `json:"createdBy"`
	BookingReason  string        `json:"bookingReason"`
	OtherReason    string        `json:"otherReason"`
}

// Booking is the per-date display projection of a RawBooking.
type Booking struct {
	Id              string    `json:"id"`
	Date            time.Time `json:"date"`
	ClientName      string    `json:"clientName"`
	EventType       string    `json:"eventType"`
	Guests          uint      `json:"guests"`
	Amount          float64   `json:"amount"`
	Status          string    `json:"status"`
	TimeSlot        string    `json:"timeSlot"`
	ContactEmail    string    `json:"contactEmail"`
	ContactPhone    string    `json:"contactPhone"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	VenueId         string    `json:"venueId,omitempty"`
	VenueName       string    `json:"venueName,omitempty"`
}

type VenueSummary struct {
	VenueName string `json:"venueName"`
}

type BookingsResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	Bookings     []RawBooking  `json:"bookings"`
	VenueSummary *VenueSummary `json:"venueSummary,omitempty"`
}

type BookingResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Booking *RawBooking `json:"booking"`
}

type CreateBookingRequest struct {
	VenueId        string        `json:"venueId"`
	EventId        string        `json:"eventId,omitempty"`
	BookingDates   []BookingDate `json:"bookingDates"`
	BookingReason  string        `json:"bookingReason"`
	OtherReason    string        `json:"otherReason,omitempty"`
	AmountToBePaid float64       `json:"amountToBePaid,omitempty"`
}
