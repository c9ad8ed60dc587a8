package model

// Event visibility scopes. Private events skip the details step of the
// creation wizard.
const (
	VisibilityPublic     = "PUBLIC"
	VisibilityPrivate    = "PRIVATE"
	VisibilityRestricted = "RESTRICTED"
)

type EventVenue struct {
	Venue Venue `json:"venue"`
}

type Guest struct {
	GuestName  string `json:"guestName"`
	GuestPhoto string `json:"guestPhoto,omitempty"`
}

type Event struct {
	EventId          string        `json:"eventId"`
	EventName        string        `json:"eventName"`
	EventType        string        `json:"eventType"`
	EventDescription string        `json:"eventDescription,omitempty"`
	EventPhoto       string        `json:"eventPhoto,omitempty"`
	VisibilityScope  string        `json:"visibilityScope,omitempty"`
	RegisteredCount  int           `json:"registeredCount,omitempty"`
	MaxAttendees     int           `json:"maxAttendees,omitempty"`
	IsEntryPaid      bool          `json:"isEntryPaid,omitempty"`
	Guests           []Guest       `json:"guests,omitempty"`
	BookingDates     []BookingDate `json:"bookingDates,omitempty"`
	EventVenues      []EventVenue  `json:"eventVenues,omitempty"`
}

type EventResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *Event `json:"data"`
}

type EventsResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Data    []Event `json:"data"`
}

// EventActionRequest carries the reason attached to approve/cancel/query
// style workflow calls.
type EventActionRequest struct {
	Reason string `json:"reason,omitempty"`
}
