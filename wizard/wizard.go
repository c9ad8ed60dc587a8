package wizard

import (
	"strings"

	"venue-webapp/model"
)

// Step is one state of the event-creation flow.
type Step int

const (
	StepBasicInfo Step = iota + 1
	StepVenueDate
	StepDetails
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepBasicInfo:
		return "Basic Info"
	case StepVenueDate:
		return "Venue & Date"
	case StepDetails:
		return "Details"
	case StepReview:
		return "Review"
	default:
		return "Unknown"
	}
}

// Form is the accumulated wizard input across all steps.
type Form struct {
	EventTitle       string        `json:"eventTitle"`
	EventType        string        `json:"eventType"`
	VisibilityScope  string        `json:"visibilityScope"`
	EventOrganizerId string        `json:"eventOrganizerId"`
	OrganizationId   string        `json:"organizationId,omitempty"`
	VenueId          string        `json:"venueId"`
	Description      string        `json:"description"`
	Dates            []string      `json:"dates"`
	EventPhoto       string        `json:"eventPhoto,omitempty"`
	MaxAttendees     string        `json:"maxAttendees"`
	Guests           []model.Guest `json:"guests"`
	IsEntryPaid      bool          `json:"isEntryPaid"`
	SpecialNotes     string        `json:"specialNotes,omitempty"`
	ExpectedGuests   string        `json:"expectedGuests,omitempty"`
	SocialMediaLinks string        `json:"socialMediaLinks,omitempty"`
}

// IsPrivate reports whether the details step is skipped for this form.
func (f *Form) IsPrivate() bool {
	return f.VisibilityScope == model.VisibilityPrivate
}

// FieldErrors maps a field name to its inline validation message.
type FieldErrors map[string]string

// Validate checks the fields belonging to one step. An empty result means
// the step may be left.
func Validate(step Step, f *Form) FieldErrors {
	errs := FieldErrors{}

	switch step {
	case StepBasicInfo:
		if f.EventTitle == "" {
			errs["eventTitle"] = "Event title is required"
		}
		if f.EventType == "" {
			errs["eventType"] = "Event type is required"
		}
		if f.VisibilityScope == "" {
			errs["visibilityScope"] = "Visibility is required"
		}
		if f.Description == "" {
			errs["description"] = "Description is required"
		}
	case StepVenueDate:
		if f.VenueId == "" {
			errs["venueId"] = "Venue selection is required"
		}
		if !hasNonBlank(f.Dates) {
			errs["dates"] = "At least one date is required"
		}
	case StepDetails:
		if !f.IsPrivate() {
			if f.EventPhoto == "" {
				errs["eventPhoto"] = "Event photo is required"
			}
			if f.MaxAttendees == "" {
				errs["maxAttendees"] = "Max attendees is required"
			}
			if !hasGuest(f.Guests) {
				errs["guests"] = "At least one guest is required"
			}
		}
	}

	return errs
}

func hasNonBlank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

func hasGuest(guests []model.Guest) bool {
	for _, g := range guests {
		if strings.TrimSpace(g.GuestName) != "" {
			return true
		}
	}
	return false
}

// Next returns the state after step for the given form. Private events jump
// straight from Venue & Date to Review.
func Next(step Step, f *Form) Step {
	if f.IsPrivate() && step == StepVenueDate {
		return StepReview
	}
	if step < StepReview {
		return step + 1
	}
	return StepReview
}

// Prev mirrors Next in the backward direction.
func Prev(step Step, f *Form) Step {
	if f.IsPrivate() && step == StepReview {
		return StepVenueDate
	}
	if step > StepBasicInfo {
		return step - 1
	}
	return StepBasicInfo
}

// CanSubmit gates submission on having reached the review state.
func CanSubmit(step Step) bool {
	return step == StepReview
}
