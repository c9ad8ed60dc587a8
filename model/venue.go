package model

type Venue struct {
	VenueId       string   `json:"venueId"`
	VenueName     string   `json:"venueName"`
	VenueLocation string   `json:"venueLocation,omitempty"`
	Location      string   `json:"location,omitempty"`
	Capacity      int      `json:"capacity"`
	MainPhotoUrl  string   `json:"mainPhotoUrl,omitempty"`
	GalleryUrls   []string `json:"galleryUrls,omitempty"`
	ManagerId     string   `json:"managerId,omitempty"`
	Status        string   `json:"status,omitempty"`
}

type VenueResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *Venue `json:"data"`
}

type VenuesResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Data    []Venue `json:"data"`
}

type CreateVenueRequest struct {
	VenueName     string `json:"venueName"`
	VenueLocation string `json:"venueLocation"`
	Capacity      int    `json:"capacity"`
	Description   string `json:"description,omitempty"`
}

type AvailableVenuesRequest struct {
	Dates []string `json:"dates"`
}
