package model

type Organization struct {
	OrganizationId   string `json:"organizationId"`
	OrganizationName string `json:"organizationName"`
	OrganizationType string `json:"organizationType"`
	Description      string `json:"description,omitempty"`
	ContactEmail     string `json:"contactEmail,omitempty"`
	ContactPhone     string `json:"contactPhone,omitempty"`
	Address          string `json:"address,omitempty"`
	City             string `json:"city,omitempty"`
	Country          string `json:"country,omitempty"`
	PostalCode       string `json:"postalCode,omitempty"`
	StateProvince    string `json:"stateProvince,omitempty"`
}

type OrganizationResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    *Organization `json:"data"`
}

type OrganizationsResponse struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	Organizations []Organization `json:"organizations"`
}

type AddOrganizationUsersRequest struct {
	UserIds []string `json:"userIds"`
}

type OrganizationVenuesRequest struct {
	VenueIds []string `json:"venueIds"`
	Remove   bool     `json:"remove,omitempty"`
}
