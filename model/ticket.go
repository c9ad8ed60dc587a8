package model

type TicketType struct {
	TicketTypeId string  `json:"ticketTypeId"`
	TicketName   string  `json:"ticketName"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	IsActive     bool    `json:"isActive"`
}

type TicketTypeResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    *TicketType `json:"data"`
}

type TicketTypesResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    []TicketType `json:"data"`
}

type CreateTicketTypeRequest struct {
	TicketName string  `json:"ticketName"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type PurchaseTicketRequest struct {
	TicketTypeId string `json:"ticketTypeId"`
	Quantity     int    `json:"quantity"`
	BuyerEmail   string `json:"buyerEmail,omitempty"`
}

type ScanTicketRequest struct {
	TicketCode string `json:"ticketCode"`
}
