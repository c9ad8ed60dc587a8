package model

type Resource struct {
	ResourceId   string  `json:"resourceId"`
	ResourceName string  `json:"resourceName"`
	Description  string  `json:"description,omitempty"`
	CostPerUnit  float64 `json:"costPerUnit,omitempty"`
	Quantity     int     `json:"quantity,omitempty"`
}

type ResourceResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    *Resource `json:"data"`
}

type ResourcesResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    []Resource `json:"data"`
}
