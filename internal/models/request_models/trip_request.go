package request_models

type CreateTripRequest struct {
	Name        string  `json:"name" binding:"required"`
	Destination string  `json:"destination" binding:"required"`
	// Dates are date-only strings, e.g. "2025-07-10"
	StartDate   string  `json:"startDate" binding:"required"`
	EndDate     string  `json:"endDate" binding:"required"`
	Travelers   int     `json:"travelers" binding:"required,min=1"`
	Budget      float64 `json:"budget" binding:"required"`
	Description string  `json:"description"`
}
