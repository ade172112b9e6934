package dto

type RailResponse struct {
	Minutes   int      `json:"minutes"`
	Transfers int      `json:"transfers"`
	Departure string   `json:"departure"`
	Arrival   string   `json:"arrival"`
	Summary   string   `json:"summary"`
	Legs      []string `json:"legs"`
}

type DrivingResponse struct {
	Minutes int `json:"minutes"`
}

// ChainError reports one chain's failure without failing the response.
type ChainError struct {
	Error string `json:"error"`
}

type TravelTimesResponse struct {
	From         string           `json:"from"`
	To           string           `json:"to"`
	Rail         *RailResponse    `json:"rail,omitempty"`
	RailError    *ChainError      `json:"rail_error,omitempty"`
	Driving      *DrivingResponse `json:"driving,omitempty"`
	DrivingError *ChainError      `json:"driving_error,omitempty"`
}
