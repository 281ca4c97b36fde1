package models

// Region is one of the fixed administrative regions recipes are attached to.
type Region struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	NameAr      string     `json:"nameAr,omitempty"` // Name in native script
	Description string     `json:"description"`
	Coordinates [2]float64 `json:"coordinates"` // [latitude, longitude]
}
