package dto

// Response DTOs

type PsychologistResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

type AvailableDatesResponse struct {
	Dates []string `json:"dates"`
}

type AvailabilityResponse struct {
	Psychologist string   `json:"psychologist"`
	Date         string   `json:"date"`
	Times        []string `json:"times"`
}
