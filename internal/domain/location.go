package domain

// Location is the structured place of a job or candidate.
type Location struct {
	City    string `json:"city,omitempty" yaml:"city"`
	Region  string `json:"region,omitempty" yaml:"region"`
	Country string `json:"country,omitempty" yaml:"country"`
}
