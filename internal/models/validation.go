package models

// ValidationResult is the outcome of running the content rules. Any entry in
// Errors makes the content invalid; Warnings are advisory only.
type ValidationResult struct {
	Valid    bool         `json:"valid"`
	Errors   []string     `json:"errors"`
	Warnings []string     `json:"warnings"`
	Stats    ContentStats `json:"stats"`
}

// ContentStats is always computed, even for invalid content.
type ContentStats struct {
	Length   int `json:"length"`
	Hashtags int `json:"hashtags"`
	URLs     int `json:"urls"`
	Mentions int `json:"mentions"`
}
