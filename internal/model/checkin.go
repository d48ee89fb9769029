package model

// CheckIn is one daily self-report, keyed by calendar date. At most
// one record exists per day and it is immutable once written.
type CheckIn struct {
	Date       string `json:"date"`
	Energy     int    `json:"energy"`
	Connection int    `json:"connection"`
	Win        string `json:"win"`
	Focus      string `json:"focus"`
}
