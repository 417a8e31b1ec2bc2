package models

import "time"

// NowPlaying is the music widget payload. A zero Track means nothing is
// playing; the widget renders its idle state.
type NowPlaying struct {
	Track      string    `json:"track"`
	Artist     string    `json:"artist"`
	AlbumArt   string    `json:"album_art,omitempty"`
	IsPlaying  bool      `json:"is_playing"`
	FetchedAt  time.Time `json:"fetched_at"`
	ProgressMs int64     `json:"progress_ms,omitempty"`
}

// Weather is the weather widget payload.
type Weather struct {
	TemperatureC float64   `json:"temperature_c"`
	Condition    string    `json:"condition"`
	Location     string    `json:"location"`
	FetchedAt    time.Time `json:"fetched_at"`
}

// CodeActivity is the WakaTime widget payload: total coding time for the
// current day.
type CodeActivity struct {
	TotalSeconds  float64   `json:"total_seconds"`
	HumanReadable string    `json:"text"`
	FetchedAt     time.Time `json:"fetched_at"`
}

// Contributions is the GitHub widget payload: contribution counts for the
// trailing year.
type Contributions struct {
	Total     int       `json:"total"`
	Username  string    `json:"username"`
	FetchedAt time.Time `json:"fetched_at"`
}
