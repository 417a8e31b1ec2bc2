package models

// Page is the renderable public page payload: the owner's username plus the
// effective configuration (stored document completed against the default
// template and normalized for the owner's entitlement).
type Page struct {
	// ProfileID identifies the owner; kept out of the public payload and
	// used internally to key widget lookups for the resolved page.
	ProfileID int64 `json:"-"`

	Username string     `json:"username"`
	Premium  bool       `json:"premium"`
	Config   PageConfig `json:"config"`
}

// WidgetSet bundles the live widget payloads for one profile. A nil entry
// means the widget is disabled for the profile or its upstream fetch
// failed; the page renders without it either way.
type WidgetSet struct {
	NowPlaying    *NowPlaying    `json:"now_playing,omitempty"`
	Weather       *Weather       `json:"weather,omitempty"`
	CodeActivity  *CodeActivity  `json:"code_activity,omitempty"`
	Contributions *Contributions `json:"contributions,omitempty"`
}
