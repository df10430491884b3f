// Package entity defines the domain entities for the profile feature.
package entity

// Profile is the singleton profile object shown on the profile screen.
type Profile struct {
	// Username is the display name. Defaults to "guest" until set.
	Username string `json:"username"`

	// Status is a free-form status line. Optional.
	Status string `json:"status,omitempty"`
}

// Default returns the profile served before any user customization.
func Default() Profile {
	return Profile{Username: "guest"}
}
