package owner

import "strings"

// Profile is the owner data the league exposes for a team. First and last
// names are optional; private profiles only carry a display name.
type Profile struct {
	DisplayName string
	FirstName   string
	LastName    string
}

// Names holds the resolved identity used by score records.
type Names struct {
	Display string
	Full    string
}

// ResolveOwnerName applies the fallback order for owner identity:
//
//	display: owner display name, then team name
//	full:    "first last" when both are present, then display
//
// A nil profile means the team has no listed owner.
func ResolveOwnerName(profile *Profile, teamName string) Names {
	display := strings.TrimSpace(teamName)
	if profile != nil && strings.TrimSpace(profile.DisplayName) != "" {
		display = strings.TrimSpace(profile.DisplayName)
	}

	full := display
	if profile != nil {
		first := strings.TrimSpace(profile.FirstName)
		last := strings.TrimSpace(profile.LastName)
		if first != "" && last != "" {
			full = first + " " + last
		}
	}

	return Names{Display: display, Full: full}
}
