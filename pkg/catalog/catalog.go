// Package catalog provides the fixed demo data set served when no live API
// is configured.
package catalog

import (
	"strings"

	"influencerfinder/pkg/influencer"
)

// All returns a deep copy of every demo profile in catalog order.
func All() []influencer.Profile {
	out := make([]influencer.Profile, len(profiles))
	for i, p := range profiles {
		out[i] = p.Clone()
	}
	return out
}

// Len returns the number of demo profiles.
func Len() int {
	return len(profiles)
}

// Lookup returns a copy of the profile with the given username.
func Lookup(username string) (influencer.Profile, bool) {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	for _, p := range profiles {
		if strings.EqualFold(p.Username, username) {
			return p.Clone(), true
		}
	}
	return influencer.Profile{}, false
}

// Categories returns the distinct categories in catalog order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range profiles {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
