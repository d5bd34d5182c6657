package influencer

import (
	"strconv"
	"strings"

	errs "influencerfinder/pkg/errors"
)

// Field names used in invalid argument errors.
const (
	FieldMinFollowers = "min_followers"
	FieldMaxFollowers = "max_followers"
)

// GenderBoth disables the gender constraint.
const GenderBoth = "both"

// Criteria narrows a profile list. Empty fields impose no constraint.
// Follower bounds are kept as text because they usually arrive straight
// from a form or query string.
type Criteria struct {
	Gender       string `json:"gender,omitempty"`
	Country      string `json:"country,omitempty"`
	Industry     string `json:"industry,omitempty"`
	MinFollowers string `json:"min_followers,omitempty"`
	MaxFollowers string `json:"max_followers,omitempty"`
}

// Bounds parses the follower bounds. A nil pointer means the bound is unset.
func (c Criteria) Bounds() (min, max *int64, err error) {
	if min, err = parseBound(FieldMinFollowers, c.MinFollowers); err != nil {
		return nil, nil, err
	}
	if max, err = parseBound(FieldMaxFollowers, c.MaxFollowers); err != nil {
		return nil, nil, err
	}
	if min != nil && max != nil && *min > *max {
		return nil, nil, errs.InvalidArgument(FieldMinFollowers,
			"minimum followers (%d) cannot be greater than maximum followers (%d)", *min, *max)
	}
	return min, max, nil
}

// Validate checks the criteria without filtering anything.
func (c Criteria) Validate() error {
	_, _, err := c.Bounds()
	return err
}

// IsEmpty reports whether no constraint is active.
func (c Criteria) IsEmpty() bool {
	return !c.genderActive() &&
		strings.TrimSpace(c.Country) == "" &&
		strings.TrimSpace(c.Industry) == "" &&
		strings.TrimSpace(c.MinFollowers) == "" &&
		strings.TrimSpace(c.MaxFollowers) == ""
}

func (c Criteria) genderActive() bool {
	g := strings.TrimSpace(c.Gender)
	return g != "" && !strings.EqualFold(g, GenderBoth)
}

func parseBound(field, raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errs.InvalidArgument(field, "%q is not a valid number", raw)
	}
	if n < 0 {
		return nil, errs.InvalidArgument(field, "must be a non-negative number, got %d", n)
	}
	return &n, nil
}

// Matcher is a compiled form of Criteria that can be applied to profiles
// one at a time.
type Matcher struct {
	gender   string
	country  string
	industry string
	min, max *int64
}

// Compile validates c and returns a Matcher for it.
func (c Criteria) Compile() (*Matcher, error) {
	min, max, err := c.Bounds()
	if err != nil {
		return nil, err
	}
	m := &Matcher{
		country:  strings.ToLower(strings.TrimSpace(c.Country)),
		industry: strings.ToLower(strings.TrimSpace(c.Industry)),
		min:      min,
		max:      max,
	}
	if c.genderActive() {
		m.gender = strings.TrimSpace(c.Gender)
	}
	return m, nil
}

// Match reports whether p satisfies every active constraint.
func (m *Matcher) Match(p Profile) bool {
	if m.gender != "" && !strings.EqualFold(p.Gender, m.gender) {
		return false
	}
	if m.country != "" && !strings.Contains(strings.ToLower(p.Country), m.country) {
		return false
	}
	if m.industry != "" &&
		!strings.Contains(strings.ToLower(p.Category), m.industry) &&
		!strings.Contains(strings.ToLower(p.Biography), m.industry) {
		return false
	}
	if m.min != nil && p.Followers < *m.min {
		return false
	}
	if m.max != nil && p.Followers > *m.max {
		return false
	}
	return true
}

// Filter returns the profiles matching c in their original order. The input
// slice is not modified. An empty, non-nil slice is returned when nothing
// matches.
func Filter(profiles []Profile, c Criteria) ([]Profile, error) {
	m, err := c.Compile()
	if err != nil {
		return nil, err
	}
	out := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		if m.Match(p) {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}
