package heuristics

import "regexp"

// UnknownCountry is returned when no location can be recognized.
const UnknownCountry = "Unknown"

// LocationExtractor guesses a country from free text such as a biography
// or a location field. The first text that yields a country wins.
type LocationExtractor interface {
	Extract(texts ...string) string
}

// Alias maps a place name to the country it belongs to.
type Alias struct {
	Name    string
	Country string
	// CaseSensitive is set for short abbreviations like "LA" that would
	// otherwise match ordinary words.
	CaseSensitive bool
}

var defaultCountries = []string{
	"United States", "Canada", "United Kingdom", "Australia", "India",
	"Germany", "France", "Spain", "Italy", "Brazil",
}

var defaultAliases = []Alias{
	{Name: "Los Angeles", Country: "United States"},
	{Name: "New York", Country: "United States"},
	{Name: "NYC", Country: "United States", CaseSensitive: true},
	{Name: "LA", Country: "United States", CaseSensitive: true},
	{Name: "USA", Country: "United States", CaseSensitive: true},
	{Name: "Toronto", Country: "Canada"},
	{Name: "London", Country: "United Kingdom"},
	{Name: "UK", Country: "United Kingdom", CaseSensitive: true},
	{Name: "Paris", Country: "France"},
	{Name: "Berlin", Country: "Germany"},
	{Name: "Sydney", Country: "Australia"},
}

type matcher struct {
	re      *regexp.Regexp
	country string
}

// KeywordLocationExtractor checks country names before city aliases.
type KeywordLocationExtractor struct {
	matchers []matcher
}

func NewKeywordLocationExtractor(countries []string, aliases []Alias) *KeywordLocationExtractor {
	e := &KeywordLocationExtractor{}
	for _, c := range countries {
		e.matchers = append(e.matchers, matcher{re: termPattern(c, false), country: c})
	}
	for _, a := range aliases {
		e.matchers = append(e.matchers, matcher{re: termPattern(a.Name, a.CaseSensitive), country: a.Country})
	}
	return e
}

func DefaultLocationExtractor() *KeywordLocationExtractor {
	return NewKeywordLocationExtractor(defaultCountries, defaultAliases)
}

func (e *KeywordLocationExtractor) Extract(texts ...string) string {
	for _, text := range texts {
		if text == "" {
			continue
		}
		for _, m := range e.matchers {
			if m.re.MatchString(text) {
				return m.country
			}
		}
	}
	return UnknownCountry
}
