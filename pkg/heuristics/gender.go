package heuristics

import "regexp"

const (
	GenderFemale  = "female"
	GenderMale    = "male"
	GenderUnknown = "unknown"
)

// NameClassifier guesses a gender from a display name and biography. It
// returns GenderFemale, GenderMale or GenderUnknown.
type NameClassifier interface {
	Classify(fullName, bio string) string
}

var (
	defaultFemaleNames = []string{
		"sarah", "emma", "jessica", "amanda", "lisa", "nicole", "rachel", "sophia",
		"emily", "olivia", "ava", "isabella", "mia", "charlotte", "amelia",
	}
	defaultMaleNames = []string{
		"michael", "david", "james", "chris", "christopher", "kevin", "ryan", "alex",
		"alexander", "john", "robert", "william", "daniel", "matthew", "joseph",
	}
	defaultMaleTerms   = []string{"dad", "father", "husband", "guy", "man", "boy", "he/him", "mr."}
	defaultFemaleTerms = []string{"mom", "mother", "wife", "girl", "woman", "lady", "she/her", "ms.", "mrs."}
)

// NameListClassifier matches the words of a full name against known first
// names. Female names are checked first.
type NameListClassifier struct {
	female map[string]bool
	male   map[string]bool
}

// NewNameListClassifier builds a classifier from explicit name lists.
func NewNameListClassifier(female, male []string) *NameListClassifier {
	c := &NameListClassifier{female: make(map[string]bool), male: make(map[string]bool)}
	for _, n := range female {
		c.female[n] = true
	}
	for _, n := range male {
		c.male[n] = true
	}
	return c
}

// DefaultNameListClassifier uses the built-in name lists.
func DefaultNameListClassifier() *NameListClassifier {
	return NewNameListClassifier(defaultFemaleNames, defaultMaleNames)
}

func (c *NameListClassifier) Classify(fullName, _ string) string {
	ws := words(fullName)
	for _, w := range ws {
		if c.female[w] {
			return GenderFemale
		}
	}
	for _, w := range ws {
		if c.male[w] {
			return GenderMale
		}
	}
	return GenderUnknown
}

// BioTermClassifier looks for gendered words such as "dad" or "she/her" in
// the biography. Male terms are checked first.
type BioTermClassifier struct {
	male   []*regexp.Regexp
	female []*regexp.Regexp
}

func NewBioTermClassifier(maleTerms, femaleTerms []string) *BioTermClassifier {
	c := &BioTermClassifier{}
	for _, t := range maleTerms {
		c.male = append(c.male, termPattern(t, false))
	}
	for _, t := range femaleTerms {
		c.female = append(c.female, termPattern(t, false))
	}
	return c
}

func DefaultBioTermClassifier() *BioTermClassifier {
	return NewBioTermClassifier(defaultMaleTerms, defaultFemaleTerms)
}

func (c *BioTermClassifier) Classify(_, bio string) string {
	for _, re := range c.male {
		if re.MatchString(bio) {
			return GenderMale
		}
	}
	for _, re := range c.female {
		if re.MatchString(bio) {
			return GenderFemale
		}
	}
	return GenderUnknown
}

// ChainClassifier returns the first answer other than GenderUnknown.
type ChainClassifier []NameClassifier

func (c ChainClassifier) Classify(fullName, bio string) string {
	for _, cl := range c {
		if g := cl.Classify(fullName, bio); g != GenderUnknown {
			return g
		}
	}
	return GenderUnknown
}

// DefaultClassifier tries the name lists first and falls back to bio terms.
func DefaultClassifier() NameClassifier {
	return ChainClassifier{DefaultNameListClassifier(), DefaultBioTermClassifier()}
}
