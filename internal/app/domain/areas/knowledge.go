package areas

import (
	"strings"

	"github.com/FACorreiaa/go-tripcore/internal/app/models"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/textutil"
)

// Destination is a curated destination with its named sub-areas.
type Destination struct {
	Name        string                         `yaml:"name"`
	CountryCode string                         `yaml:"country_code"`
	Center      models.LatLng                  `yaml:"center"`
	Areas       []models.KnowledgeArea         `yaml:"areas"`
	Specific    []models.SpecificActivityEntry `yaml:"specific"`
}

// KnowledgeBase resolves destinations to curated area universes.
type KnowledgeBase interface {
	Lookup(destination string) (Destination, bool)
	AreasForCountry(countryCode string) []models.KnowledgeArea
	SpecificActivities(destination string) []models.SpecificActivityEntry
}

// CuratedKnowledgeBase is a static, in-memory KnowledgeBase.
type CuratedKnowledgeBase struct {
	destinations  []Destination
	minWordLength int
}

// NewCuratedKnowledgeBase builds a knowledge base over destinations. Words of
// a destination name shorter than or equal to minWordLength are ignored by
// the per-word match.
func NewCuratedKnowledgeBase(destinations []Destination, minWordLength int) *CuratedKnowledgeBase {
	return &CuratedKnowledgeBase{destinations: destinations, minWordLength: minWordLength}
}

// DefaultKnowledgeBase returns the built-in curated tables.
func DefaultKnowledgeBase() *CuratedKnowledgeBase {
	return NewCuratedKnowledgeBase(curatedDestinations, DefaultParams().MinWordLength)
}

// Lookup matches by bidirectional containment of the folded names, then by
// any sufficiently long word of the query appearing in a curated name.
func (kb *CuratedKnowledgeBase) Lookup(destination string) (Destination, bool) {
	if strings.TrimSpace(destination) == "" {
		return Destination{}, false
	}
	for _, d := range kb.destinations {
		if textutil.ContainsEither(d.Name, destination) {
			return d, true
		}
	}
	for _, word := range textutil.Words(destination) {
		if len([]rune(word)) <= kb.minWordLength {
			continue
		}
		for _, d := range kb.destinations {
			if strings.Contains(textutil.Fold(d.Name), word) {
				return d, true
			}
		}
	}
	return Destination{}, false
}

// AreasForCountry returns every curated area of the destinations in the
// country, in table order.
func (kb *CuratedKnowledgeBase) AreasForCountry(countryCode string) []models.KnowledgeArea {
	var out []models.KnowledgeArea
	for _, d := range kb.destinations {
		if countryCode != "" && strings.EqualFold(d.CountryCode, countryCode) {
			out = append(out, d.Areas...)
		}
	}
	return out
}

func (kb *CuratedKnowledgeBase) SpecificActivities(destination string) []models.SpecificActivityEntry {
	d, ok := kb.Lookup(destination)
	if !ok {
		return nil
	}
	return d.Specific
}
