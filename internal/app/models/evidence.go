package models

// EvidenceKind discriminates the Evidence variants.
type EvidenceKind string

const (
	EvidenceKnowledge EvidenceKind = "knowledge"
	EvidenceSocial    EvidenceKind = "social"
)

// SpecificActivityNote is a knowledge-sourced hint that an area is good for a
// particular, usually seasonal, activity.
type SpecificActivityNote struct {
	Activity string `json:"activity" yaml:"activity"`
	Note     string `json:"note" yaml:"note"`
	Season   string `json:"season,omitempty" yaml:"season,omitempty"`
}

// MentionedArea is an area named by a knowledge note, with the characteristics
// the source attributed to it.
type MentionedArea struct {
	Name            string   `json:"name" yaml:"name"`
	Type            AreaType `json:"type,omitempty" yaml:"type,omitempty"`
	Description     string   `json:"description,omitempty" yaml:"description,omitempty"`
	Characteristics []string `json:"characteristics,omitempty" yaml:"characteristics,omitempty"`
	BestFor         []string `json:"best_for,omitempty" yaml:"best_for,omitempty"`
	NotIdealFor     []string `json:"not_ideal_for,omitempty" yaml:"not_ideal_for,omitempty"`
	VibeTags        []string `json:"vibe_tags,omitempty" yaml:"vibe_tags,omitempty"`
	Center          LatLng   `json:"center,omitempty" yaml:"center,omitempty"`
}

// KnowledgeNote is a synthesized expert note about a destination.
type KnowledgeNote struct {
	Text             string                `json:"text" yaml:"text"`
	Sentiment        float64               `json:"sentiment" yaml:"sentiment"`
	Areas            []MentionedArea       `json:"areas" yaml:"areas"`
	BestFor          []string              `json:"best_for,omitempty" yaml:"best_for,omitempty"`
	SpecificActivity *SpecificActivityNote `json:"specific_activity,omitempty" yaml:"specific_activity,omitempty"`
}

// SocialMention is a forum-style mention of one or more areas.
type SocialMention struct {
	Source    string   `json:"source" yaml:"source"` // e.g. a subreddit
	Quote     string   `json:"quote" yaml:"quote"`
	Areas     []string `json:"areas" yaml:"areas"`
	Upvotes   int      `json:"upvotes" yaml:"upvotes"`
	Sentiment float64  `json:"sentiment" yaml:"sentiment"`
}

// Evidence is a tagged variant; exactly one payload matches Kind.
type Evidence struct {
	Kind      EvidenceKind   `json:"kind" yaml:"kind"`
	Knowledge *KnowledgeNote `json:"knowledge,omitempty" yaml:"knowledge,omitempty"`
	Social    *SocialMention `json:"social,omitempty" yaml:"social,omitempty"`
}

// EvidenceCommon is the shape both variants share for merging.
type EvidenceCommon struct {
	MentionedAreas []string
	Text           string
	Sentiment      float64
	Upvotes        int
}

// Common projects the evidence onto its shared shape. A Kind whose payload
// is missing, or an unknown Kind, yields the zero value.
func (e Evidence) Common() EvidenceCommon {
	switch e.Kind {
	case EvidenceKnowledge:
		if e.Knowledge == nil {
			return EvidenceCommon{}
		}
		names := make([]string, 0, len(e.Knowledge.Areas))
		for _, a := range e.Knowledge.Areas {
			names = append(names, a.Name)
		}
		return EvidenceCommon{
			MentionedAreas: names,
			Text:           e.Knowledge.Text,
			Sentiment:      e.Knowledge.Sentiment,
		}
	case EvidenceSocial:
		if e.Social == nil {
			return EvidenceCommon{}
		}
		return EvidenceCommon{
			MentionedAreas: append([]string(nil), e.Social.Areas...),
			Text:           e.Social.Quote,
			Sentiment:      e.Social.Sentiment,
			Upvotes:        e.Social.Upvotes,
		}
	default:
		return EvidenceCommon{}
	}
}

// NewKnowledgeEvidence wraps a knowledge note.
func NewKnowledgeEvidence(n KnowledgeNote) Evidence {
	return Evidence{Kind: EvidenceKnowledge, Knowledge: &n}
}

// NewSocialEvidence wraps a social mention.
func NewSocialEvidence(m SocialMention) Evidence {
	return Evidence{Kind: EvidenceSocial, Social: &m}
}
