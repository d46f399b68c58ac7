package areas

import (
	"github.com/FACorreiaa/go-tripcore/internal/app/models"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/textutil"
)

// universeArea is an area awaiting scoring together with everything merged
// into it from the evidence list.
type universeArea struct {
	area     models.KnowledgeArea
	source   models.AreaSource
	evidence []models.Evidence
	specific []models.SpecificActivityNote
}

// resolveUniverse returns the curated areas of the destination when the
// knowledge base knows it, otherwise areas synthesized from the evidence.
func resolveUniverse(kb KnowledgeBase, destination string, evidence []models.Evidence) ([]*universeArea, bool) {
	var universe []*universeArea
	curated := false
	if d, ok := kb.Lookup(destination); ok && len(d.Areas) > 0 {
		curated = true
		for _, a := range d.Areas {
			universe = append(universe, &universeArea{area: a, source: models.SourceCurated})
		}
	} else {
		universe = synthesizeUniverse(evidence)
	}
	attachEvidence(universe, evidence)
	return universe, curated
}

// synthesizeUniverse takes the first mentioned area of every evidence item,
// deduplicated case-insensitively by name.
func synthesizeUniverse(evidence []models.Evidence) []*universeArea {
	var out []*universeArea
	seen := map[string]*universeArea{}
	for _, ev := range evidence {
		names := ev.Common().MentionedAreas
		if len(names) == 0 || textutil.Fold(names[0]) == "" {
			continue
		}
		key := textutil.Fold(names[0])
		if existing, ok := seen[key]; ok {
			mergeMention(existing, ev, names[0])
			continue
		}
		ua := &universeArea{
			area: models.KnowledgeArea{
				Name: textutil.DisplayName(names[0]),
				Type: models.AreaRegion,
			},
		}
		switch ev.Kind {
		case models.EvidenceKnowledge:
			ua.source = models.SourceKnowledge
		case models.EvidenceSocial:
			ua.source = models.SourceSocial
			ua.area.Description = ev.Social.Quote
		}
		mergeMention(ua, ev, names[0])
		seen[key] = ua
		out = append(out, ua)
	}
	return out
}

// mergeMention folds the details a knowledge note gives about name into ua.
func mergeMention(ua *universeArea, ev models.Evidence, name string) {
	if ev.Kind != models.EvidenceKnowledge || ev.Knowledge == nil {
		return
	}
	note := ev.Knowledge
	for _, m := range note.Areas {
		if textutil.Fold(m.Name) != textutil.Fold(name) {
			continue
		}
		if m.Type != "" && ua.source != models.SourceCurated {
			ua.area.Type = m.Type
		}
		if ua.area.Description == "" {
			ua.area.Description = m.Description
		}
		if ua.area.Center.IsZero() {
			ua.area.Center = m.Center
		}
		ua.area.Characteristics = union(ua.area.Characteristics, m.Characteristics)
		ua.area.BestFor = union(ua.area.BestFor, m.BestFor)
		ua.area.NotIdealFor = union(ua.area.NotIdealFor, m.NotIdealFor)
		ua.area.VibeTags = union(ua.area.VibeTags, m.VibeTags)
		if len(m.BestFor) == 0 && len(note.Areas) > 0 && textutil.Fold(note.Areas[0].Name) == textutil.Fold(name) {
			ua.area.BestFor = union(ua.area.BestFor, note.BestFor)
		}
		return
	}
}

// attachEvidence links every evidence item to each universe area it names.
// A knowledge note's specific-activity hint goes to its first named area.
func attachEvidence(universe []*universeArea, evidence []models.Evidence) {
	for _, ev := range evidence {
		names := ev.Common().MentionedAreas
		for _, ua := range universe {
			if !mentions(names, ua.area.Name) {
				continue
			}
			ua.evidence = append(ua.evidence, ev)
			if ev.Kind == models.EvidenceKnowledge && ev.Knowledge != nil &&
				ev.Knowledge.SpecificActivity != nil && len(names) > 0 &&
				textutil.ContainsEither(names[0], ua.area.Name) {
				ua.specific = append(ua.specific, *ev.Knowledge.SpecificActivity)
			}
		}
	}
}

func mentions(names []string, area string) bool {
	for _, n := range names {
		if textutil.ContainsEither(n, area) {
			return true
		}
	}
	return false
}

// union appends the entries of extra missing from base, comparing tags in
// normalised form. base order is kept.
func union(base, extra []string) []string {
	seen := make(map[string]bool, len(base)+len(extra))
	for _, b := range base {
		seen[models.NormalizeTag(b)] = true
	}
	for _, e := range extra {
		k := models.NormalizeTag(e)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		base = append(base, e)
	}
	return base
}
