package tradeoffs

import (
	"time"

	"github.com/FACorreiaa/go-tripcore/internal/app/models"
)

type transform func(d *Detector, p *models.TripPreferences)

type resolutionKey struct {
	tradeoff models.TradeoffType
	option   string
}

// transforms holds the preference change applied for each known option.
// Options absent here (including custom) only record history.
var transforms = map[resolutionKey]transform{
	{models.TradeoffCalmWaterVsSurf, "reduce_surf_days"}: func(d *Detector, p *models.TripPreferences) {
		for i := range p.SelectedActivities {
			a := &p.SelectedActivities[i]
			if a.Kind == models.ActivitySurf && a.TargetDays > d.thresholds.ReducedSurfDays {
				a.TargetDays = d.thresholds.ReducedSurfDays
			}
		}
	},
	{models.TradeoffCalmWaterVsSurf, "split_bases"}: func(d *Detector, p *models.TripPreferences) {
		if p.MaxBases < d.thresholds.ResolvedBaseCeiling {
			p.MaxBases = d.thresholds.ResolvedBaseCeiling
		}
		if p.BasePreference == models.BasePreferenceSingle || p.BasePreference == "" {
			p.BasePreference = models.BasePreferenceFlexible
		}
	},
	{models.TradeoffCalmWaterVsSurf, "drop_calm_water"}: func(_ *Detector, p *models.TripPreferences) {
		demote(p, needsCalmWater)
	},

	{models.TradeoffSingleBaseVsManyAreas, "day_trips"}: func(_ *Detector, p *models.TripPreferences) {
		p.MaxBases = 1
		p.BasePreference = models.BasePreferenceSingle
	},
	{models.TradeoffSingleBaseVsManyAreas, "two_bases"}: func(d *Detector, p *models.TripPreferences) {
		p.MaxBases = d.thresholds.ResolvedBaseCeiling
		p.BasePreference = models.BasePreferenceFlexible
	},
	{models.TradeoffSingleBaseVsManyAreas, "trim_areas"}: func(d *Detector, p *models.TripPreferences) {
		if len(p.MustVisitAreas) > d.thresholds.TrimmedAreas {
			p.MustVisitAreas = p.MustVisitAreas[:d.thresholds.TrimmedAreas]
		}
	},

	{models.TradeoffNightlifeWithKids, "drop_nightlife"}: func(_ *Detector, p *models.TripPreferences) {
		strip(p, func(a models.ActivityIntent) bool { return a.Kind == models.ActivityNightlife })
	},
	{models.TradeoffNightlifeWithKids, "demote_nightlife"}: func(_ *Detector, p *models.TripPreferences) {
		demote(p, func(a models.ActivityIntent) bool { return a.Kind == models.ActivityNightlife })
	},

	{models.TradeoffNoLongDrivesVsBases, "single_base"}: func(_ *Detector, p *models.TripPreferences) {
		p.MaxBases = 1
		p.BasePreference = models.BasePreferenceSingle
	},
	{models.TradeoffNoLongDrivesVsBases, "close_bases"}: func(d *Detector, p *models.TripPreferences) {
		if p.MaxBases == 0 || p.MaxBases > d.thresholds.ResolvedBaseCeiling {
			p.MaxBases = d.thresholds.ResolvedBaseCeiling
		}
	},
	{models.TradeoffNoLongDrivesVsBases, "accept_drives"}: func(_ *Detector, p *models.TripPreferences) {
		kept := p.HardNos[:0]
		for _, h := range p.HardNos {
			if !isDriveHardNo(h) {
				kept = append(kept, h)
			}
		}
		p.HardNos = kept
	},

	{models.TradeoffBeachVsAdventure, "demote_adventure"}: func(_ *Detector, p *models.TripPreferences) {
		demote(p, kindIn(adventureKinds))
	},
	{models.TradeoffBeachVsAdventure, "demote_beach"}: func(_ *Detector, p *models.TripPreferences) {
		demote(p, kindIn(beachKinds))
	},

	{models.TradeoffYoungKidsVsPartyVibe, "drop_party_vibe"}: func(_ *Detector, p *models.TripPreferences) {
		kept := p.VibePreferences[:0]
		for _, v := range p.VibePreferences {
			if !isPartyVibe(v) {
				kept = append(kept, v)
			}
		}
		p.VibePreferences = kept
	},
	{models.TradeoffYoungKidsVsPartyVibe, "family_lively"}: func(_ *Detector, p *models.TripPreferences) {
		kept := p.VibePreferences[:0]
		for _, v := range p.VibePreferences {
			if !isPartyVibe(v) && v != "family-friendly" {
				kept = append(kept, v)
			}
		}
		p.VibePreferences = append(kept, "family-friendly")
	},

	{models.TradeoffPaceVsActivityLoad, "increase_pace"}: func(_ *Detector, p *models.TripPreferences) {
		switch p.EffectivePace() {
		case models.PaceChill:
			p.Pace = models.PaceBalanced
		default:
			p.Pace = models.PacePacked
		}
	},
	{models.TradeoffPaceVsActivityLoad, "reduce_targets"}: func(_ *Detector, p *models.TripPreferences) {
		for i := range p.SelectedActivities {
			a := &p.SelectedActivities[i]
			if a.IsMustDo() && a.TargetDays > 1 {
				a.TargetDays--
			}
		}
	},
	{models.TradeoffPaceVsActivityLoad, "demote_last_must_do"}: func(_ *Detector, p *models.TripPreferences) {
		for i := len(p.SelectedActivities) - 1; i >= 0; i-- {
			if p.SelectedActivities[i].IsMustDo() {
				p.SelectedActivities[i].Priority = models.PriorityNiceToHave
				return
			}
		}
	},
}

// ApplyResolution returns a copy of p with a history entry for the chosen
// option appended, followed by the option's preference change. Unknown
// tradeoff or option ids are recorded without further change.
func (d *Detector) ApplyResolution(p models.TripPreferences, tradeoffID, optionID, customText string, now time.Time) models.TripPreferences {
	out := p.Clone()
	out.ResolvedTradeoffs = append(out.ResolvedTradeoffs, models.ResolvedTradeoff{
		TradeoffID:     tradeoffID,
		ChosenOptionID: optionID,
		CustomText:     customText,
		ResolvedAt:     now,
	})
	if fn, ok := transforms[resolutionKey{tradeoff: tradeoffType(out, tradeoffID), option: optionID}]; ok {
		fn(d, &out)
	}
	return out
}

// ApplyResolution applies a resolution using the default detector.
func ApplyResolution(p models.TripPreferences, tradeoffID, optionID, customText string, now time.Time) models.TripPreferences {
	return defaultDetector.ApplyResolution(p, tradeoffID, optionID, customText, now)
}

// IsKnownOption reports whether optionID is offered for the tradeoff type.
func IsKnownOption(kind models.TradeoffType, optionID string) bool {
	if optionID == models.CustomOptionID {
		return true
	}
	_, ok := transforms[resolutionKey{tradeoff: kind, option: optionID}]
	if ok {
		return true
	}
	return recordOnlyOptions[resolutionKey{tradeoff: kind, option: optionID}]
}

var recordOnlyOptions = map[resolutionKey]bool{
	{models.TradeoffNightlifeWithKids, "adults_night_out"}: true,
	{models.TradeoffBeachVsAdventure, "alternate_days"}:    true,
	{models.TradeoffYoungKidsVsPartyVibe, "keep_vibe"}:     true,
}

// tradeoffType maps a tradeoff id to its type. Ids are the type tag, but a
// detected entry with a different id is honoured too.
func tradeoffType(p models.TripPreferences, id string) models.TradeoffType {
	for _, t := range p.DetectedTradeoffs {
		if t.ID == id {
			return t.Type
		}
	}
	return models.TradeoffType(id)
}

func kindIn(kinds []models.ActivityKind) func(models.ActivityIntent) bool {
	return func(a models.ActivityIntent) bool {
		for _, k := range kinds {
			if a.Kind == k {
				return true
			}
		}
		return false
	}
}

func demote(p *models.TripPreferences, match func(models.ActivityIntent) bool) {
	for i := range p.SelectedActivities {
		if match(p.SelectedActivities[i]) {
			p.SelectedActivities[i].Priority = models.PriorityNiceToHave
		}
	}
}

func strip(p *models.TripPreferences, match func(models.ActivityIntent) bool) {
	kept := make([]models.ActivityIntent, 0, len(p.SelectedActivities))
	for _, a := range p.SelectedActivities {
		if !match(a) {
			kept = append(kept, a)
		}
	}
	p.SelectedActivities = kept
}
