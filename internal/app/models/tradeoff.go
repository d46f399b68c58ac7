package models

type TradeoffType string

const (
	TradeoffCalmWaterVsSurf       TradeoffType = "calm_water_vs_surf"
	TradeoffSingleBaseVsManyAreas TradeoffType = "single_base_vs_many_areas"
	TradeoffNightlifeWithKids     TradeoffType = "nightlife_with_kids"
	TradeoffNoLongDrivesVsBases   TradeoffType = "no_long_drives_vs_multi_base"
	TradeoffBeachVsAdventure      TradeoffType = "beach_relax_vs_adventure"
	TradeoffYoungKidsVsPartyVibe  TradeoffType = "young_kids_vs_party_vibe"
	TradeoffPaceVsActivityLoad    TradeoffType = "pace_vs_activity_load"
)

// CustomOptionID is the escape-hatch option present on every tradeoff.
const CustomOptionID = "custom"

type ResolutionOption struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
	Impact      string `json:"impact,omitempty" yaml:"impact,omitempty"`
}

// Tradeoff is a detected conflict between stated preferences.
type Tradeoff struct {
	ID          string             `json:"id" yaml:"id"`
	Type        TradeoffType       `json:"type" yaml:"type"`
	Title       string             `json:"title" yaml:"title"`
	Description string             `json:"description" yaml:"description"`
	Conflicts   []string           `json:"conflicts" yaml:"conflicts"`
	Options     []ResolutionOption `json:"options" yaml:"options"`
}

// Option looks up a resolution option by id.
func (t Tradeoff) Option(id string) (ResolutionOption, bool) {
	for _, o := range t.Options {
		if o.ID == id {
			return o, true
		}
	}
	return ResolutionOption{}, false
}

func (t Tradeoff) Clone() Tradeoff {
	out := t
	out.Conflicts = append([]string(nil), t.Conflicts...)
	out.Options = append([]ResolutionOption(nil), t.Options...)
	return out
}
