package effort

import (
	"sort"

	"github.com/FACorreiaa/go-tripcore/internal/app/models"
)

// Distribute greedily assigns activities to days. Must-do activities are
// placed first, largest target-day count first, each on the earliest days
// with headroom. A must-do that still falls short of its target may use the
// overflow allowance; nice-to-have activities never do. An activity is placed
// at most once per day. The result holds every day index in [0, tripLength).
func (m *Model) Distribute(intents []models.ActivityIntent, tripLength int, pace models.Pace) map[int][]models.PlannedActivity {
	if tripLength <= 0 {
		tripLength = models.DefaultTripLength
	}

	days := make(map[int][]models.PlannedActivity, tripLength)
	load := make([]float64, tripLength)
	for d := 0; d < tripLength; d++ {
		days[d] = []models.PlannedActivity{}
	}

	budget := m.DailyBudget(pace)

	for _, intent := range orderForDistribution(intents) {
		cost := m.ActivityCost(intent.Kind, 0)
		target := intent.Targets()
		if target > tripLength {
			target = tripLength
		}

		placed := m.place(days, load, intent, cost, target, budget, false)

		if placed < target && intent.IsMustDo() {
			m.place(days, load, intent, cost, target-placed, budget+m.params.MustDoOverflow, true)
		}
	}

	return days
}

// place puts up to want copies of intent onto days whose load stays within
// limit, returning how many were placed.
func (m *Model) place(days map[int][]models.PlannedActivity, load []float64, intent models.ActivityIntent, cost float64, want int, limit float64, overflow bool) int {
	placed := 0
	for d := 0; d < len(load) && placed < want; d++ {
		if hasIntent(days[d], intent) {
			continue
		}
		if load[d]+cost > limit {
			continue
		}
		days[d] = append(days[d], models.PlannedActivity{
			Kind:       intent.Kind,
			Label:      intent.Label,
			Priority:   intent.Priority,
			EffortCost: cost,
			Overflow:   overflow && load[d]+cost > limit-m.params.MustDoOverflow,
		})
		load[d] += cost
		placed++
	}
	return placed
}

func hasIntent(day []models.PlannedActivity, intent models.ActivityIntent) bool {
	for _, p := range day {
		if p.Kind == intent.Kind && p.Label == intent.Label {
			return true
		}
	}
	return false
}

// orderForDistribution puts must-do intents first, by descending target-day
// count, followed by nice-to-have intents in input order.
func orderForDistribution(intents []models.ActivityIntent) []models.ActivityIntent {
	var mustDo, niceToHave []models.ActivityIntent
	for _, in := range intents {
		if in.IsMustDo() {
			mustDo = append(mustDo, in)
		} else {
			niceToHave = append(niceToHave, in)
		}
	}
	sort.SliceStable(mustDo, func(i, j int) bool {
		return mustDo[i].Targets() > mustDo[j].Targets()
	})
	return append(mustDo, niceToHave...)
}

// DistributeActivities distributes activities using the default model.
func DistributeActivities(intents []models.ActivityIntent, tripLength int, pace models.Pace) map[int][]models.PlannedActivity {
	return defaultModel.Distribute(intents, tripLength, pace)
}

// TotalDemand returns the effort points the must-do intents need over a trip
// of tripLength days.
func (m *Model) TotalDemand(intents []models.ActivityIntent, tripLength int) float64 {
	total := 0.0
	for _, in := range intents {
		if !in.IsMustDo() {
			continue
		}
		target := in.Targets()
		if tripLength > 0 && target > tripLength {
			target = tripLength
		}
		total += m.ActivityCost(in.Kind, 0) * float64(target)
	}
	return total
}
