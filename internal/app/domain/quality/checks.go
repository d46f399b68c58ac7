package quality

import (
	"fmt"
	"sort"
	"strings"

	"github.com/FACorreiaa/go-tripcore/internal/app/models"
	"github.com/FACorreiaa/go-tripcore/internal/pkg/textutil"
)

const (
	overBudgetErrorMargin = 2.0
	underUsedMargin       = 2.0
	minGapMinutes         = 30
	dinnerFromMinutes     = 18 * 60
	noonMinutes           = 12 * 60
)

func dayNumber(d models.ItineraryDay, idx int) int {
	if d.Day > 0 {
		return d.Day
	}
	return idx + 1
}

func activityName(a models.ScheduledActivity) string {
	if a.Name != "" {
		return a.Name
	}
	return strings.ReplaceAll(string(a.Kind), "_", " ")
}

// matchesIntent reports whether a scheduled activity fulfils an intent.
// Custom intents match on their free-text label.
func matchesIntent(a models.ScheduledActivity, in models.ActivityIntent) bool {
	if in.Kind != models.ActivityCustom && in.Kind != "" {
		if models.NormalizeTag(string(a.Kind)) == models.NormalizeTag(string(in.Kind)) {
			return true
		}
	}
	if strings.TrimSpace(in.Label) == "" {
		return false
	}
	return textutil.ContainsEither(a.Name, in.Label)
}

func (e *Engine) checkActivityCoverage(it models.Itinerary, prefs models.TripPreferences) []models.QualityCheckItem {
	var items []models.QualityCheckItem
	for _, in := range prefs.SelectedActivities {
		days := 0
		for _, d := range it.Days {
			for _, a := range d.Activities {
				if matchesIntent(a, in) {
					days++
					break
				}
			}
		}
		label := in.Text()
		slug := textutil.Slugify(strings.ReplaceAll(label, "_", " "))
		switch {
		case days == 0 && in.IsMustDo():
			items = append(items, models.QualityCheckItem{
				ID:          "coverage-missing-" + slug,
				Category:    models.CategoryActivityCoverage,
				Severity:    models.SeverityError,
				Title:       fmt.Sprintf("Must-do %s is not scheduled", label),
				Description: fmt.Sprintf("%s was marked as a must-do but does not appear on any day.", label),
				Impact:      "A core reason for the trip is missing.",
				Suggestion:  fmt.Sprintf("Add %s to a day with spare effort budget.", label),
			})
		case days == 0:
			items = append(items, models.QualityCheckItem{
				ID:          "coverage-optional-" + slug,
				Category:    models.CategoryActivityCoverage,
				Severity:    models.SeverityInfo,
				Title:       fmt.Sprintf("%s did not fit", label),
				Description: fmt.Sprintf("Nice-to-have %s is not scheduled.", label),
			})
		case in.IsMustDo() && in.TargetDays > 0 && days < in.TargetDays:
			items = append(items, models.QualityCheckItem{
				ID:          "coverage-short-" + slug,
				Category:    models.CategoryActivityCoverage,
				Severity:    models.SeverityWarning,
				Title:       fmt.Sprintf("%s on fewer days than requested", label),
				Description: fmt.Sprintf("%s is scheduled on %d of the %d requested days.", label, days, in.TargetDays),
				Suggestion:  "Swap a lighter activity for another session.",
			})
		}
	}
	return items
}

func (e *Engine) checkIntensity(it models.Itinerary, prefs models.TripPreferences) []models.QualityCheckItem {
	var items []models.QualityCheckItem
	pace := prefs.EffectivePace()
	budget := e.effort.DailyBudget(pace)
	underUsed := 0

	for i, d := range it.Days {
		n := dayNumber(d, i)
		load := e.effort.DayEffort(d.Activities)
		switch {
		case load > budget+overBudgetErrorMargin:
			items = append(items, models.QualityCheckItem{
				ID:          fmt.Sprintf("intensity-overload-day-%d", n),
				Category:    models.CategoryIntensity,
				Severity:    models.SeverityError,
				Title:       fmt.Sprintf("Day %d is far too demanding", n),
				Description: fmt.Sprintf("Day %d needs %.1f effort points against a %s budget of %.1f.", n, load, pace, budget),
				Impact:      "Likely exhaustion and skipped activities.",
				Suggestion:  "Move an activity to a lighter day.",
				Day:         n,
			})
		case load > budget:
			items = append(items, models.QualityCheckItem{
				ID:          fmt.Sprintf("intensity-over-day-%d", n),
				Category:    models.CategoryIntensity,
				Severity:    models.SeverityWarning,
				Title:       fmt.Sprintf("Day %d is over budget", n),
				Description: fmt.Sprintf("Day %d needs %.1f effort points against a %s budget of %.1f.", n, load, pace, budget),
				Suggestion:  "Shorten or drop one activity.",
				Day:         n,
			})
		case pace == models.PacePacked && load < budget-underUsedMargin:
			underUsed++
		}
	}

	if pace == models.PacePacked && underUsed >= max(2, len(it.Days)/3) {
		items = append(items, models.QualityCheckItem{
			ID:          "intensity-underused",
			Category:    models.CategoryIntensity,
			Severity:    models.SeverityInfo,
			Title:       "Room for more on a packed trip",
			Description: fmt.Sprintf("%d days use less than %.0f effort points although a packed pace was chosen.", underUsed, budget-underUsedMargin),
			Suggestion:  "Add nice-to-have activities to the quiet days.",
		})
	}
	return items
}

// stays returns the stays of the itinerary, deriving them from consecutive
// day bases when none are given. The final day is departure and adds no night.
func stays(it models.Itinerary) []models.Stay {
	if len(it.Stays) > 0 {
		return it.Stays
	}
	if len(it.Days) < 2 {
		return nil
	}
	var out []models.Stay
	for i, d := range it.Days {
		if d.Base == "" {
			continue
		}
		last := i == len(it.Days)-1
		if len(out) > 0 && textutil.Fold(out[len(out)-1].Base) == textutil.Fold(d.Base) {
			if !last {
				out[len(out)-1].Nights++
			}
			continue
		}
		if last && len(out) > 0 {
			continue
		}
		out = append(out, models.Stay{Base: d.Base, Nights: 1})
	}
	return out
}

func (e *Engine) checkLogistics(it models.Itinerary, _ models.TripPreferences) []models.QualityCheckItem {
	var items []models.QualityCheckItem

	transfers := 0
	for i, d := range it.Days {
		if !d.HasTransfer() {
			continue
		}
		transfers++
		if i > 0 && it.Days[i-1].HasTransfer() {
			n := dayNumber(d, i)
			items = append(items, models.QualityCheckItem{
				ID:          fmt.Sprintf("logistics-consecutive-transfer-day-%d", n),
				Category:    models.CategoryLogistics,
				Severity:    models.SeverityWarning,
				Title:       "Back-to-back transfer days",
				Description: fmt.Sprintf("Days %d and %d are both spent moving.", dayNumber(it.Days[i-1], i-1), n),
				Suggestion:  "Stay at least two nights between moves.",
				Day:         n,
			})
		}
	}
	if limit := max(1, len(it.Days)/4); transfers > limit {
		items = append(items, models.QualityCheckItem{
			ID:          "logistics-excessive-transfers",
			Category:    models.CategoryLogistics,
			Severity:    models.SeverityWarning,
			Title:       "Too many transfer days",
			Description: fmt.Sprintf("%d of %d days involve a transfer.", transfers, len(it.Days)),
			Impact:      "Time on the road eats into the trip.",
			Suggestion:  "Drop a base or use day trips.",
		})
	}

	ss := stays(it)
	if len(ss) < 2 {
		return items
	}
	for _, s := range ss {
		if s.Nights != 1 {
			continue
		}
		items = append(items, models.QualityCheckItem{
			ID:          "logistics-single-night-" + textutil.Slugify(s.Base),
			Category:    models.CategoryLogistics,
			Severity:    models.SeverityWarning,
			Title:       fmt.Sprintf("Only one night in %s", s.Base),
			Description: fmt.Sprintf("A single night in %s means checking in and out within a day.", s.Base),
			Suggestion:  "Stay two nights or visit as a day trip.",
		})
	}
	return items
}

type timeSpan struct {
	name       string
	start, end int
}

func (e *Engine) checkTiming(it models.Itinerary, _ models.TripPreferences) []models.QualityCheckItem {
	var items []models.QualityCheckItem
	for i, d := range it.Days {
		n := dayNumber(d, i)
		var spans []timeSpan
		for _, a := range d.Activities {
			start, ok := a.StartMinutes()
			if !ok {
				continue
			}
			end, ok := a.EndMinutes()
			if !ok || end < start {
				end = start
			}
			spans = append(spans, timeSpan{name: activityName(a), start: start, end: end})
		}
		sort.SliceStable(spans, func(a, b int) bool { return spans[a].start < spans[b].start })

		// prev is the span ending latest so far, so a long activity is
		// checked against every later one it contains.
		for j := 1; j < len(spans); j++ {
			prev, cur := latestEnding(spans[:j]), spans[j]
			gap := cur.start - prev.end
			switch {
			case gap < 0:
				items = append(items, models.QualityCheckItem{
					ID:          fmt.Sprintf("timing-overlap-day-%d-%d", n, j),
					Category:    models.CategoryTiming,
					Severity:    models.SeverityError,
					Title:       fmt.Sprintf("Overlapping activities on day %d", n),
					Description: fmt.Sprintf("%s (%s) starts before %s ends (%s).", cur.name, models.FormatClock(cur.start), prev.name, models.FormatClock(prev.end)),
					Suggestion:  "Move one of them to another time block.",
					Day:         n,
				})
			case gap < minGapMinutes:
				items = append(items, models.QualityCheckItem{
					ID:          fmt.Sprintf("timing-tight-day-%d-%d", n, j),
					Category:    models.CategoryTiming,
					Severity:    models.SeverityInfo,
					Title:       fmt.Sprintf("Tight connection on day %d", n),
					Description: fmt.Sprintf("Only %d minutes between %s and %s.", gap, prev.name, cur.name),
					Suggestion:  "Leave at least half an hour between activities.",
					Day:         n,
				})
			}
		}
	}
	return items
}

func latestEnding(spans []timeSpan) timeSpan {
	latest := spans[0]
	for _, s := range spans[1:] {
		if s.end > latest.end {
			latest = s
		}
	}
	return latest
}

func (e *Engine) checkHardNos(it models.Itinerary, prefs models.TripPreferences) []models.QualityCheckItem {
	matcher := NewHardNoMatcher(prefs.HardNos)
	if matcher.Empty() {
		return nil
	}
	var items []models.QualityCheckItem
	for i, d := range it.Days {
		n := dayNumber(d, i)
		for j, a := range d.Activities {
			text := strings.Join([]string{a.Name, a.Description, strings.ReplaceAll(string(a.Kind), "_", " ")}, " | ")
			for _, idx := range matcher.Match(text) {
				hardNo := matcher.HardNo(idx)
				items = append(items, models.QualityCheckItem{
					ID:          fmt.Sprintf("hard-no-day-%d-%d-%s", n, j, textutil.Slugify(NormalizeHardNo(hardNo))),
					Category:    models.CategoryHardNo,
					Severity:    models.SeverityError,
					Title:       fmt.Sprintf("%s conflicts with a hard no", activityName(a)),
					Description: fmt.Sprintf("Day %d includes %s, but the traveller said %q.", n, activityName(a), hardNo),
					Impact:      "The traveller explicitly ruled this out.",
					Suggestion:  "Replace it with an alternative.",
					Day:         n,
				})
			}
		}
	}
	return items
}

func isDinner(a models.ScheduledActivity) bool {
	switch a.Kind {
	case models.ActivityDinner, models.ActivityMeal, models.ActivityFoodTour:
	default:
		return false
	}
	start, ok := a.StartMinutes()
	return ok && start >= dinnerFromMinutes
}

func (e *Engine) checkDining(it models.Itinerary, prefs models.TripPreferences) []models.QualityCheckItem {
	if !prefs.WantsPlannedDining {
		return nil
	}
	var items []models.QualityCheckItem
	for i, d := range it.Days {
		if len(it.Days) > 1 && i == len(it.Days)-1 {
			break
		}
		has := false
		for _, a := range d.Activities {
			if isDinner(a) {
				has = true
				break
			}
		}
		if has {
			continue
		}
		n := dayNumber(d, i)
		items = append(items, models.QualityCheckItem{
			ID:          fmt.Sprintf("dining-missing-day-%d", n),
			Category:    models.CategoryDining,
			Severity:    models.SeverityWarning,
			Title:       fmt.Sprintf("No dinner planned on day %d", n),
			Description: "Planned dining was requested but no dinner is scheduled after 6pm.",
			Suggestion:  "Book a dinner in the evening block.",
			Day:         n,
		})
	}
	return items
}

func (e *Engine) checkRealism(it models.Itinerary, _ models.TripPreferences) []models.QualityCheckItem {
	if len(it.Days) == 0 {
		return nil
	}
	var items []models.QualityCheckItem

	first := it.Days[0]
	morning := 0
	for _, a := range first.Activities {
		if a.Kind == models.ActivityTransfer {
			continue
		}
		if start, ok := a.StartMinutes(); ok && start < noonMinutes {
			morning++
		}
	}
	if morning >= 2 {
		items = append(items, models.QualityCheckItem{
			ID:          "realism-arrival-morning",
			Category:    models.CategoryRealism,
			Severity:    models.SeverityInfo,
			Title:       "Busy arrival morning",
			Description: fmt.Sprintf("%d activities are planned before noon on arrival day.", morning),
			Suggestion:  "Keep the arrival morning free for travel delays.",
			Day:         dayNumber(first, 0),
		})
	}

	if len(it.Days) < 2 {
		return items
	}
	lastIdx := len(it.Days) - 1
	last := it.Days[lastIdx]
	for _, a := range last.Activities {
		if a.Kind == models.ActivityTransfer {
			continue
		}
		if start, ok := a.StartMinutes(); ok && start >= noonMinutes {
			items = append(items, models.QualityCheckItem{
				ID:          "realism-departure-afternoon",
				Category:    models.CategoryRealism,
				Severity:    models.SeverityInfo,
				Title:       "Afternoon plans on departure day",
				Description: fmt.Sprintf("%s starts at %s on the day you leave.", activityName(a), models.FormatClock(start)),
				Suggestion:  "Check flight times before booking.",
				Day:         dayNumber(last, lastIdx),
			})
			break
		}
	}
	return items
}
