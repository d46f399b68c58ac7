package effort

import (
	"github.com/FACorreiaa/go-tripcore/internal/app/models"
)

type blockRange struct {
	start, end int // hours
}

var blockHours = map[models.TimeBlock]blockRange{
	models.BlockEarlyMorning: {5, 8},
	models.BlockMorning:      {8, 12},
	models.BlockMidday:       {12, 14},
	models.BlockAfternoon:    {14, 17},
	models.BlockEvening:      {17, 20},
	models.BlockNight:        {20, 24},
}

var defaultBlocks = []models.TimeBlock{
	models.BlockMorning, models.BlockAfternoon, models.BlockMidday, models.BlockEvening,
}

// preferredBlocks lists, per kind, the time blocks to try in order.
var preferredBlocks = map[models.ActivityKind][]models.TimeBlock{
	models.ActivitySurf:          {models.BlockEarlyMorning, models.BlockMorning, models.BlockAfternoon},
	models.ActivitySnorkel:       {models.BlockMorning, models.BlockMidday},
	models.ActivitySwim:          {models.BlockMorning, models.BlockAfternoon},
	models.ActivityDive:          {models.BlockMorning},
	models.ActivityBeach:         {models.BlockAfternoon, models.BlockMorning, models.BlockMidday},
	models.ActivityRelax:         {models.BlockAfternoon, models.BlockMidday},
	models.ActivityHike:          {models.BlockEarlyMorning, models.BlockMorning},
	models.ActivityTrek:          {models.BlockEarlyMorning, models.BlockMorning},
	models.ActivityMultiDayTrek:  {models.BlockEarlyMorning},
	models.ActivityAdventure:     {models.BlockMorning, models.BlockAfternoon},
	models.ActivityWildlife:      {models.BlockEarlyMorning, models.BlockMorning, models.BlockAfternoon},
	models.ActivityWhaleWatching: {models.BlockMorning},
	models.ActivityKayak:         {models.BlockMorning, models.BlockAfternoon},
	models.ActivityRafting:       {models.BlockMorning},
	models.ActivityZipline:       {models.BlockMorning, models.BlockAfternoon},
	models.ActivityYoga:          {models.BlockEarlyMorning, models.BlockEvening},
	models.ActivitySpa:           {models.BlockAfternoon, models.BlockEvening},
	models.ActivityCultural:      {models.BlockMorning, models.BlockAfternoon},
	models.ActivityFoodTour:      {models.BlockEvening, models.BlockMidday},
	models.ActivityMeal:          {models.BlockMidday, models.BlockEvening},
	models.ActivityDinner:        {models.BlockEvening, models.BlockNight},
	models.ActivitySunset:        {models.BlockEvening},
	models.ActivityNightlife:     {models.BlockNight},
	models.ActivityShopping:      {models.BlockAfternoon, models.BlockMidday},
	models.ActivityFishing:       {models.BlockEarlyMorning, models.BlockMorning},
	models.ActivityTransfer:      {models.BlockMorning, models.BlockMidday, models.BlockAfternoon},
}

// PreferredBlocks returns the ordered block preference for kind.
func PreferredBlocks(kind models.ActivityKind) []models.TimeBlock {
	if blocks, ok := preferredBlocks[models.ActivityKind(models.NormalizeTag(string(kind)))]; ok {
		return blocks
	}
	return defaultBlocks
}

// BlockRange returns the hour range of a block.
func BlockRange(block models.TimeBlock) (startHour, endHour int, ok bool) {
	r, ok := blockHours[block]
	return r.start, r.end, ok
}

// FindSlot scans the preferred blocks of kind in order and returns the first
// block that is free of existing activities. A block is free when neither its
// hour range nor the activity's own span (which may run past the block end)
// overlaps an existing activity. Spans past midnight are not offered.
func (m *Model) FindSlot(existing []models.ScheduledActivity, kind models.ActivityKind, durationHours float64) (models.Slot, bool) {
	if durationHours <= 0 {
		durationHours = m.params.DefaultDuration
	}
	duration := int(durationHours * 60)

	for _, block := range PreferredBlocks(kind) {
		r := blockHours[block]
		start := r.start * 60
		end := start + duration
		if end > 24*60 {
			continue
		}
		occupied := end
		if r.end*60 > occupied {
			occupied = r.end * 60
		}
		if m.overlapsAny(existing, start, occupied) {
			continue
		}
		return models.Slot{
			Start: models.FormatClock(start),
			End:   models.FormatClock(end),
			Block: block,
		}, true
	}
	return models.Slot{}, false
}

// FindAvailableSlot finds a slot using the default model.
func FindAvailableSlot(existing []models.ScheduledActivity, kind models.ActivityKind, durationHours float64) (models.Slot, bool) {
	return defaultModel.FindSlot(existing, kind, durationHours)
}

func (m *Model) overlapsAny(existing []models.ScheduledActivity, start, end int) bool {
	for _, a := range existing {
		s, ok := a.StartMinutes()
		if !ok {
			continue
		}
		e, ok := a.EndMinutes()
		if !ok || e <= s {
			e = s + int(m.params.DefaultDuration*60)
		}
		if start < e && s < end {
			return true
		}
	}
	return false
}
