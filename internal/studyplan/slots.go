package studyplan

// Slot thresholds: with under 20 minutes only reviews fit; under 45
// minutes deep-dives are dropped.
const (
	reviewOnlyThreshold = 20
	noDeepDiveThreshold = 45
	slotBlockMinutes    = 50
)

// defaultStudyHours is used when session history is too thin to derive
// the user's actual study hours.
var defaultStudyHours = []int{9, 19, 21}

// Slot is a plan item pinned to a clock hour.
type Slot struct {
	Hour int
	Item PlanItem
}

// TodaySlots fits today's plan into the minutes available right now and
// spreads the surviving items over the user's preferred study hours,
// packing roughly 50-minute blocks per hour.
func TodaySlots(day DailyPlan, minutesAvailable int, preferredHours []int) []Slot {
	if len(preferredHours) == 0 {
		preferredHours = defaultStudyHours
	}

	var fitted []PlanItem
	used := 0
	for _, item := range day.Items {
		if minutesAvailable < reviewOnlyThreshold && item.Action != ActionReview {
			continue
		}
		if minutesAvailable < noDeepDiveThreshold && item.Action == ActionDeepDive {
			continue
		}
		if used+item.DurationMinutes > minutesAvailable {
			continue
		}
		fitted = append(fitted, item)
		used += item.DurationMinutes
	}

	slots := make([]Slot, 0, len(fitted))
	hourIdx := 0
	blockUsed := 0
	for _, item := range fitted {
		if blockUsed+item.DurationMinutes > slotBlockMinutes && hourIdx < len(preferredHours)-1 {
			hourIdx++
			blockUsed = 0
		}
		slots = append(slots, Slot{Hour: preferredHours[hourIdx], Item: item})
		blockUsed += item.DurationMinutes
	}
	return slots
}
