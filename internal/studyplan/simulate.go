// Package studyplan forward-simulates the study backlog day by day up
// to the exam date. The simulation is pure and CPU-bound: it never
// touches persisted review state, and it is cheap enough to re-run on
// every invocation instead of caching.
package studyplan

import (
	"math"
	"sort"
	"time"

	"github.com/vgn96186/Guru-sub000/internal/store"
)

// ActionType classifies a planned item.
type ActionType string

const (
	ActionStudy    ActionType = "study"
	ActionReview   ActionType = "review"
	ActionDeepDive ActionType = "deep_dive"
)

const (
	maxSimDays = 60

	reviewMinutes   = 15
	deepDiveMinutes = 45
	defaultStudyMin = 30

	// Reviews are non-negotiable: they may overflow the daily goal by
	// this fraction before spilling to the next day.
	reviewOverflowFraction = 0.2

	// Once this share of the goal is spent, at most one deep-dive is
	// added per day.
	deepDiveThrottleShare = 0.6
)

// SimInput is everything the simulator reads.
type SimInput struct {
	Topics           []store.TopicView
	DailyGoalMinutes int
	ExamDate         time.Time
	Now              time.Time

	// SubjectWeights biases new-topic ordering per subject. Missing
	// subjects weigh 5.
	SubjectWeights map[string]float64
}

// PlanItem is one scheduled activity on one simulated day.
type PlanItem struct {
	TopicID         string
	TopicName       string
	Subject         string
	Action          ActionType
	DurationMinutes int
}

// DailyPlan is the projection for one calendar day.
type DailyPlan struct {
	Date      time.Time
	Items     []PlanItem
	IsRestDay bool
}

// Summary is the feasibility verdict for the whole projection.
type Summary struct {
	// Feasible is true when every new topic fits before the exam.
	Feasible bool

	// TotalTopicsLeft counts new topics that did not fit.
	TotalTopicsLeft int

	// RequiredHoursPerDay is the average load over non-rest days, in
	// hours to one decimal.
	RequiredHoursPerDay float64

	TotalDays int
	RestDays  int
}

// Plan is the simulator output.
type Plan struct {
	Days    []DailyPlan
	Summary Summary
}

// Simulate drains three backlog queues against the daily goal: reviews
// first, then weak-topic deep-dives, then new topics. Studying a topic
// schedules synthetic follow-up reviews on later simulated days, so the
// projection carries its own review load without mutating real state.
func Simulate(in SimInput) *Plan {
	days := daysUntil(in.Now, in.ExamDate)
	if days > maxSimDays {
		days = maxSimDays
	}
	if days < 1 {
		days = 1
	}

	overdue, weak, fresh := buildQueues(in)

	goal := in.DailyGoalMinutes
	overflowCap := goal + int(float64(goal)*reviewOverflowFraction)
	futureReviews := make(map[int][]PlanItem)

	plan := &Plan{Days: make([]DailyPlan, 0, days)}
	totalMinutes := 0

	for day := 0; day < days; day++ {
		var items []PlanItem
		used := 0

		// Reviews seeded by earlier simulated study land first. A full
		// day pushes them to tomorrow, never drops them.
		scheduled := futureReviews[day]
		delete(futureReviews, day)
		for i, item := range scheduled {
			if used+item.DurationMinutes > overflowCap {
				futureReviews[day+1] = append(futureReviews[day+1], scheduled[i:]...)
				break
			}
			items = append(items, item)
			used += item.DurationMinutes
		}

		for len(overdue) > 0 && used+reviewMinutes <= overflowCap {
			items = append(items, reviewItem(overdue[0]))
			used += reviewMinutes
			overdue = overdue[1:]
		}

		deepDives := 0
		for len(weak) > 0 && used+deepDiveMinutes <= goal {
			if used >= int(float64(goal)*deepDiveThrottleShare) && deepDives >= 1 {
				break
			}
			t := weak[0]
			weak = weak[1:]
			items = append(items, PlanItem{
				TopicID:         t.ID,
				TopicName:       t.Name,
				Subject:         t.Subject,
				Action:          ActionDeepDive,
				DurationMinutes: deepDiveMinutes,
			})
			used += deepDiveMinutes
			deepDives++
			futureReviews[day+2] = append(futureReviews[day+2], reviewItem(t))
		}

		for len(fresh) > 0 {
			t := fresh[0]
			dur := studyMinutes(t)
			if used+dur > goal {
				break
			}
			fresh = fresh[1:]
			items = append(items, PlanItem{
				TopicID:         t.ID,
				TopicName:       t.Name,
				Subject:         t.Subject,
				Action:          ActionStudy,
				DurationMinutes: dur,
			})
			used += dur
			futureReviews[day+1] = append(futureReviews[day+1], reviewItem(t))
			futureReviews[day+4] = append(futureReviews[day+4], reviewItem(t))
		}

		totalMinutes += used
		plan.Days = append(plan.Days, DailyPlan{
			Date:      in.Now.AddDate(0, 0, day),
			Items:     items,
			IsRestDay: used == 0,
		})
	}

	plan.Summary = summarize(plan.Days, totalMinutes, len(fresh))
	return plan
}

func summarize(days []DailyPlan, totalMinutes, topicsLeft int) Summary {
	rest := 0
	for _, d := range days {
		if d.IsRestDay {
			rest++
		}
	}

	var hours float64
	if active := len(days) - rest; active > 0 {
		hours = math.Round(float64(totalMinutes)/float64(active)/60*10) / 10
	}

	return Summary{
		Feasible:            topicsLeft == 0,
		TotalTopicsLeft:     topicsLeft,
		RequiredHoursPerDay: hours,
		TotalDays:           len(days),
		RestDays:            rest,
	}
}

// buildQueues splits the pool into the three backlogs. A topic lands in
// exactly one: due beats weak beats new.
func buildQueues(in SimInput) (overdue, weak, fresh []store.TopicView) {
	for _, t := range in.Topics {
		switch {
		case t.Status != store.StatusUnseen && t.DueSimple(in.Now):
			overdue = append(overdue, t)
		case t.Status != store.StatusUnseen && t.Confidence <= 2:
			weak = append(weak, t)
		case t.Status == store.StatusUnseen:
			fresh = append(fresh, t)
		}
	}

	sort.SliceStable(overdue, func(i, j int) bool {
		return overdue[i].NextReviewDate.Before(*overdue[j].NextReviewDate)
	})
	sort.SliceStable(weak, func(i, j int) bool {
		if weak[i].Confidence != weak[j].Confidence {
			return weak[i].Confidence < weak[j].Confidence
		}
		return weak[i].WrongCount > weak[j].WrongCount
	})
	sort.SliceStable(fresh, func(i, j int) bool {
		return newTopicWeight(fresh[i], in.SubjectWeights) > newTopicWeight(fresh[j], in.SubjectWeights)
	})
	return overdue, weak, fresh
}

// SubjectWeights derives per-subject emphasis from the topic pool: each
// subject weighs the mean priority of its topics.
func SubjectWeights(topics []store.TopicView) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]float64)
	for _, t := range topics {
		sums[t.Subject] += float64(t.Priority)
		counts[t.Subject]++
	}
	out := make(map[string]float64, len(sums))
	for s, sum := range sums {
		out[s] = sum / counts[s]
	}
	return out
}

func newTopicWeight(t store.TopicView, weights map[string]float64) float64 {
	w, ok := weights[t.Subject]
	if !ok {
		w = 5
	}
	return w*1.5 + float64(t.Priority)
}

func reviewItem(t store.TopicView) PlanItem {
	return PlanItem{
		TopicID:         t.ID,
		TopicName:       t.Name,
		Subject:         t.Subject,
		Action:          ActionReview,
		DurationMinutes: reviewMinutes,
	}
}

func studyMinutes(t store.TopicView) int {
	if t.EstimatedMinutes > 0 {
		return t.EstimatedMinutes
	}
	return defaultStudyMin
}

func daysUntil(now, exam time.Time) int {
	return int(exam.Sub(now).Hours() / 24)
}
