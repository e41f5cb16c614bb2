package cmd

import (
	"fmt"
	"strings"
	"time"

	fsrs "github.com/open-spaced-repetition/go-fsrs"
	"github.com/spf13/cobra"

	"github.com/vgn96186/Guru-sub000/internal/scheduler"
	"github.com/vgn96186/Guru-sub000/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		now := time.Now()

		topics, err := st.Topics().ListWithProgress(ctx)
		if err != nil {
			return err
		}
		profile, err := st.Profile().Get(ctx)
		if err != nil {
			return err
		}

		var totalXP, due int
		byStatus := make(map[store.TopicStatus]int)
		for _, t := range topics {
			byStatus[t.Status]++
			totalXP += t.XPEarned
			if t.DueSimple(now) {
				due++
			}
		}

		fmt.Println(titleStyle.Render("Progress"))
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("%-10s %d\n", "topics", len(topics))
		for _, s := range []store.TopicStatus{store.StatusUnseen, store.StatusSeen, store.StatusReviewed, store.StatusMastered} {
			fmt.Printf("%-10s %d\n", s, byStatus[s])
		}
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("%-10s %d\n", "due now", due)
		fmt.Printf("%-10s %d\n", "XP", totalXP)
		fmt.Printf("%-10s %d days\n", "streak", profile.StreakDays)

		dueTopics, err := st.Progress().DueForReview(ctx, 5, now)
		if err != nil {
			return err
		}
		if len(dueTopics) > 0 {
			fmt.Println()
			fmt.Println(titleStyle.Render("Due reviews"))
			fmt.Println(subtleStyle.Render("most fragile first"))
			for _, t := range dueTopics {
				fmt.Printf("%-30s stability %.1f, due %s\n", t.Name, t.Stability, t.NextReviewDate.Format("2006-01-02"))
			}

			// Projected next intervals for the most fragile topic.
			sched := scheduler.NewService(st.Progress())
			preview := sched.PreviewCard(&dueTopics[0].TopicProgress, now)
			fmt.Printf("%s next interval by rating: again %s, hard %s, good %s, easy %s\n",
				dueTopics[0].Name,
				previewDays(preview[fsrs.Again], now),
				previewDays(preview[fsrs.Hard], now),
				previewDays(preview[fsrs.Good], now),
				previewDays(preview[fsrs.Easy], now))
		}

		weakest, err := st.Progress().Weakest(ctx, 5)
		if err != nil {
			return err
		}
		if len(weakest) > 0 {
			fmt.Println()
			fmt.Println(titleStyle.Render("Weakest topics"))
			for _, t := range weakest {
				marker := ""
				if t.Nemesis {
					marker = nemesisStyle.Render("  nemesis")
				}
				fmt.Printf("%-30s conf %d/5, wrong %d%s\n", t.Name, t.Confidence, t.WrongCount, marker)
			}
		}
		return nil
	},
}

func previewDays(c fsrs.Card, now time.Time) string {
	days := int(c.Due.Sub(now).Hours() / 24)
	if days < 1 {
		return "<1d"
	}
	return fmt.Sprintf("%dd", days)
}
