package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vgn96186/Guru-sub000/internal/studyplan"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's plan fitted to the time you have right now",
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, _ := cmd.Flags().GetInt("minutes")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		now := time.Now()

		profile, err := st.Profile().Get(ctx)
		if err != nil {
			return err
		}
		if profile.ExamDate == nil {
			return fmt.Errorf("no exam date set; run 'guru plan --exam YYYY-MM-DD' first")
		}
		if minutes <= 0 {
			minutes = profile.DailyGoalMinutes
		}

		topics, err := st.Topics().ListWithProgress(ctx)
		if err != nil {
			return err
		}

		plan := studyplan.Simulate(studyplan.SimInput{
			Topics:           topics,
			DailyGoalMinutes: profile.DailyGoalMinutes,
			ExamDate:         *profile.ExamDate,
			Now:              now,
			SubjectWeights:   studyplan.SubjectWeights(topics),
		})

		hours, ok, err := st.Sessions().PreferredStudyHours(ctx, 3)
		if err != nil {
			return err
		}
		if !ok {
			hours = nil
		}

		slots := studyplan.TodaySlots(plan.Days[0], minutes, hours)
		if len(slots) == 0 {
			fmt.Println("Nothing fits right now. Even a 15-minute review slot counts, when you have it.")
			return nil
		}

		fmt.Println(titleStyle.Render(fmt.Sprintf("Today (%d min available)", minutes)))
		for _, s := range slots {
			fmt.Printf("%02d:00  %-9s %s %s\n", s.Hour, s.Item.Action, s.Item.TopicName,
				subtleStyle.Render(fmt.Sprintf("(%d min)", s.Item.DurationMinutes)))
		}
		return nil
	},
}

func init() {
	todayCmd.Flags().IntP("minutes", "t", 0, "Minutes available right now (default: daily goal)")
}
