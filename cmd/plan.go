package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vgn96186/Guru-sub000/internal/studyplan"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Project the study backlog day by day until the exam",
	RunE: func(cmd *cobra.Command, args []string) error {
		examFlag, _ := cmd.Flags().GetString("exam")
		full, _ := cmd.Flags().GetBool("full")

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

		examDate := profile.ExamDate
		if examFlag != "" {
			d, err := time.Parse("2006-01-02", examFlag)
			if err != nil {
				return fmt.Errorf("invalid exam date %q (want YYYY-MM-DD): %w", examFlag, err)
			}
			examDate = &d
			profile.ExamDate = &d
			if err := st.Profile().Update(ctx, profile); err != nil {
				return err
			}
		}
		if examDate == nil {
			return fmt.Errorf("no exam date set; pass --exam YYYY-MM-DD")
		}

		topics, err := st.Topics().ListWithProgress(ctx)
		if err != nil {
			return err
		}

		plan := studyplan.Simulate(studyplan.SimInput{
			Topics:           topics,
			DailyGoalMinutes: profile.DailyGoalMinutes,
			ExamDate:         *examDate,
			Now:              now,
			SubjectWeights:   studyplan.SubjectWeights(topics),
		})

		fmt.Println(renderPlanSummary(plan))
		days := plan.Days
		if !full && len(days) > 7 {
			days = days[:7]
		}
		for _, d := range days {
			fmt.Println(renderDay(d))
		}
		if !full && len(plan.Days) > 7 {
			fmt.Println("(pass --full for the whole projection)")
		}
		return nil
	},
}

func init() {
	planCmd.Flags().String("exam", "", "Exam date (YYYY-MM-DD); saved to the profile")
	planCmd.Flags().Bool("full", false, "Show every simulated day, not just the first week")
}
