package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vgn96186/Guru-sub000/internal/scheduler"
)

var reviewCmd = &cobra.Command{
	Use:   "review <topic-id>",
	Short: "Record a review outcome for a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		confidence, _ := cmd.Flags().GetInt("confidence")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()

		topic, err := st.Topics().Get(ctx, args[0])
		if err != nil {
			return err
		}

		result, err := scheduler.NewService(st.Progress()).RecordReview(ctx, topic.ID, confidence, time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("%s: %s, confidence %d/5, +%d XP\n", topic.Name, result.Status, result.Confidence, result.XPAwarded)
		fmt.Printf("Next review: %s (memory model due %s)\n",
			result.NextReviewDate.Format("Mon Jan 2"),
			result.Card.Due.Format("Mon Jan 2"))
		return nil
	},
}

func init() {
	reviewCmd.Flags().IntP("confidence", "c", 3, "Recall confidence 0-5 (0 = blank, 5 = perfect)")
}
