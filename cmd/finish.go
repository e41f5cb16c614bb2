package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/vgn96186/Guru-sub000/internal/xp"
)

var finishCmd = &cobra.Command{
	Use:   "finish <session-id> [topic-id...]",
	Short: "Finish a session, recording completed topics and XP",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		now := time.Now()
		sessionID, completed := args[0], args[1:]

		calc := xp.NewCalculator(rand.NewPCG(uint64(now.UnixNano()), 0))
		total, doubled := calc.SessionXP(len(completed) * xp.BaseReviewXP)

		if err := st.Sessions().Finish(ctx, sessionID, completed, total, now); err != nil {
			return err
		}

		profile, err := st.Profile().Get(ctx)
		if err != nil {
			return err
		}
		continued := profile.LastActiveAt != nil && now.Sub(*profile.LastActiveAt) < 48*time.Hour
		profile.StreakDays = xp.NextStreak(profile.StreakDays, continued)
		profile.LastActiveAt = &now
		if err := st.Profile().Update(ctx, profile); err != nil {
			return err
		}

		if doubled {
			fmt.Printf("Surprise double reward! +%d XP\n", total)
		} else {
			fmt.Printf("+%d XP\n", total)
		}
		fmt.Printf("%d topics completed. Streak: %d days.\n", len(completed), profile.StreakDays)
		return nil
	},
}
