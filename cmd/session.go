package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vgn96186/Guru-sub000/internal/agenda"
	"github.com/vgn96186/Guru-sub000/internal/guru"
	"github.com/vgn96186/Guru-sub000/internal/llm"
	"github.com/vgn96186/Guru-sub000/internal/scoring"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Plan and start a study session",
	RunE: func(cmd *cobra.Command, args []string) error {
		mood, _ := cmd.Flags().GetString("mood")
		minutes, _ := cmd.Flags().GetInt("minutes")

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
		if minutes <= 0 {
			minutes = profile.PreferredSessionMinutes
		}

		recentIDs, err := st.Sessions().RecentTopicIDs(ctx, 3)
		if err != nil {
			return err
		}
		recentNames, err := st.Progress().RecentlyStudiedNames(ctx, 5)
		if err != nil {
			return err
		}

		// AI planning is optional: without a configured provider the
		// builder selects by score alone.
		var planner guru.Planner
		if cfg, ok := llm.DiscoverConfig(); ok {
			provider, err := llm.NewProvider(ctx, cfg, st.LLMLog())
			if err != nil {
				fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			} else {
				planner = guru.NewService(provider, guru.DefaultConfig())
			}
		}

		a, err := agenda.NewBuilder(planner).Build(ctx, agenda.BuildInput{
			Topics:                topics,
			Mood:                  scoring.Mood(mood),
			PreferredMinutes:      minutes,
			DaysInactive:          profile.DaysInactive(now),
			RecentTopicNames:      recentNames,
			RecentSessionTopicIDs: recentIDs,
			Now:                   now,
		})
		if err != nil {
			return err
		}

		planned := make([]string, len(a.Items))
		for i, item := range a.Items {
			planned[i] = item.Topic.ID
		}
		sessionID, err := st.Sessions().Create(ctx, mood, string(a.Mode), planned, now)
		if err != nil {
			return err
		}

		profile.LastActiveAt = &now
		if err := st.Profile().Update(ctx, profile); err != nil {
			return err
		}

		fmt.Println(renderAgenda(a))
		fmt.Printf("Session %s started. Record outcomes with 'guru review', then 'guru finish %s'.\n", sessionID, sessionID)
		return nil
	},
}

func init() {
	sessionCmd.Flags().StringP("mood", "m", "focused", "Current mood: focused, tired, stressed, distracted, energetic")
	sessionCmd.Flags().IntP("minutes", "t", 0, "Session length in minutes (default: profile preference)")
}
