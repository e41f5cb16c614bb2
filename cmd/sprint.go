package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vgn96186/Guru-sub000/internal/agenda"
)

var sprintCmd = &cobra.Command{
	Use:   "sprint",
	Short: "Start a timed previous-year-question drill",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()

		topics, err := st.Topics().ListWithProgress(ctx)
		if err != nil {
			return err
		}

		a, err := agenda.BuildPYQSprint(topics)
		if err != nil {
			return err
		}

		planned := make([]string, len(a.Items))
		for i, item := range a.Items {
			planned[i] = item.Topic.ID
		}
		sessionID, err := st.Sessions().Create(ctx, "", string(a.Mode), planned, time.Now())
		if err != nil {
			return err
		}

		fmt.Println(renderAgenda(a))
		fmt.Printf("Sprint %s started.\n", sessionID)
		return nil
	},
}
