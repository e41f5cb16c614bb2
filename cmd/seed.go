package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vgn96186/Guru-sub000/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed <topics.json>",
	Short: "Load or update the topic catalog from a JSON file",
	Long: `Load topics from a JSON array. Existing review progress is kept.

Each entry: {"id", "subject", "name", "parent_id", "estimated_minutes", "priority"}
with priority in [1,10].`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		var topics []store.Topic
		if err := json.Unmarshal(data, &topics); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}
		if len(topics) == 0 {
			return fmt.Errorf("%s contains no topics", args[0])
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.Topics().Seed(cmd.Context(), topics); err != nil {
			return err
		}

		fmt.Printf("Seeded %d topics.\n", len(topics))
		return nil
	},
}
