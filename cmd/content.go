package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vgn96186/Guru-sub000/internal/guru"
	"github.com/vgn96186/Guru-sub000/internal/llm"
	"github.com/vgn96186/Guru-sub000/internal/store"
)

var contentCmd = &cobra.Command{
	Use:   "content <topic-id> <kind>",
	Short: "Generate study material for a topic",
	Long: `Generate study material for one topic in a given format.

Kinds: notes, quiz, flashcards, mnemonics, error_hunt, detective, teach_back.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		topicID, kind := args[0], args[1]

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()

		topic, err := st.Topics().Get(ctx, topicID)
		if err != nil {
			return fmt.Errorf("topic %q: %w", topicID, err)
		}

		confidence := 0
		if p, err := st.Progress().Get(ctx, topicID); err == nil {
			confidence = p.Confidence
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		cfg, ok := llm.DiscoverConfig()
		if !ok {
			return errors.New("no LLM API key configured, set GEMINI_API_KEY, OPENAI_API_KEY or ANTHROPIC_API_KEY")
		}
		provider, err := llm.NewProvider(ctx, cfg, st.LLMLog())
		if err != nil {
			return fmt.Errorf("create provider: %w", err)
		}

		content, err := guru.NewGenerator(provider, guru.DefaultConfig()).Generate(ctx, guru.ContentRequest{
			TopicID:    topic.ID,
			TopicName:  topic.Name,
			Subject:    topic.Subject,
			Kind:       kind,
			Confidence: confidence,
		})
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render(content.Title))
		fmt.Println()
		fmt.Println(content.Body)
		return nil
	},
}
