package guru

import (
	"fmt"
	"strings"
)

const planSystemPrompt = `You are Guru, a calm and encouraging study mentor for Indian medical PG entrance exam aspirants (NEET-PG/INI-CET). You plan short, focused study sessions from a ranked list of topics.`

func buildPlanUserMessage(req PlanRequest) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Session length: %d minutes\n", req.DurationMinutes))
	b.WriteString(fmt.Sprintf("Student mood: %s\n", req.Mood))

	b.WriteString("\nCandidate topics (best first):\n")
	for _, c := range req.Candidates {
		b.WriteString(fmt.Sprintf("- id=%s | %s (%s) | score=%.1f | status=%s | confidence=%d",
			c.ID, c.Name, c.Subject, c.Score, c.Status, c.Confidence))
		if c.Nemesis {
			b.WriteString(fmt.Sprintf(" | NEMESIS, wrong %d times", c.WrongCount))
		}
		b.WriteString("\n")
	}

	if len(req.RecentTopicNames) > 0 {
		b.WriteString("\nRecently studied (avoid unless due for review):\n")
		for _, name := range req.RecentTopicNames {
			b.WriteString(fmt.Sprintf("- %s\n", name))
		}
	}

	b.WriteString(`
Instructions:
1. Pick 1-3 topics that fit the session length. Use only IDs from the candidate list.
2. Prefer higher-scored topics, but respect the mood: a tired or stressed student gets familiar material, an energetic one can take on something new.
3. Nemesis topics deserve attention when present.
4. Write a one-sentence focus note for the session.
5. Write a short, warm message from Guru. No lecturing.`)

	return b.String()
}

const contentSystemPrompt = `You are Guru, a study mentor for Indian medical PG entrance exam aspirants. You produce concise, high-yield study material for a single topic, in the exact format requested.`

var contentInstructions = map[string]string{
	"notes":      "Write high-yield revision notes: 5-8 bullet points covering the facts most likely to be tested.",
	"quiz":       "Write 3 single-best-answer MCQs in NEET-PG style with four options each. Give the answer and a one-line explanation after each question.",
	"flashcards": "Write 5 flashcards as 'Q:' and 'A:' pairs. Each answer is one line.",
	"mnemonics":  "Invent 1-2 memorable mnemonics for the hardest-to-remember facts in this topic, and expand each letter.",
	"error_hunt": "Write a short clinical vignette or factual paragraph containing exactly 3 deliberate errors. After it, list the errors with corrections.",
	"detective":  "Write a clinical case unfolding in 3 steps. After each step, pose the question the student should ask themselves. End with the diagnosis and reasoning.",
	"teach_back": "Write 3 prompts asking the student to explain key aspects of this topic out loud, as if teaching a junior. After each prompt, give the model answer in 2-3 lines.",
}

func buildContentUserMessage(req ContentRequest) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", req.TopicName))
	b.WriteString(fmt.Sprintf("Subject: %s\n", req.Subject))
	b.WriteString(fmt.Sprintf("Student confidence: %d/5\n", req.Confidence))

	instr, ok := contentInstructions[req.Kind]
	if !ok {
		instr = "Write a concise study summary of this topic."
	}
	b.WriteString("\nInstructions:\n")
	b.WriteString(instr)
	b.WriteString("\nKeep everything exam-focused. Plain text only.")

	return b.String()
}
