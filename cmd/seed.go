package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/schema"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/config"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample test content into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd, cfg.DB.Path)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		content := s.ContentRepo()

		lt, err := content.CreateListeningTest(ctx, sampleListeningTest())
		if err != nil {
			return fmt.Errorf("seed listening test: %w", err)
		}
		rt, err := content.CreateReadingTest(ctx, sampleReadingTest())
		if err != nil {
			return fmt.Errorf("seed reading test: %w", err)
		}
		for _, t := range sampleWritingTasks() {
			if _, err := content.CreateWritingTask(ctx, t); err != nil {
				return fmt.Errorf("seed writing task %d: %w", t.TaskNumber, err)
			}
		}
		for _, p := range sampleSpeakingParts() {
			if _, err := content.CreateSpeakingPart(ctx, p); err != nil {
				return fmt.Errorf("seed speaking part %d: %w", p.PartNumber, err)
			}
		}

		fmt.Printf("Seeded listening test %d, reading test %d, 2 writing tasks, 3 speaking parts.\n", lt.ID, rt.ID)
		fmt.Println("Upload listening audio via the admin API and attach it to the test.")
		return nil
	},
}

func sampleListeningTest() store.ListeningTest {
	return store.ListeningTest{
		Title:       "Accommodation and campus life",
		Description: "Four-part listening sample",
		Active:      true,
		Sections: []schema.ListeningSection{
			{
				Title:        "Section 1",
				Instructions: "Complete the notes. Write NO MORE THAN TWO WORDS for each answer.",
				Questions: []schema.Question{
					{ID: "lq1", Number: 1, Type: "fill_blank", Prompt: "The student is looking for a ___ room.", CorrectAnswer: "single"},
					{ID: "lq2", Number: 2, Type: "fill_blank", Prompt: "Weekly rent includes ___ bills.", CorrectAnswer: "utility"},
					{ID: "lq3", Number: 3, Type: "fill_blank", Prompt: "The deposit is ___ pounds.", CorrectAnswer: "200"},
				},
			},
			{
				Title:        "Section 2",
				Instructions: "Choose the correct letter, A, B or C.",
				Questions: []schema.Question{
					{ID: "lq4", Number: 4, Type: "multiple_choice", Prompt: "The library tour starts at", Options: []string{"A. 9.00", "B. 9.30", "C. 10.00"}, CorrectAnswer: "B"},
					{ID: "lq5", Number: 5, Type: "multiple_choice", Prompt: "New members must bring", Options: []string{"A. a photo", "B. a letter", "C. an ID card"}, CorrectAnswer: "C"},
				},
			},
		},
	}
}

func sampleReadingTest() store.ReadingTest {
	return store.ReadingTest{
		Title:       "Academic Reading sample",
		Description: "One passage sample",
		Active:      true,
		Passages: []schema.ReadingPassage{
			{
				Title: "The rise of urban beekeeping",
				Body: "City rooftops have become unlikely sanctuaries for honey bees. " +
					"Urban hives often outproduce their rural counterparts, a result " +
					"researchers attribute to the variety of flowering plants in parks " +
					"and gardens and to lighter pesticide use within city limits.",
				Questions: []schema.Question{
					{ID: "rq1", Number: 1, Type: "true_false_notgiven", Prompt: "Urban hives can produce more honey than rural ones.", CorrectAnswer: "TRUE"},
					{ID: "rq2", Number: 2, Type: "true_false_notgiven", Prompt: "Pesticide use is heavier in cities.", CorrectAnswer: "FALSE"},
					{ID: "rq3", Number: 3, Type: "true_false_notgiven", Prompt: "Most beekeepers live in cities.", CorrectAnswer: "NOT GIVEN"},
				},
			},
		},
	}
}

func sampleWritingTasks() []store.WritingTask {
	return []store.WritingTask{
		{
			TaskNumber: 1,
			Prompt: "The chart below shows household recycling rates in three countries " +
				"between 2005 and 2025. Summarise the information by selecting and " +
				"reporting the main features, and make comparisons where relevant.",
			MinWords: 150,
			Active:   true,
		},
		{
			TaskNumber: 2,
			Prompt: "Some people believe that unpaid community service should be a " +
				"compulsory part of high school programmes. To what extent do you " +
				"agree or disagree?",
			MinWords: 250,
			Active:   true,
		},
	}
}

func sampleSpeakingParts() []store.SpeakingPart {
	return []store.SpeakingPart{
		{
			PartNumber:   1,
			Topic:        "Home and hometown",
			Questions:    []string{"Where is your hometown?", "What do you like about living there?", "Has it changed much in recent years?"},
			SpeakSeconds: 240,
			Active:       true,
		},
		{
			PartNumber:   2,
			Topic:        "Describe a skill you would like to learn.",
			Questions:    []string{"What the skill is", "Why you want to learn it", "How you would learn it"},
			PrepSeconds:  60,
			SpeakSeconds: 120,
			Active:       true,
		},
		{
			PartNumber:   3,
			Topic:        "Learning and education",
			Questions:    []string{"Is it easier to learn new skills today than in the past?", "Should governments fund adult education?"},
			SpeakSeconds: 300,
			Active:       true,
		},
	}
}
