package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/config"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show session and scoring statistics",
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

		counts, err := s.SessionRepo().CountByStatus(ctx)
		if err != nil {
			return fmt.Errorf("count sessions: %w", err)
		}

		fmt.Println("Sessions")
		fmt.Println(strings.Repeat("─", 32))
		total := 0
		for _, status := range []string{store.StatusInProgress, store.StatusCompleted, store.StatusExpired} {
			fmt.Printf("%-14s  %6d\n", status, counts[status])
			total += counts[status]
		}
		fmt.Println(strings.Repeat("─", 32))
		fmt.Printf("%-14s  %6d\n", "total", total)

		recent, err := s.SessionRepo().List(ctx, store.SessionQuery{
			Status: store.StatusCompleted,
			Limit:  10,
		})
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(recent) > 0 {
			fmt.Println()
			fmt.Println("Recent completed sessions")
			fmt.Println(strings.Repeat("─", 72))
			fmt.Printf("%-24s  %-19s  %7s\n", "Candidate", "Completed", "Overall")
			fmt.Println(strings.Repeat("─", 72))
			for _, sess := range recent {
				completed := ""
				if sess.CompletedAt != nil {
					completed = sess.CompletedAt.Local().Format("2006-01-02 15:04:05")
				}
				overall := "-"
				if sess.OverallBand != nil {
					overall = fmt.Sprintf("%.1f", *sess.OverallBand)
				}
				fmt.Printf("%-24s  %-19s  %7s\n", truncate(sess.CandidateName, 24), completed, overall)
			}
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
