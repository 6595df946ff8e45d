package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/audio"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/config"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/evaluation"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/httpapi"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/llm"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/session"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/store"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/sweeper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the test platform HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		// A local .env is a convenience for development; absence is fine.
		_ = godotenv.Load()

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

		files, err := audio.NewStore(cfg.Audio.Dir)
		if err != nil {
			return err
		}

		ctx := cmd.Context()

		var provider llm.Provider
		provider, err = llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			// The test flow still works without an evaluator; writing and
			// speaking evaluation calls will report unavailable.
			log.Printf("LLM provider disabled: %v", err)
			provider = nil
		}

		sessions := session.NewService(s.SessionRepo(), s.AnswerRepo(), s.ContentRepo(), s.EvaluationRepo())
		evaluator := evaluation.NewService(provider, s.EvaluationRepo(), evaluation.DefaultConfig())

		sw := sweeper.New(sessions, sweeper.Config{
			Interval: cfg.SweepInterval(),
			MaxIdle:  cfg.MaxIdle(),
		})
		if err := sw.Start(); err != nil {
			return fmt.Errorf("start sweeper: %w", err)
		}
		defer sw.Stop()

		if cfg.Server.AdminToken == "" {
			log.Println("admin token not set; admin API is disabled")
		}

		gin.SetMode(gin.ReleaseMode)
		api := httpapi.NewServer(httpapi.Options{
			AdminToken:  cfg.Server.AdminToken,
			LogRequests: true,
			Sessions:    sessions,
			Evaluator:   evaluator,
			Content:     s.ContentRepo(),
			AudioMeta:   s.AudioRepo(),
			AudioFiles:  files,
			SessionRepo: s.SessionRepo(),
			Events:      s.EventRepo(),
		})

		srv := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           api.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Printf("listening on %s (db %s)", cfg.Server.Addr, dbPath)
			errCh <- srv.ListenAndServe()
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		case sig := <-stop:
			log.Printf("received %s, shutting down", sig)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
		}
		return nil
	},
}
