package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mpetrov/caliber/internal/api"
	"github.com/mpetrov/caliber/internal/config"
	"github.com/mpetrov/caliber/internal/engine"
	"github.com/mpetrov/caliber/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides config)")
}

// runServe loads the latest snapshot, serves the API, and saves a
// snapshot on shutdown and on the autosave interval.
func runServe(cmd *cobra.Command) error {
	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	eng := engine.New(cfg.Engine, log)

	snapRepo := st.SnapshotRepo()
	snap, err := snapRepo.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if snap != nil {
		eng.Restore(snap.Data)
		log.Info("restored snapshot",
			zap.Int64("sequence", snap.Sequence),
			zap.Time("taken", snap.Timestamp))
	} else {
		log.Info("no snapshot found, starting empty")
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: api.NewServer(eng, st.EventRepo(), log).Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stopAutosave := make(chan struct{})
	if cfg.Snapshots.AutosaveMinutes > 0 {
		go func() {
			ticker := time.NewTicker(time.Duration(cfg.Snapshots.AutosaveMinutes) * time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					saveSnapshot(context.Background(), eng, snapRepo, cfg.Snapshots.Keep, log)
				case <-stopAutosave:
					return
				}
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		close(stopAutosave)
		return fmt.Errorf("serve: %w", err)
	case sig := <-sigCh:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}
	close(stopAutosave)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}

	saveSnapshot(context.Background(), eng, snapRepo, cfg.Snapshots.Keep, log)
	return nil
}

// saveSnapshot persists the engine state and prunes old snapshots.
// Failures are logged: losing one snapshot must not take the service
// down.
func saveSnapshot(ctx context.Context, eng *engine.Engine, repo store.SnapshotRepo, keep int, log *zap.Logger) {
	data := eng.Snapshot()
	err := repo.Save(ctx, &store.Snapshot{
		Sequence:  data.TotalAttempts,
		Timestamp: data.SavedAt,
		Data:      data,
	})
	if err != nil {
		log.Error("save snapshot", zap.Error(err))
		return
	}
	if err := repo.Prune(ctx, keep); err != nil {
		log.Warn("prune snapshots", zap.Error(err))
	}
	log.Info("snapshot saved", zap.Int64("sequence", data.TotalAttempts))
}
