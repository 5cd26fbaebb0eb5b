package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/sightwords/internal/config"
	"github.com/abhisek/sightwords/internal/metrics"
	"github.com/abhisek/sightwords/internal/participant"
	"github.com/abhisek/sightwords/internal/speech"
	"github.com/abhisek/sightwords/internal/store"
	"github.com/abhisek/sightwords/internal/words"
	"github.com/abhisek/sightwords/internal/workspace"
)

// runtime is the process state shared by every command.
type runtime struct {
	cfg      *config.Config
	log      *zap.Logger
	store    *store.Store
	registry *participant.Registry
	speaker  speech.Speaker
}

var rt *runtime

var errNoParticipant = errors.New("no participant selected; run `sightwords participant use <id>` or pass --participant")

// setup loads config, builds the logger and opens the store.
func setup(cmd *cobra.Command, args []string) error {
	if rt != nil || cmd.Name() == "version" {
		return nil
	}

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	logPath := cfg.LogFile
	if logPath == "" {
		logPath = filepath.Join(filepath.Dir(dbPath), "sightwords.log")
	}
	log, err := cfg.NewLogger(logPath)
	if err != nil {
		return err
	}

	st, err := store.Open(dbPath, store.WithLogger(log))
	if err != nil {
		_ = log.Sync()
		return fmt.Errorf("open store: %w", err)
	}
	log.Debug("store opened", zap.String("path", dbPath), zap.String("command", cmd.CommandPath()))

	rt = &runtime{
		cfg:      cfg,
		log:      log,
		store:    st,
		registry: participant.NewRegistry(st.KV(), log),
		speaker:  speech.NewCommand(cfg.SpeechCommand, log),
	}
	return nil
}

func teardown() {
	if rt == nil {
		return
	}
	if c, ok := rt.speaker.(io.Closer); ok {
		_ = c.Close()
	}
	if err := rt.store.Close(); err != nil {
		rt.log.Warn("close store", zap.Error(err))
	}
	_ = rt.log.Sync()
	rt = nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then config/SIGHTWORDS_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// participantID resolves the participant from --participant, the config
// file, then the registry's current selection.
func participantID(cmd *cobra.Command) (string, error) {
	if id, _ := cmd.Flags().GetString("participant"); id != "" {
		return id, nil
	}
	if rt.cfg.Participant != "" {
		return rt.cfg.Participant, nil
	}
	id, err := rt.registry.Current(cmd.Context())
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", errNoParticipant
	}
	return id, nil
}

// openWorkspace loads the selected participant and registers them.
func openWorkspace(cmd *cobra.Command) (*workspace.Workspace, error) {
	ctx := cmd.Context()
	id, err := participantID(cmd)
	if err != nil {
		return nil, err
	}
	if err := rt.registry.Add(ctx, id); err != nil {
		return nil, err
	}
	strategy, err := words.ParseStrategy(rt.cfg.Distractors)
	if err != nil {
		return nil, err
	}

	return workspace.Open(ctx, workspace.Options{
		KV:                  rt.store.KV(),
		Events:              rt.store.EventRepo(),
		Participant:         id,
		Logger:              rt.log,
		Speaker:             rt.speaker,
		Metrics:             metrics.NewManager(metrics.WithConstLabels(map[string]string{"participant": id})),
		MetricsTextfile:     rt.cfg.MetricsTextfile,
		Distractors:         strategy,
		FeedbackDelay:       rt.cfg.FeedbackDelay(),
		TimeoutAdvanceDelay: rt.cfg.TimeoutAdvanceDelay(),
		ProbeAdvanceDelay:   rt.cfg.BaselineAdvanceDelay(),
	})
}
