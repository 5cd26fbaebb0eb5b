package participant

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/abhisek/sightwords/internal/rewards"
	"github.com/abhisek/sightwords/internal/session"
	"github.com/abhisek/sightwords/internal/store"
	"github.com/abhisek/sightwords/internal/survey"
	"github.com/abhisek/sightwords/internal/words"
)

// Storage keys within a participant namespace.
const (
	KeySessions     = "sightWordsSessions"
	KeyBaseline     = "baselineSessions"
	KeyTargetWords  = "targetWords"
	KeySurveys      = "socialValiditySurveys"
	KeyConfig       = "participantConfig"
	KeyTotalScore   = "totalScore"
	KeyCelebrations = "celebrations"
	KeyBaselineFlag = "baselineEstablished"
)

// Repo loads and saves one participant's data. Malformed stored values are
// logged and replaced with empty defaults; only storage failures are
// returned as errors.
type Repo struct {
	id  string
	kv  *store.Namespaced
	log *zap.Logger
}

// NewRepo returns the repository for participant id.
func NewRepo(kv store.KV, id string, log *zap.Logger) *Repo {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repo{
		id:  id,
		kv:  store.Namespace(kv, id),
		log: log.With(zap.String("participant", id)),
	}
}

// ID returns the participant identifier.
func (r *Repo) ID() string { return r.id }

func (r *Repo) get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("load %s: %w", key, err)
	}
	return v, ok && v != "", nil
}

func (r *Repo) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := r.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// LoadConfig returns the saved configuration, or DefaultConfig with false
// when none is saved or the saved value is unusable.
func (r *Repo) LoadConfig(ctx context.Context) (Config, bool, error) {
	raw, ok, err := r.get(ctx, KeyConfig)
	if err != nil || !ok {
		return DefaultConfig(), false, err
	}
	var cfg Config
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		r.log.Warn("discarding malformed config", zap.Error(err))
		return DefaultConfig(), false, nil
	}
	if err := cfg.Validate(); err != nil {
		r.log.Warn("discarding invalid config", zap.Error(err))
		return DefaultConfig(), false, nil
	}
	return cfg, true, nil
}

// SaveConfig validates and stores cfg.
func (r *Repo) SaveConfig(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return r.setJSON(ctx, KeyConfig, cfg)
}

func (r *Repo) loadRecords(ctx context.Context, key string, phase session.Phase) ([]session.Record, error) {
	raw, ok, err := r.get(ctx, key)
	if err != nil || !ok {
		return nil, err
	}
	records, rejected, err := decodeValid[session.Record](schemaSession, []byte(raw))
	if err != nil {
		r.log.Warn("discarding malformed history", zap.String("key", key), zap.Error(err))
		return nil, nil
	}
	for i, e := range rejected {
		r.log.Warn("dropping invalid session record", zap.String("key", key), zap.Int("index", i), zap.Error(e))
	}
	normalizePhase(records, phase)
	return records, nil
}

// LoadSessions returns the intervention history of every level. Histories
// saved with grade numbers as levels are migrated and written back.
func (r *Repo) LoadSessions(ctx context.Context) ([]session.Record, error) {
	records, err := r.loadRecords(ctx, KeySessions, session.PhaseIntervention)
	if err != nil || len(records) == 0 {
		return records, err
	}

	cfg, _, err := r.LoadConfig(ctx)
	if err != nil {
		return nil, err
	}
	migrated, changed := MigrateLevels(records, cfg)
	if changed {
		r.log.Info("migrated legacy level numbering", zap.Int("records", len(migrated)))
		if err := r.SaveSessions(ctx, migrated); err != nil {
			return nil, err
		}
	}
	return migrated, nil
}

// SaveSessions replaces the intervention history.
func (r *Repo) SaveSessions(ctx context.Context, records []session.Record) error {
	return r.setJSON(ctx, KeySessions, nonNil(records))
}

// LoadBaseline returns the baseline history.
func (r *Repo) LoadBaseline(ctx context.Context) ([]session.Record, error) {
	return r.loadRecords(ctx, KeyBaseline, session.PhaseBaseline)
}

// SaveBaseline replaces the baseline history.
func (r *Repo) SaveBaseline(ctx context.Context, records []session.Record) error {
	return r.setJSON(ctx, KeyBaseline, nonNil(records))
}

// LoadTargets returns the saved target words.
func (r *Repo) LoadTargets(ctx context.Context) ([]string, error) {
	raw, ok, err := r.get(ctx, KeyTargetWords)
	if err != nil || !ok {
		return nil, err
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		r.log.Warn("discarding malformed target words", zap.Error(err))
		return nil, nil
	}
	return list, nil
}

// SaveTargets normalizes and stores a complete target list.
func (r *Repo) SaveTargets(ctx context.Context, list []string) error {
	parsed, err := words.Parse(list)
	if err != nil {
		return err
	}
	if err := words.ValidateForSave(parsed); err != nil {
		return err
	}
	return r.setJSON(ctx, KeyTargetWords, parsed)
}

// LoadTotalScore returns the running points total.
func (r *Repo) LoadTotalScore(ctx context.Context) (int, error) {
	raw, ok, err := r.get(ctx, KeyTotalScore)
	if err != nil || !ok {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		r.log.Warn("discarding malformed total score", zap.String("value", raw))
		return 0, nil
	}
	return n, nil
}

// SaveTotalScore stores the running points total.
func (r *Repo) SaveTotalScore(ctx context.Context, total int) error {
	if err := r.kv.Set(ctx, KeyTotalScore, strconv.Itoa(total)); err != nil {
		return fmt.Errorf("save %s: %w", KeyTotalScore, err)
	}
	return nil
}

// LoadSurveys returns the saved survey responses.
func (r *Repo) LoadSurveys(ctx context.Context) ([]survey.Response, error) {
	raw, ok, err := r.get(ctx, KeySurveys)
	if err != nil || !ok {
		return nil, err
	}
	list, rejected, err := decodeValid[survey.Response](schemaSurvey, []byte(raw))
	if err != nil {
		r.log.Warn("discarding malformed surveys", zap.Error(err))
		return nil, nil
	}
	for i, e := range rejected {
		r.log.Warn("dropping invalid survey", zap.Int("index", i), zap.Error(e))
	}
	return list, nil
}

// AddSurvey validates resp and appends it to the saved list.
func (r *Repo) AddSurvey(ctx context.Context, resp survey.Response) error {
	if err := resp.Validate(); err != nil {
		return err
	}
	list, err := r.LoadSurveys(ctx)
	if err != nil {
		return err
	}
	return r.setJSON(ctx, KeySurveys, append(list, resp))
}

// LoadCelebrations returns which milestones have been shown.
func (r *Repo) LoadCelebrations(ctx context.Context) (rewards.Celebrations, error) {
	var c rewards.Celebrations
	raw, ok, err := r.get(ctx, KeyCelebrations)
	if err != nil || !ok {
		return c, err
	}
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		r.log.Warn("discarding malformed celebrations", zap.Error(err))
		return rewards.Celebrations{}, nil
	}
	return c, nil
}

// SaveCelebrations stores which milestones have been shown.
func (r *Repo) SaveCelebrations(ctx context.Context, c rewards.Celebrations) error {
	return r.setJSON(ctx, KeyCelebrations, c)
}

// BaselineFlag returns the persisted baseline-established flag.
func (r *Repo) BaselineFlag(ctx context.Context) (bool, error) {
	raw, ok, err := r.get(ctx, KeyBaselineFlag)
	if err != nil || !ok {
		return false, err
	}
	return raw == "true", nil
}

// SetBaselineFlag persists the baseline-established flag.
func (r *Repo) SetBaselineFlag(ctx context.Context, v bool) error {
	if err := r.kv.Set(ctx, KeyBaselineFlag, strconv.FormatBool(v)); err != nil {
		return fmt.Errorf("save %s: %w", KeyBaselineFlag, err)
	}
	return nil
}

// Clear deletes everything stored for the participant.
func (r *Repo) Clear(ctx context.Context) error {
	return r.kv.Clear(ctx)
}

func nonNil(records []session.Record) []session.Record {
	if records == nil {
		return []session.Record{}
	}
	return records
}
