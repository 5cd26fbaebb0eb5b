package participant

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/abhisek/sightwords/internal/store"
)

const (
	registryKey = "allParticipants"
	currentKey  = "currentParticipant"
)

// Registry tracks the known participants. It lives outside any participant
// namespace.
type Registry struct {
	kv  store.KV
	log *zap.Logger
}

// NewRegistry returns a registry over kv.
func NewRegistry(kv store.KV, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{kv: kv, log: log}
}

// List returns the registered participant IDs in insertion order.
func (r *Registry) List(ctx context.Context) ([]string, error) {
	raw, ok, err := r.kv.Get(ctx, registryKey)
	if err != nil {
		return nil, fmt.Errorf("load participants: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		r.log.Warn("discarding malformed participant list", zap.Error(err))
		return nil, nil
	}
	return ids, nil
}

// Add registers id. Adding a known participant is a no-op.
func (r *Registry) Add(ctx context.Context, id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	ids, err := r.List(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(ids, id) {
		return nil
	}
	return r.save(ctx, append(ids, id))
}

// Remove unregisters id and clears the current selection if it was id.
func (r *Registry) Remove(ctx context.Context, id string) error {
	ids, err := r.List(ctx)
	if err != nil {
		return err
	}
	ids = slices.DeleteFunc(ids, func(s string) bool { return s == id })
	if err := r.save(ctx, ids); err != nil {
		return err
	}
	cur, err := r.Current(ctx)
	if err != nil {
		return err
	}
	if cur == id {
		return r.kv.Remove(ctx, currentKey)
	}
	return nil
}

// Current returns the last selected participant, or "".
func (r *Registry) Current(ctx context.Context) (string, error) {
	v, _, err := r.kv.Get(ctx, currentKey)
	if err != nil {
		return "", fmt.Errorf("load current participant: %w", err)
	}
	return v, nil
}

// Use registers id and makes it the current participant.
func (r *Registry) Use(ctx context.Context, id string) error {
	if err := r.Add(ctx, id); err != nil {
		return err
	}
	if err := r.kv.Set(ctx, currentKey, id); err != nil {
		return fmt.Errorf("save current participant: %w", err)
	}
	return nil
}

func (r *Registry) save(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	if err := r.kv.Set(ctx, registryKey, string(data)); err != nil {
		return fmt.Errorf("save participants: %w", err)
	}
	return nil
}
