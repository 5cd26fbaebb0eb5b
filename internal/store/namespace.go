package store

import (
	"context"
	"fmt"
	"strings"
)

// Separator joins a namespace and a key name.
const Separator = "::"

// Namespaced scopes a KV to keys of the form "{namespace}::{name}".
type Namespaced struct {
	kv     KV
	prefix string
}

// Namespace returns kv scoped to ns.
func Namespace(kv KV, ns string) *Namespaced {
	return &Namespaced{kv: kv, prefix: ns + Separator}
}

// Key returns the full key for name.
func (n *Namespaced) Key(name string) string { return n.prefix + name }

func (n *Namespaced) Get(ctx context.Context, name string) (string, bool, error) {
	return n.kv.Get(ctx, n.Key(name))
}

func (n *Namespaced) Set(ctx context.Context, name, value string) error {
	return n.kv.Set(ctx, n.Key(name), value)
}

func (n *Namespaced) Remove(ctx context.Context, name string) error {
	return n.kv.Remove(ctx, n.Key(name))
}

// Keys lists names (without the namespace) that start with prefix.
func (n *Namespaced) Keys(ctx context.Context, prefix string) ([]string, error) {
	full, err := n.kv.Keys(ctx, n.prefix+prefix)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(full))
	for i, k := range full {
		out[i] = strings.TrimPrefix(k, n.prefix)
	}
	return out, nil
}

// Clear removes every key in the namespace.
func (n *Namespaced) Clear(ctx context.Context) error {
	keys, err := n.kv.Keys(ctx, n.prefix)
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := n.kv.Remove(ctx, k); err != nil {
			return fmt.Errorf("clear %s: %w", n.prefix, err)
		}
	}
	return nil
}
