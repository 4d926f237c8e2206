package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"socialboot/pkg/platform/sentinel"
)

// LoadJSON reads key and decodes it into dst.
// Returns (false, nil) when the key is absent and an error wrapping
// sentinel.ErrCorrupt when the stored value does not decode.
func LoadJSON(ctx context.Context, store Store, key string, dst any) (bool, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("decode %s: %w: %v", key, sentinel.ErrCorrupt, err)
	}
	return true, nil
}

// SaveJSON encodes v and writes it under key.
func SaveJSON(ctx context.Context, store Store, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(payload)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
