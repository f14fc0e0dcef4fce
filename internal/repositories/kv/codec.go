package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// GetJSON decodes the JSON value stored under key into dst.
// It reports false, with dst untouched, when the key is absent.
func GetJSON(ctx context.Context, store Store, key string, dst any) (bool, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}

	return true, nil
}

// SetJSON encodes v as JSON and stores it under key
func SetJSON(ctx context.Context, store Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	return store.Set(ctx, key, string(data))
}
