package pageconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bio-link/internal/logger"
	"github.com/MKhiriev/go-bio-link/models"
)

// MergeRaw decodes a persisted partial configuration document and completes
// it against the default template.
//
// A nil or empty document yields the default template unchanged (the new
// profile case). A document that cannot be decoded as a JSON object is
// treated the same way: the anomaly is logged and the page falls back to
// defaults instead of failing the read.
func MergeRaw(ctx context.Context, raw json.RawMessage) (models.PageConfig, error) {
	if len(raw) == 0 {
		return Default(), nil
	}

	var override map[string]any
	if err := json.Unmarshal(raw, &override); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("stored page config is not a JSON object, serving defaults")
		return Default(), nil
	}

	return Merge(ctx, override)
}

// Merge combines a partial configuration document with the default template
// and returns the typed result.
//
// Merge rules, applied recursively:
//   - a key present in both sides where both values are JSON objects is
//     merged key by key;
//   - for any other key present in the override, the override value wins
//     outright — arrays and primitives are replaced, never concatenated;
//   - keys present only in the template keep their default value;
//   - unknown top-level keys from the override are preserved in the result's
//     Extra bag and re-emitted on serialization.
//
// Neither input is modified; a new structure is returned.
func Merge(ctx context.Context, override map[string]any) (models.PageConfig, error) {
	if len(override) == 0 {
		return Default(), nil
	}

	base, err := defaultDocument()
	if err != nil {
		return models.PageConfig{}, err
	}

	merged := mergeDocuments(ctx, base, override)

	cfg, err := decodeDocument(ctx, merged)
	if err != nil {
		return models.PageConfig{}, err
	}

	cfg.Extra, err = collectExtraKeys(base, merged)
	if err != nil {
		return models.PageConfig{}, err
	}

	return cfg, nil
}

// MergePartial merges an incoming partial document onto a stored partial
// document, without completing either side against the default template.
// Dashboard saves go through here: the stored document stays partial so
// that later changes to the default template still flow through to the
// rendered page.
//
// A malformed stored document is logged and treated as empty; a malformed
// incoming document rejects the save.
func MergePartial(ctx context.Context, stored, incoming json.RawMessage) (json.RawMessage, error) {
	base := map[string]any{}
	if len(stored) > 0 {
		if err := json.Unmarshal(stored, &base); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Msg("stored page config is not a JSON object, replacing it")
			base = map[string]any{}
		}
	}

	var override map[string]any
	if err := json.Unmarshal(incoming, &override); err != nil {
		return nil, fmt.Errorf("error decoding incoming config document: %w", err)
	}

	merged := mergeDocuments(ctx, base, override)

	buf, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("error serializing merged config: %w", err)
	}

	return buf, nil
}

// mergeDocuments merges override onto base without mutating either map.
// Values taken from either side are shared, not copied; only the object
// spine along merged paths is freshly allocated.
func mergeDocuments(ctx context.Context, base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(override))
	for key, value := range base {
		out[key] = value
	}

	for key, overrideValue := range override {
		baseValue, inBase := out[key]

		baseObject, baseIsObject := baseValue.(map[string]any)
		overrideObject, overrideIsObject := overrideValue.(map[string]any)

		if inBase && baseIsObject && overrideIsObject {
			out[key] = mergeDocuments(ctx, baseObject, overrideObject)
			continue
		}

		if inBase && baseIsObject && !overrideIsObject {
			// Legacy schema: a scalar was stored where the current template
			// keeps an object. The stored value wins; the read still succeeds.
			logger.FromContext(ctx).Warn().
				Str("key", key).
				Msg("stored config has non-object value where template expects an object")
		}

		out[key] = overrideValue
	}

	return out
}

// decodeDocument converts the merged generic document into the typed
// configuration. Unknown keys are dropped here; they are recovered
// separately by collectExtraKeys.
//
// A stored value whose shape no longer matches the template (e.g. a legacy
// string where the current schema keeps an object) cannot be placed into
// the typed field. encoding/json keeps decoding the remaining fields in
// that case, so the mismatch degrades to "field left at its zero value"
// with a warning instead of failing the read.
func decodeDocument(ctx context.Context, doc map[string]any) (models.PageConfig, error) {
	buf, err := json.Marshal(doc)
	if err != nil {
		return models.PageConfig{}, fmt.Errorf("error serializing merged config: %w", err)
	}

	var cfg models.PageConfig
	if err := json.Unmarshal(buf, &cfg); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return models.PageConfig{}, fmt.Errorf("error decoding merged config: %w", err)
		}

		logger.FromContext(ctx).Warn().
			Str("field", typeErr.Field).
			Msg("stored config value has incompatible shape, feature disabled")
	}

	return cfg, nil
}

// collectExtraKeys extracts top-level keys of the merged document that the
// default template does not know about.
func collectExtraKeys(base, merged map[string]any) (map[string]json.RawMessage, error) {
	var extra map[string]json.RawMessage

	for key, value := range merged {
		if _, known := base[key]; known {
			continue
		}

		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("error preserving passthrough key %q: %w", key, err)
		}

		if extra == nil {
			extra = make(map[string]json.RawMessage)
		}
		extra[key] = raw
	}

	return extra, nil
}
