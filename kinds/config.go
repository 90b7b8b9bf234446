package kinds

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeConfig decodes a host-supplied map[string]any (e.g. parsed from
// a config file or passed across a host-language binding boundary) into
// a kind-specific configuration struct such as ClassConfig. Struct
// fields use the default mapstructure tag name matching (lowercased
// field name), consistent with the rest of the kind configuration
// chains which are normally built programmatically instead.
func DecodeConfig[T any](raw map[string]any) (T, error) {
	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return out, fmt.Errorf("build config decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return out, fmt.Errorf("decode config: %w", err)
	}
	return out, nil
}
