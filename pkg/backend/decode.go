package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decodeEnvelope unwraps {"data": ...} when present, otherwise decodes the
// body as is.
func decodeEnvelope(raw []byte, out any) error {
	if out == nil {
		return nil
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	if raw[0] == '{' {
		var env envelope
		if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
			raw = env.Data
		}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode backend response: %w", err)
	}
	return nil
}

// decodeList accepts [..], {key: [..]}, {data: [..]} and
// {data: {key: [..], total_pages: n}}.
func decodeList(raw []byte, key string, out any) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 1, nil
	}

	for depth := 0; depth < 2; depth++ {
		if raw[0] == '[' {
			if err := json.Unmarshal(raw, out); err != nil {
				return 0, fmt.Errorf("failed to decode backend list: %w", err)
			}
			return 1, nil
		}

		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return 0, fmt.Errorf("failed to decode backend list: %w", err)
		}

		if items, ok := obj[key]; ok && key != "" {
			if err := json.Unmarshal(items, out); err != nil {
				return 0, fmt.Errorf("failed to decode backend list %q: %w", key, err)
			}
			return totalPages(obj), nil
		}

		data, ok := obj["data"]
		if !ok {
			break
		}
		data = bytes.TrimSpace(data)
		if len(data) == 0 || bytes.Equal(data, []byte("null")) {
			break
		}
		if data[0] == '[' {
			if err := json.Unmarshal(data, out); err != nil {
				return 0, fmt.Errorf("failed to decode backend list: %w", err)
			}
			return totalPages(obj), nil
		}
		raw = data
	}

	return 1, nil
}

func totalPages(obj map[string]json.RawMessage) int {
	for _, k := range []string{"total_pages", "last_page"} {
		v, ok := obj[k]
		if !ok {
			continue
		}
		var n int
		if err := json.Unmarshal(v, &n); err == nil && n > 0 {
			return n
		}
	}
	if meta, ok := obj["meta"]; ok {
		var m map[string]json.RawMessage
		if err := json.Unmarshal(meta, &m); err == nil {
			return totalPages(m)
		}
	}
	return 1
}
