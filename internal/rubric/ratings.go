package rubric

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Ratings maps subcategory id to rating. It decodes values given either as
// JSON numbers or numeric strings, since form inputs often post strings.
type Ratings map[int]float64

func (r *Ratings) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Ratings, len(raw))
	for k, v := range raw {
		id, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return fmt.Errorf("rating key %q is not a category id", k)
		}
		val, err := decodeNumber(v)
		if err != nil {
			return fmt.Errorf("rating for %d: %w", id, err)
		}
		out[id] = val
	}
	*r = out
	return nil
}

func decodeNumber(v json.RawMessage) (float64, error) {
	var f float64
	if err := json.Unmarshal(v, &f); err == nil {
		return f, nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return 0, fmt.Errorf("not a number: %s", string(v))
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return f, nil
}
