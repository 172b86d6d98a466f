package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/andrescamacho/intopia-go/internal/domain/market"
)

// The domain keys its maps by Segment and Plant value types; JSON columns
// store them under the canonical string key forms instead.

func encodeSegmentInts(m map[market.Segment]int) (string, error) {
	out := make(map[string]int, len(m))
	for seg, qty := range m {
		out[seg.String()] = qty
	}
	return encodeJSON(out)
}

func decodeSegmentInts(raw string) (map[market.Segment]int, error) {
	var in map[string]int
	if err := decodeJSON(raw, &in); err != nil {
		return nil, err
	}
	out := make(map[market.Segment]int, len(in))
	for key, qty := range in {
		seg, err := market.ParseSegment(key)
		if err != nil {
			return nil, fmt.Errorf("failed to decode segment key: %w", err)
		}
		out[seg] = qty
	}
	return out, nil
}

func encodePlantInts(m map[market.Plant]int) (string, error) {
	out := make(map[string]int, len(m))
	for plant, qty := range m {
		out[plant.String()] = qty
	}
	return encodeJSON(out)
}

func decodePlantInts(raw string) (map[market.Plant]int, error) {
	var in map[string]int
	if err := decodeJSON(raw, &in); err != nil {
		return nil, err
	}
	out := make(map[market.Plant]int, len(in))
	for key, qty := range in {
		plant, err := market.ParsePlant(key)
		if err != nil {
			return nil, fmt.Errorf("failed to decode plant key: %w", err)
		}
		out[plant] = qty
	}
	return out, nil
}

func encodePriceVectors(m map[string][]float64) (string, error) {
	return encodeJSON(m)
}

func decodePriceVectors(raw string) (map[string][]float64, error) {
	var out map[string][]float64
	if err := decodeJSON(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string][]float64{}
	}
	return out, nil
}

func encodeJSON(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal json column: %w", err)
	}
	return string(data), nil
}

func decodeJSON(raw string, v interface{}) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("failed to unmarshal json column: %w", err)
	}
	return nil
}
