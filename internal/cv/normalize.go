package cv

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeModel unmarshals a persisted model, lifting legacy shapes into the
// current one. Older documents stored languages and extras as flat string
// arrays; those become structured entries (level unknown, category "other").
func DecodeModel(data []byte) (Model, error) {
	type alias Model
	var raw struct {
		alias
		Languages json.RawMessage `json:"languages"`
		Extras    json.RawMessage `json:"extras"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Model{}, fmt.Errorf("decode cv model: %w", err)
	}

	m := Model(raw.alias)

	langs, err := decodeLanguages(raw.Languages)
	if err != nil {
		return Model{}, fmt.Errorf("decode cv model: %w", err)
	}
	m.Languages = langs

	extras, err := decodeExtras(raw.Extras)
	if err != nil {
		return Model{}, fmt.Errorf("decode cv model: %w", err)
	}
	m.Extras = extras

	return m, nil
}

func decodeLanguages(raw json.RawMessage) ([]Language, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var structured []Language
	if err := json.Unmarshal(raw, &structured); err == nil {
		return structured, nil
	}
	var legacy []string
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, fmt.Errorf("languages: %w", err)
	}
	out := make([]Language, 0, len(legacy))
	for _, name := range legacy {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, Language{Name: name})
		}
	}
	return out, nil
}

func decodeExtras(raw json.RawMessage) ([]ExtrasGroup, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var structured []ExtrasGroup
	if err := json.Unmarshal(raw, &structured); err == nil {
		return structured, nil
	}
	var legacy []string
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, fmt.Errorf("extras: %w", err)
	}
	var items []string
	for _, item := range legacy {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, nil
	}
	return []ExtrasGroup{{Category: ExtrasOther, Items: items}}, nil
}
