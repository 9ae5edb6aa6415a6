package config

import (
	"fmt"
)

// LabelEntry is a label as written inside a group: either a BareLabel or a DetailedLabel
type LabelEntry interface {
	isLabelEntry()
	EntryName() string
}

// BareLabel is the short form `"bug"`
type BareLabel string

// DetailedLabel is the table form `{ name = "bug", description = "...", aliases = [...] }`
type DetailedLabel struct {
	Name        string
	Description *string
	Aliases     []string
}

func (BareLabel) isLabelEntry()     {}
func (DetailedLabel) isLabelEntry() {}

// EntryName returns the name as authored
func (b BareLabel) EntryName() string { return string(b) }

// EntryName returns the name as authored
func (d DetailedLabel) EntryName() string { return d.Name }

// entriesField decodes `labels = ["bug", { name = "feature" }]`
type entriesField []LabelEntry

// UnmarshalTOML implements toml.Unmarshaler
func (e *entriesField) UnmarshalTOML(data any) error {
	items, ok := data.([]any)
	if !ok {
		return fmt.Errorf("%w: labels must be an array, got %T", ErrInvalidLabelEntry, data)
	}

	entries := make(entriesField, 0, len(items))
	for i, item := range items {
		entry, err := labelEntryFromValue(item)
		if err != nil {
			return fmt.Errorf("labels[%d]: %w", i, err)
		}
		entries = append(entries, entry)
	}

	*e = entries
	return nil
}

func labelEntryFromValue(value any) (LabelEntry, error) {
	switch v := value.(type) {
	case string:
		return BareLabel(v), nil
	case map[string]any:
		return detailedLabelFromTable(v)
	default:
		return nil, fmt.Errorf("%w: expected a string or a table, got %T", ErrInvalidLabelEntry, value)
	}
}

func detailedLabelFromTable(table map[string]any) (DetailedLabel, error) {
	var label DetailedLabel

	for key, raw := range table {
		switch key {
		case "name":
			name, ok := raw.(string)
			if !ok {
				return DetailedLabel{}, fmt.Errorf("%w: name must be a string", ErrInvalidLabelEntry)
			}
			label.Name = name
		case "description":
			description, ok := raw.(string)
			if !ok {
				return DetailedLabel{}, fmt.Errorf("%w: description must be a string", ErrInvalidLabelEntry)
			}
			label.Description = &description
		case "aliases":
			aliases, err := stringSlice(raw)
			if err != nil {
				return DetailedLabel{}, err
			}
			label.Aliases = aliases
		default:
			return DetailedLabel{}, fmt.Errorf("%w: unknown key %q", ErrInvalidLabelEntry, key)
		}
	}

	if _, ok := table["name"]; !ok {
		return DetailedLabel{}, fmt.Errorf("%w: name is required", ErrInvalidLabelEntry)
	}
	if label.Aliases == nil {
		label.Aliases = []string{}
	}

	return label, nil
}

func stringSlice(raw any) ([]string, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: aliases must be an array of strings", ErrInvalidLabelEntry)
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: aliases must be an array of strings", ErrInvalidLabelEntry)
		}
		out = append(out, s)
	}
	return out, nil
}
