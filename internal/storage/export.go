package storage

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// exportDocument is the single-file backup format. Every field is the
// raw document stored under the matching key so export and import
// survive future field additions without a migration step.
type exportDocument struct {
	Profile           json.RawMessage `json:"profile"`
	OperationProgress json.RawMessage `json:"operationProgress"`
	SessionHistory    json.RawMessage `json:"sessionHistory,omitempty"`
	Achievements      json.RawMessage `json:"achievements,omitempty"`
	FactPerformance   json.RawMessage `json:"factPerformance,omitempty"`
	Settings          json.RawMessage `json:"settings,omitempty"`
	EquippedShip      json.RawMessage `json:"equippedShip,omitempty"`
	UnlockedShips     json.RawMessage `json:"unlockedShips,omitempty"`
	ExportDate        string          `json:"exportDate"`
}

// importSchema rejects payloads missing the required top-level fields
// before anything is written.
var importSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"profile":           map[string]any{"type": "object"},
		"operationProgress": map[string]any{"type": "object"},
	},
	"required": []any{"profile", "operationProgress"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledImportSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(importSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://export.json", defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://export.json")
	})
	return compiledSchema, compileErr
}

// Export serializes the full game state to a single JSON document.
func (s *Store) Export() ([]byte, error) {
	doc := exportDocument{
		Profile:           s.rawOrNull(KeyProfile),
		OperationProgress: s.rawOrDefault(KeyOperationProgress, "{}"),
		SessionHistory:    s.rawOrDefault(KeySessionHistory, "[]"),
		Achievements:      s.rawOrDefault(KeyAchievements, "{}"),
		FactPerformance:   s.rawOrDefault(KeyFactPerformance, "{}"),
		Settings:          s.rawOrNull(KeySettings),
		EquippedShip:      s.rawOrNull(KeyEquippedShip),
		UnlockedShips:     s.rawOrNull(KeyUnlockedShips),
		ExportDate:        time.Now().UTC().Format(time.RFC3339),
	}
	if doc.Profile == nil {
		return nil, fmt.Errorf("nothing to export: no profile recorded yet")
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Import validates the payload and restores every present section.
// On a rejected payload the existing state is untouched.
func (s *Store) Import(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := compiledImportSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("invalid backup format: %w", err)
	}

	var doc exportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode backup: %w", err)
	}

	sections := []struct {
		key string
		raw json.RawMessage
	}{
		{KeyProfile, doc.Profile},
		{KeyOperationProgress, doc.OperationProgress},
		{KeySessionHistory, doc.SessionHistory},
		{KeyAchievements, doc.Achievements},
		{KeyFactPerformance, doc.FactPerformance},
		{KeySettings, doc.Settings},
		{KeyEquippedShip, doc.EquippedShip},
		{KeyUnlockedShips, doc.UnlockedShips},
	}
	for _, sec := range sections {
		if sec.raw == nil {
			continue
		}
		if err := s.setRaw(sec.key, string(sec.raw)); err != nil {
			return fmt.Errorf("restore %s: %w", sec.key, err)
		}
	}
	return nil
}

func (s *Store) rawOrNull(key string) json.RawMessage {
	if raw, ok := s.getRaw(key); ok {
		return json.RawMessage(raw)
	}
	return nil
}

func (s *Store) rawOrDefault(key, def string) json.RawMessage {
	if raw, ok := s.getRaw(key); ok {
		return json.RawMessage(raw)
	}
	return json.RawMessage(def)
}
