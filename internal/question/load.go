package question

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader resolves a deck once. It is the session's data source.
type Loader func(ctx context.Context) (Deck, error)

// FileLoader returns a Loader that reads the deck at path on each call.
func FileLoader(path string, variant Variant) Loader {
	return func(ctx context.Context) (Deck, error) {
		if err := ctx.Err(); err != nil {
			return Deck{}, err
		}
		return LoadDeck(path, variant)
	}
}

// StaticLoader returns a Loader that always yields deck.
func StaticLoader(deck Deck) Loader {
	return func(context.Context) (Deck, error) {
		return deck, nil
	}
}

// LoadDeck reads, parses, and validates a deck file.
func LoadDeck(path string, variant Variant) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("read question deck: %w", err)
	}
	return ParseDeck(data, path, variant)
}

// ParseDeck parses deck bytes using the file extension of path to pick a format.
func ParseDeck(data []byte, path string, variant Variant) (Deck, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		file, err := parseJSONDeck(data)
		if err != nil {
			return Deck{}, err
		}
		return deckFromFile(file, variant)
	case ".yml", ".yaml":
		file, err := parseYAMLDeck(data)
		if err != nil {
			return Deck{}, err
		}
		return deckFromFile(file, variant)
	default:
		return ParseCSV(data, variant)
	}
}

func deckFromFile(file deckFile, variant Variant) (Deck, error) {
	collector := &issueCollector{}
	if file.Version == 0 {
		collector.add("version", "is required")
	} else if file.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", file.Version))
	}
	if variant == VariantAuto || variant == "" {
		parsed, err := ParseVariant(file.Variant)
		if err != nil {
			collector.add("variant", err.Error())
		}
		variant = parsed
	}
	if variant == VariantAuto {
		variant = detectFileVariant(file.Questions)
	}
	deck := buildDeck(variant, file.Questions, collector)
	if err := collector.result(); err != nil {
		return Deck{}, err
	}
	return deck, nil
}

// detectFileVariant picks choice when any entry lists options.
func detectFileVariant(rows []deckFileRow) Variant {
	for _, row := range rows {
		if len(row.Options) > 0 {
			return VariantChoice
		}
	}
	return VariantOpen
}

func parseJSONDeck(data []byte) (deckFile, error) {
	var file deckFile
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return deckFile{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return deckFile{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return deckFile{}, fmt.Errorf("parse json: %w", err)
	}
	return file, nil
}

func parseYAMLDeck(data []byte) (deckFile, error) {
	var file deckFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return deckFile{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return deckFile{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return deckFile{}, fmt.Errorf("parse yaml: %w", err)
	}
	return file, nil
}
