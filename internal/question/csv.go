package question

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// CSV column names, matched case-insensitively.
const (
	columnQuestion     = "question"
	columnAnswer       = "answer"
	columnInfo         = "info"
	columnCorrectIndex = "correctindex"
	columnOptionPrefix = "option"
)

// csvLayout maps header names to column positions.
type csvLayout struct {
	question     int
	answer       int
	info         int
	correctIndex int
	options      []int
}

// ParseCSV parses a header-led CSV deck. A variant of VariantAuto is detected from the header.
func ParseCSV(data []byte, variant Variant) (Deck, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return Deck{}, &ValidationError{Issues: []Issue{{Field: "header", Message: "is required"}}}
	}
	if err != nil {
		return Deck{}, fmt.Errorf("parse csv header: %w", err)
	}
	layout := readLayout(header)

	collector := &issueCollector{}
	variant = detectVariant(variant, layout)
	checkLayout(variant, layout, collector)
	if err := collector.result(); err != nil {
		return Deck{}, err
	}

	var rows []deckFileRow
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Deck{}, fmt.Errorf("parse csv: %w", err)
		}
		if blankRow(fields) {
			continue
		}
		rows = append(rows, rowFromFields(fields, layout, variant, len(rows), collector))
	}

	deck := buildDeck(variant, rows, collector)
	if err := collector.result(); err != nil {
		return Deck{}, err
	}
	return deck, nil
}

func readLayout(header []string) csvLayout {
	layout := csvLayout{question: -1, answer: -1, info: -1, correctIndex: -1}
	type optionColumn struct {
		number int
		index  int
	}
	var options []optionColumn
	for i, name := range header {
		switch key := normalizeHeader(name); {
		case key == columnQuestion:
			layout.question = i
		case key == columnAnswer:
			layout.answer = i
		case key == columnInfo:
			layout.info = i
		case key == columnCorrectIndex || key == "correct_index":
			layout.correctIndex = i
		case strings.HasPrefix(key, columnOptionPrefix):
			number, err := strconv.Atoi(strings.TrimPrefix(key, columnOptionPrefix))
			if err == nil {
				options = append(options, optionColumn{number: number, index: i})
			}
		}
	}
	sort.Slice(options, func(a, b int) bool { return options[a].number < options[b].number })
	for _, option := range options {
		layout.options = append(layout.options, option.index)
	}
	return layout
}

func detectVariant(variant Variant, layout csvLayout) Variant {
	if variant != VariantAuto && variant != "" {
		return variant
	}
	if layout.correctIndex >= 0 {
		return VariantChoice
	}
	return VariantOpen
}

func checkLayout(variant Variant, layout csvLayout, collector *issueCollector) {
	if layout.question < 0 {
		collector.add("header", "missing column question")
	}
	switch variant {
	case VariantOpen:
		if layout.answer < 0 {
			collector.add("header", "missing column answer")
		}
	case VariantChoice:
		if layout.correctIndex < 0 {
			collector.add("header", "missing column correctIndex")
		}
		if len(layout.options) < 2 {
			collector.add("header", "needs at least two option columns (option1, option2, ...)")
		}
	}
}

func rowFromFields(fields []string, layout csvLayout, variant Variant, index int, collector *issueCollector) deckFileRow {
	row := deckFileRow{
		Prompt: field(fields, layout.question),
		Answer: field(fields, layout.answer),
		Info:   field(fields, layout.info),
	}
	if variant != VariantChoice {
		return row
	}
	for _, column := range layout.options {
		row.Options = append(row.Options, field(fields, column))
	}
	raw := strings.TrimSpace(field(fields, layout.correctIndex))
	if raw == "" {
		return row
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		collector.add(fmt.Sprintf("questions[%d].correct_index", index), fmt.Sprintf("invalid integer %q", raw))
		row.invalidIndex = true
		return row
	}
	row.CorrectIndex = &value
	return row
}

// field returns the value at index, or empty when the row is short.
func field(fields []string, index int) string {
	if index < 0 || index >= len(fields) {
		return ""
	}
	return fields[index]
}

func blankRow(fields []string) bool {
	for _, value := range fields {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
