package question

import (
	"fmt"
	"strings"
)

// ParseVariant converts user input into a Variant.
func ParseVariant(value string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(value))) {
	case "", VariantAuto:
		return VariantAuto, nil
	case VariantOpen:
		return VariantOpen, nil
	case VariantChoice:
		return VariantChoice, nil
	default:
		return "", fmt.Errorf("invalid variant %q (expected auto|open|choice)", value)
	}
}

// normalizeHeader folds a CSV column name for matching.
func normalizeHeader(value string) string {
	value = strings.TrimPrefix(value, "\ufeff")
	return strings.ToLower(strings.TrimSpace(value))
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
