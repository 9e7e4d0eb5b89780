package logging

import (
	"testing"
)

func TestConstants(t *testing.T) {
	for name, value := range map[string]string{
		"FieldFile":       FieldFile,
		"FieldStage":      FieldStage,
		"FieldAmount":     FieldAmount,
		"FieldCurrency":   FieldCurrency,
		"FieldType":       FieldType,
		"FieldMatched":    FieldMatched,
		"FieldOccurredAt": FieldOccurredAt,
		"FieldProvider":   FieldProvider,
		"FieldAttempt":    FieldAttempt,
	} {
		if value == "" {
			t.Errorf("%s constant should not be empty", name)
		}
	}
}
