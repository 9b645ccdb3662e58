package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldProvider tags log entries with the AI provider serving the call.
	FieldProvider = "ai_provider"
	// FieldModel tags log entries with the model identifier in use.
	FieldModel = "ai_model"
)

// StringField is a key/value pair destined for a zap string field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the pairs into zap fields. Entries with a blank key
// or value are dropped so log lines stay compact.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches the fields to the logger. A nil logger yields a no-op
// logger rather than a panic downstream.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CommonFields returns the provider/model fields every AI call log carries.
func CommonFields(provider, model string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
	)
}

// WithCommonFields returns a logger tagged with the AI provider and model,
// used for the skills analyzer and the outreach writer.
func WithCommonFields(logger *zap.Logger, provider, model string) *zap.Logger {
	fields := CommonFields(provider, model)
	return WithFields(logger, fields...)
}
