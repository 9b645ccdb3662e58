package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestStringFieldsSkipsEmptyEntries(t *testing.T) {
	fields := StringFields(
		StringField{Key: "provider", Value: "groq"},
		StringField{Key: "  ", Value: "ignored"},
		StringField{Key: "model", Value: "   "},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "provider" {
		t.Fatalf("unexpected field key: %s", fields[0].Key)
	}
}

func TestCommonFields(t *testing.T) {
	fields := CommonFields("groq", "llama3-8b-8192")

	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}

	if fields[0].Key != FieldProvider || fields[1].Key != FieldModel {
		t.Fatalf("unexpected field keys: %s, %s", fields[0].Key, fields[1].Key)
	}
}

func TestCommonFieldsOmitsEmptyValues(t *testing.T) {
	fields := CommonFields("", "llama3-8b-8192")

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != FieldModel {
		t.Fatalf("unexpected field key: %s", fields[0].Key)
	}
}

func TestWithFieldsHandlesNilLogger(t *testing.T) {
	logger := WithFields(nil, zap.String("k", "v"))
	if logger == nil {
		t.Fatalf("expected non-nil logger")
	}

	logger = WithCommonFields(nil, "groq", "model")
	if logger == nil {
		t.Fatalf("expected non-nil logger")
	}
}
