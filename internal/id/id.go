package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cleared-dev/smsledger/internal/model"
)

var sourcePrefixes = map[model.Source]string{
	model.SourceSMS:     "sms",
	model.SourceReceipt: "receipt",
	model.SourceManual:  "manual",
}

// NewRecordID returns a fresh record ID like "sms_6f1c...".
func NewRecordID(source model.Source) string {
	return FormatRecordID(source, uuid.New())
}

// FormatRecordID joins the source prefix and a UUID.
func FormatRecordID(source model.Source, u uuid.UUID) string {
	prefix, ok := sourcePrefixes[source]
	if !ok {
		prefix = "manual"
	}
	return prefix + "_" + u.String()
}

// ParseRecordID splits "sms_<uuid>" into its source and UUID.
func ParseRecordID(recordID string) (model.Source, uuid.UUID, error) {
	prefix, rest, ok := strings.Cut(recordID, "_")
	if !ok {
		return "", uuid.Nil, fmt.Errorf("invalid record ID format: %q", recordID)
	}

	var source model.Source
	for s, p := range sourcePrefixes {
		if p == prefix {
			source = s
		}
	}
	if source == "" {
		return "", uuid.Nil, fmt.Errorf("unknown source prefix in record ID %q", recordID)
	}

	u, err := uuid.Parse(rest)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("invalid uuid in record ID %q: %w", recordID, err)
	}
	return source, u, nil
}
