package service

// Defaults used whenever the generator cannot produce a field.
const (
	DefaultTitle       = "Daily Task"
	DefaultDescription = "Task related to your goals"
)

// Draft is a generated task before persistence.
type Draft struct {
	Title       string
	Description string
}

// DefaultDraft returns the draft used when generation fails.
func DefaultDraft() Draft {
	return Draft{Title: DefaultTitle, Description: DefaultDescription}
}

// FieldType is the normalized type of a destination schema field.
type FieldType string

const (
	FieldTitle  FieldType = "title"
	FieldSelect FieldType = "select"
	FieldDate   FieldType = "date"
	FieldOther  FieldType = "other"
)

// SchemaField describes one field of the destination list.
type SchemaField struct {
	Name string
	Type FieldType

	// RawType is the type as reported by the remote API, e.g. "rich_text".
	RawType string

	// Options holds choice names in declared order; select fields only.
	Options []string
}
