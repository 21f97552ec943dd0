package domain

// FieldType is the declared type of a tool input field.
type FieldType string

const (
	FieldString FieldType = "string"
	FieldNumber FieldType = "number"
	// FieldInteger accepts integral numbers only; 5000.0 decodes as 5000.
	FieldInteger FieldType = "integer"
	// FieldEnum is a string restricted to Field.Enum.
	FieldEnum FieldType = "enum"
)

// Field describes one named input of a tool.
type Field struct {
	Name        string
	Type        FieldType
	Description string
	Enum        []string
	Required    bool
}

// Tool is a schema-described operation the model may ask to run.
type Tool struct {
	Name        string
	Description string
	Fields      []Field
}

// RequiredFields returns the names of required fields in declaration
// order.
func (t Tool) RequiredFields() []string {
	var out []string
	for _, f := range t.Fields {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}
