package directive

// Field pairs a directive option name with the label rendered in the details
// table. Fields are consumed in declaration order; the order of a FieldSet is
// the rendering contract, not an incidental detail.
type Field struct {
	Name  string
	Label string
}

// FieldSet is the fixed, ordered collection of optional fields a declaration
// may carry. A declaration supplies a subset of these plus the mandatory
// short-description option; anything else is rejected before the handler runs.
type FieldSet []Field

// DefaultFieldSet returns the stock field table shipped with the extension.
func DefaultFieldSet() FieldSet {
	return FieldSet{
		{Name: "unit", Label: "Unit type"},
		{Name: "category_id", Label: "Category ID"},
		{Name: "certification-status", Label: "Status"},
		{Name: "purpose", Label: "Purpose"},
		{Name: "steps", Label: "Steps"},
		{Name: "verification", Label: "Verification"},
		{Name: "description", Label: "Description"},
		{Name: "after-suspend", Label: "After-suspend"},
		{Name: "environ", Label: "Environment variable"},
		{Name: "user", Label: "User"},
		{Name: "plugin", Label: "Plugin"},
		// Manifest entry references.
		{Name: "requires", Label: "Requires"},
		// Template units.
		{Name: "template-id", Label: "From template"},
		{Name: "template-summary", Label: "Template summary"},
		{Name: "template-description", Label: "Template description"},
		{Name: "template-resource", Label: "Template resource"},
		{Name: "template-filter", Label: "Template filter"},
		// Manifest entry units.
		{Name: "value-type", Label: "Value type"},
		{Name: "value-units", Label: "Value units"},
		{Name: "resource-key", Label: "Resource key"},
		{Name: "prompt", Label: "Prompt"},
	}
}

// Contains reports whether name is a recognised field.
func (s FieldSet) Contains(name string) bool {
	for _, field := range s {
		if field.Name == name {
			return true
		}
	}
	return false
}

// Names returns the field names in declaration order.
func (s FieldSet) Names() []string {
	names := make([]string, 0, len(s))
	for _, field := range s {
		names = append(names, field.Name)
	}
	return names
}
