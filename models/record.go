package models

// Record is the generic document form in which the data-access layer hands
// entities to the encryption middleware: a flat map of column name to value.
// Values are either strings, numbers (float64 or one of the integer types),
// or nil for NULL columns.
type Record map[string]any

// FieldKind declares how a confidential field is represented in its native
// (decrypted) form. Numeric fields are serialized to their decimal string
// form before encryption and parsed back after decryption.
type FieldKind int

const (
	// FieldText marks a field whose plaintext is stored as a string.
	FieldText FieldKind = iota
	// FieldNumber marks a field whose plaintext is a number serialized
	// through a string round trip.
	FieldNumber
)

// FieldSpec names one confidential field of an entity together with its
// declared kind.
type FieldSpec struct {
	Name string
	Kind FieldKind
}

// EncryptedFields enumerates, per persisted entity type, exactly which fields
// carry confidential content and how each is typed. The table is static
// configuration: adding an entity requires adding an entry here, there is no
// runtime inference of which fields are sensitive.
var EncryptedFields = map[string][]FieldSpec{
	"transactions": {
		{Name: "description", Kind: FieldText},
		{Name: "amount", Kind: FieldNumber},
	},
	"categories": {
		{Name: "name", Kind: FieldText},
	},
	"budgets": {
		{Name: "amount", Kind: FieldNumber},
	},
	"profiles": {
		{Name: "email", Kind: FieldText},
		{Name: "full_name", Kind: FieldText},
	},
}

// EncryptedFieldsFor returns the declared confidential fields for the given
// entity type, or nil when the entity has none.
func EncryptedFieldsFor(entity string) []FieldSpec {
	return EncryptedFields[entity]
}
