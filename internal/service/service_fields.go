package service

import (
	"maps"
	"strconv"

	"github.com/ilario23/PWA-GoNuts-sub002/models"
)

// FieldCipher is the schema-driven helper the data-access layer calls right
// before writing a record and right after reading one. It encrypts and
// decrypts the confidential fields declared in [models.EncryptedFields],
// round-tripping numeric fields through their decimal string form.
type FieldCipher struct {
	crypto CryptoService
}

// NewFieldCipher constructs a [FieldCipher] over the session's crypto
// service.
func NewFieldCipher(crypto CryptoService) *FieldCipher {
	return &FieldCipher{crypto: crypto}
}

// EncryptRecord returns a shallow copy of record with every declared field
// encrypted. Nil values pass through unchanged, absent fields are skipped,
// and the input record is never mutated. When no key is loaded the copy is
// returned unmodified (degraded mode).
func (f *FieldCipher) EncryptRecord(record models.Record, fields []models.FieldSpec) models.Record {
	if record == nil {
		return nil
	}

	out := maps.Clone(record)
	if !f.crypto.Ready() || len(fields) == 0 {
		return out
	}

	for _, spec := range fields {
		value, ok := record[spec.Name]
		if !ok || value == nil {
			continue
		}

		plaintext, ok := fieldPlaintext(value)
		if !ok {
			// Unsupported dynamic type; leave the field as it is.
			continue
		}
		out[spec.Name] = f.crypto.EncryptValue(plaintext)
	}

	return out
}

// DecryptRecord is the mirror of [FieldCipher.EncryptRecord]: declared
// string fields are decrypted in the copy, and fields declared numeric are
// converted back to float64 when the plaintext parses. Values that are not
// strings are left untouched — data already in native form is not
// re-processed. The input record is never mutated.
func (f *FieldCipher) DecryptRecord(record models.Record, fields []models.FieldSpec) models.Record {
	if record == nil {
		return nil
	}

	out := maps.Clone(record)
	if !f.crypto.Ready() || len(fields) == 0 {
		return out
	}

	for _, spec := range fields {
		stored, ok := record[spec.Name].(string)
		if !ok {
			continue
		}

		plaintext, outcome := f.crypto.DecryptValueChecked(stored)
		if outcome == OutcomeTampered {
			continue
		}

		if spec.Kind == models.FieldNumber {
			if n, err := strconv.ParseFloat(plaintext, 64); err == nil {
				out[spec.Name] = n
				continue
			}
		}
		out[spec.Name] = plaintext
	}

	return out
}

// DecryptRecords maps [FieldCipher.DecryptRecord] over every element.
// When no key is loaded or fields is empty the input slice is returned
// as-is: the common read path allocates nothing when there is nothing to do.
func (f *FieldCipher) DecryptRecords(records []models.Record, fields []models.FieldSpec) []models.Record {
	if len(records) == 0 || len(fields) == 0 || !f.crypto.Ready() {
		return records
	}

	out := make([]models.Record, len(records))
	for i, record := range records {
		out[i] = f.DecryptRecord(record, fields)
	}
	return out
}

// fieldPlaintext converts a record value to the string form that gets
// encrypted. Numbers are serialized to their shortest decimal representation
// so they survive an exact round trip.
func fieldPlaintext(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	default:
		return "", false
	}
}
