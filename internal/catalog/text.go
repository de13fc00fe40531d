package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Text is a nullable scalar field. LLM output is not type-stable: the
// same field may arrive as a JSON string, a number, or null, so every
// leaf field of the catalog decodes through this type. Numbers are
// canonicalized through decimal so that 259 and 259.0 read back as the
// same value. No arithmetic is ever performed on the result.
type Text struct {
	Value string
	Valid bool
}

// T wraps a plain string into a valid Text.
func T(s string) Text {
	return Text{Value: s, Valid: true}
}

var jsonNull = []byte("null")

func (t *Text) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, jsonNull) {
		*t = Text{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text{Value: s, Valid: true}
		return nil
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return fmt.Errorf("unsupported scalar %q: %w", string(b), err)
	}
	*t = Text{Value: d.String(), Valid: true}
	return nil
}

func (t Text) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return jsonNull, nil
	}
	return json.Marshal(t.Value)
}

// Ptr returns the value as a nullable string for row construction.
func (t Text) Ptr() *string {
	if !t.Valid {
		return nil
	}
	v := t.Value
	return &v
}

// Or returns t, or a valid Text carrying def when t is null.
func (t Text) Or(def string) Text {
	if t.Valid {
		return t
	}
	return T(def)
}
