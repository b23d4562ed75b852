package args

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Field names one of the three parts of a bundle.
type Field string

const (
	FieldPositional Field = "positional"
	FieldKeyed      Field = "keyed"
	FieldBlock      Field = "trailing_callable"
)

var allFields = []Field{FieldPositional, FieldKeyed, FieldBlock}

// Tuple returns the positional values, keyed values and block, in that order.
func (a *Arguments) Tuple() ([]any, map[Key]any, *Block) {
	return a.Positional(), a.Keyed(), a.block
}

// Fields returns the requested parts of the bundle by name.
// A nil selection returns all three. Unknown names are skipped.
func (a *Arguments) Fields(selected []Field) map[Field]any {
	if selected == nil {
		selected = allFields
	}
	fields := make(map[Field]any, len(selected))
	for _, f := range selected {
		switch f {
		case FieldPositional:
			fields[f] = a.Positional()
		case FieldKeyed:
			fields[f] = a.Keyed()
		case FieldBlock:
			fields[f] = a.block
		}
	}
	return fields
}

// DecodeKeyed decodes the keyed values into out, which is usually a pointer
// to a struct. Struct fields are matched by name or by `mapstructure` tag.
func (a *Arguments) DecodeKeyed(out any) error {
	in := make(map[string]any, len(a.keyed))
	for k, v := range a.keyed {
		in[string(k)] = v
	}
	if err := mapstructure.Decode(in, out); err != nil {
		return fmt.Errorf("failed to decode keyed arguments: %w", err)
	}
	return nil
}

// DecodePositional decodes the positional values into out, which is usually
// a pointer to a slice or an array.
func (a *Arguments) DecodePositional(out any) error {
	if err := mapstructure.Decode(a.positional, out); err != nil {
		return fmt.Errorf("failed to decode positional arguments: %w", err)
	}
	return nil
}
