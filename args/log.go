package args

import (
	"go.uber.org/zap/zapcore"
)

// MarshalLogObject lets a bundle be logged with zap.Object.
func (a *Arguments) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("variant", a.variant.String())
	if err := enc.AddReflected("positional", a.positional); err != nil {
		return err
	}
	if err := enc.AddReflected("keyed", a.keyed); err != nil {
		return err
	}
	enc.AddBool("block", a.block != nil)
	return nil
}
