package args

import (
	"errors"
	"fmt"
)

// ErrArguments is the category shared by every error of this package.
var ErrArguments = errors.New("arguments error")

// ErrInvalidKeyType is matched by errors.Is for any *InvalidKeyTypeError.
var ErrInvalidKeyType = fmt.Errorf("%w: invalid key type", ErrArguments)

// InvalidKeyTypeError is returned by Get when the key is neither an integer nor a Key.
type InvalidKeyTypeError struct {
	Key any
	msg string
}

func NewInvalidKeyTypeError(key any) *InvalidKeyTypeError {
	return &InvalidKeyTypeError{
		Key: key,
		msg: fmt.Sprintf("Get accepts only integer and args.Key keys: key %#v has type %T", key, key),
	}
}

func (e *InvalidKeyTypeError) Error() string {
	return e.msg
}

func (e *InvalidKeyTypeError) Unwrap() error {
	return ErrInvalidKeyType
}
