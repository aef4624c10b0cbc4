package messaging

import (
	"unicode/utf8"

	"github.com/glimte/msgevents-go/contracts"
)

// Checks run in order and the first failure wins.

func argumentIsString(arg any) (string, error) {
	id, ok := arg.(string)
	if !ok {
		return "", contracts.ErrInvalidArguments
	}
	return id, nil
}

func validIDLength(id string) error {
	if n := utf8.RuneCountInString(id); n == 0 || n > contracts.MaxIDLength {
		return contracts.ErrInvalidIDLength
	}
	return nil
}

func noInternalID(id string) error {
	if contracts.IsReserved(id) {
		return contracts.ErrInternalID
	}
	return nil
}

// validID validates a channel id argument of the given operation
func validID(op string, arg any) (string, error) {
	id, err := argumentIsString(arg)
	if err != nil {
		return "", contracts.NewValidationError(op, contracts.KindInvalidArguments)
	}
	if err := validIDLength(id); err != nil {
		return "", contracts.NewValidationError(op, contracts.KindInvalidIDLength)
	}
	if err := noInternalID(id); err != nil {
		return "", contracts.NewValidationError(op, contracts.KindInternalID)
	}
	return id, nil
}

func validHandler(op string, fn any) (Handler, error) {
	handler, ok := asHandler(fn)
	if !ok {
		return nil, contracts.NewValidationError(op, contracts.KindInvalidHandler)
	}
	return handler, nil
}

func validFormat(op string, fn any) (FormatFunc, error) {
	format, ok := asFormat(fn)
	if !ok {
		return nil, contracts.NewValidationError(op, contracts.KindInvalidHandler)
	}
	return format, nil
}
