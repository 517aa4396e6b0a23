package wire

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownOpcode = errors.New("unknown opcode")
	ErrInvalidEnum   = errors.New("invalid enum value")
	ErrBodyUnderflow = errors.New("message body shorter than its fixed fields")
)

// EnumError reports an integer with no matching enumerator.
type EnumError struct {
	Type  string
	Value uint64
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("%s: %d is not a valid %s", ErrInvalidEnum, e.Value, e.Type)
}

func (e *EnumError) Unwrap() error {
	return ErrInvalidEnum
}

// OpcodeError reports an opcode with no decoder in the dispatch table.
type OpcodeError struct {
	Opcode    uint32
	Direction string
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("%s: %s 0x%04X", ErrUnknownOpcode, e.Direction, e.Opcode)
}

func (e *OpcodeError) Unwrap() error {
	return ErrUnknownOpcode
}

// Remainder returns how many bytes of a body of bodySize are left after
// consumed, failing when the fixed part already overruns the body.
func Remainder(bodySize, consumed int) (int, error) {
	if consumed > bodySize {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrBodyUnderflow, consumed, bodySize)
	}
	return bodySize - consumed, nil
}
