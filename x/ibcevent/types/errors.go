package types

import (
	"errors"

	errorsmod "cosmossdk.io/errors"
)

// Error codes for the ibcevent module
const (
	BaseErrorCode uint32 = 1
)

var (
	// ErrUnsupportedVariant is raised, as a panic, when a source value has no
	// mapping into the ledger event schema. The schema has fallen behind ibc-go
	// and must be extended.
	ErrUnsupportedVariant  = errorsmod.Register(ModuleName, BaseErrorCode+1, "unsupported variant")
	ErrUnknownDiscriminant = errorsmod.Register(ModuleName, BaseErrorCode+2, "unknown discriminant")
	ErrTrailingBytes       = errorsmod.Register(ModuleName, BaseErrorCode+3, "trailing bytes after value")
	ErrEncoding            = errorsmod.Register(ModuleName, BaseErrorCode+4, "scale encoding failed")
)

// unsupported builds the panic value that halts a conversion.
func unsupported(format string, args ...interface{}) error {
	return errorsmod.Wrapf(ErrUnsupportedVariant, format, args...)
}

// IsUnsupportedVariant reports whether a recovered panic value is the
// unsupported variant fault.
func IsUnsupportedVariant(recovered interface{}) bool {
	err, ok := recovered.(error)
	return ok && errors.Is(err, ErrUnsupportedVariant)
}
