package source

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace is the error codespace of the source event parser.
const Codespace = "ibcevent_source"

var (
	ErrNotIBCEvent    = errorsmod.Register(Codespace, 2, "not an ibc core event")
	ErrMalformedEvent = errorsmod.Register(Codespace, 3, "malformed ibc event")
	ErrNotClientEvent = errorsmod.Register(Codespace, 4, "not an ics-02 client event")
)
