package types_test

import (
	"testing"

	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	"github.com/cosmos/ibc-go/v8/modules/core/exported"
	"github.com/stretchr/testify/require"

	"github.com/cdot-network/substrate-ibc/x/ibcevent/source"
	"github.com/cdot-network/substrate-ibc/x/ibcevent/types"
)

// requireUnsupported asserts that f halts with the unsupported variant fault.
func requireUnsupported(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected unsupported variant panic")
		require.True(t, types.IsUnsupportedVariant(r), "unexpected panic value: %v", r)
	}()
	f()
}

func scenarioAttributes() source.Attributes {
	return source.Attributes{
		Height:          clienttypes.NewHeight(0, 42),
		ClientID:        "07-tendermint-3",
		ClientType:      exported.Tendermint,
		ConsensusHeight: clienttypes.NewHeight(0, 41),
	}
}
