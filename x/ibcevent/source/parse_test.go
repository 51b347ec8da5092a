package source_test

import (
	"encoding/base64"
	"testing"

	abci "github.com/cometbft/cometbft/abci/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	connectiontypes "github.com/cosmos/ibc-go/v8/modules/core/03-connection/types"
	channeltypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"
	"github.com/cosmos/ibc-go/v8/modules/core/exported"
	"github.com/stretchr/testify/require"

	"github.com/cdot-network/substrate-ibc/x/ibcevent/source"
)

var hostHeight = clienttypes.NewHeight(0, 42)

func createClientEvent(clientID, clientType, consensusHeight string) sdk.Event {
	return sdk.NewEvent(
		clienttypes.EventTypeCreateClient,
		sdk.NewAttribute(clienttypes.AttributeKeyClientID, clientID),
		sdk.NewAttribute(clienttypes.AttributeKeyClientType, clientType),
		sdk.NewAttribute(clienttypes.AttributeKeyConsensusHeight, consensusHeight),
	)
}

func TestParseEvent_CreateClient(t *testing.T) {
	ev, err := source.ParseSDKEvent(createClientEvent("07-tendermint-3", exported.Tendermint, "0-41"), hostHeight, false)
	require.NoError(t, err)

	cc, ok := ev.(source.CreateClient)
	require.True(t, ok, "expected CreateClient, got %T", ev)
	require.Equal(t, source.KindCreateClient, cc.Kind())
	require.Equal(t, source.Attributes{
		Height:          clienttypes.NewHeight(0, 42),
		ClientID:        "07-tendermint-3",
		ClientType:      exported.Tendermint,
		ConsensusHeight: clienttypes.NewHeight(0, 41),
	}, cc.Attributes)
}

func TestParseEvent_ClientKinds(t *testing.T) {
	attrs := []sdk.Attribute{
		sdk.NewAttribute(clienttypes.AttributeKeyClientID, "07-tendermint-0"),
		sdk.NewAttribute(clienttypes.AttributeKeyClientType, exported.Tendermint),
		sdk.NewAttribute(clienttypes.AttributeKeyConsensusHeight, "1-10"),
	}

	tests := []struct {
		eventType string
		want      source.Kind
	}{
		{clienttypes.EventTypeCreateClient, source.KindCreateClient},
		{clienttypes.EventTypeUpdateClient, source.KindUpdateClient},
		{clienttypes.EventTypeUpgradeClient, source.KindUpgradeClient},
		{clienttypes.EventTypeSubmitMisbehaviour, source.KindClientMisbehaviour},
	}

	for _, tc := range tests {
		t.Run(tc.eventType, func(t *testing.T) {
			ev, err := source.ParseSDKEvent(sdk.NewEvent(tc.eventType, attrs...), hostHeight, false)
			require.NoError(t, err)
			require.Equal(t, tc.want, ev.Kind())
		})
	}
}

func TestParseEvent_ConsensusHeightsFallback(t *testing.T) {
	ev, err := source.ParseSDKEvent(sdk.NewEvent(
		clienttypes.EventTypeUpdateClient,
		sdk.NewAttribute(clienttypes.AttributeKeyClientID, "07-tendermint-1"),
		sdk.NewAttribute(clienttypes.AttributeKeyClientType, exported.Tendermint),
		sdk.NewAttribute(clienttypes.AttributeKeyConsensusHeights, "2-100,2-101"),
	), hostHeight, false)
	require.NoError(t, err)
	require.Equal(t, clienttypes.NewHeight(2, 100), ev.(source.UpdateClient).Attributes.ConsensusHeight)
}

func TestParseEvent_MisbehaviourWithoutConsensusHeight(t *testing.T) {
	ev, err := source.ParseSDKEvent(sdk.NewEvent(
		clienttypes.EventTypeSubmitMisbehaviour,
		sdk.NewAttribute(clienttypes.AttributeKeyClientID, "07-tendermint-1"),
		sdk.NewAttribute(clienttypes.AttributeKeyClientType, exported.Tendermint),
	), hostHeight, false)
	require.NoError(t, err)
	require.True(t, ev.(source.ClientMisbehaviour).Attributes.ConsensusHeight.IsZero())
}

func TestParseEvent_Generic(t *testing.T) {
	ev, err := source.ParseSDKEvent(sdk.NewEvent(
		channeltypes.EventTypeSendPacket,
		sdk.NewAttribute(channeltypes.AttributeKeySequence, "7"),
	), hostHeight, false)
	require.NoError(t, err)

	g, ok := ev.(source.Generic)
	require.True(t, ok)
	require.Equal(t, source.KindSendPacket, g.Kind())
	require.Equal(t, hostHeight, g.Height)
	require.Equal(t, "7", g.Attributes[channeltypes.AttributeKeySequence])
}

func TestParseEvent_Base64Attributes(t *testing.T) {
	enc := base64.StdEncoding.EncodeToString
	ev := abci.Event{
		Type: clienttypes.EventTypeCreateClient,
		Attributes: []abci.EventAttribute{
			{Key: enc([]byte(clienttypes.AttributeKeyClientID)), Value: enc([]byte("07-tendermint-9"))},
			{Key: enc([]byte(clienttypes.AttributeKeyClientType)), Value: enc([]byte(exported.Tendermint))},
			{Key: enc([]byte(clienttypes.AttributeKeyConsensusHeight)), Value: enc([]byte("0-5"))},
		},
	}

	parsed, err := source.ParseEvent(ev, hostHeight, true)
	require.NoError(t, err)
	require.Equal(t, "07-tendermint-9", parsed.(source.CreateClient).Attributes.ClientID)

	_, err = source.ParseEvent(ev, hostHeight, false)
	require.ErrorIs(t, err, source.ErrMalformedEvent)
}

func TestParseEvent_Errors(t *testing.T) {
	tests := []struct {
		name    string
		event   sdk.Event
		wantErr error
	}{
		{
			name:    "not an ibc event",
			event:   sdk.NewEvent(sdk.EventTypeMessage, sdk.NewAttribute(sdk.AttributeKeyModule, "bank")),
			wantErr: source.ErrNotIBCEvent,
		},
		{
			name:    "invalid client id",
			event:   createClientEvent("bad", exported.Tendermint, "0-1"),
			wantErr: source.ErrMalformedEvent,
		},
		{
			name:    "missing client type",
			event:   createClientEvent("07-tendermint-0", "", "0-1"),
			wantErr: source.ErrMalformedEvent,
		},
		{
			name:    "client type does not match id",
			event:   createClientEvent("07-tendermint-0", exported.Solomachine, "0-1"),
			wantErr: source.ErrMalformedEvent,
		},
		{
			name:    "missing consensus height",
			event:   createClientEvent("07-tendermint-0", exported.Tendermint, ""),
			wantErr: source.ErrMalformedEvent,
		},
		{
			name:    "invalid consensus height",
			event:   createClientEvent("07-tendermint-0", exported.Tendermint, "forty-one"),
			wantErr: source.ErrMalformedEvent,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := source.ParseSDKEvent(tc.event, hostHeight, false)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestHostHeight(t *testing.T) {
	h, err := source.HostHeight("cosmoshub-4", 100)
	require.NoError(t, err)
	require.Equal(t, clienttypes.NewHeight(4, 100), h)

	h, err = source.HostHeight("localchain", 7)
	require.NoError(t, err)
	require.Equal(t, clienttypes.NewHeight(0, 7), h)

	_, err = source.HostHeight("cosmoshub-4", -1)
	require.ErrorIs(t, err, source.ErrMalformedEvent)
}

func TestIsIBCEvent(t *testing.T) {
	for _, k := range source.AllKinds() {
		require.True(t, source.IsIBCEvent(string(k)), k)
	}
	require.False(t, source.IsIBCEvent(sdk.EventTypeMessage))
	require.False(t, source.IsIBCEvent("transfer"))
}

func TestAllKinds_MatchesCoreEventTypes(t *testing.T) {
	core := []string{
		clienttypes.EventTypeCreateClient,
		clienttypes.EventTypeUpdateClient,
		clienttypes.EventTypeUpgradeClient,
		clienttypes.EventTypeSubmitMisbehaviour,
		clienttypes.EventTypeRecoverClient,
		clienttypes.EventTypeScheduleIBCSoftwareUpgrade,
		clienttypes.EventTypeUpgradeChain,

		connectiontypes.EventTypeConnectionOpenInit,
		connectiontypes.EventTypeConnectionOpenTry,
		connectiontypes.EventTypeConnectionOpenAck,
		connectiontypes.EventTypeConnectionOpenConfirm,

		channeltypes.EventTypeChannelOpenInit,
		channeltypes.EventTypeChannelOpenTry,
		channeltypes.EventTypeChannelOpenAck,
		channeltypes.EventTypeChannelOpenConfirm,
		channeltypes.EventTypeChannelCloseInit,
		channeltypes.EventTypeChannelCloseConfirm,
		channeltypes.EventTypeChannelClosed,
		channeltypes.EventTypeSendPacket,
		channeltypes.EventTypeRecvPacket,
		channeltypes.EventTypeWriteAck,
		channeltypes.EventTypeAcknowledgePacket,
		channeltypes.EventTypeTimeoutPacket,
		channeltypes.EventTypeChannelUpgradeInit,
		channeltypes.EventTypeChannelUpgradeTry,
		channeltypes.EventTypeChannelUpgradeAck,
		channeltypes.EventTypeChannelUpgradeConfirm,
		channeltypes.EventTypeChannelUpgradeOpen,
		channeltypes.EventTypeChannelUpgradeTimeout,
		channeltypes.EventTypeChannelUpgradeCancel,
		channeltypes.EventTypeChannelUpgradeError,
		channeltypes.EventTypeChannelFlushComplete,
	}

	kinds := make([]string, 0, len(source.AllKinds()))
	for _, k := range source.AllKinds() {
		kinds = append(kinds, string(k))
	}
	require.Len(t, kinds, 32)
	require.ElementsMatch(t, core, kinds)
}

func TestParseEvent_NonClientKindsAreGeneric(t *testing.T) {
	tests := []sdk.Event{
		sdk.NewEvent(clienttypes.EventTypeRecoverClient,
			sdk.NewAttribute(clienttypes.AttributeKeySubjectClientID, "07-tendermint-0"),
			sdk.NewAttribute(clienttypes.AttributeKeyClientType, exported.Tendermint),
		),
		sdk.NewEvent(clienttypes.EventTypeUpgradeChain),
		sdk.NewEvent(channeltypes.EventTypeChannelClosed),
		sdk.NewEvent(channeltypes.EventTypeChannelUpgradeInit),
		sdk.NewEvent(channeltypes.EventTypeChannelFlushComplete),
	}

	for _, ev := range tests {
		t.Run(ev.Type, func(t *testing.T) {
			parsed, err := source.ParseSDKEvent(ev, hostHeight, false)
			require.NoError(t, err)
			g, ok := parsed.(source.Generic)
			require.True(t, ok, "expected Generic, got %T", parsed)
			require.Equal(t, source.Kind(ev.Type), g.Kind())
		})
	}
}

func TestNewClientEvent(t *testing.T) {
	attrs := source.Attributes{ClientID: "07-tendermint-0", ClientType: exported.Tendermint}

	ev, err := source.NewClientEvent(source.KindUpgradeClient, attrs)
	require.NoError(t, err)
	require.Equal(t, source.UpgradeClient{Attributes: attrs}, ev)

	for _, k := range []source.Kind{source.KindSendPacket, source.KindRecoverClient, source.KindUpgradeChain} {
		_, err = source.NewClientEvent(k, attrs)
		require.ErrorIs(t, err, source.ErrNotClientEvent, k)
	}
}
