package source

import (
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	connectiontypes "github.com/cosmos/ibc-go/v8/modules/core/03-connection/types"
	channeltypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"
)

// Kind is the tag of an IBC core event, equal to the abci event type ibc-go emits.
type Kind string

// ICS-02 client events
var (
	KindCreateClient       = Kind(clienttypes.EventTypeCreateClient)
	KindUpdateClient       = Kind(clienttypes.EventTypeUpdateClient)
	KindUpgradeClient      = Kind(clienttypes.EventTypeUpgradeClient)
	KindClientMisbehaviour = Kind(clienttypes.EventTypeSubmitMisbehaviour)
	KindRecoverClient      = Kind(clienttypes.EventTypeRecoverClient)

	KindScheduleIBCSoftwareUpgrade = Kind(clienttypes.EventTypeScheduleIBCSoftwareUpgrade)
	KindUpgradeChain               = Kind(clienttypes.EventTypeUpgradeChain)
)

// ICS-03 connection handshake events
var (
	KindOpenInitConnection    = Kind(connectiontypes.EventTypeConnectionOpenInit)
	KindOpenTryConnection     = Kind(connectiontypes.EventTypeConnectionOpenTry)
	KindOpenAckConnection     = Kind(connectiontypes.EventTypeConnectionOpenAck)
	KindOpenConfirmConnection = Kind(connectiontypes.EventTypeConnectionOpenConfirm)
)

// ICS-04 channel and packet events
var (
	KindOpenInitChannel      = Kind(channeltypes.EventTypeChannelOpenInit)
	KindOpenTryChannel       = Kind(channeltypes.EventTypeChannelOpenTry)
	KindOpenAckChannel       = Kind(channeltypes.EventTypeChannelOpenAck)
	KindOpenConfirmChannel   = Kind(channeltypes.EventTypeChannelOpenConfirm)
	KindCloseInitChannel     = Kind(channeltypes.EventTypeChannelCloseInit)
	KindCloseConfirmChannel  = Kind(channeltypes.EventTypeChannelCloseConfirm)
	KindClosedChannel        = Kind(channeltypes.EventTypeChannelClosed)
	KindSendPacket           = Kind(channeltypes.EventTypeSendPacket)
	KindReceivePacket        = Kind(channeltypes.EventTypeRecvPacket)
	KindWriteAcknowledgement = Kind(channeltypes.EventTypeWriteAck)
	KindAcknowledgePacket    = Kind(channeltypes.EventTypeAcknowledgePacket)
	KindTimeoutPacket        = Kind(channeltypes.EventTypeTimeoutPacket)
)

// ICS-04 channel upgrade events
var (
	KindUpgradeInitChannel      = Kind(channeltypes.EventTypeChannelUpgradeInit)
	KindUpgradeTryChannel       = Kind(channeltypes.EventTypeChannelUpgradeTry)
	KindUpgradeAckChannel       = Kind(channeltypes.EventTypeChannelUpgradeAck)
	KindUpgradeConfirmChannel   = Kind(channeltypes.EventTypeChannelUpgradeConfirm)
	KindUpgradeOpenChannel      = Kind(channeltypes.EventTypeChannelUpgradeOpen)
	KindUpgradeTimeoutChannel   = Kind(channeltypes.EventTypeChannelUpgradeTimeout)
	KindUpgradeCancelledChannel = Kind(channeltypes.EventTypeChannelUpgradeCancel)
	KindUpgradeErrorChannel     = Kind(channeltypes.EventTypeChannelUpgradeError)
	KindFlushCompleteChannel    = Kind(channeltypes.EventTypeChannelFlushComplete)
)

// AllKinds lists every IBC core event kind in ICS order.
func AllKinds() []Kind {
	return []Kind{
		KindCreateClient,
		KindUpdateClient,
		KindUpgradeClient,
		KindClientMisbehaviour,
		KindRecoverClient,
		KindScheduleIBCSoftwareUpgrade,
		KindUpgradeChain,
		KindOpenInitConnection,
		KindOpenTryConnection,
		KindOpenAckConnection,
		KindOpenConfirmConnection,
		KindOpenInitChannel,
		KindOpenTryChannel,
		KindOpenAckChannel,
		KindOpenConfirmChannel,
		KindCloseInitChannel,
		KindCloseConfirmChannel,
		KindClosedChannel,
		KindSendPacket,
		KindReceivePacket,
		KindWriteAcknowledgement,
		KindAcknowledgePacket,
		KindTimeoutPacket,
		KindUpgradeInitChannel,
		KindUpgradeTryChannel,
		KindUpgradeAckChannel,
		KindUpgradeConfirmChannel,
		KindUpgradeOpenChannel,
		KindUpgradeTimeoutChannel,
		KindUpgradeCancelledChannel,
		KindUpgradeErrorChannel,
		KindFlushCompleteChannel,
	}
}

// IsIBCEvent reports whether eventType is one of the IBC core event types.
func IsIBCEvent(eventType string) bool {
	for _, k := range AllKinds() {
		if string(k) == eventType {
			return true
		}
	}
	return false
}

func isClientKind(k Kind) bool {
	switch k {
	case KindCreateClient, KindUpdateClient, KindUpgradeClient, KindClientMisbehaviour:
		return true
	default:
		return false
	}
}

func (k Kind) String() string { return string(k) }
