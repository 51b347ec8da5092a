package source

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
)

// Event is a typed IBC core event as emitted by ibc-go.
type Event interface {
	Kind() Kind
}

// Attributes is the payload shared by the ICS-02 client events.
type Attributes struct {
	// Height is the height of the host chain at which the event was emitted.
	Height          clienttypes.Height
	ClientID        string
	ClientType      string
	ConsensusHeight clienttypes.Height
}

func (a Attributes) String() string {
	return fmt.Sprintf(
		"height: %s, client_id: %s, client_type: %s, consensus_height: %s",
		a.Height, a.ClientID, a.ClientType, a.ConsensusHeight,
	)
}

type CreateClient struct {
	Attributes Attributes
}

type UpdateClient struct {
	Attributes Attributes
}

type UpgradeClient struct {
	Attributes Attributes
}

type ClientMisbehaviour struct {
	Attributes Attributes
}

// Generic carries any IBC core event other than the four client events. Its
// payload is kept as the raw attribute map.
type Generic struct {
	Type       Kind
	Height     clienttypes.Height
	Attributes map[string]string
}

func (CreateClient) Kind() Kind       { return KindCreateClient }
func (UpdateClient) Kind() Kind       { return KindUpdateClient }
func (UpgradeClient) Kind() Kind      { return KindUpgradeClient }
func (ClientMisbehaviour) Kind() Kind { return KindClientMisbehaviour }
func (g Generic) Kind() Kind          { return g.Type }

var (
	_ Event = CreateClient{}
	_ Event = UpdateClient{}
	_ Event = UpgradeClient{}
	_ Event = ClientMisbehaviour{}
	_ Event = Generic{}
)

// NewClientEvent wraps attrs in the client event type matching kind.
func NewClientEvent(kind Kind, attrs Attributes) (Event, error) {
	switch kind {
	case KindCreateClient:
		return CreateClient{Attributes: attrs}, nil
	case KindUpdateClient:
		return UpdateClient{Attributes: attrs}, nil
	case KindUpgradeClient:
		return UpgradeClient{Attributes: attrs}, nil
	case KindClientMisbehaviour:
		return ClientMisbehaviour{Attributes: attrs}, nil
	default:
		return nil, errorsmod.Wrapf(ErrNotClientEvent, "kind %s", kind)
	}
}
