package types

import (
	"fmt"

	"github.com/misko9/go-substrate-rpc-client/v4/scale"

	"github.com/cdot-network/substrate-ibc/x/ibcevent/source"
)

// Attributes is the payload of the ICS-02 client events.
type Attributes struct {
	Height          Height     `json:"height"`
	ClientID        ClientID   `json:"client_id"`
	ClientType      ClientType `json:"client_type"`
	ConsensusHeight Height     `json:"consensus_height"`
}

// AttributesFrom converts each field of the source attributes independently.
func AttributesFrom(a source.Attributes) Attributes {
	return Attributes{
		Height:          HeightFrom(a.Height),
		ClientID:        ClientIDFrom(a.ClientID),
		ClientType:      ClientTypeFrom(a.ClientType),
		ConsensusHeight: HeightFrom(a.ConsensusHeight),
	}
}

func (a Attributes) String() string {
	return fmt.Sprintf(
		"height: %s, client_id: %s, client_type: %s, consensus_height: %s",
		a.Height, a.ClientID, a.ClientType, a.ConsensusHeight,
	)
}

func (a Attributes) Encode(encoder scale.Encoder) error {
	for _, field := range []interface{}{a.Height, a.ClientID, a.ClientType, a.ConsensusHeight} {
		if err := encoder.Encode(field); err != nil {
			return err
		}
	}
	return nil
}

func (a *Attributes) Decode(decoder scale.Decoder) error {
	for _, field := range []interface{}{&a.Height, &a.ClientID, &a.ClientType, &a.ConsensusHeight} {
		if err := decoder.Decode(field); err != nil {
			return err
		}
	}
	return nil
}

// CreateClient is emitted when a light client is created.
type CreateClient struct {
	Attributes Attributes `json:"attributes"`
}

// CreateClientFrom converts a source create_client event. Any other event,
// including a nil *source.CreateClient, panics with ErrUnsupportedVariant.
func CreateClientFrom(ev source.Event) CreateClient {
	switch ev := ev.(type) {
	case source.CreateClient:
		return CreateClient{Attributes: AttributesFrom(ev.Attributes)}
	case *source.CreateClient:
		if ev != nil {
			return CreateClient{Attributes: AttributesFrom(ev.Attributes)}
		}
		panic(unsupported("nil create_client event"))
	default:
		panic(unsupported("%T is not a create_client event", ev))
	}
}

func (c CreateClient) Encode(encoder scale.Encoder) error {
	return encoder.Encode(c.Attributes)
}

func (c *CreateClient) Decode(decoder scale.Decoder) error {
	return decoder.Decode(&c.Attributes)
}
