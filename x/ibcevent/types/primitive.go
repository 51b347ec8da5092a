package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	"github.com/cosmos/ibc-go/v8/modules/core/exported"
	"github.com/misko9/go-substrate-rpc-client/v4/scale"
)

// Height is a monotonically increasing position in a chain's history.
// Ordering is (revision_number, revision_height).
type Height struct {
	// Previously known as "epoch"
	RevisionNumber uint64 `json:"revision_number"`
	// The height of a block
	RevisionHeight uint64 `json:"revision_height"`
}

// HeightFrom copies an ibc-go height verbatim.
func HeightFrom(h clienttypes.Height) Height {
	return Height{
		RevisionNumber: h.RevisionNumber,
		RevisionHeight: h.RevisionHeight,
	}
}

func (h Height) String() string {
	return fmt.Sprintf("%d-%d", h.RevisionNumber, h.RevisionHeight)
}

func (h Height) Encode(encoder scale.Encoder) error {
	if err := encoder.Encode(h.RevisionNumber); err != nil {
		return err
	}
	return encoder.Encode(h.RevisionHeight)
}

func (h *Height) Decode(decoder scale.Decoder) error {
	if err := decoder.Decode(&h.RevisionNumber); err != nil {
		return err
	}
	return decoder.Decode(&h.RevisionHeight)
}

// ClientType identifies the consensus algorithm a light client tracks. The
// numeric value is the wire discriminant.
type ClientType uint8

const (
	ClientTypeTendermint ClientType = 1
)

// ClientTypeFrom maps an ibc-go client type. Client types without a mapping
// panic with ErrUnsupportedVariant.
func ClientTypeFrom(clientType string) ClientType {
	switch clientType {
	case exported.Tendermint:
		return ClientTypeTendermint
	default:
		panic(unsupported("client type %q", clientType))
	}
}

func (c ClientType) String() string {
	switch c {
	case ClientTypeTendermint:
		return "Tendermint"
	default:
		return fmt.Sprintf("ClientType(%d)", uint8(c))
	}
}

func (c ClientType) MarshalText() ([]byte, error) {
	switch c {
	case ClientTypeTendermint:
		return []byte(c.String()), nil
	default:
		return nil, errorsmod.Wrapf(ErrUnknownDiscriminant, "client type %d", uint8(c))
	}
}

func (c *ClientType) UnmarshalText(text []byte) error {
	switch string(text) {
	case ClientTypeTendermint.String():
		*c = ClientTypeTendermint
		return nil
	default:
		return errorsmod.Wrapf(ErrUnknownDiscriminant, "client type %q", text)
	}
}

func (c ClientType) Encode(encoder scale.Encoder) error {
	return encoder.PushByte(byte(c))
}

func (c *ClientType) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	switch ClientType(b) {
	case ClientTypeTendermint:
		*c = ClientType(b)
		return nil
	default:
		return errorsmod.Wrapf(ErrUnknownDiscriminant, "client type %d", b)
	}
}

// ClientID is an opaque light client identifier, e.g. "07-tendermint-3".
type ClientID string

// ClientIDFrom copies an ibc-go client identifier. Validation is done by
// ibc-go's identifier validators upstream.
func ClientIDFrom(clientID string) ClientID {
	return ClientID(clientID)
}

func (c ClientID) String() string { return string(c) }

func (c ClientID) Encode(encoder scale.Encoder) error {
	return encoder.Encode(string(c))
}

// maxDecodedClientIDLen bounds the allocation made for a length prefix read
// from untrusted bytes.
const maxDecodedClientIDLen = 1 << 20

func (c *ClientID) Decode(decoder scale.Decoder) error {
	n, err := decoder.DecodeUintCompact()
	if err != nil {
		return err
	}
	if !n.IsUint64() || n.Uint64() > maxDecodedClientIDLen {
		return errorsmod.Wrapf(ErrEncoding, "client id length %s exceeds %d", n, maxDecodedClientIDLen)
	}
	if n.Uint64() == 0 {
		*c = ""
		return nil
	}
	bz := make([]byte, n.Uint64())
	if err := decoder.Read(bz); err != nil {
		return err
	}
	*c = ClientID(bz)
	return nil
}

var (
	_ scale.Encodeable = Height{}
	_ scale.Decodeable = (*Height)(nil)
	_ scale.Encodeable = ClientType(0)
	_ scale.Decodeable = (*ClientType)(nil)
	_ scale.Encodeable = ClientID("")
	_ scale.Decodeable = (*ClientID)(nil)
)
