package source

import (
	"encoding/base64"
	"strings"

	errorsmod "cosmossdk.io/errors"
	abci "github.com/cometbft/cometbft/abci/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	host "github.com/cosmos/ibc-go/v8/modules/core/24-host"
	"github.com/cosmos/ibc-go/v8/modules/core/exported"
)

// HostHeight returns the height of the host chain at blockHeight. The revision
// number is taken from the chain id ("{name}-{revision}"), zero otherwise.
func HostHeight(chainID string, blockHeight int64) (clienttypes.Height, error) {
	if blockHeight < 0 {
		return clienttypes.Height{}, errorsmod.Wrapf(ErrMalformedEvent, "negative block height %d", blockHeight)
	}
	return clienttypes.NewHeight(clienttypes.ParseChainID(chainID), uint64(blockHeight)), nil
}

// ParseSDKEvent is ParseEvent for events collected from an sdk.EventManager.
func ParseSDKEvent(ev sdk.Event, hostHeight clienttypes.Height, base64Attributes bool) (Event, error) {
	return ParseEvent(abci.Event(ev), hostHeight, base64Attributes)
}

// ParseEvent turns a raw abci event emitted by ibc-go into a typed Event.
// Events that are not IBC core events return ErrNotIBCEvent; events with
// missing or invalid attributes return ErrMalformedEvent.
func ParseEvent(ev abci.Event, hostHeight clienttypes.Height, base64Attributes bool) (Event, error) {
	if !IsIBCEvent(ev.Type) {
		return nil, errorsmod.Wrapf(ErrNotIBCEvent, "event type %q", ev.Type)
	}
	kind := Kind(ev.Type)

	attrs, err := attributeMap(ev.Attributes, base64Attributes)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "event %s", kind)
	}

	if !isClientKind(kind) {
		return Generic{Type: kind, Height: hostHeight, Attributes: attrs}, nil
	}

	clientAttrs, err := parseClientAttributes(kind, attrs, hostHeight)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "event %s", kind)
	}
	return NewClientEvent(kind, clientAttrs)
}

func attributeMap(attrs []abci.EventAttribute, base64Attributes bool) (map[string]string, error) {
	out := make(map[string]string, len(attrs))
	for _, attr := range attrs {
		key, value := attr.Key, attr.Value
		if base64Attributes {
			k, err := base64.StdEncoding.DecodeString(key)
			if err != nil {
				return nil, errorsmod.Wrapf(ErrMalformedEvent, "attribute key %q is not base64: %s", key, err)
			}
			v, err := base64.StdEncoding.DecodeString(value)
			if err != nil {
				return nil, errorsmod.Wrapf(ErrMalformedEvent, "attribute %s value is not base64: %s", k, err)
			}
			key, value = string(k), string(v)
		}
		out[key] = value
	}
	return out, nil
}

func parseClientAttributes(kind Kind, attrs map[string]string, hostHeight clienttypes.Height) (Attributes, error) {
	clientID := attrs[clienttypes.AttributeKeyClientID]
	if err := host.ClientIdentifierValidator(clientID); err != nil {
		return Attributes{}, errorsmod.Wrapf(ErrMalformedEvent, "invalid %s %q: %s", clienttypes.AttributeKeyClientID, clientID, err)
	}

	clientType := attrs[clienttypes.AttributeKeyClientType]
	if clientType == "" {
		return Attributes{}, errorsmod.Wrapf(ErrMalformedEvent, "missing %s", clienttypes.AttributeKeyClientType)
	}
	if clientID != exported.Localhost {
		idType, _, err := clienttypes.ParseClientIdentifier(clientID)
		if err != nil {
			return Attributes{}, errorsmod.Wrapf(ErrMalformedEvent, "invalid %s %q: %s", clienttypes.AttributeKeyClientID, clientID, err)
		}
		if idType != clientType {
			return Attributes{}, errorsmod.Wrapf(ErrMalformedEvent, "client type %q does not match client id %q", clientType, clientID)
		}
	}

	consensusHeight, err := consensusHeightOf(kind, attrs)
	if err != nil {
		return Attributes{}, err
	}

	return Attributes{
		Height:          hostHeight,
		ClientID:        clientID,
		ClientType:      clientType,
		ConsensusHeight: consensusHeight,
	}, nil
}

// consensusHeightOf reads consensus_height, falling back to the first entry of
// consensus_heights. Misbehaviour events carry neither.
func consensusHeightOf(kind Kind, attrs map[string]string) (clienttypes.Height, error) {
	raw := attrs[clienttypes.AttributeKeyConsensusHeight]
	if raw == "" {
		if heights := attrs[clienttypes.AttributeKeyConsensusHeights]; heights != "" {
			raw = strings.Split(heights, ",")[0]
		}
	}
	if raw == "" {
		if kind == KindClientMisbehaviour {
			return clienttypes.ZeroHeight(), nil
		}
		return clienttypes.Height{}, errorsmod.Wrapf(ErrMalformedEvent, "missing %s", clienttypes.AttributeKeyConsensusHeight)
	}

	height, err := clienttypes.ParseHeight(raw)
	if err != nil {
		return clienttypes.Height{}, errorsmod.Wrapf(ErrMalformedEvent, "invalid %s %q: %s", clienttypes.AttributeKeyConsensusHeight, raw, err)
	}
	return height, nil
}
