package types

import (
	"github.com/misko9/go-substrate-rpc-client/v4/scale"

	"github.com/cdot-network/substrate-ibc/x/ibcevent/source"
)

// EventIndex is the wire index of a SubstrateEvent variant.
type EventIndex uint8

const (
	EventIndexCreateClient EventIndex = 0
)

// SubstrateEvent is an IBC event in the shape stored by the ledger event log.
// The set of variants is closed; Encode writes the variant payload only, the
// index is written by MarshalEvent.
type SubstrateEvent interface {
	scale.Encodeable
	EventIndex() EventIndex

	isSubstrateEvent()
}

func (CreateClient) EventIndex() EventIndex { return EventIndexCreateClient }
func (CreateClient) isSubstrateEvent()      {}

var _ SubstrateEvent = CreateClient{}

// eventMapping is one row of the source kind -> ledger event table.
type eventMapping struct {
	kind    source.Kind
	index   EventIndex
	convert func(source.Event) SubstrateEvent
	decode  func(scale.Decoder) (SubstrateEvent, error)
}

// eventMappings is the complete list of event kinds the ledger schema can
// represent. A new variant is added here together with its type.
var eventMappings = []eventMapping{
	{
		kind:  source.KindCreateClient,
		index: EventIndexCreateClient,
		convert: func(ev source.Event) SubstrateEvent {
			return CreateClientFrom(ev)
		},
		decode: func(decoder scale.Decoder) (SubstrateEvent, error) {
			var ev CreateClient
			err := decoder.Decode(&ev)
			return ev, err
		},
	},
}

// SubstrateEventFrom converts a source event into its ledger counterpart.
// Event kinds without a mapping panic with ErrUnsupportedVariant.
func SubstrateEventFrom(ev source.Event) SubstrateEvent {
	if ev == nil {
		panic(unsupported("nil event"))
	}
	for _, m := range eventMappings {
		if m.kind == ev.Kind() {
			return m.convert(ev)
		}
	}
	panic(unsupported("event kind %s", ev.Kind()))
}

// IsSupported reports whether events of kind k can be converted.
func IsSupported(k source.Kind) bool {
	for _, m := range eventMappings {
		if m.kind == k {
			return true
		}
	}
	return false
}

// SupportedKinds returns the mapped source event kinds in table order.
func SupportedKinds() []source.Kind {
	kinds := make([]source.Kind, 0, len(eventMappings))
	for _, m := range eventMappings {
		kinds = append(kinds, m.kind)
	}
	return kinds
}
