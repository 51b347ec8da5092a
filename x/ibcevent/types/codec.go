package types

import (
	"bytes"

	errorsmod "cosmossdk.io/errors"
	"github.com/misko9/go-substrate-rpc-client/v4/scale"
)

// Marshal SCALE-encodes v.
func Marshal(v scale.Encodeable) ([]byte, error) {
	var buf bytes.Buffer
	if err := scale.NewEncoder(&buf).Encode(v); err != nil {
		return nil, errorsmod.Wrapf(ErrEncoding, "%T: %s", v, err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes bz into v. All of bz must be consumed. Unknown enum
// discriminants return ErrUnknownDiscriminant.
func Unmarshal(bz []byte, v scale.Decodeable) error {
	r := bytes.NewReader(bz)
	if err := scale.NewDecoder(r).Decode(v); err != nil {
		return errorsmod.Wrapf(err, "decode %T", v)
	}
	if r.Len() != 0 {
		return errorsmod.Wrapf(ErrTrailingBytes, "%d bytes left decoding %T", r.Len(), v)
	}
	return nil
}

// MarshalEvent encodes ev as the ledger event enum: one index byte followed
// by the variant payload.
func MarshalEvent(ev SubstrateEvent) ([]byte, error) {
	if ev == nil {
		return nil, errorsmod.Wrap(ErrEncoding, "nil event")
	}
	var buf bytes.Buffer
	enc := scale.NewEncoder(&buf)
	if err := enc.PushByte(byte(ev.EventIndex())); err != nil {
		return nil, errorsmod.Wrapf(ErrEncoding, "event index: %s", err)
	}
	if err := enc.Encode(ev); err != nil {
		return nil, errorsmod.Wrapf(ErrEncoding, "%T: %s", ev, err)
	}
	return buf.Bytes(), nil
}

// UnmarshalEvent decodes a ledger event enum produced by MarshalEvent.
func UnmarshalEvent(bz []byte) (SubstrateEvent, error) {
	r := bytes.NewReader(bz)
	dec := scale.NewDecoder(r)

	index, err := dec.ReadOneByte()
	if err != nil {
		return nil, errorsmod.Wrap(err, "decode event index")
	}

	var ev SubstrateEvent
	for _, m := range eventMappings {
		if m.index == EventIndex(index) {
			if ev, err = m.decode(*dec); err != nil {
				return nil, errorsmod.Wrapf(err, "decode event %d", index)
			}
			break
		}
	}
	if ev == nil {
		return nil, errorsmod.Wrapf(ErrUnknownDiscriminant, "event index %d", index)
	}
	if r.Len() != 0 {
		return nil, errorsmod.Wrapf(ErrTrailingBytes, "%d bytes left decoding event %d", r.Len(), index)
	}
	return ev, nil
}
