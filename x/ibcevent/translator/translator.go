package translator

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	abci "github.com/cometbft/cometbft/abci/types"
	"github.com/rs/zerolog"

	"github.com/cdot-network/substrate-ibc/config"
	"github.com/cdot-network/substrate-ibc/x/ibcevent/source"
	"github.com/cdot-network/substrate-ibc/x/ibcevent/types"
)

// Record is one IBC event of a block in its ledger form.
type Record struct {
	// Index is the position of the event in the block's event list.
	Index   int
	Kind    source.Kind
	Event   types.SubstrateEvent
	Encoded []byte
}

// Translator turns the abci events of a block into ledger events. It holds
// no mutable state and is safe for concurrent use.
type Translator struct {
	cfg    config.Config
	logger zerolog.Logger
}

// New returns a Translator for cfg.
func New(cfg config.Config, logger zerolog.Logger) (*Translator, error) {
	if err := config.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Translator{
		cfg: cfg,
		logger: logger.With().
			Str("component", "ibcevent_translator").
			Str("chain_id", cfg.ChainID).
			Logger(),
	}, nil
}

// Translate converts the event at position index of the block at blockHeight.
// The boolean is false when the event is not an IBC core event, or is a
// malformed one and the translator is configured to skip those.
//
// IBC events that the ledger schema cannot represent halt the translation
// with a panic carrying types.ErrUnsupportedVariant.
func (t *Translator) Translate(blockHeight int64, index int, ev abci.Event) (Record, bool, error) {
	hostHeight, err := source.HostHeight(t.cfg.ChainID, blockHeight)
	if err != nil {
		return Record{}, false, err
	}

	parsed, err := source.ParseEvent(ev, hostHeight, t.cfg.Base64Attributes)
	switch {
	case errorsmod.IsOf(err, source.ErrNotIBCEvent):
		t.logger.Debug().
			Int64("block_height", blockHeight).
			Int("index", index).
			Str("type", ev.Type).
			Msg("skipping non-ibc event")
		return Record{}, false, nil
	case err != nil && t.cfg.SkipMalformed:
		t.logger.Warn().
			Err(err).
			Int64("block_height", blockHeight).
			Int("index", index).
			Msg("skipping malformed ibc event")
		return Record{}, false, nil
	case err != nil:
		return Record{}, false, errorsmod.Wrapf(err, "block %d event %d", blockHeight, index)
	}

	out := t.convert(blockHeight, index, parsed)

	bz, err := types.MarshalEvent(out)
	if err != nil {
		return Record{}, false, errorsmod.Wrapf(err, "block %d event %d", blockHeight, index)
	}

	t.logger.Debug().
		Int64("block_height", blockHeight).
		Int("index", index).
		Str("kind", parsed.Kind().String()).
		Hex("encoded", bz).
		Msg("translated ibc event")

	return Record{
		Index:   index,
		Kind:    parsed.Kind(),
		Event:   out,
		Encoded: bz,
	}, true, nil
}

// TranslateBlock converts every IBC event of a block, in order.
func (t *Translator) TranslateBlock(blockHeight int64, events []abci.Event) ([]Record, error) {
	records := make([]Record, 0, len(events))
	for i, ev := range events {
		rec, ok, err := t.Translate(blockHeight, i, ev)
		if err != nil {
			return nil, err
		}
		if ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

// convert logs the unsupported variant fault before letting it propagate.
func (t *Translator) convert(blockHeight int64, index int, ev source.Event) types.SubstrateEvent {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok && types.IsUnsupportedVariant(err) {
				t.logger.Error().
					Err(err).
					Int64("block_height", blockHeight).
					Int("index", index).
					Str("kind", ev.Kind().String()).
					Strs("supported_kinds", kindStrings(types.SupportedKinds())).
					Msg("ibc event has no ledger mapping, halting")
			}
			panic(r)
		}
	}()
	return types.SubstrateEventFrom(ev)
}

func kindStrings(kinds []source.Kind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.String()
	}
	return out
}
