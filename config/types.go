package config

// Config configures the ibc event translator.
type Config struct {
	// Log Config
	LogLevel   int    `json:"log_level"`   // e.g., 0 = debug, 1 = info, etc.
	LogFormat  string `json:"log_format"`  // "json" or "console"
	LogSampler bool   `json:"log_sampler"` // if true, samples logs (e.g., 1 in 5)

	// ChainID of the host chain. The revision number of emitted heights is parsed from it.
	ChainID string `json:"chain_id"`

	// Base64Attributes is set for CometBFT < 0.37 nodes, which base64-encode event attribute keys and values.
	Base64Attributes bool `json:"base64_attributes"`

	// SkipMalformed drops IBC events with missing or invalid attributes instead of failing the block.
	SkipMalformed bool `json:"skip_malformed"`
}
