package types

const (
	// ModuleName defines the module name and error codespace
	ModuleName = "ibcevent"
)
