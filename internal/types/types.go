package types

// ConnKind identifies which transport family a session arrived on.
// Legacy connections speak the 8-bit PETSCII byte stream; framed
// connections exchange discrete UTF-8 text messages.
type ConnKind int

const (
	// ConnLegacy is the raw line-oriented socket used by 8-bit terminal hardware.
	ConnLegacy ConnKind = iota
	// ConnFramed is the message-framed socket (websocket, SSH) used by modern terminals.
	ConnFramed
)

// String returns the wire-format name of the connection kind.
func (k ConnKind) String() string {
	switch k {
	case ConnLegacy:
		return "legacy"
	case ConnFramed:
		return "framed"
	default:
		return "unknown"
	}
}
