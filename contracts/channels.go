package contracts

// Well-known channel ids
const (
	ChannelInfo  = "info"
	ChannelError = "error"
)

// Operation names, reported as ErrorEvent.Method
const (
	OpOn     = "on"
	OpOff    = "off"
	OpFormat = "format"
)

// Payload type tags
const (
	TypeInfo  = "info"
	TypeError = "error"
)

// DefaultSender is the sender name stamped on framework payloads
const DefaultSender = "MessageEvents"

// MaxIDLength is the maximum length of a channel id
const MaxIDLength = 48

// ReservedIDs can never be used as channel ids
var ReservedIDs = []string{"constructor", OpOff, OpOn, OpFormat}

// IsReserved reports whether id is one of the reserved names
func IsReserved(id string) bool {
	for _, reserved := range ReservedIDs {
		if id == reserved {
			return true
		}
	}
	return false
}
