package messaging

// Callable is the entry installed in the channel table for a channel id
type Callable func(args ...any)

// Handler consumes the (possibly formatted) payload of a channel
type Handler func(payload any)

// FormatFunc turns raw dispatch arguments into a single payload
type FormatFunc func(args ...any) any

// noop is the placeholder installed for channels without a handler
func noop(...any) {}

// asHandler converts the supported handler shapes to a Handler
func asHandler(fn any) (Handler, bool) {
	switch h := fn.(type) {
	case Handler:
		return h, h != nil
	case func(any):
		return h, h != nil
	default:
		return nil, false
	}
}

// asFormat converts the supported format shapes to a FormatFunc
func asFormat(fn any) (FormatFunc, bool) {
	switch f := fn.(type) {
	case FormatFunc:
		return f, f != nil
	case func(...any) any:
		return f, f != nil
	case func(any) any:
		if f == nil {
			return nil, false
		}
		return func(args ...any) any {
			if len(args) == 0 {
				return f(nil)
			}
			return f(args[0])
		}, true
	case func() any:
		if f == nil {
			return nil, false
		}
		return func(...any) any { return f() }, true
	default:
		return nil, false
	}
}

// payloadOf collapses raw arguments into the payload of an unformatted channel
func payloadOf(args []any) any {
	switch len(args) {
	case 0:
		return nil
	case 1:
		return args[0]
	default:
		return args
	}
}
