package messaging

import "sort"

// formatRegistry maps channel ids to their format functions. Entries are only
// ever overwritten, never removed.
type formatRegistry map[string]FormatFunc

func (r formatRegistry) get(id string) (FormatFunc, bool) {
	format, ok := r[id]
	return format, ok
}

func (r formatRegistry) set(id string, format FormatFunc) {
	r[id] = format
}

// channelEntry is the callable installed for a channel id. handler is nil for
// placeholders.
type channelEntry struct {
	handler Handler
	call    Callable
}

// newChannelEntry composes a handler with an optional format
func newChannelEntry(handler Handler, format FormatFunc) channelEntry {
	switch {
	case handler == nil:
		return channelEntry{call: noop}
	case format == nil:
		return channelEntry{
			handler: handler,
			call:    func(args ...any) { handler(payloadOf(args)) },
		}
	default:
		return channelEntry{
			handler: handler,
			call:    func(args ...any) { handler(format(args...)) },
		}
	}
}

// channelTable maps channel ids to the entry dispatch calls
type channelTable map[string]channelEntry

func (t channelTable) get(id string) (channelEntry, bool) {
	entry, ok := t[id]
	return entry, ok
}

func (t channelTable) set(id string, entry channelEntry) {
	t[id] = entry
}

// reset replaces the entry of id with a placeholder
func (t channelTable) reset(id string) {
	t[id] = newChannelEntry(nil, nil)
}

func (t channelTable) ids() []string {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
