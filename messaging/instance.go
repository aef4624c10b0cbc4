package messaging

import (
	"log/slog"
	"sync"

	"github.com/glimte/msgevents-go/contracts"
	"github.com/google/uuid"
)

// Instance owns a Format Registry and a Channel Table. The zero value is not
// usable; create instances with New.
type Instance struct {
	id             string
	formats        formatRegistry
	channels       channelTable
	mu             sync.RWMutex
	logger         *slog.Logger
	sender         string
	middleware     []Middleware
	defaultFormats bool
}

// Option configures an Instance
type Option func(*Instance)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(i *Instance) {
		i.logger = logger
	}
}

// WithSender sets the sender name stamped on error payloads built by the
// default error format
func WithSender(sender string) Option {
	return func(i *Instance) {
		i.sender = sender
	}
}

// WithDefaultFormats pre-formats the info channel with IdentityFormat and the
// error channel with ErrorFormat
func WithDefaultFormats() Option {
	return func(i *Instance) {
		i.defaultFormats = true
	}
}

// New creates a new instance with empty registries
func New(options ...Option) *Instance {
	i := &Instance{
		id:       uuid.NewString(),
		formats:  make(formatRegistry),
		channels: make(channelTable),
		logger:   slog.Default(),
		sender:   contracts.DefaultSender,
	}

	for _, opt := range options {
		opt(i)
	}

	// The error format has to exist before any validation failure is reported
	if i.defaultFormats {
		i.Format(contracts.ChannelInfo, IdentityFormat).
			Format(contracts.ChannelError, ErrorFormat(i.sender))
	}

	return i
}

// ID returns the unique id of the instance
func (i *Instance) ID() string {
	return i.id
}

// Format stores a format function for a channel id. A handler already installed
// on the id is recomposed with the new format; otherwise a placeholder is
// installed so the channel can be invoked before a handler exists.
func (i *Instance) Format(id any, format any) *Instance {
	channel, err := validID(contracts.OpFormat, id)
	if err != nil {
		i.report(contracts.OpFormat, err)
		return i
	}
	fn, err := validFormat(contracts.OpFormat, format)
	if err != nil {
		i.report(contracts.OpFormat, err)
		return i
	}

	i.mu.Lock()
	i.formats.set(channel, fn)
	// Capture the installed handler before the slot is overwritten
	existing, ok := i.channels.get(channel)
	if ok {
		i.channels.set(channel, newChannelEntry(existing.handler, fn))
	} else {
		i.channels.reset(channel)
	}
	i.mu.Unlock()

	i.logger.Debug("installed channel format",
		"instance", i.id,
		"channel", channel,
		"handled", ok && existing.handler != nil,
	)

	return i
}

// On installs the handler for a channel id, replacing any previous entry. The
// handler receives the output of the channel's format when one is registered.
func (i *Instance) On(id any, handler any) *Instance {
	channel, err := validID(contracts.OpOn, id)
	if err != nil {
		i.report(contracts.OpOn, err)
		return i
	}
	h, err := validHandler(contracts.OpOn, handler)
	if err != nil {
		i.report(contracts.OpOn, err)
		return i
	}

	i.mu.Lock()
	format, formatted := i.formats.get(channel)
	i.channels.set(channel, newChannelEntry(h, format))
	i.mu.Unlock()

	i.logger.Debug("installed channel handler",
		"instance", i.id,
		"channel", channel,
		"formatted", formatted,
	)

	return i
}

// Off resets channels to no-op placeholders. Without ids every known channel is
// reset. Formats are kept, so a handler installed later is formatted again.
func (i *Instance) Off(ids ...string) *Instance {
	if len(ids) == 0 {
		i.mu.Lock()
		reset := i.channels.ids()
		for _, id := range reset {
			i.channels.reset(id)
		}
		i.mu.Unlock()

		i.logger.Debug("reset all channels", "instance", i.id, "count", len(reset))
		return i
	}

	for _, id := range ids {
		if err := noInternalID(id); err != nil {
			i.report(contracts.OpOff, err)
			continue
		}

		i.mu.Lock()
		_, ok := i.channels.get(id)
		if ok {
			i.channels.reset(id)
		}
		i.mu.Unlock()

		if ok {
			i.logger.Debug("reset channel", "instance", i.id, "channel", id)
		}
	}

	return i
}

// Invoke calls the entry installed for id with args. Invoking an id that was
// never registered or formatted does nothing.
func (i *Instance) Invoke(id string, args ...any) {
	i.mu.RLock()
	entry, ok := i.channels.get(id)
	i.mu.RUnlock()

	if !ok {
		return
	}

	i.buildMiddlewareChain(id, entry.call)(args...)
}

// Channel returns a callable bound to id. The entry is looked up on every call,
// so later registrations are honored.
func (i *Instance) Channel(id string) Callable {
	return func(args ...any) {
		i.Invoke(id, args...)
	}
}

// Handles reports whether a handler is installed for id
func (i *Instance) Handles(id string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()

	entry, ok := i.channels.get(id)
	return ok && entry.handler != nil
}

// HasFormat reports whether a format is registered for id
func (i *Instance) HasFormat(id string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()

	_, ok := i.formats.get(id)
	return ok
}

// Channels returns the sorted ids that have an entry in the channel table
func (i *Instance) Channels() []string {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return i.channels.ids()
}

// report publishes a validation failure on the instance's own error channel
func (i *Instance) report(op string, err error) {
	if i.HasFormat(contracts.ChannelError) {
		i.Invoke(contracts.ChannelError, op, err.Error())
		return
	}
	// Unformatted error channels still receive the structured event
	i.Invoke(contracts.ChannelError, ErrorFormat(i.sender)(op, err.Error()))
}
