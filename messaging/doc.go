// Package messaging implements named, preformatted message channels.
//
// An Instance owns a Format Registry and a Channel Table. Every channel id carries
// at most one handler; registering another handler on the same id replaces the
// previous one. A format function registered on an id shapes the raw dispatch
// arguments into the single payload the handler receives:
//   - On: installs a handler, composed with the channel's format when one exists
//   - Format: stores a format and recomposes the installed handler, if any
//   - Off: resets channels to no-op placeholders, keeping their formats
//   - Invoke / Channel: synchronous dispatch through the installed entry
//
// Registration arguments are validated, and failures are published on the
// instance's own "error" channel instead of being returned:
//
//	events := messaging.New(messaging.WithDefaultFormats())
//	events.On("error", func(payload any) {
//		fmt.Println(payload.(contracts.ErrorEvent).Text)
//	})
//	events.On("on", func(any) {}) // prints "internal method names are not allowed!"
//
//	events.Format("greet", func(name any) any { return "hello " + name.(string) })
//	events.On("greet", func(payload any) { fmt.Println(payload) })
//	events.Invoke("greet", "world") // prints "hello world"
//
// Dispatch runs on the caller's goroutine. Panics raised by handlers or formats
// propagate to the caller of Invoke.
package messaging
