// Package contracts defines the shared vocabulary of the message events framework.
//
// It holds the well-known channel names, the reserved names that can never be used
// as channel ids, the payloads published by the framework itself and the catalog of
// validation error messages:
//   - ChannelInfo / ChannelError: the two channels pre-formatted on the default instance
//   - ErrorEvent: payload delivered on the error channel when a validation check fails
//   - LoadEvent: one-time announcement delivered on the info channel of the default instance
//   - ValidationError: typed error carrying the failed operation and the ErrorKind
//
// Validation failures are never returned to callers of the registration API; they are
// published as ErrorEvent payloads. ValidationError exists so that the validators and
// tooling can reason about failures with errors.Is and errors.As.
package contracts
