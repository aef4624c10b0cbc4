// Package msgevents provides (pre)formatted message events through a shared
// default instance.
//
// The default instance is created when the package is initialized, with the
// "info" channel formatted as identity and the "error" channel formatted to
// contracts.ErrorEvent. Validation failures of On and Off are published on the
// "error" channel, so register an error handler first to observe them:
//
//	msgevents.On("error", func(payload any) {
//		event := payload.(contracts.ErrorEvent)
//		log.Printf("%s: %s", event.Method, event.Text)
//	})
//	msgevents.On("info", func(payload any) { log.Println(payload) })
//	msgevents.Default().Invoke("info", "service started")
//
// Independent instances are created with messaging.New.
package msgevents
