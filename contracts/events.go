package contracts

// ErrorEvent is published on the error channel when a registration fails validation
type ErrorEvent struct {
	Sender string `json:"sender"`
	Method string `json:"method"`
	Type   string `json:"type"`
	Text   string `json:"text"`
}

// LoadEvent announces that the default instance is ready
type LoadEvent struct {
	Sender  string `json:"sender"`
	Type    string `json:"type"`
	Loaded  bool   `json:"loaded"`
	Version string `json:"version"`
}

// NewLoadEvent creates the load announcement for the given version
func NewLoadEvent(version string) LoadEvent {
	return LoadEvent{
		Sender:  DefaultSender,
		Type:    TypeInfo,
		Loaded:  true,
		Version: version,
	}
}
