// Package config holds the runtime settings for the bridge, bound to CLI
// flags at startup.
package config

var (
	// ListenAddr is the HTTP/websocket listen address.
	ListenAddr = ":8099"

	// RemoteWidth and RemoteHeight are the browser viewport dimensions.
	// Decoded coordinates are scaled from this space to the local screen
	// before injection. Zero means assume the local screen size.
	RemoteWidth  int
	RemoteHeight int

	// NoInject disables local input injection; events are still decoded and
	// dispatched, which is useful for inspecting a client.
	NoInject bool

	// Debug enables debug logging.
	Debug bool
)
