// Package cli wires flags, the handler registry, and the websocket server
// into the glint-bridge command.
package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/glintkit/glint-events/pkg/bind"
	"github.com/glintkit/glint-events/pkg/config"
	"github.com/glintkit/glint-events/pkg/inject"
	"github.com/glintkit/glint-events/pkg/internal/log"
	"github.com/glintkit/glint-events/pkg/session"
)

// RootCmd is the entry point for the glint-bridge binary.
var RootCmd = &cobra.Command{
	Use:   "glint-bridge",
	Short: "Decode browser pointer events and replay them as local input",
	RunE:  run,
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVarP(&config.ListenAddr, "listen", "l", config.ListenAddr, "Address to listen for browser connections on.")
	flags.IntVarP(&config.RemoteWidth, "remote-width", "W", 0, "Remote viewport width for coordinate scaling (0 = local screen size).")
	flags.IntVarP(&config.RemoteHeight, "remote-height", "H", 0, "Remote viewport height for coordinate scaling (0 = local screen size).")
	flags.BoolVarP(&config.NoInject, "no-inject", "n", false, "Decode and log events without injecting local input.")
	flags.BoolVarP(&config.Debug, "debug", "d", false, "Enable debug logging.")
}

func run(cmd *cobra.Command, args []string) error {
	if config.Debug {
		// Decode failures are dropped silently by design; surface them in
		// debug runs so malformed clients are diagnosable.
		bind.OnDecodeError = func(event string, err error) {
			log.Debugf("dropped %s event: %s", event, err)
		}
	}

	reg := session.NewRegistry()
	consume := func(msg any) { log.Debugf("message: %#v", msg) }

	if !config.NoInject {
		injector := inject.New(config.RemoteWidth, config.RemoteHeight)
		reg.Bind(injector.Bindings()...)
		consume = injector.Consume
	} else {
		// Still bind the full surface so clients get their flag acks.
		reg.Bind((&inject.Injector{}).Bindings()...)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", session.WSHandler(reg, consume))

	log.Infof("glint-bridge listening on %s", config.ListenAddr)
	return http.ListenAndServe(config.ListenAddr, mux)
}
