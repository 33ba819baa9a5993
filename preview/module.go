package preview

import (
	"log/slog"

	"go.uber.org/fx"
)

// NewModule creates an Fx module that serves dir over HTTP on addr for the
// lifetime of the application. A fatal serve error triggers application
// shutdown.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(addr string, dir string) fx.Option {
	return fx.Module("preview",
		fx.Invoke(func(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner) error {
			srv, err := NewServer(Config{Address: addr, Dir: dir}, func() {
				shutdownErr := shutdowner.Shutdown()
				if shutdownErr != nil {
					slog.Error("failed to trigger shutdown", "error", shutdownErr)
				}
			})
			if err != nil {
				return err
			}

			lifecycle.Append(fx.Hook{
				OnStart: srv.Start,
				OnStop:  srv.Stop,
			})

			return nil
		}),
	)
}
