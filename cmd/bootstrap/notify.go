package bootstrap

import (
	"context"

	"purchase-approval/internal/infra/notify"
	"purchase-approval/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		notify.NewSender,
		notify.NewDispatcher,
		func(d *notify.Dispatcher) commands.Notifier { return d },
	),
	fx.Invoke(registerDispatcher),
)

// registerDispatcher drains queued emails on shutdown before the pool closes.
func registerDispatcher(lc fx.Lifecycle, d *notify.Dispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})
}
