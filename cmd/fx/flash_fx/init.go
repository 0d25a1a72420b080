package flash_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"catalog/pkg/flash"
)

const sweepInterval = time.Minute

var Module = fx.Provide(provideFlashStore)

func provideFlashStore(lc fx.Lifecycle, log *zap.Logger) flash.Store {
	store := flash.NewMemoryStore()
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := store.Sweep(); n > 0 {
							log.Debug("Swept expired flash messages", zap.Int("removed", n))
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
	return store
}
