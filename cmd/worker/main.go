package main

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"talentbridge/cmd/bootstrap"
	"talentbridge/internal/infra/events"
	"talentbridge/internal/pkg/config"
	"talentbridge/internal/pkg/errs"
	"talentbridge/internal/usecase/commands"
	"talentbridge/internal/usecase/shared"

	"go.uber.org/fx"
)

const shutdownTimeout = 30 * time.Second

// runLoop calls fn on every tick until ctx is done. A run never overlaps the next one.
func runLoop(ctx context.Context, name string, interval time.Duration, logger *slog.Logger, fn func(context.Context) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("worker loop started", "loop", name, "interval", interval)
	for {
		if err := fn(ctx); err != nil && ctx.Err() == nil {
			logger.Error("worker run failed", "loop", name, "error", err.Error())
		}
		select {
		case <-ctx.Done():
			logger.Info("worker loop stopped", "loop", name)
			return
		case <-ticker.C:
		}
	}
}

type workerParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Config     config.Config
	Logger     *slog.Logger
	Dispatcher commands.Dispatcher
	Relay      commands.NotificationRelay
	XP         commands.XPCommands
}

func startWorker(p workerParams) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	var consumer *events.ActivityConsumer
	if p.Config.Kafka.Enabled() {
		consumer = events.NewActivityConsumer(p.Config.Kafka, func(ctx context.Context, ev shared.ActivityEvent) error {
			_, err := p.XP.AwardForActivity(ctx, ev)
			if errs.Is(err, commands.ErrUnsupportedEvent) {
				return nil
			}
			return err
		}, p.Logger)
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			p.Logger.Info("🚀 ワーカーを起動します")

			wg.Add(2)
			go func() {
				defer wg.Done()
				runLoop(ctx, "dispatcher", p.Config.Dispatcher.Interval, p.Logger, func(ctx context.Context) error {
					_, err := p.Dispatcher.RunOnce(ctx)
					return err
				})
			}()
			go func() {
				defer wg.Done()
				runLoop(ctx, "notification-relay", p.Config.Relay.Interval, p.Logger, func(ctx context.Context) error {
					_, err := p.Relay.RunOnce(ctx)
					return err
				})
			}()

			if consumer != nil {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if err := consumer.Run(ctx); err != nil {
						p.Logger.Error("activity consumer stopped", "error", err.Error())
					}
				}()
			} else {
				p.Logger.Info("KAFKA_BROKERS not set, activity consumer disabled")
			}
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			p.Logger.Info("🛑 ワーカーを停止します")
			cancel()

			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
			case <-stopCtx.Done():
				p.Logger.Warn("worker loops did not stop before the deadline")
			}

			if consumer != nil {
				return consumer.Close()
			}
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Invoke(startWorker),
		fx.StopTimeout(shutdownTimeout),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("ワーカーの起動に失敗しました", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("ワーカーの停止に失敗しました", "error", err)
	}
}
