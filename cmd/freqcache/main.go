package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/freqcache/pkg/cache"
	"github.com/dmitrymomot/freqcache/pkg/config"
	"github.com/dmitrymomot/freqcache/pkg/environment"
	"github.com/dmitrymomot/freqcache/pkg/logger"
	"github.com/dmitrymomot/freqcache/pkg/metrics"
)

type appConfig struct {
	Env      environment.Environment `env:"APP_ENV" envDefault:"development"`
	LogLevel string                  `env:"LOG_LEVEL"`
}

type workloadConfig struct {
	Capacity int `env:"CAPACITY" envDefault:"16"`
	Workers  int `env:"WORKERS" envDefault:"4"`
	Ops      int `env:"OPS" envDefault:"10000"`
	Keyspace int `env:"KEYSPACE" envDefault:"64"`
}

type workerKey struct{}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var app appConfig
	config.MustLoad(&app)

	log := logger.New(
		logger.WithEnvironment(app.Env, "freqcache"),
		logger.WithLevelName(app.LogLevel),
		logger.WithContextValue("worker", workerKey{}),
	)
	logger.SetAsDefault(log)

	var wl workloadConfig
	if err := config.Load(&wl, config.WithPrefix("FREQCACHE_")); err != nil {
		log.Error("load workload config", logger.Error(err))
		os.Exit(1)
	}

	runScenario(log)

	if err := runWorkload(ctx, log, wl); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("received shutdown signal")
			return
		}
		log.Error("workload failed", logger.Error(err))
		os.Exit(1)
	}
}

// runScenario replays the capacity-4 walkthrough from the package docs.
func runScenario(log *slog.Logger) {
	log = log.With(logger.Component("scenario"))
	c := cache.NewLFUCache(4, cache.WithEvictFunc(cache.LogEvictions[string, int](log)))

	for i, k := range []string{"A", "B", "C", "D"} {
		c.Put(k, i+1)
	}
	c.Get("A")
	c.Get("B")
	c.Put("E", 5) // C and D tie at 1, C is older
	c.Put("D", 40)
	c.Put("F", 6) // only E is at 1

	attrs := make([]slog.Attr, 0, c.Len())
	for _, k := range c.Keys() {
		freq, _ := c.Frequency(k)
		attrs = append(attrs, slog.Int(k, freq))
	}
	log.LogAttrs(context.Background(), slog.LevelInfo, "scenario done", logger.Group("frequencies", attrs...))
}

// runWorkload hammers one shared cache from several goroutines with a skewed
// key distribution and reports the resulting metrics.
func runWorkload(ctx context.Context, log *slog.Logger, cfg workloadConfig) error {
	log = log.With(logger.Component("workload"))
	if cfg.Workers <= 0 || cfg.Keyspace <= 0 {
		return fmt.Errorf("workers and keyspace must be positive: workers=%d keyspace=%d", cfg.Workers, cfg.Keyspace)
	}

	c, err := cache.NewSyncLFUCacheE[string, string](cfg.Capacity)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	if err := metrics.Register(reg, metrics.NewCacheCollector("workload", c)); err != nil {
		return err
	}

	keys := make([]string, cfg.Keyspace)
	for i := range keys {
		keys[i] = uuid.NewString()
	}

	log.Info("workload starting",
		slog.Int("capacity", cfg.Capacity),
		slog.Int("workers", cfg.Workers),
		slog.Int("ops", cfg.Ops),
		slog.Int("keyspace", cfg.Keyspace),
	)

	g, gctx := errgroup.WithContext(ctx)
	for w := range cfg.Workers {
		g.Go(func() error {
			wctx := context.WithValue(gctx, workerKey{}, w)
			rng := rand.New(rand.NewPCG(uint64(w), uint64(cfg.Ops)))
			for i := range cfg.Ops {
				if i%256 == 0 {
					if err := wctx.Err(); err != nil {
						return err
					}
				}
				// Nested draw skews lookups toward the low indices.
				key := keys[rng.IntN(rng.IntN(len(keys))+1)]
				if _, ok := c.Get(key); !ok {
					c.Put(key, "value-"+key)
				}
			}
			log.DebugContext(wctx, "worker done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	families, err := reg.Gather()
	if err != nil {
		return err
	}
	attrs := make([]slog.Attr, 0, len(families))
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			v := m.GetCounter().GetValue() + m.GetGauge().GetValue()
			attrs = append(attrs, slog.Float64(mf.GetName(), v))
		}
	}
	log.LogAttrs(ctx, slog.LevelInfo, "workload done",
		slog.Float64("hit_ratio", c.Stats().HitRatio()),
		logger.Group("metrics", attrs...),
	)
	return nil
}
