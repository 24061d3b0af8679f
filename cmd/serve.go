package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"tableside/config"
	httpapi "tableside/internal/api/http"
	"tableside/internal/service"
	"tableside/internal/session"
	"tableside/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, flush, err := setup()
		if err != nil {
			return err
		}
		defer flush()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		handler, closeAll, err := buildHandler(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeAll()

		return httpapi.StartServer(ctx, cfg.HTTPAddr, httpapi.NewRouter(handler))
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "HTTP listen address")
	serveCmd.Flags().String("storage", config.StorageMemory, "reservation and order storage: memory or postgres")

	viper.BindPFlag("http_addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("storage", serveCmd.Flags().Lookup("storage"))
}

// buildHandler wires storage, idempotency and event publishing from cfg.
// The returned func releases every connection it opened.
func buildHandler(ctx context.Context, cfg *config.Config) (*httpapi.Handler, func(), error) {
	var closers []func() error
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				zap.S().Warnw("close failed", "error", err)
			}
		}
	}

	seed := storage.Seed(time.Now())
	memory := storage.NewMemoryRepository(seed)

	var (
		reservationRepo service.ReservationRepository = memory
		orderRepo       service.OrderRepository       = memory
	)
	if cfg.Storage == config.StoragePostgres {
		db := config.MustInitPostgres(cfg)
		closers = append(closers, db.Close)
		pg := storage.NewPostgresRepository(db)
		if err := pg.EnsureSchema(); err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
		if err := pg.SeedSamples(ctx, seed); err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("seed samples: %w", err)
		}
		reservationRepo, orderRepo = pg, pg
	}

	var idempotency service.IdempotencyStore = storage.NewMemoryIdempotencyStore(cfg.IdempotencyTTL)
	if addr := cfg.RedisAddr(); addr != "" {
		client := config.MustInitRedis(cfg)
		closers = append(closers, client.Close)
		idempotency = storage.NewRedisCache(client, cfg.IdempotencyTTL)
	}

	var publisher service.EventPublisher = storage.NopPublisher{}
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg)
		closers = append(closers, writer.Close)
		publisher = storage.NewKafkaPublisher(writer)
	}

	zap.S().Infow("storage wired",
		"storage", cfg.Storage,
		"redis", cfg.RedisAddr() != "",
		"kafka", cfg.KafkaBroker != "",
	)

	ids := service.UUIDGenerator{}
	catalog := service.NewCatalogService(memory, service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL})
	orders := service.NewOrderService(orderRepo, memory, idempotency, publisher, ids, nil)
	reservations := service.NewReservationService(reservationRepo, memory, idempotency, publisher, nil)
	dashboards := service.NewDashboardService(memory, reservationRepo, orderRepo, nil)
	sessions := session.NewStore(ids)
	sessions.IdleTTL = cfg.SessionTTL
	manager := session.NewManager(session.Deps{
		Store:        sessions,
		Catalog:      catalog,
		Orders:       orders,
		Reservations: reservations,
		Dashboards:   dashboards,
		Auth:         service.NewAuthService(ids),
		IDs:          ids,
	})

	return httpapi.NewHandler(catalog, orders, reservations, dashboards, manager), closeAll, nil
}
