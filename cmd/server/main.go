// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/backend"
	"storefront/internal/backend/local"
	"storefront/internal/backend/remote"
	"storefront/internal/config"
	"storefront/internal/events"
	"storefront/internal/logging"
	"storefront/internal/order"
	"storefront/internal/server"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "server",
		Short:         "Toko online: katalog, pemesanan, tracking, dan konsol admin",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path ke file konfigurasi YAML")

	rootCmd.AddCommand(serveCmd(), consumeEventsCmd(), genOrderIDCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Menjalankan HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx)
		},
	}
}

func consumeEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consume-events",
		Short: "Mencatat event order dari RabbitMQ ke log",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if cfg.RabbitMQ.URL == "" {
				return errors.New("RABBITMQ_URL belum diatur")
			}
			conn, ch, err := openBroker(cfg.RabbitMQ.URL)
			if err != nil {
				return err
			}
			defer conn.Close()
			defer ch.Close()

			return events.StartOrderEventLogger(ctx, ch, logger)
		},
	}
}

func genOrderIDCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "gen-order-id",
		Short: "Mencetak Order ID baru",
		RunE: func(cmd *cobra.Command, args []string) error {
			for i := 0; i < count; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), order.GenerateOrderID())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "jumlah Order ID")
	return cmd
}

func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("gagal memuat konfigurasi: %w", err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func runServe(ctx context.Context) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("starting storefront",
		zap.String("backend_mode", cfg.Backend.Mode),
		zap.String("http_addr", cfg.HTTPAddr))

	// === 1. BACKEND ===
	b, err := openBackend(cfg, logger)
	if err != nil {
		return err
	}

	// === 2. KONEKSI REDIS ===
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("gagal terhubung ke Redis: %w", err)
	}
	logger.Info("redis connection established", zap.String("addr", cfg.Redis.Addr))

	// === 3. MESSAGE BROKER (opsional) ===
	var publisher events.Publisher = events.NopPublisher{}
	var ch *amqp.Channel
	if cfg.RabbitMQ.URL != "" {
		var conn *amqp.Connection
		conn, ch, err = openBroker(cfg.RabbitMQ.URL)
		if err != nil {
			return err
		}
		defer conn.Close()
		defer ch.Close()
		publisher = events.NewPublisherImpl(ch)
		logger.Info("rabbitmq connection established")
	} else {
		logger.Warn("RABBITMQ_URL kosong, event order tidak dipublish")
	}

	// === 4. ARSITEKTUR (Backend -> Service -> Handler) ===
	handlers, err := server.Wire(server.Deps{
		Config:    cfg,
		Backend:   b,
		Redis:     rdb,
		Publisher: publisher,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.NewRouter(handlers, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})
	if ch != nil {
		g.Go(func() error {
			return events.StartOrderEventLogger(gctx, ch, logger)
		})
	}

	return g.Wait()
}

func openBackend(cfg *config.Config, logger *zap.Logger) (backend.Backend, error) {
	if cfg.Backend.Mode == config.BackendRemote {
		logger.Info("using remote backend", zap.String("url", cfg.Backend.URL))
		return remote.NewClient(cfg.Backend.URL, cfg.Backend.Timeout, logger), nil
	}

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.Database.URL)
	default:
		dialector = sqlite.Open(cfg.Database.URL)
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gagal terhubung ke database: %w", err)
	}
	logger.Info("database connection established", zap.String("driver", cfg.Database.Driver))

	if err := local.Migrate(db); err != nil {
		return nil, fmt.Errorf("auto-migration gagal: %w", err)
	}

	return local.NewStore(db, local.AdminAccount{
		Username:     cfg.Admin.Username,
		PasswordHash: cfg.Admin.PasswordHash,
		Name:         cfg.Admin.Name,
	}, cfg.Backend.Timeout, logger), nil
}

func openBroker(url string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("gagal terhubung ke RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("gagal membuka channel RabbitMQ: %w", err)
	}
	if err := events.DeclareTopology(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, ch, nil
}
