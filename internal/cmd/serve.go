package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/app"
	"storefront/internal/database"
	"storefront/internal/services"
	"storefront/pkg/rabbitmq"

	"github.com/spf13/cobra"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
		if err != nil {
			return err
		}

		// --- Initialize RabbitMQ Client ---
		var publisher services.EventPublisher
		var mqClient *rabbitmq.Client
		if cfg.RabbitMQURL != "" {
			mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log.Named("rabbitmq"))
			if err != nil {
				return err
			}
			defer mqClient.Close()
			publisher = mqClient
		} else {
			log.Info("RABBITMQ_URL not set, event publishing disabled")
		}

		fiberApp, svc, err := app.New(app.Deps{
			Config:    cfg,
			DB:        db,
			Publisher: publisher,
			Logger:    log,
		})
		if err != nil {
			return err
		}

		if cfg.SeedOnStart {
			n, err := svc.Products.SeedCatalog(cmd.Context(), services.SampleCatalog())
			if err != nil {
				return err
			}
			log.Info("seed on start", zap.Int("products", n))
		}

		if mqClient != nil && cfg.NotifyConsumer {
			notifier := services.NewNotificationService(log.Named("notifier"))
			handler := func(msg amqp.Delivery) error {
				event, err := rabbitmq.DecodeOrderCreated(msg.Body)
				if err != nil {
					return err
				}
				return notifier.HandleOrderCreated(event)
			}
			if err := mqClient.ConsumeOrderEvents(handler); err != nil {
				return err
			}
		}

		// --- Start HTTP Server ---
		log.Info("starting server", zap.String("addr", cfg.AppPort), zap.String("database", cfg.DatabaseDriver))

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		serverErr := make(chan error, 1)
		go func() {
			serverErr <- fiberApp.Listen(cfg.AppPort)
		}()

		select {
		case err := <-serverErr:
			return err
		case <-quit:
		}

		log.Info("shutting down server")
		if err := fiberApp.Shutdown(); err != nil {
			log.Error("error during shutdown", zap.Error(err))
		}
		log.Info("server gracefully stopped")
		return nil
	},
}
