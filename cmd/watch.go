package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableside/config"
	"tableside/internal/domain"
	"tableside/internal/storage"
)

var (
	watchGroup      string
	watchRestaurant string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow order and reservation events from Kafka",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, flush, err := setup()
		if err != nil {
			return err
		}
		defer flush()
		if cfg.KafkaBroker == "" {
			return errors.New("KAFKA_BROKER is not set")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		reader := config.NewKafkaReader(cfg, watchGroup)
		defer reader.Close()

		return storage.NewKafkaConsumer(reader).Run(ctx, logEvent(watchRestaurant))
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchGroup, "group", "tableside-watch", "Kafka consumer group")
	watchCmd.Flags().StringVar(&watchRestaurant, "restaurant", "", "only show events for this restaurant id")
	rootCmd.AddCommand(watchCmd)
}

func logEvent(restaurantID string) storage.EventHandler {
	return func(_ context.Context, event domain.Event) error {
		if restaurantID != "" && event.RestaurantID != restaurantID {
			return nil
		}
		zap.S().Infow(event.Type,
			"restaurant_id", event.RestaurantID,
			"order_id", event.OrderID,
			"reservation_id", event.ReservationID,
			"table", event.TableNumber,
			"status", event.Status,
			"total", event.Total,
			"at", event.Timestamp,
		)
		return nil
	}
}
