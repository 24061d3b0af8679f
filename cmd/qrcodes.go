package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableside/internal/service"
	"tableside/internal/storage"
)

var qrcodesOut string

var qrcodesCmd = &cobra.Command{
	Use:   "qrcodes",
	Short: "Write a QR code PNG for every seeded table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, flush, err := setup()
		if err != nil {
			return err
		}
		defer flush()

		catalog := service.NewCatalogService(
			storage.NewMemoryRepository(storage.Seed(time.Now())),
			service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL},
		)
		files, err := writeTableQRCodes(cmd.Context(), catalog, qrcodesOut)
		if err != nil {
			return err
		}
		zap.S().Infow("qr codes written", "count", len(files), "dir", qrcodesOut)
		return nil
	},
}

func init() {
	qrcodesCmd.Flags().StringVarP(&qrcodesOut, "out", "o", "qrcodes", "output directory")
}

// writeTableQRCodes writes <restaurant>-table-<n>.png for each table and
// returns the paths in catalog order.
func writeTableQRCodes(ctx context.Context, catalog service.CatalogServiceInterface, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	restaurants, err := catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, rest := range restaurants {
		for _, table := range rest.Tables {
			png, err := catalog.TableQRCode(ctx, rest.ID, table.Number)
			if err != nil {
				return files, fmt.Errorf("restaurant %s table %s: %w", rest.ID, table.Number, err)
			}
			path := filepath.Join(dir, fmt.Sprintf("%s-table-%s.png", rest.ID, table.Number))
			if err := os.WriteFile(path, png, 0o644); err != nil {
				return files, err
			}
			files = append(files, path)
		}
	}
	return files, nil
}
