package cmd

import (
	"fmt"

	"storefront/internal/database"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample catalog into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		productService := services.NewProductService(repositories.NewGORMProductRepository(db))
		n, err := productService.SeedCatalog(cmd.Context(), services.SampleCatalog())
		if err != nil {
			return err
		}
		if n == 0 {
			log.Info("catalog already has products, nothing seeded")
			return nil
		}
		log.Info("catalog seeded", zap.Int("products", n))
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully seeded %d products!\n", n)
		return nil
	},
}
