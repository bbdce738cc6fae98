package seed

import (
	"context"
	"encoding/json"
	"os"

	"github.com/ecommerce-catalog/catalog-service/internal/domain"
	"github.com/ecommerce-catalog/catalog-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// Run loads the catalog fixture into the products collection when it is
// empty. A non-empty collection is left untouched.
func Run(ctx context.Context, repo repository.ProductRepository, path string) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}

	if count > 0 {
		log.Info().Int64("count", count).Msg("catalog already loaded, skipping seed")
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var products []domain.Product
	if err := json.NewDecoder(file).Decode(&products); err != nil {
		return err
	}

	if err := repo.SaveAll(ctx, products); err != nil {
		return err
	}

	log.Info().Int("count", len(products)).Str("file", path).Msg("catalog seeded")
	return nil
}
