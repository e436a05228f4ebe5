package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
)

type CatalogWriter interface {
	Upsert(ctx context.Context, item domain.JewelryItem) (*domain.JewelryItem, error)
}

// JSONImporter reads a catalog export (an array of jewelry items with
// their full customization trees) and upserts each item.
type JSONImporter struct {
	reader io.Reader
	writer CatalogWriter
}

func NewJSONImporter(r io.Reader, w CatalogWriter) *JSONImporter {
	return &JSONImporter{reader: r, writer: w}
}

// Run decodes and upserts all items, returning how many were imported.
// A malformed or invalid item aborts the run so partial imports are
// noticed rather than silently shipped.
func (i *JSONImporter) Run(ctx context.Context) (int, error) {
	var items []domain.JewelryItem
	if err := json.NewDecoder(i.reader).Decode(&items); err != nil {
		return 0, fmt.Errorf("decode catalog export: %w", err)
	}

	imported := 0
	for _, item := range items {
		if item.ProductType == "" {
			return imported, fmt.Errorf("item %q missing product type: %w", item.Name, domain.ErrValidation)
		}
		if _, err := i.writer.Upsert(ctx, item); err != nil {
			return imported, fmt.Errorf("upsert %s: %w", item.ProductType, err)
		}
		imported++
	}
	return imported, nil
}
