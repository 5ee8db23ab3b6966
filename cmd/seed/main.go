package main

import (
	"flag"
	"strconv"
	"strings"

	"github.com/vibecommerce/vibecommerce-backend/config"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/model"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/repository"
	"github.com/vibecommerce/vibecommerce-backend/internal/db"
	"github.com/vibecommerce/vibecommerce-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

// Imports a catalog spreadsheet. Expected columns, with a header row:
// id | name | price | description | image | category | rating | rating count
func main() {
	filePath := flag.String("file", "catalog.xlsx", "path to the catalog spreadsheet")
	sheet := flag.String("sheet", "", "sheet name (defaults to the first sheet)")
	flag.Parse()

	logger.Initialize(logger.Config{
		Level:       "info",
		Format:      "console",
		EnableColor: true,
	})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	products, err := readCatalogFile(*filePath, *sheet)
	if err != nil {
		logger.Fatal("Failed to read catalog file", err, map[string]interface{}{
			"file": *filePath,
		})
	}

	productRepo := repository.NewProductRepository(db.GetDB())
	if err := productRepo.BulkCreate(products); err != nil {
		logger.Fatal("Failed to import catalog", err)
	}

	logger.Info("Catalog imported", map[string]interface{}{
		"file":     *filePath,
		"imported": len(products),
	})
}

func readCatalogFile(path, sheet string) ([]model.Product, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	var products []model.Product
	for i, row := range rows {
		if i == 0 || len(row) < 6 {
			continue
		}

		productID, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			logger.Warn("Skipping row with invalid id", map[string]interface{}{
				"row":   i + 1,
				"value": row[0],
			})
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			logger.Warn("Skipping row with invalid price", map[string]interface{}{
				"row":   i + 1,
				"value": row[2],
			})
			continue
		}

		product := model.Product{
			ProductID:   productID,
			Name:        strings.TrimSpace(row[1]),
			Price:       price,
			Description: strings.TrimSpace(row[3]),
			ImageURL:    strings.TrimSpace(row[4]),
			Category:    strings.TrimSpace(row[5]),
		}
		if len(row) > 6 {
			if rate, err := strconv.ParseFloat(strings.TrimSpace(row[6]), 64); err == nil {
				product.Rating.Rate = rate
			}
		}
		if len(row) > 7 {
			if count, err := strconv.Atoi(strings.TrimSpace(row[7])); err == nil {
				product.Rating.Count = count
			}
		}

		products = append(products, product)
	}

	return products, nil
}
