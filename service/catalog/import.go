package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalogEntity "pirex.GO/model/entity/catalog"
)

// ImportOptions configures an item import run.
type ImportOptions struct {
	Owner     string
	BatchSize int
}

// ImportResult holds counters and timing from an import run.
type ImportResult struct {
	TotalRows int
	Imported  int
	Skipped   int
	Warnings  []string
	TotalTime time.Duration
}

// itemColumns are the CSV columns the importer understands. id and item_name
// are required; everything else falls back to the normalization defaults.
var itemColumns = map[string]bool{
	"id": true, "item_name": true, "price": true, "in_stock": true,
	"category_id": true, "image_id": true, "description": true,
}

// ImportItems reads CSV rows and upserts them into the items table, scoped
// to one storefront. Rows with a missing id are skipped with a warning.
func ImportItems(db *gorm.DB, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	start := time.Now()
	if opts.BatchSize <= 0 {
		opts.BatchSize = 500
	}

	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	res := &ImportResult{}
	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		if itemColumns[name] {
			colIndex[name] = i
		} else {
			res.Warnings = append(res.Warnings, fmt.Sprintf("unknown column %q ignored", col))
		}
	}
	if _, ok := colIndex["id"]; !ok {
		return nil, fmt.Errorf("CSV has no id column")
	}

	var batch []catalogEntity.Item
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).CreateInBatches(batch, opts.BatchSize).Error
		if err != nil {
			return err
		}
		res.Imported += len(batch)
		batch = batch[:0]
		return nil
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row: %w", err)
		}
		res.TotalRows++

		item, warn := rowToItem(row, colIndex, opts.Owner)
		if warn != "" {
			res.Warnings = append(res.Warnings, warn)
			res.Skipped++
			continue
		}
		batch = append(batch, item)
		if len(batch) >= opts.BatchSize {
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	res.TotalTime = time.Since(start)
	return res, nil
}

func rowToItem(row []string, colIndex map[string]int, owner string) (catalogEntity.Item, string) {
	get := func(col string) string {
		if i, ok := colIndex[col]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	item := catalogEntity.Item{UserID: owner}
	item.ID = get("id")
	if item.ID == "" {
		return item, "row with empty id skipped"
	}
	item.ItemName = get("item_name")
	item.Description = get("description")

	if v := get("price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil || p < 0 {
			return item, fmt.Sprintf("id=%s: invalid price %q", item.ID, v)
		}
		item.Price = p
	}
	if v := get("in_stock"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return item, fmt.Sprintf("id=%s: invalid in_stock %q", item.ID, v)
		}
		item.InStock = n
	}
	if v := get("category_id"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return item, fmt.Sprintf("id=%s: invalid category_id %q", item.ID, v)
		}
		item.CategoryID = n
	}
	if v := get("image_id"); v != "" {
		item.ImageID = &v
	}
	return item, ""
}
