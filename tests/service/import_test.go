package servicetest

import (
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	catalogEntity "pirex.GO/model/entity/catalog"
	catalogService "pirex.GO/service/catalog"
)

func importTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&catalogEntity.Item{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestImportItems_InsertsRows(t *testing.T) {
	db := importTestDB(t)

	csvData := strings.Join([]string{
		"id,item_name,price,in_stock,category_id,description",
		"p1,Alpha Laptop,1200,4,1,Fast laptop",
		"p2,Beta Mouse,25,7,2,Wired mouse",
	}, "\n")

	res, err := catalogService.ImportItems(db, strings.NewReader(csvData), catalogService.ImportOptions{Owner: "shop-import"})
	if err != nil {
		t.Fatalf("ImportItems: %v", err)
	}
	if res.TotalRows != 2 || res.Imported != 2 || res.Skipped != 0 {
		t.Errorf("result = %+v", res)
	}

	var items []catalogEntity.Item
	if err := db.Order("id").Find(&items).Error; err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].ItemName != "Alpha Laptop" || items[0].Price != 1200 {
		t.Errorf("item p1 = %+v", items[0])
	}
	if items[0].UserID != "shop-import" {
		t.Errorf("owner = %q", items[0].UserID)
	}
}

func TestImportItems_UpsertsOnID(t *testing.T) {
	db := importTestDB(t)

	first := "id,item_name,price\np1,Alpha Laptop,1200\n"
	if _, err := catalogService.ImportItems(db, strings.NewReader(first), catalogService.ImportOptions{Owner: "shop-import"}); err != nil {
		t.Fatalf("first import: %v", err)
	}

	second := "id,item_name,price\np1,Alpha Laptop v2,1100\n"
	if _, err := catalogService.ImportItems(db, strings.NewReader(second), catalogService.ImportOptions{Owner: "shop-import"}); err != nil {
		t.Fatalf("second import: %v", err)
	}

	var items []catalogEntity.Item
	if err := db.Find(&items).Error; err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items after upsert, want 1", len(items))
	}
	if items[0].ItemName != "Alpha Laptop v2" || items[0].Price != 1100 {
		t.Errorf("item after upsert = %+v", items[0])
	}
}

func TestImportItems_SkipsBadRows(t *testing.T) {
	db := importTestDB(t)

	csvData := strings.Join([]string{
		"id,item_name,price,bogus",
		",No ID,10,x",
		"p2,Bad Price,notanumber,x",
		"p3,Good,50,x",
	}, "\n")

	res, err := catalogService.ImportItems(db, strings.NewReader(csvData), catalogService.ImportOptions{Owner: "shop-import"})
	if err != nil {
		t.Fatalf("ImportItems: %v", err)
	}
	if res.TotalRows != 3 || res.Imported != 1 || res.Skipped != 2 {
		t.Errorf("result = %+v", res)
	}
	// Header warning for the unknown column plus one per skipped row.
	if len(res.Warnings) != 3 {
		t.Errorf("warnings = %v", res.Warnings)
	}
}

func TestImportItems_MissingIDColumn(t *testing.T) {
	db := importTestDB(t)

	csvData := "item_name,price\nAlpha,10\n"
	if _, err := catalogService.ImportItems(db, strings.NewReader(csvData), catalogService.ImportOptions{Owner: "shop-import"}); err == nil {
		t.Fatal("expected error for CSV without id column")
	}
}
