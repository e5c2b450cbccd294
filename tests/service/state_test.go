package servicetest

import (
	"context"
	"sync"
	"testing"

	"pirex.GO/config"
	catalogEntity "pirex.GO/model/entity/catalog"
	catalogService "pirex.GO/service/catalog"
)

func TestState_GetLoadsOnce(t *testing.T) {
	config.LoadAppConfig()
	db := loaderTestDB(t)
	seedCatalog(t, db)

	state := catalogService.NewState(catalogService.NewLoader(db, testShop), catalogService.ViewShop)
	a, err := state.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	b, err := state.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if a != b {
		t.Error("second Get reloaded instead of returning the cached result")
	}
}

func TestState_ReloadPicksUpChanges(t *testing.T) {
	config.LoadAppConfig()
	db := loaderTestDB(t)
	seedCatalog(t, db)

	state := catalogService.NewState(catalogService.NewLoader(db, testShop), catalogService.ViewShop)
	before, err := state.Get(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	item := catalogEntity.Item{ID: "i9", ItemName: "New Keyboard", Price: 40, InStock: 3, CategoryID: 2, UserID: testShop}
	if err := db.Create(&item).Error; err != nil {
		t.Fatal(err)
	}

	after, err := state.Reload(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(after.Products) != len(before.Products)+1 {
		t.Errorf("after reload products = %d, want %d", len(after.Products), len(before.Products)+1)
	}
}

func TestState_ConcurrentReloadsKeepOneResult(t *testing.T) {
	config.LoadAppConfig()
	db := loaderTestDB(t)
	seedCatalog(t, db)

	state := catalogService.NewState(catalogService.NewLoader(db, testShop), catalogService.ViewShop)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = state.Reload(context.Background())
		}()
	}
	wg.Wait()

	res, err := state.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if res == nil || len(res.Products) == 0 {
		t.Fatal("no result installed after concurrent reloads")
	}
}

func TestState_CurrentBeforeLoad(t *testing.T) {
	config.LoadAppConfig()
	db := loaderTestDB(t)

	state := catalogService.NewState(catalogService.NewLoader(db, testShop), catalogService.ViewShop)
	if res, _ := state.Current(); res != nil {
		t.Error("Current returned a result before any load")
	}
}
