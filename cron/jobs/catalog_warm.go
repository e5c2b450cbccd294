package jobs

import (
	"context"
	"log"

	"pirex.GO/config"
	"pirex.GO/core/cache"
	"pirex.GO/cron"
	catalogService "pirex.GO/service/catalog"
)

func init() {
	cron.Register("catalogwarmjob", "0 * * * *", CatalogWarmJob)
}

// CatalogWarmJob reloads the catalog and refreshes the in-process cache so
// page loads after a quiet period do not pay the query cost.
func CatalogWarmJob(args ...string) {
	config.LoadAppConfig()

	db, err := config.NewDB()
	if err != nil {
		log.Printf("catalog warm: db connect failed: %v", err)
		return
	}

	loader := catalogService.NewLoader(db, config.AppConfig.ShopID)
	res, err := loader.Load(context.Background(), catalogService.ViewShop)
	if err != nil {
		log.Printf("catalog warm: load failed: %v", err)
		return
	}

	cache.GetInstance().Set("catalog:shop", res, 2*60*60, []string{"catalog"})
	log.Printf("catalog warm: %d products cached (degraded=%v sample=%v)",
		len(res.Products), res.Degraded, res.Sample)
}
