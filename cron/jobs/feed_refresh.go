package jobs

import (
	"log"

	"pirex.GO/config"
	"pirex.GO/cron"
	feedService "pirex.GO/service/feed"
)

func init() {
	cron.Register("feedrefreshjob", "@every 30m", FeedRefreshJob)
}

// FeedRefreshJob re-fetches the newsletter feed so the blog page serves a
// warm cache instead of calling out on request.
func FeedRefreshJob(args ...string) {
	config.LoadAppConfig()

	posts, err := feedService.NewService().Refresh()
	if err != nil {
		log.Printf("feed refresh failed: %v", err)
		return
	}
	log.Printf("feed refresh: %d posts cached", len(posts))
}
