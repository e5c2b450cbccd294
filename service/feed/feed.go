package feed

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"pirex.GO/config"
	"pirex.GO/core/cache"
)

// Post is one newsletter entry shown on the blog page.
type Post struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Image    string `json:"image"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Author   string `json:"author"`
	Link     string `json:"link"`
}

// feedResponse is the rss2json envelope for the newsletter RSS feed.
type feedResponse struct {
	Status string `json:"status"`
	Items  []struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Content     string   `json:"content"`
		Thumbnail   string   `json:"thumbnail"`
		Categories  []string `json:"categories"`
		PubDate     string   `json:"pubDate"`
		Author      string   `json:"author"`
		Link        string   `json:"link"`
	} `json:"items"`
}

const (
	cachePrefix = "blog:feed:"
	cacheTTL    = int64(30 * 60) // seconds

	defaultImage    = "/default.jpg"
	defaultCategory = "Newsletter"
	defaultAuthor   = "Substack Author"
	excerptLen      = 150
)

var (
	imgSrcRe  = regexp.MustCompile(`<img[^>]+src="([^">]+)"`)
	htmlTagRe = regexp.MustCompile(`(<([^>]+)>)`)
)

// Service fetches and caches the storefront's newsletter feed.
type Service struct {
	URL    string
	Client *http.Client
}

func NewService() *Service {
	url := ""
	if config.AppConfig != nil {
		url = config.AppConfig.FeedURL
	}
	return &Service{
		URL:    url,
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Posts returns the cached feed, fetching on miss.
func (s *Service) Posts() ([]Post, error) {
	if v, ok := cache.GetInstance().Get(cachePrefix + s.URL); ok {
		if posts, isPosts := v.([]Post); isPosts {
			return posts, nil
		}
	}
	return s.Refresh()
}

// Refresh fetches the feed and replaces the cached copy.
func (s *Service) Refresh() ([]Post, error) {
	resp, err := s.Client.Get(s.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch blog feed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch blog feed: status %d", resp.StatusCode)
	}

	var fr feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return nil, fmt.Errorf("decode blog feed: %w", err)
	}

	posts := make([]Post, 0, len(fr.Items))
	for _, item := range fr.Items {
		posts = append(posts, Post{
			Title:    item.Title,
			Excerpt:  excerpt(item.Description),
			Image:    firstImage(item.Thumbnail, item.Content),
			Category: firstOr(item.Categories, defaultCategory),
			Date:     item.PubDate,
			Author:   authorOr(item.Author),
			Link:     item.Link,
		})
	}

	cache.GetInstance().Set(cachePrefix+s.URL, posts, cacheTTL, []string{"blog"})
	return posts, nil
}

// excerpt strips markup from a description and truncates it for the card view.
func excerpt(description string) string {
	clean := htmlTagRe.ReplaceAllString(description, "")
	runes := []rune(clean)
	if len(runes) > excerptLen {
		runes = runes[:excerptLen]
	}
	return strings.TrimSpace(string(runes)) + "..."
}

// firstImage prefers the feed thumbnail, then the first inline image in the
// post body, then the bundled placeholder.
func firstImage(thumbnail, content string) string {
	if thumbnail != "" {
		return thumbnail
	}
	if m := imgSrcRe.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return defaultImage
}

func firstOr(list []string, def string) string {
	if len(list) > 0 && list[0] != "" {
		return list[0]
	}
	return def
}

func authorOr(author string) string {
	if author != "" {
		return author
	}
	return defaultAuthor
}
