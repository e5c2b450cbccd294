package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	blogApi "pirex.GO/api/blog"
	"pirex.GO/config"
)

const blogFeedBody = `{
	"status": "ok",
	"feed": {"title": "Pirex Newsletter"},
	"items": [
		{
			"title": "August deals",
			"pubDate": "2025-08-01 09:00:00",
			"link": "https://example.substack.com/p/august-deals",
			"author": "",
			"thumbnail": "https://cdn.example.com/aug.jpg",
			"description": "<p>Deals on laptops this month.</p>",
			"content": "<p>Deals on laptops this month.</p>",
			"categories": ["deals"]
		}
	]
}`

func TestBlogAPI_ServesFeed(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(blogFeedBody))
	}))
	defer upstream.Close()
	config.AppConfig.FeedURL = upstream.URL

	e := echo.New()
	blogApi.RegisterBlogRoutes(e.Group("/api"), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/blog", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Posts []struct {
			Title    string `json:"title"`
			Excerpt  string `json:"excerpt"`
			Image    string `json:"image"`
			Category string `json:"category"`
			Author   string `json:"author"`
		} `json:"posts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(body.Posts))
	}
	p := body.Posts[0]
	if p.Title != "August deals" {
		t.Errorf("title = %q", p.Title)
	}
	if p.Excerpt != "Deals on laptops this month." {
		t.Errorf("excerpt = %q", p.Excerpt)
	}
	if p.Image != "https://cdn.example.com/aug.jpg" {
		t.Errorf("image = %q", p.Image)
	}
	if p.Author != "Substack Author" {
		t.Errorf("author = %q", p.Author)
	}
}

func TestBlogAPI_UpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()
	config.AppConfig.FeedURL = upstream.URL

	e := echo.New()
	blogApi.RegisterBlogRoutes(e.Group("/api"), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/blog", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}
