package server

// kernel.go — builds the HTTP handler: global middleware stack, ops
// endpoints, and the API route table.

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/kashvi-store/app/routes"
	"github.com/shashiranjanraj/kashvi-store/config"
	"github.com/shashiranjanraj/kashvi-store/pkg/cache"
	"github.com/shashiranjanraj/kashvi-store/pkg/metrics"
	"github.com/shashiranjanraj/kashvi-store/pkg/middleware"
	"github.com/shashiranjanraj/kashvi-store/pkg/orm"
	"github.com/shashiranjanraj/kashvi-store/pkg/reqid"
	"github.com/shashiranjanraj/kashvi-store/pkg/router"
)

// BuildHandler constructs the full HTTP handler.
func BuildHandler() http.Handler {
	// Wire redis into the ORM's read-through cache. The bridge lives here so
	// pkg/orm and pkg/cache do not import each other.
	orm.CacheStore = &ormCache{}

	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery          — catches panics before they kill the goroutine
	//  3. Request ID        — inject unique ID before anything logs
	//  4. Logger            — logs request_id from context
	//  5. CORS              — set CORS headers
	//  6. Rate limiter      — reject abusers early
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Prometheus /metrics endpoint — no auth, no rate limit.
	r.HandleFunc("/metrics", metrics.Handler())

	routes.RegisterAPI(r)

	// Serve locally stored uploads when the local disk is the default.
	// S3 setups hand out bucket URLs instead, so nothing to mount there.
	if config.Get("STORAGE_DISK", "local") == "local" {
		root := config.Get("STORAGE_LOCAL_ROOT", "storage")
		r.Mount("/storage", http.StripPrefix("/storage/", http.FileServer(http.Dir(root))))
	}

	return r.Handler()
}

// ormCache bridges pkg/cache.Get/Set to the orm.Cacher interface.
type ormCache struct{}

func (c *ormCache) Get(key string, dest interface{}) bool {
	return cache.Get(key, dest)
}

func (c *ormCache) Set(key string, value interface{}, ttl time.Duration) error {
	return cache.Set(key, value, ttl)
}
