// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	blogapifeature "github.com/sitebase-io/sitebase/internal/app/features/blogapi"
	contactapifeature "github.com/sitebase-io/sitebase/internal/app/features/contactapi"
	healthfeature "github.com/sitebase-io/sitebase/internal/app/features/health"
	newsletterapifeature "github.com/sitebase-io/sitebase/internal/app/features/newsletterapi"
	blogstore "github.com/sitebase-io/sitebase/internal/app/store/blog"
	contactstore "github.com/sitebase-io/sitebase/internal/app/store/contact"
	newsletterstore "github.com/sitebase-io/sitebase/internal/app/store/newsletter"
	"github.com/sitebase-io/sitebase/internal/app/system/uploads"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It creates the chi router, installs the
// global middleware stack, and mounts the feature routers.
//
// API routes carry no session or CSRF machinery: every endpoint is a plain
// JSON API with permissive CORS applied per feature router.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Global middleware (applies to ALL routes)

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// Stores and shared services
	uploader := uploads.New(deps.FileStorage, logger)

	blogStore := blogstore.New(deps.MongoDatabase)
	contactStore := contactstore.New(deps.MongoDatabase)
	newsletterStore := newsletterstore.New(deps.MongoDatabase)

	// Blog post API
	blogHandler := blogapifeature.NewHandler(blogStore, uploader, logger)
	r.Mount("/api/blogs", blogapifeature.Routes(blogHandler))
	r.Mount("/api/admin/blogs", blogapifeature.AdminRoutes(blogHandler))

	// Contact message API
	contactHandler := contactapifeature.NewHandler(contactStore, deps.Mailer, appCfg.ContactNotifyEmail, logger)
	r.Mount("/api/contact", contactapifeature.Routes(contactHandler))

	// Newsletter subscriber API
	newsletterHandler := newsletterapifeature.NewHandler(newsletterStore, logger)
	r.Mount("/api/newsletter", newsletterapifeature.Routes(newsletterHandler))

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// Static site assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "static"))

	// Uploaded images (local storage only). S3 storage serves files from
	// the bucket/CDN URL instead.
	if appCfg.StorageType == "local" || appCfg.StorageType == "" {
		r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))
	}

	return r, nil
}
