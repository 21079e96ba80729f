package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SpinCityEvents/gig-manager/internal/audit"
	"github.com/SpinCityEvents/gig-manager/internal/cache"
	"github.com/SpinCityEvents/gig-manager/internal/config"
	dbpkg "github.com/SpinCityEvents/gig-manager/internal/db"
	"github.com/SpinCityEvents/gig-manager/internal/middleware"
	"github.com/SpinCityEvents/gig-manager/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	c := cache.New(cfg)

	// Every tracked write goes through the audit plugin; install it
	// after migrations and seeding so bootstrap rows are not logged.
	dispatcher := audit.NewDispatcher(audit.New(db))
	if err := db.Use(audit.NewPlugin(dispatcher)); err != nil {
		log.Fatalf("failed to install audit plugin: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, c)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
