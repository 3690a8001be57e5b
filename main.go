package main

import (
	"fmt"
	"log"

	"github.com/amalakkad93/StarcoEat/configs"
	"github.com/amalakkad93/StarcoEat/middlewares"
	"github.com/amalakkad93/StarcoEat/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedDemoData(); err != nil {
		log.Fatalf("seed demo data failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve uploaded files (banner/menu/review images)
	r.Static("/uploads", "./uploads")

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
