package main

import (
	"log"
	"os"

	"github.com/arisdnt/catat-sales-sub000/config"
	"github.com/arisdnt/catat-sales-sub000/middlewares"
	"github.com/arisdnt/catat-sales-sub000/models"
	"github.com/arisdnt/catat-sales-sub000/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("tidak ada .env, pakai environment langsung")
	}

	config.ConnectDB()

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Sales{},
		&models.Toko{},
		&models.Produk{},
		&models.Pengiriman{},
		&models.DetailPengiriman{},
		&models.Penagihan{},
		&models.DetailPenagihan{},
		&models.PotonganPenagihan{},
		&models.Setoran{},
		&models.PengeluaranOperasional{},
	); err != nil {
		log.Fatalf("Gagal migrasi: %v", err)
	}

	r := gin.Default()
	r.Use(middlewares.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
	}))

	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server berhenti: %v", err)
	}
}
