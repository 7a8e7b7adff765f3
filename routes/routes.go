package routes

import (
	"github.com/arisdnt/catat-sales-sub000/controllers"
	"github.com/arisdnt/catat-sales-sub000/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		api.GET("/health", controllers.Health)
		api.POST("/auth/login", controllers.Login)

		// semua di bawah butuh token
		auth := api.Group("/", middlewares.AuthMiddleware())

		produk := auth.Group("/produk")
		{
			produk.GET("/", controllers.GetAllProduk)
			produk.GET("/search-suggestions", controllers.ProdukSearchSuggestions)
			produk.GET("/:id", controllers.GetProdukByID)
			produk.GET("/:id/stats", controllers.GetProdukStats)
			produk.POST("/", controllers.CreateProduk)
			produk.PUT("/:id", controllers.UpdateProduk)
			produk.DELETE("/:id", controllers.DeleteProduk)
		}

		toko := auth.Group("/toko")
		{
			toko.GET("/", controllers.GetAllToko)
			toko.GET("/optimized", controllers.GetTokoOptimized)
			toko.GET("/search-suggestions", controllers.TokoSearchSuggestions)
			toko.GET("/:id", controllers.GetTokoByID)
			toko.GET("/:id/stats", controllers.GetTokoStats)
			toko.POST("/", controllers.CreateToko)
			toko.PUT("/:id", controllers.UpdateToko)
			toko.DELETE("/:id", controllers.DeleteToko)
		}

		sales := auth.Group("/sales")
		{
			sales.GET("/", controllers.GetAllSales)
			sales.GET("/:id", controllers.GetSalesByID)
			sales.POST("/", controllers.CreateSales)
			sales.PUT("/:id", controllers.UpdateSales)
			sales.DELETE("/:id", controllers.DeleteSales)
		}

		pengiriman := auth.Group("/pengiriman")
		{
			pengiriman.GET("/", controllers.GetAllPengiriman)
			pengiriman.GET("/optimized", controllers.GetPengirimanOptimized)
			pengiriman.GET("/search-suggestions", controllers.PengirimanSearchSuggestions)
			pengiriman.GET("/:id", controllers.GetPengirimanByID)
			pengiriman.POST("/", controllers.CreatePengiriman)
			pengiriman.PUT("/:id", controllers.UpdatePengiriman)
			pengiriman.DELETE("/:id", controllers.DeletePengiriman)
		}

		penagihan := auth.Group("/penagihan")
		{
			penagihan.GET("/", controllers.GetAllPenagihan)
			penagihan.GET("/search-suggestions", controllers.PenagihanSearchSuggestions)
			penagihan.GET("/:id", controllers.GetPenagihanByID)
			penagihan.POST("/", controllers.CreatePenagihan)
			penagihan.PUT("/:id", controllers.UpdatePenagihan)
			penagihan.DELETE("/:id", controllers.DeletePenagihan)
		}

		setoran := auth.Group("/setoran")
		{
			setoran.GET("/", controllers.GetAllSetoran)
			setoran.GET("/:id", controllers.GetSetoranByID)
			setoran.POST("/", controllers.CreateSetoran)
			setoran.PUT("/:id", controllers.UpdateSetoran)
			setoran.DELETE("/:id", controllers.DeleteSetoran)
		}

		pengeluaran := auth.Group("/pengeluaran")
		{
			pengeluaran.GET("/", controllers.GetAllPengeluaran)
			pengeluaran.GET("/:id", controllers.GetPengeluaranByID)
			pengeluaran.POST("/", controllers.CreatePengeluaran)
			pengeluaran.PUT("/:id", controllers.UpdatePengeluaran)
			pengeluaran.DELETE("/:id", controllers.DeletePengeluaran)
		}

		auth.GET("/reports", controllers.Reports)
	}
}
