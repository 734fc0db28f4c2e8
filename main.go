package main

import (
	"fmt"
	"log"

	"blossom-invoice-backend/config"
	"blossom-invoice-backend/controllers"
	"blossom-invoice-backend/render"
	"blossom-invoice-backend/routes"
	"blossom-invoice-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	invoices := controllers.NewInvoiceController(
		cfg,
		render.New(cfg.LogoPath),
		services.NewPDFService(),
		services.NewTelegramService(cfg.TelegramAPIBase, cfg.BotToken),
	)

	r := routes.SetupRouter(cfg, invoices)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
