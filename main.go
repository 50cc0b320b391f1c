package main

import (
	"context"
	"log"
	"os"

	"lostfound/app"
	"lostfound/config"
	"lostfound/db"
	"lostfound/routes"
)

func main() {
	config.LoadEnv()

	application := app.MustNew()
	defer application.Close()

	repo := db.NewRepo(application.DB, nil, application.Log)
	app.EnsureAdminRoles(context.Background(), application, repo)

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	log.Printf("listening on :%s", port)
	_ = r.Run(":" + port)
}
