package routes

import (
	"time"

	"lostfound/app"
	"lostfound/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	authCtl := controllers.NewAuthController(s)
	itemCtl := controllers.NewItemController(s)
	adminItemCtl := controllers.NewAdminItemController(s)
	userCtl := controllers.NewUserController(s)
	auditCtl := controllers.NewAuditController(s)

	authMW := app.AuthRequired(s.AppSess, s.Repo)
	adminMW := app.AdminOnly()
	seenMW := app.TouchLastSeen(s.Repo, a.RDB, 5*time.Minute)

	// Stored item photos.
	r.Static("/uploads", a.Config.UploadDir)

	// ------------------------------
	// Auth
	// ------------------------------
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}
	authed := r.Group("/api/auth", authMW)
	{
		authed.POST("/logout", authCtl.Logout)
		authed.GET("/whoami", authCtl.WhoAmI)
	}

	// ------------------------------
	// Items: browse / report / claim
	// ------------------------------
	items := r.Group("/api/items", authMW, seenMW)
	{
		items.GET("", itemCtl.ListItems) // ?q=
		items.GET("/mine", itemCtl.ListMine)
		items.POST("", itemCtl.ReportItem)
		items.POST("/:id/claim", itemCtl.Claim)
		items.POST("/:id/unclaim", itemCtl.Unclaim)
	}

	// ------------------------------
	// Admin: item table, users, audit
	// ------------------------------
	admin := r.Group("/api/admin", authMW, adminMW)
	{
		admin.GET("/items", adminItemCtl.ListItems) // ?q=&page=&size=
		admin.POST("/items", adminItemCtl.CreateItem)
		admin.PUT("/items/:id", adminItemCtl.UpdateItem)
		admin.DELETE("/items/:id", adminItemCtl.DeleteItem)
		admin.POST("/items/:id/verify", adminItemCtl.VerifyItem)

		admin.GET("/users", userCtl.ListUsers) // ?q=&page=&size=
		admin.GET("/users/:id", userCtl.GetUser)
		admin.DELETE("/users/:id", userCtl.DeleteUser)

		admin.GET("/audit", auditCtl.ListAuditLog)
	}
}
