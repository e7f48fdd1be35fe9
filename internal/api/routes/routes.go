package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shahhub/resumehub/internal/api/handlers"
	"github.com/shahhub/resumehub/internal/api/middleware"
)

type Deps struct {
	Auth    *handlers.AuthHandler
	Account *handlers.AccountHandler
	Editor  *handlers.EditorHandler
	Import  *handlers.ImportHandler
	Layout  *handlers.LayoutHandler
	Rewrite *handlers.RewriteHandler
	Keyword *handlers.KeywordHandler
	Photo   *handlers.PhotoHandler
	Saved   *handlers.SavedHandler
	WS      *handlers.WSHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Unauthenticated entry points
	r.POST("/auth/guest", d.Auth.StartGuest)
	r.POST("/auth/signin", d.Auth.SignIn)

	// Protected routes (JWT)
	auth := r.Group("/")
	auth.Use(middleware.JWTAuth())

	auth.GET("/account/me", d.Account.Me)
	auth.POST("/account/upgrade", d.Account.UpgradePro)
	auth.PUT("/account/preferences", d.Account.SavePreferences)

	auth.POST("/documents", d.Editor.Open)
	auth.GET("/documents/:doc_id", d.Editor.Get)
	auth.DELETE("/documents/:doc_id", d.Editor.Close)

	auth.PUT("/documents/:doc_id/personal", d.Editor.UpdatePersonal)
	auth.POST("/documents/:doc_id/sections/:collection", d.Editor.AddEntry)
	auth.PUT("/documents/:doc_id/sections/:collection/:entry_id", d.Editor.UpdateEntry)
	auth.DELETE("/documents/:doc_id/sections/:collection/:entry_id", d.Editor.RemoveEntry)

	auth.POST("/documents/:doc_id/import", d.Import.Upload)
	auth.POST("/documents/:doc_id/layout", d.Layout.Compute)
	auth.GET("/templates", d.Layout.Templates)

	auth.POST("/documents/:doc_id/photo", d.Photo.Upload)
	auth.GET("/photos", d.Photo.List)
	auth.GET("/photos/signed-url", d.Photo.SignedURL)

	// Pro features
	pro := auth.Group("/")
	pro.Use(middleware.RequirePro())
	pro.POST("/documents/:doc_id/rewrite", d.Rewrite.Request)
	pro.POST("/documents/:doc_id/rewrite/apply", d.Rewrite.Apply)
	pro.GET("/documents/:doc_id/keywords", d.Keyword.Suggest)

	// Saved snapshots (signed-in accounts)
	saved := auth.Group("/")
	saved.GET("/resumes", d.Saved.List)
	saved.GET("/resumes/:resume_id", d.Saved.Get)
	saved.DELETE("/resumes/:resume_id", d.Saved.Delete)

	// WebSocket
	auth.GET("/ws/documents/:doc_id/events", d.WS.DocumentEvents)
}
