package echoServer

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/shubhranshu-pandey/Lost-and-Found/app/echoServer/controller/auth"
	"github.com/shubhranshu-pandey/Lost-and-Found/app/echoServer/controller/claim"
	"github.com/shubhranshu-pandey/Lost-and-Found/app/echoServer/controller/item"
	"github.com/shubhranshu-pandey/Lost-and-Found/app/echoServer/controller/moderator"
)

type C struct {
	Auth      *auth.Controller
	Item      *item.Controller
	Claim     *claim.Controller
	Moderator *moderator.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	api := e.Group("/api")
	api.POST("/auth/login", c.Auth.Login)

	api.GET("/items", c.Item.List)
	api.GET("/items/:id", c.Item.Detail)
	api.POST("/items", c.Item.Create)
	api.PATCH("/items/:id/status", c.Item.UpdateStatus)
	api.POST("/items/:id/claim", c.Claim.Create)

	// Moderator
	mod := api.Group("/moderator")
	mod.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(c.JWTSecret),

		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization:Bearer ",
	}))
	mod.GET("/pending", c.Moderator.PendingItems)
	mod.GET("/claims", c.Moderator.PendingClaims)
	mod.PATCH("/claims/:claimId", c.Moderator.ResolveClaim)
	mod.GET("/stats", c.Moderator.DashboardStats)
}
