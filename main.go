// Package main is the Lost & Found portal API: item reports, moderator
// review, and the claim workflow over a relational store.
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/shubhranshu-pandey/Lost-and-Found/app/echoServer"
	authctrl "github.com/shubhranshu-pandey/Lost-and-Found/app/echoServer/controller/auth"
	claimctrl "github.com/shubhranshu-pandey/Lost-and-Found/app/echoServer/controller/claim"
	itemctrl "github.com/shubhranshu-pandey/Lost-and-Found/app/echoServer/controller/item"
	modctrl "github.com/shubhranshu-pandey/Lost-and-Found/app/echoServer/controller/moderator"
	"github.com/shubhranshu-pandey/Lost-and-Found/app/echoServer/validation"
	"github.com/shubhranshu-pandey/Lost-and-Found/config"
	"github.com/shubhranshu-pandey/Lost-and-Found/notify"
	claimrepo "github.com/shubhranshu-pandey/Lost-and-Found/repository/claim"
	itemrepo "github.com/shubhranshu-pandey/Lost-and-Found/repository/item"
	statsrepo "github.com/shubhranshu-pandey/Lost-and-Found/repository/stats"
	authsvc "github.com/shubhranshu-pandey/Lost-and-Found/service/auth"
	claimsvc "github.com/shubhranshu-pandey/Lost-and-Found/service/claim"
	itemsvc "github.com/shubhranshu-pandey/Lost-and-Found/service/item"
	statssvc "github.com/shubhranshu-pandey/Lost-and-Found/service/stats"
	"github.com/shubhranshu-pandey/Lost-and-Found/util/database"
)

func main() {

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()

	// DB: *sql.DB (postgres or sqlite, decided by the DSN)
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// notifier
	var notifier notify.Notifier = notify.NewLog(log)
	if cfg.RabbitMQURL != "" {
		amqpNotifier, err := notify.NewAMQP(cfg.RabbitMQURL, cfg.RabbitMQExch, log)
		if err != nil {
			log.Error("rabbitmq connect failed", "err", err)
			os.Exit(1)
		}
		defer amqpNotifier.Close()
		notifier = amqpNotifier
	}

	// repos
	ir := itemrepo.New(db)
	cr := claimrepo.New(db)
	sr := statsrepo.New(db)

	// services
	its := itemsvc.New(ir, notifier)
	cls := claimsvc.New(db, cr, ir, notifier)
	sts := statssvc.New(sr)
	aus := authsvc.New(cfg.ModeratorUser, cfg.ModeratorPass, cfg.JWTSecret)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: aus, V: v, Log: log}
	itemC := &itemctrl.Controller{Svc: its, V: v, Log: log}
	claimC := &claimctrl.Controller{Svc: cls, V: v, Log: log}
	modC := &modctrl.Controller{Items: its, Claims: cls, Stats: sts, V: v, Log: log}

	// echo
	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	echoServer.Register(e, echoServer.C{
		Auth:      authC,
		Item:      itemC,
		Claim:     claimC,
		Moderator: modC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
