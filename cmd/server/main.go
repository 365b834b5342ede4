package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/urfave/cli/v3"

	"github.com/mgearhart/clickchess-backend/internal/controller"
	"github.com/mgearhart/clickchess-backend/internal/middleware"
	"github.com/mgearhart/clickchess-backend/internal/service"
)

func main() {
	cmd := &cli.Command{
		Name:  "clickchess-server",
		Usage: "serve the local two-player chess board",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: ":3000",
				Usage: "listen address",
			},
			&cli.StringFlag{
				Name:  "origin",
				Value: "http://localhost:5173",
				Usage: "allowed browser origin",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(cmd.String("addr"), cmd.String("origin"))
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(addr, origin string) error {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Client-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	// Initialize services
	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager)

	// Initialize controllers
	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	// Set up WebSocket routes
	app.Use("/ws/*", middleware.EnsureClientID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(func(c *websocket.Conn) {
		wsController.HandleConnection(c)
	}, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         []string{origin},
	}))

	// Set up REST routes
	api := app.Group("/api", middleware.EnsureClientID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Post("/:gameId/click", gameController.HandleClick)

	return app.Listen(addr)
}
