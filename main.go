// Command river-crossing runs the wolf-goat-cabbage puzzle server.
//
// It has three modes:
//  1. "serve" (default) – HTTP server exposing the REST API, the WebSocket
//     feed, and an /mcp HTTP endpoint
//  2. "play" – interactive terminal game against an in-process engine
//  3. "mcp" – MCP stdio server, reusing an external API if one is running
//     or spinning up an internal one if not
//
// Configuration comes from the environment (a .env file is honored);
// see the config package for the variable list.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.ngrok.com/ngrok"
	ngrokConfig "golang.ngrok.com/ngrok/config"

	"github.com/ferrygame/river-crossing/api"
	"github.com/ferrygame/river-crossing/config"
	"github.com/ferrygame/river-crossing/game/engine"
	"github.com/ferrygame/river-crossing/game/service"
	"github.com/ferrygame/river-crossing/game/session"
	"github.com/ferrygame/river-crossing/transport/mcp"
	"github.com/ferrygame/river-crossing/transport/repl"
	"github.com/ferrygame/river-crossing/transport/websocket"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "River Crossing Puzzle Server"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	if err := rootCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

// rootCommand builds the CLI tree. Running with no subcommand serves,
// matching how the binary is deployed.
func rootCommand() *cli.Command {
	return &cli.Command{
		Name:    "river-crossing",
		Usage:   "wolf, goat and cabbage puzzle server",
		Version: Version,
		Flags:   serveFlags(),
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP server (REST API, WebSocket feed, /mcp endpoint)",
				Flags:  serveFlags(),
				Action: runServe,
			},
			{
				Name:   "play",
				Usage:  "play the puzzle in the terminal",
				Action: runPlay,
			},
			{
				Name:  "mcp",
				Usage: "run an MCP stdio server for AI agents",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "base-url",
						Usage: "REST API to proxy; probes the configured address and starts an internal server when empty",
					},
					&cli.BoolFlag{
						Name:  "debug",
						Usage: "enable debug logging",
					},
				},
				Action: runMCP,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 0 {
				return fmt.Errorf("unknown command: %s", cmd.Args().First())
			}
			return runServe(ctx, cmd)
		},
	}
}

// serveFlags is built per command: the same flags hang off the root
// command so that a bare `river-crossing --ngrok` works too.
func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "ngrok",
			Usage: "expose the server through an ngrok tunnel",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
	}
}

// setup loads the configuration and applies the log level.
func setup(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.LogLevel
	if cmd.Bool("debug") {
		level = "debug"
	}
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	return cfg, nil
}

// newGameService wires the session manager and game service.
func newGameService() (service.GameService, *session.Manager) {
	sessionManager := session.NewManager()
	return service.NewGameService(sessionManager), sessionManager
}

// runServe starts the HTTP server with REST API, WebSocket hub, and an /mcp
// proxy endpoint. If ngrok is enabled (flag or environment), it also
// provisions a public tunnel.
func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	log.Info().Str("version", Version).Msg(AppName + " starting")

	gameService, sessionManager := newGameService()

	// Create WebSocket hub
	hub := websocket.NewHub()
	go hub.Run()

	// Create API server
	apiServer := api.NewServer(gameService, hub)

	addr := cfg.Addr()

	// Create MCP client for the /mcp endpoint
	mcpClient := mcp.NewClient(cfg.BaseURL())

	// Main router combines the API and the MCP endpoint
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/", apiServer)
	mainRouter.HandleFunc("/mcp", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := mcpClient.GetMCPServer().HandleMessage(r.Context(), body)

		w.Header().Set("Content-Type", "application/json")
		responseData, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Write(responseData)
	})

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mainRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Everything below shuts down together
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go sessionCleanupRoutine(runCtx, sessionManager, cfg.CleanupInterval, cfg.SessionTTL)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		log.Info().Str("addr", addr).Msg("http server listening")
		log.Info().
			Str("rest", fmt.Sprintf("http://%s/api", addr)).
			Str("websocket", fmt.Sprintf("ws://%s/ws?session=<session_id>", addr)).
			Str("mcp", fmt.Sprintf("http://%s/mcp", addr)).
			Msg("endpoints ready")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Start ngrok tunnel if enabled by flag or environment
	if cmd.Bool("ngrok") || cfg.NgrokEnabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runNgrokTunnel(runCtx, cfg, mainRouter)
		}()
	}

	sig := <-stop
	log.Info().Str("signal", sig.String()).Msg("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}

	wg.Wait()
	log.Info().Msg("server stopped")
	return nil
}

// runNgrokTunnel serves the same router through a public ngrok endpoint.
func runNgrokTunnel(ctx context.Context, cfg *config.Config, handler http.Handler) {
	if cfg.NgrokAuthToken == "" {
		log.Warn().Msg("ngrok enabled but NGROK_AUTHTOKEN is not set")
		return
	}

	log.Info().Msg("starting ngrok tunnel")

	var tunnel ngrokConfig.Tunnel
	if cfg.NgrokDomain != "" {
		tunnel = ngrokConfig.HTTPEndpoint(ngrokConfig.WithDomain(cfg.NgrokDomain))
		log.Info().Str("domain", cfg.NgrokDomain).Msg("using custom ngrok domain")
	} else {
		tunnel = ngrokConfig.HTTPEndpoint()
	}

	tun, err := ngrok.Listen(ctx,
		tunnel,
		ngrok.WithAuthtoken(cfg.NgrokAuthToken),
	)
	if err != nil {
		log.Error().Err(err).Msg("start ngrok tunnel")
		return
	}
	defer func() {
		if err := tun.Close(); err != nil {
			log.Error().Err(err).Msg("close ngrok tunnel")
		}
	}()

	log.Info().Str("url", tun.URL()).Msg("ngrok tunnel established")

	if err := http.Serve(tun, handler); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("ngrok server")
	}
	log.Info().Msg("ngrok tunnel closed")
}

// sessionCleanupRoutine periodically removes sessions that have not been
// accessed within the retention window.
func sessionCleanupRoutine(ctx context.Context, manager *session.Manager, interval, maxAge time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := manager.CleanupExpiredSessions(maxAge); removed > 0 {
				log.Info().Int("removed", removed).Msg("cleaned up expired sessions")
			}
		}
	}
}

// runPlay starts the terminal game. It needs no server and no config.
func runPlay(ctx context.Context, cmd *cli.Command) error {
	return repl.Run(engine.NewEngine())
}

// runMCP runs an MCP stdio server. It proxies --base-url when given,
// otherwise reuses an external API at the configured address, otherwise
// starts a minimal internal HTTP API on a random loopback port.
func runMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	baseURL := cmd.String("base-url")
	if baseURL == "" {
		baseURL, err = selectAPIServer(cfg)
		if err != nil {
			return err
		}
	}

	mcpClient := mcp.NewClient(baseURL)

	log.Info().Str("base_url", baseURL).Msg("mcp stdio server ready")

	if err := server.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		return fmt.Errorf("mcp stdio server: %w", err)
	}
	return nil
}

// selectAPIServer probes the configured address for a running API and
// falls back to an internal one bound to a random loopback port.
func selectAPIServer(cfg *config.Config) (string, error) {
	externalURL := cfg.BaseURL()

	testClient := &http.Client{Timeout: 2 * time.Second}
	resp, err := testClient.Get(externalURL + "/api/healthz")
	if err == nil {
		resp.Body.Close()
		if resp.StatusCode < 500 {
			log.Info().Str("url", externalURL).Msg("using external api server")
			return externalURL, nil
		}
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("bind internal server: %w", err)
	}

	internalAddr := listener.Addr().(*net.TCPAddr).String()
	log.Info().Str("addr", internalAddr).Msg("starting internal api server for mcp stdio")

	gameService, _ := newGameService()

	hub := websocket.NewHub()
	go hub.Run()

	apiServer := api.NewServer(gameService, hub)

	httpServer := &http.Server{Handler: apiServer}
	go func() {
		if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("internal http server")
		}
	}()

	// Give the listener a moment before the first tool call arrives
	time.Sleep(100 * time.Millisecond)

	return fmt.Sprintf("http://%s", internalAddr), nil
}
