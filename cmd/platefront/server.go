// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/platefront/platefront/internal/auth"
	"github.com/platefront/platefront/internal/cleanup"
	"github.com/platefront/platefront/internal/config"
	"github.com/platefront/platefront/internal/db"
	"github.com/platefront/platefront/internal/handlers"
	"github.com/platefront/platefront/internal/middleware"
	"github.com/platefront/platefront/internal/tls"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start and manage the Platefront HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := db.InitDB(config.GetString("database.type"), config.GetString("database.path")); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// Abandoned drafts are swept once their edit tokens expire
		retention := time.Duration(config.GetInt("drafts.token_expiry_hours")) * time.Hour
		janitor := cleanup.NewJanitor(db.GetDB(), config.GetString("storage.uploads_dir"), retention)
		scheduler := cleanup.NewScheduler(janitor)
		if interval := config.GetDuration("drafts.cleanup_interval"); interval > 0 {
			scheduler.SetInterval(interval)
		}
		scheduler.Start()

		r := buildRouter()

		if config.GetBool("server.tls_enabled") {
			tlsCfg, err := tls.LoadConfig()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to load TLS config: %v\n", err)
				os.Exit(1)
			}

			tlsManager, err := tls.NewManager(tlsCfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to initialize TLS manager: %v\n", err)
				os.Exit(1)
			}

			// HTTP listener handles ACME challenges and redirects
			httpAddr := fmt.Sprintf(":%s", config.GetString("server.http_port"))
			httpStarted := make(chan error, 1)
			go func() {
				listener, err := net.Listen("tcp", httpAddr)
				if err != nil {
					httpStarted <- fmt.Errorf("failed to bind HTTP server to %s: %w", httpAddr, err)
					return
				}

				httpStarted <- nil
				fmt.Printf("HTTP server listening on %s (ACME challenges + redirects)\n", httpAddr)

				if err := http.Serve(listener, r); err != nil {
					fmt.Fprintf(os.Stderr, "HTTP server failed: %v\n", err)
					os.Exit(1)
				}
			}()

			if err := <-httpStarted; err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				fmt.Fprintf(os.Stderr, "Hint: Port 80 typically requires root/sudo privileges\n")
				os.Exit(1)
			}

			httpsAddr := fmt.Sprintf(":%s", config.GetString("server.https_port"))
			fmt.Printf("Starting HTTPS server on %s for %s\n", httpsAddr, tlsCfg.Domain)

			server := &http.Server{
				Addr:      httpsAddr,
				Handler:   r,
				TLSConfig: tlsManager.GetTLSConfig(),
			}
			if err := server.ListenAndServeTLS("", ""); err != nil {
				fmt.Fprintf(os.Stderr, "HTTPS server error: %v\n", err)
				os.Exit(1)
			}
		} else {
			// Dev mode - HTTP only
			addr := fmt.Sprintf(":%s", config.GetString("server.port"))
			fmt.Printf("Starting HTTP server on %s (TLS disabled)\n", addr)
			if err := r.Run(addr); err != nil {
				fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
				os.Exit(1)
			}
		}
	},
}

// buildRouter assembles the wizard's routes. Draft mutations require
// the bearer token issued at draft creation; the logo endpoint is also
// rate limited because extraction is the most expensive request we
// serve.
func buildRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middleware.SecurityHeadersMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "platefront",
		})
	})

	uploadInterval := config.GetDuration("uploads.rate_interval")
	if uploadInterval <= 0 {
		uploadInterval = time.Minute
	}
	uploadLimiter := middleware.NewRateLimiter(config.GetInt("uploads.rate_limit"), uploadInterval)

	api := r.Group("/api")
	{
		api.POST("/drafts", handlers.CreateDraftHandler)
		api.GET("/palettes", handlers.ListStarterPalettesHandler)

		draft := api.Group("/drafts/:id")
		draft.Use(auth.RequireDraftToken())
		{
			draft.GET("", handlers.GetDraftHandler)
			draft.PUT("/info", handlers.UpdateInfoHandler)
			draft.PUT("/contact", handlers.UpdateContactHandler)
			draft.PUT("/hours", handlers.UpdateHoursHandler)
			draft.PUT("/pages", handlers.UpdatePagesHandler)
			draft.PUT("/design", handlers.UpdateDesignHandler)
			draft.POST("/logo", middleware.RateLimitMiddleware(uploadLimiter), handlers.UploadLogoHandler)
			draft.POST("/submit", handlers.SubmitDraftHandler)
		}
	}

	// The preview pane loads this stylesheet by URL, so it cannot
	// send the bearer token; draft IDs alone gate nothing sensitive
	// beyond three colors.
	r.GET("/preview/:id/theme.css", handlers.ThemeCSSHandler)

	return r
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
