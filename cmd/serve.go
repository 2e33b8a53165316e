package cmd

import (
	"fmt"
	"net"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"outfitter/internal/apihandlers"
)

var (
	serveAddr string // Listen address
	servePort string // Listen port
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run Outfitter as an HTTP API server",
	Long: `Starts an HTTP server exposing outfit suggestions and the wardrobe
via a small JSON API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		addr := appInstance.Config.Server.Addr
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}
		port := appInstance.Config.Server.Port
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		router := gin.Default() // Includes logger and recovery middleware
		apihandlers.NewAPIHandler(appInstance).RegisterRoutes(router)

		listenAddr := net.JoinHostPort(addr, port)
		log.Infof("Starting Outfitter API server on http://%s", listenAddr)

		// router.Run blocks unless an error occurs
		if err := router.Run(listenAddr); err != nil {
			log.WithError(err).Error("Failed to run API server")
			return fmt.Errorf("failed to run API server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost", "Address to listen on (e.g., '0.0.0.0' for all interfaces)")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")
}
