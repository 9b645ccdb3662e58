package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/synapse-ai/sourcing-agent/internal/logger"
	"github.com/synapse-ai/sourcing-agent/internal/server"
)

const defaultListenAddr = ":8080"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the sourcing-agent HTTP server with the JSON API and web UI",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", defaultListenAddr, "address for the http server to listen on")

	viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
}

func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the sourcing-agent server", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	agent, recruiter, err := buildAgent(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the sourcing pipeline", zap.Error(err))
	}

	listen := config.Listen
	if listen == "" {
		listen = defaultListenAddr
	}

	srv := server.New(agent, recruiter, logger, listen, version)

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("running the http server", zap.Error(err))
	}

	logger.Info("server stopped")
}
