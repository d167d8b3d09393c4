package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/cpusched/api"
	"github.com/inference-sim/cpusched/config"
)

var configPath string // Path to the server config YAML

// serveCmd starts the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling engine over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		// The persistent --log flag doubles as the server's log_level key.
		flags := cmd.Flags()
		cfg, err := config.Load(configPath, flags)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		level, _ := logrus.ParseLevel(cfg.LogLevel)
		logrus.SetLevel(level)

		app := api.NewApp(cfg)
		logrus.Infof("Listening on %s (default quantum %d, max makespan %d)", cfg.Addr(), cfg.DefaultQuantum, cfg.MaxMakespan)
		logrus.Fatal(app.Listen(cfg.Addr()))
	},
}

func init() {
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the server config YAML (default ./config.yaml if present)")
	serveCmd.Flags().Int("port", config.DefaultPort, "Listen port")
	serveCmd.Flags().Int64("quantum", 0, "Default Round Robin quantum for requests without one")
	serveCmd.Flags().Int64("max-makespan", config.DefaultMaxMakespan, "Reject requests whose latest arrival plus total burst exceeds this")

	rootCmd.AddCommand(serveCmd)
}
