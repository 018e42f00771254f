package main

import (
	"fmt"
	"time"

	"github.com/cuemby/sysdb/internal/config"
	"github.com/cuemby/sysdb/pkg/httpapi"
	"github.com/cuemby/sysdb/pkg/log"
	"github.com/cuemby/sysdb/pkg/metrics"
	"github.com/cuemby/sysdb/pkg/store"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the sysdbd store and HTTP introspection server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringP("config", "c", "", "YAML config file (optional)")
	serveCmd.Flags().String("listen", "127.0.0.1:9090", "Address for the HTTP introspection server")
	serveCmd.Flags().Bool("debug-store", false, "Expose /debug/store, an unfiltered dump of the whole store")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %v", err)
		}
		cfg = loaded
	}
	if addr, _ := cmd.Flags().GetString("listen"); cmd.Flags().Changed("listen") {
		cfg.ListenAddr = addr
	}
	if debug, _ := cmd.Flags().GetBool("debug-store"); cmd.Flags().Changed("debug-store") {
		cfg.DebugStore = debug
	}

	s := store.New()

	collectorPeriod := 15 * time.Second
	if cfg.CollectorPeriod != "" {
		if d, err := time.ParseDuration(cfg.CollectorPeriod); err == nil {
			collectorPeriod = d
		}
	}
	collector := metrics.NewCollector(s, collectorPeriod)
	collector.Start()
	defer collector.Stop()

	metrics.SetVersion(Version)
	metrics.Init(s)

	srv := httpapi.NewServer(s, httpapi.Options{EnableDebugStore: cfg.DebugStore})

	log.Info(fmt.Sprintf("sysdbd listening on %s", cfg.ListenAddr))
	return srv.ListenAndServe(cfg.ListenAddr)
}
