package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	cmd "github.com/algosender/algosender/cmd/algosender/services"
	"github.com/algosender/algosender/config"
	algoLogger "github.com/algosender/algosender/internal/logger"
	"github.com/algosender/algosender/internal/version"
)

func main() {
	err := run()
	if err != nil {
		log.Fatalf("failed to run AlgoSender: %v", err)
	}

	os.Exit(0)
}

func run() error {
	configDir, dumpConfigFile := parseFlags()

	appConfig, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("failed to load app config: %w", err)
	}

	if dumpConfigFile != "" {
		return config.DumpConfig(dumpConfigFile)
	}

	logger, err := algoLogger.NewLogger(appConfig.LogLevel, appConfig.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create logger: %v", err)
	}

	hostname, err := os.Hostname()
	if err != nil {
		return fmt.Errorf("failed to get host name: %v", err)
	}

	logger = logger.With(slog.String("host", hostname))

	logger.Info("Starting AlgoSender",
		slog.String("version", version.Version),
		slog.String("commit", version.Commit),
		slog.String("network", appConfig.Network),
	)

	shutdownFns := make([]func(), 0)

	go func() {
		if appConfig.ProfilerAddr != "" {
			logger.Info(fmt.Sprintf("Starting profiler on http://%s/debug/pprof", appConfig.ProfilerAddr))

			err := http.ListenAndServe(appConfig.ProfilerAddr, nil)
			if err != nil {
				logger.Error("failed to start profiler server", slog.String("err", err.Error()))
			}
		}
	}()

	go func() {
		if appConfig.Prometheus.IsEnabled() {
			logger.Info("Starting prometheus", slog.String("endpoint", appConfig.Prometheus.Endpoint))
			http.Handle(appConfig.Prometheus.Endpoint, promhttp.Handler())
			err := http.ListenAndServe(appConfig.Prometheus.Addr, nil)
			if err != nil {
				logger.Error("failed to start prometheus server", slog.String("err", err.Error()))
			}
		}
	}()

	shutdown, err := cmd.StartAPIServer(logger, appConfig)
	if err != nil {
		return fmt.Errorf("failed to start api: %v", err)
	}
	shutdownFns = append(shutdownFns, shutdown)

	// setup signal catching
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-signalChan
	logger.Info("Received shutdown signal", slog.String("reason", sig.String()))

	appCleanup(logger, shutdownFns)

	return nil
}

func appCleanup(logger *slog.Logger, shutdownFns []func()) {
	logger.Info("cleaning up")
	for _, fn := range shutdownFns {
		fn()
	}
}

func parseFlags() (string, string) {
	help := flag.Bool("help", false, "Show help")
	dumpConfigFile := flag.String("dump_config", "", "dump config to specified file and exit")
	configDir := flag.String("config", "", "path to configuration file")

	flag.Parse()

	if *help {
		fmt.Println("usage: algosender [options]")
		fmt.Println("where options are:")
		fmt.Println("")
		fmt.Println("    -config=/location")
		fmt.Println("          directory to look for config (default='')")
		fmt.Println("")
		fmt.Println("    -dump_config=/file.yaml")
		fmt.Println("          dump config to specified file and exit (default='config/dumped_config.yaml')")
		fmt.Println("")
		os.Exit(0)
	}

	return *configDir, *dumpConfigFile
}
