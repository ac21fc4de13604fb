package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ringmembers/ringmembership/internal/config"
	"github.com/ringmembers/ringmembership/internal/httpapi"
	"github.com/ringmembers/ringmembership/pkg/ringmember"
)

var verbosity int

// serveCmd starts one membership node and blocks until SIGINT or SIGTERM.
var serveCmd = &cobra.Command{
	Use:          "serve",
	Short:        "Run a membership node until interrupted.",
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	serveCmd.Flags().IntVar(&verbosity, "verbosity", 0, "Logging verbosity; higher is more verbose.")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger, zapLogger, err := createLogger(verbosity)
	if err != nil {
		return err
	}
	defer zapLogger.Sync() //nolint:errcheck

	loadedConfig, err := config.Load(configPath)
	if err != nil {
		return &configError{err: fmt.Errorf("loading config file %q: %w", configPath, err)}
	}

	node, err := ringmember.New(
		ringmember.WithLogger(logger),
		ringmember.WithMachineID(loadedConfig.Node.MachineID),
		ringmember.WithIsIntroducer(loadedConfig.Node.IsIntroducer),
		ringmember.WithAdvertisedAddress(loadedConfig.Node.Hostname),
		ringmember.WithBindAddress(fmt.Sprintf(":%d", loadedConfig.Protocol.Port)),
		ringmember.WithClusterPort(loadedConfig.Protocol.Port),
		ringmember.WithPingRate(loadedConfig.Protocol.PingInterval()),
		ringmember.WithDropThreshold(loadedConfig.Protocol.DropThreshold),
		ringmember.WithLossRate(loadedConfig.Transport.LossRate),
		ringmember.WithDNSPath(loadedConfig.Protocol.DNSPath),
		ringmember.WithChangeSinkURL(loadedConfig.Transport.ChangeSinkURL),
	)
	if err != nil {
		return fmt.Errorf("constructing node: %w", err)
	}

	if err := node.Startup(); err != nil {
		return fmt.Errorf("starting node: %w", err)
	}
	logger.Info("Node startup complete")

	controlServer := &http.Server{
		Addr:    loadedConfig.Transport.ControlAddress,
		Handler: httpapi.NewServer(logger, node).Handler(),
	}
	go func() {
		if err := controlServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error(err, "Control HTTP server stopped unexpectedly.")
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	if err := controlServer.Shutdown(context.Background()); err != nil {
		logger.Error(err, "Shutting down control server.")
	}
	return node.Shutdown()
}
