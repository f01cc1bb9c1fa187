package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"hangar/internal/config"
	"hangar/internal/hangar"
	"hangar/internal/logging"
	"hangar/internal/server"
	"hangar/internal/shell"
	"hangar/internal/surface"
)

func main() {
	if err := newRootCmd(config.Load()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "hangar",
		Short:        "Armored vehicle hangar: shell, HTTP API and terminal viewer",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Configure(cfg.LogLevel, cfg.LogDir, cfg.OTelServiceName)
		},
	}
	root.PersistentFlags().StringVar(&cfg.Port, "port", cfg.Port, "Port for HTTP server")
	root.PersistentFlags().IntVar(&cfg.CellWidth, "cell-width", cfg.CellWidth, "Pixels per text column")
	root.PersistentFlags().IntVar(&cfg.CellHeight, "cell-height", cfg.CellHeight, "Pixels per text row")

	root.AddCommand(
		&cobra.Command{
			Use:   "cli",
			Short: "Read hangar commands from stdin",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withTelemetry(cmd.Context(), cfg, runCLI)
			},
		},
		&cobra.Command{
			Use:   "server",
			Short: "Serve the hangar HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withTelemetry(cmd.Context(), cfg, runServer)
			},
		},
		&cobra.Command{
			Use:   "both",
			Short: "Run the shell and the HTTP API together",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withTelemetry(cmd.Context(), cfg, runBoth)
			},
		},
		newViewCmd(cfg),
	)
	return root
}

func newViewCmd(cfg *config.Config) *cobra.Command {
	var script string
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Apply a command script and show the hangar in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTelemetry(cmd.Context(), cfg, func(ctx context.Context, cfg *config.Config, tp *hangar.TelemetryProvider) error {
				return runView(ctx, cfg, tp, script)
			})
		},
	}
	cmd.Flags().StringVar(&script, "script", "", "File with shell commands (default: a hangar of the configured size)")
	return cmd
}

type runFunc func(ctx context.Context, cfg *config.Config, tp *hangar.TelemetryProvider) error

func withTelemetry(parent context.Context, cfg *config.Config, run runFunc) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	telemetryProvider, err := hangar.NewTelemetryProvider(ctx, cfg.OTelServiceName, cfg.OTelEndpoint)
	if err != nil {
		logging.Errorf(ctx, "Failed to initialize telemetry: %v", err)
		return err
	}
	defer shutdownTelemetry(telemetryProvider)

	if err := run(ctx, cfg, telemetryProvider); err != nil {
		logging.Error(ctx, err.Error())
		return err
	}
	return nil
}

func scaleOf(cfg *config.Config) surface.Scale {
	return surface.Scale{X: cfg.CellWidth, Y: cfg.CellHeight}
}

func runCLI(ctx context.Context, cfg *config.Config, tp *hangar.TelemetryProvider) error {
	shell.New(os.Stdin, os.Stdout, tp, scaleOf(cfg)).Run(ctx)
	return nil
}

func runServer(ctx context.Context, cfg *config.Config, tp *hangar.TelemetryProvider) error {
	srv := server.NewServer(cfg.Port, cfg.OTelServiceName, tp, scaleOf(cfg))

	go func() {
		<-ctx.Done()
		logging.Info(context.Background(), "Received shutdown signal...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Errorf(shutdownCtx, "Server shutdown error: %v", err)
		}
	}()

	logging.Infof(ctx, "Starting server mode at %s", srv.GetAddress())
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

func runBoth(ctx context.Context, cfg *config.Config, tp *hangar.TelemetryProvider) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := server.NewServer(cfg.Port, cfg.OTelServiceName, tp, scaleOf(cfg))

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- srv.Start()
	}()

	cliDone := make(chan struct{})
	go func() {
		shell.New(os.Stdin, os.Stdout, tp, scaleOf(cfg)).Run(ctx)
		close(cliDone)
	}()

	var err error
	select {
	case err = <-serverDone:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
	case <-cliDone:
		logging.Info(ctx, "CLI exited")
	case <-ctx.Done():
		logging.Info(context.Background(), "Context cancelled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if serr := srv.Shutdown(shutdownCtx); serr != nil {
		logging.Errorf(shutdownCtx, "Server shutdown error: %v", serr)
	}
	return err
}

func runView(ctx context.Context, cfg *config.Config, tp *hangar.TelemetryProvider, script string) error {
	var in io.Reader
	if script == "" {
		in = strings.NewReader(fmt.Sprintf("create_hangar %d %d\n", cfg.HangarWidth, cfg.HangarHeight))
	} else {
		f, err := os.Open(script)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	sh := shell.New(in, io.Discard, tp, scaleOf(cfg))
	sh.Run(ctx)
	h := sh.Hangar()
	if h == nil {
		return errors.New("script did not create a hangar")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	draw := func() {
		screen.Clear()
		h.Draw(ctx, surface.NewScreen(screen, scaleOf(cfg)))
		screen.Show()
	}
	draw()

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				draw()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
			}
		}
	}
}

func shutdownTelemetry(telemetryProvider *hangar.TelemetryProvider) {
	ctx := context.Background()
	logging.Info(ctx, "Shutting down telemetry...")
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutdownCancel()

	if err := telemetryProvider.Shutdown(shutdownCtx); err != nil {
		logging.Errorf(shutdownCtx, "Error shutting down telemetry: %v", err)
	}
}
