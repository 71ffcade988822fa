package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"github.com/sarmadgardezi/portfolio"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig.site()
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}
		if cfg.SessionSecret == "" {
			cfg.SessionSecret = portfolio.MustEnv("SESSION_SECRET")
		}

		app := portfolio.New(cfg)
		app.Echo.Logger.SetLevel(log.INFO)
		if err := app.Init(); err != nil {
			return err
		}

		if cfgViper != nil && cfgViper.ConfigFileUsed() != "" {
			cfgViper.OnConfigChange(func(e fsnotify.Event) {
				app.Echo.Logger.Warnf("config %s changed (%s); restart to apply", e.Name, e.Op)
			})
			cfgViper.WatchConfig()
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			app.Echo.Logger.Infof("listening on %s (%s)", app.Config.Addr, app.Config.URL)
			errCh <- app.Echo.Start(app.Config.Addr)
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Echo.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return app.Close()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}
