package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hrygo/eventsense/internal/profile"
	"github.com/hrygo/eventsense/plugin/nlp/eventparse"
	"github.com/hrygo/eventsense/plugin/nlp/naturaldate"
	"github.com/hrygo/eventsense/plugin/nlp/postagger"
	"github.com/hrygo/eventsense/server"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "eventsense",
	Short: "Natural-language scheduling phrase parser",
	RunE: func(_ *cobra.Command, _ []string) error {
		instanceProfile := &profile.Profile{
			Mode:     viper.GetString("mode"),
			Addr:     viper.GetString("addr"),
			Port:     viper.GetInt("port"),
			Timezone: viper.GetString("timezone"),
			Version:  version,

			MaxConcurrentParses: viper.GetInt64("max-concurrent-parses"),
			RateLimitPerSecond:  viper.GetFloat64("rate-limit"),
			RateLimitBurst:      viper.GetInt("rate-limit-burst"),
		}
		if err := instanceProfile.Validate(); err != nil {
			return err
		}

		logger := newLogger(instanceProfile)
		slog.SetDefault(logger)

		loc := instanceProfile.Location()
		parser := eventparse.NewParser(
			postagger.New(),
			naturaldate.NewWhenResolver(),
			naturaldate.NewCalendarResolver(),
		).WithClock(func() time.Time { return time.Now().In(loc) })

		srv := server.New(instanceProfile, parser, logger)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			if err := srv.Start(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), instanceProfile.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", slog.String("error", err.Error()))
			return err
		}
		logger.Info("server stopped")
		return nil
	},
}

func newLogger(p *profile.Profile) *slog.Logger {
	if p.IsDev() {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("mode", "dev", `mode of the server, can be "dev" or "prod"`)
	flags.String("addr", "", "binding address for the server")
	flags.Int("port", 6767, "binding port for the server")
	flags.String("timezone", "Local", "IANA timezone anchoring relative dates")
	flags.Int64("max-concurrent-parses", 16, "maximum parse requests running at once")
	flags.Float64("rate-limit", 10, "per-client requests per second")
	flags.Int("rate-limit-burst", 20, "per-client burst allowance")

	for _, name := range []string{"mode", "addr", "port", "timezone", "max-concurrent-parses", "rate-limit", "rate-limit-burst"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
	viper.SetEnvPrefix("eventsense")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
