package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jkettunen/finweather/internal/api"
	"github.com/jkettunen/finweather/internal/cities"
	"github.com/jkettunen/finweather/internal/config"
	"github.com/jkettunen/finweather/internal/models"
	"github.com/jkettunen/finweather/internal/scheduler"
	"github.com/jkettunen/finweather/internal/services"
	"github.com/jkettunen/finweather/pkg/client"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "finweather",
		Short:         "Hourly weather forecasts for Finnish cities",
		Long:          "Serves 24-hour forecasts for the supported Finnish cities, either synthesized locally or fetched from the Open-Meteo API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	getCmd := &cobra.Command{
		Use:   "get [city code]",
		Short: "Print the forecast for a city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			return runGet(args[0], output)
		},
	}
	getCmd.Flags().StringP("output", "o", "text", "Output format (text, json)")

	citiesCmd := &cobra.Command{
		Use:   "cities",
		Short: "List supported city codes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, code := range cities.Default().Codes() {
				fmt.Println(code)
			}
		},
	}

	rootCmd.AddCommand(serveCmd, getCmd, citiesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if parsed, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = parsed
	}
	logger, _ := cfg.Build()
	return logger
}

// buildService wires the provider selected by configuration. The returned
// client is nil when the mock generator is active.
func buildService(cfg *config.Config, directory *cities.Directory, logger *zap.Logger) (*services.Service, *client.OpenMeteoClient) {
	if cfg.Weather.UseMock {
		logger.Info("using mock weather generator")
		return services.NewService(directory, services.NewMockGenerator(logger), logger), nil
	}

	meteo := client.NewOpenMeteoClient(cfg.Weather.OpenMeteoURL, client.Config{
		Timeout:         cfg.Upstream.Timeout,
		MaxRetries:      cfg.Upstream.MaxRetries,
		RetryDelay:      cfg.Upstream.RetryDelay,
		RetryMultiplier: cfg.Upstream.RetryMultiplier,
		BreakerTimeout:  cfg.Upstream.BreakerTimeout,
	}, logger)

	logger.Info("using Open-Meteo upstream", zap.String("base_url", cfg.Weather.OpenMeteoURL))
	return services.NewService(directory, services.NewOpenMeteoProvider(meteo, logger), logger), meteo
}

func runServe() error {
	logger, _ := zap.NewProduction()
	zap.ReplaceGlobals(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger = newLogger(cfg.Server.LogLevel)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	logger.Info("starting finweather server")

	directory := cities.Default()
	logger.Info("city directory loaded", zap.Int("cities", directory.Len()))

	service, meteo := buildService(cfg, directory, logger)

	var probe *scheduler.UpstreamProbe
	if meteo != nil {
		probe = scheduler.NewUpstreamProbe(meteo, cfg.Probe.Interval, logger)
		if err := probe.Start(); err != nil {
			return err
		}
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		UnescapePath: true,
		ErrorHandler: errorHandler,
	})

	handler := api.NewHandler(service, directory, probe, logger)
	api.SetupRoutes(app, handler)

	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("listening", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if probe != nil {
		probe.Stop()
	}
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}

	logger.Info("server stopped")
	return nil
}

func runGet(code, output string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	directory := cities.Default()
	service, _ := buildService(cfg, directory, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	report, err := service.GetWeatherByCityCode(ctx, code)
	if err != nil {
		return err
	}

	if output == "json" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	printReport(report)
	return nil
}

func printReport(report models.WeatherData) {
	fmt.Printf("Weather for %s (%.4f, %.4f)\n", report.CityName, report.Latitude, report.Longitude)
	fmt.Println(strings.Repeat("=", 40))

	if current, ok := report.Current(); ok {
		fmt.Printf("Now: %s, %s\n", current.FormattedTemperature(), current.Description())
	}
	if avg, ok := report.AverageTemperature(); ok {
		fmt.Printf("24h average: %.1f°C\n", avg)
	}

	fmt.Println(strings.Repeat("-", 40))
	for _, h := range report.HourlyWeather {
		fmt.Printf("%s  %8s  %s\n", h.Time, h.FormattedTemperature(), h.Description())
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	zap.L().Error("http error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err))

	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
