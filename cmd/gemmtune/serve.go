package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/gemmtune/internal/api"
	"github.com/samcharles93/gemmtune/internal/dispatch"
	"github.com/samcharles93/gemmtune/internal/logger"
)

func serveCmd() *cli.Command {
	var (
		addr        string
		readTimeout time.Duration
		rateLimit   float64
		burst       int64
		maxStored   int64
		dev         deviceOptions
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve GEMM selection over HTTP",
		Flags: append(deviceFlags(&dev),
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
			&cli.DurationFlag{
				Name:        "read-timeout",
				Usage:       "read timeout",
				Value:       30 * time.Second,
				Destination: &readTimeout,
			},
			&cli.Float64Flag{
				Name:        "rate-limit",
				Usage:       "requests per second across all clients (0 disables)",
				Value:       50,
				Destination: &rateLimit,
			},
			&cli.Int64Flag{
				Name:        "burst",
				Usage:       "rate limiter burst size",
				Value:       100,
				Destination: &burst,
			},
			&cli.Int64Flag{
				Name:        "max-selections",
				Usage:       "selections kept for GET /v1/gemm/select/:id before the oldest is evicted",
				Value:       api.DefaultStoreCapacity,
				Destination: &maxStored,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cfg, err := prepare(ctx, cmd)
			if err != nil {
				return err
			}
			applyDeviceConfig(cmd, cfg, &dev)
			applyServeConfig(cmd, cfg, &addr, &rateLimit)
			log := logger.FromContext(ctx)

			d, probe, err := newDispatcher(dev, log)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			server := api.NewServer(dispatch.NewCache(d), probe,
				api.WithLogger(log),
				api.WithStore(api.NewSelectionStore(int(maxStored))),
			)

			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			e.Use(api.RateLimit(rateLimit, int(burst)))
			server.Register(e)
			log.Info("starting server", "address", addr, "target", d.Target().String(), "rate_limit", rateLimit)
			sc := echo.StartConfig{
				Address: addr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = readTimeout
					return nil
				},
			}
			return sc.Start(ctx, e)
		},
	}
}
