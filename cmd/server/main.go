package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/evgeniy-krivenko/minds/internal/api/minds"
	"github.com/evgeniy-krivenko/minds/internal/config"
	"github.com/evgeniy-krivenko/minds/internal/ctxtr"
	mindsuc "github.com/evgeniy-krivenko/minds/internal/usecase/minds"
	"github.com/evgeniy-krivenko/minds/pkg/grpcx"
	"github.com/evgeniy-krivenko/minds/pkg/gwserver"
	"github.com/evgeniy-krivenko/minds/pkg/logger/slogx"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Parse()
	if err != nil {
		return fmt.Errorf("parse cfg: %v", err)
	}

	if err := slogx.InitGlobal(os.Stdout, cfg.App.LogLevel, cfg.App.Pretty, ctxtr.Handler); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}

	repo, closeRepo, err := newRepository(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init repository: %v", err)
	}
	defer closeRepo()

	uc, err := mindsuc.New(mindsuc.NewOptions(repo))
	if err != nil {
		return fmt.Errorf("init minds usecase: %v", err)
	}

	grpcSrv, err := grpcx.New(grpcx.NewOptions(
		cfg.GRPC.Addr,
		grpcx.WithServices(minds.New(uc)),
		grpcx.WithLogger(slogx.Default()),
		grpcx.WithInterceptors(ctxtr.RequestIDInterceptor, slogx.LoggingInterceptor),
		grpcx.WithTime(cfg.GRPC.KeepaliveTime),
		grpcx.WithTimeout(cfg.GRPC.KeepaliveTimeout),
		grpcx.WithMaxConnIdle(cfg.GRPC.MaxConnIdle),
	))
	if err != nil {
		return fmt.Errorf("init grpc server: %v", err)
	}

	httpSrv, err := gwserver.New(gwserver.NewOptions(
		cfg.HTTP.Addr,
		minds.NewHandler(uc).Routes(),
		gwserver.WithMiddlewares(slogx.Middleware, ctxtr.Middleware),
		gwserver.WithLogger(slogx.Default()),
	))
	if err != nil {
		return fmt.Errorf("init http server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return grpcSrv.Run(ctx) })
	eg.Go(func() error { return httpSrv.Run(ctx) })

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	slogx.Info(context.Background(), "app stopped")

	return nil
}
