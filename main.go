package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Tk21111/color_server/color"
	"github.com/Tk21111/color_server/config"
	"github.com/Tk21111/color_server/internal/logx"
	"github.com/Tk21111/color_server/server"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Init("")
		logx.L.Fatal("config", zap.Error(err))
	}

	logx.Init(cfg.Env)
	defer logx.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, color.Default())
	if err := server.Run(ctx, srv); err != nil {
		logx.L.Fatal("server failed", zap.Error(err))
	}
}
