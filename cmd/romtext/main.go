package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shiroemons/go-romtext/internal/romtext/app"
	"github.com/shiroemons/go-romtext/internal/romtext/config"
	apperrors "github.com/shiroemons/go-romtext/internal/romtext/errors"
)

// 中断された場合の終了コード
const exitInterrupted = 130

func main() {
	os.Exit(run())
}

func run() int {
	// コマンドライン引数の解析
	cfg, err := config.ParseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		return 1
	}

	// バージョン表示の処理
	if cfg.ShowVersion {
		fmt.Printf("romtext version %s\n", config.Version)
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// アプリケーションの実行
	application := app.New(cfg)
	if err := application.Run(ctx); err != nil {
		if errors.Is(err, apperrors.ErrInterrupted) || errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "中断しました")
			return exitInterrupted
		}
		config.NewLogger(cfg.DebugMode, os.Stderr).Errorf("%v", err)
		return 1
	}
	return 0
}
