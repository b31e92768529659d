// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/shiroemons/go-romtext/internal/romtext/archive"
	"github.com/shiroemons/go-romtext/internal/romtext/config"
	"github.com/shiroemons/go-romtext/internal/romtext/fileutil"
	"github.com/shiroemons/go-romtext/internal/romtext/interfaces"
	"github.com/shiroemons/go-romtext/pkg/reflow"
	"github.com/shiroemons/go-romtext/pkg/romcodec"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config     *config.Config
	logger     *config.Logger
	fs         interfaces.FileSystem
	loader     interfaces.ROMLoader
	translator interfaces.Translator
	stdout     io.Writer
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Loader     interfaces.ROMLoader
	// Translator が nil の場合は設定から翻訳エンジンを作成します
	Translator interfaces.Translator
	Stdout     io.Writer
	LogOutput  io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	logOut := opts.LogOutput
	if logOut == nil {
		logOut = os.Stderr
	}
	logger := config.NewLogger(cfg.DebugMode, logOut)

	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	var loader interfaces.ROMLoader
	if opts.Loader != nil {
		loader = opts.Loader
	} else {
		loader = archive.NewLoader(fs, logger)
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return &App{
		config:     cfg,
		logger:     logger,
		fs:         fs,
		loader:     loader,
		translator: opts.Translator,
		stdout:     stdout,
	}
}

// Run は設定されたコマンドを実行します
func (a *App) Run(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	profile, err := a.loadProfile()
	if err != nil {
		return err
	}
	a.logger.Printf("プロファイル: %s\n", profile.Name)

	switch a.config.Command {
	case config.CmdExport:
		return a.runExport(ctx, profile)
	case config.CmdImport:
		return a.runImport(ctx, profile)
	case config.CmdTranslate:
		return a.runTranslate(ctx, profile)
	case config.CmdFormat:
		return a.runFormat(ctx, profile)
	case config.CmdCheck:
		return a.runCheck(profile)
	case config.CmdCheckFit:
		return a.runCheckFit(profile)
	case config.CmdMerge:
		return a.runMerge()
	case config.CmdSource:
		return a.runSource()
	case config.CmdDump:
		return a.runDump(ctx)
	case config.CmdRepoint:
		return a.runRepoint(ctx, profile)
	case config.CmdNOP:
		return a.runNOP(ctx, profile)
	default:
		return fmt.Errorf("%w: %s", config.ErrUnknownCommand, a.config.Command)
	}
}

// loadProfile は指定されたプロファイルか組み込みのプロファイルを読み込みます
func (a *App) loadProfile() (*config.Profile, error) {
	if a.config.ProfilePath == "" {
		p, err := config.DefaultProfile()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadProfile, err)
		}
		return p, nil
	}
	data, err := a.fs.ReadFile(a.config.ProfilePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadProfile, a.config.ProfilePath, err)
	}
	p, err := config.ParseProfile(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadProfile, a.config.ProfilePath, err)
	}
	return p, nil
}

func (a *App) codec(profile *config.Profile) (*romcodec.Codec, error) {
	c, err := profile.Codec(a.config.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadProfile, err)
	}
	return c, nil
}

func (a *App) engine(profile *config.Profile) (*reflow.Engine, error) {
	c, err := a.codec(profile)
	if err != nil {
		return nil, err
	}
	return reflow.NewEngine(profile.SeparatorRune(), profile.Marker(), c), nil
}

// loadROM はROMを読み込みます
func (a *App) loadROM(ctx context.Context) ([]byte, error) {
	rom, err := a.loader.Load(ctx, a.config.ROMPath)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %w", ErrLoadROM, err)
	}
	a.logger.Printf("ROM %s を読み込みました（%d バイト）\n", a.config.ROMPath, len(rom))
	return rom, nil
}

// saveROM はROMを出力先に書き込みます。
// 出力先が指定されていない場合は入力ファイル名に suffix を付けます。dry-run の場合は書き込みません
func (a *App) saveROM(rom []byte, suffix string) error {
	out := a.config.OutputPath
	if out == "" {
		out = fileutil.GenerateOutputFilename(a.config.ROMPath, suffix)
	}
	if a.config.DryRun {
		a.logger.Infof("dry-run: %s には書き込みません\n", out)
		return nil
	}
	if err := fileutil.WriteFileAtomic(a.fs, out, rom); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFile, err)
	}
	a.logger.Infof("ROMを %s に保存しました\n", out)
	return nil
}
