package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/shiroemons/go-romtext/internal/romtext/config"
	apperrors "github.com/shiroemons/go-romtext/internal/romtext/errors"
	"github.com/shiroemons/go-romtext/internal/romtext/fileutil"
	"github.com/shiroemons/go-romtext/internal/romtext/interfaces"
	"github.com/shiroemons/go-romtext/internal/romtext/translator"
	"github.com/shiroemons/go-romtext/pkg/romtext"
)

// runTranslate は原文のレコードを翻訳して出力先に保存します。
// 出力先は SaveEvery 件ごとと、終了時（完了、致命的なエラー、中断のいずれでも）に保存されます
func (a *App) runTranslate(ctx context.Context, profile *config.Profile) (err error) {
	src, err := fileutil.LoadRecords(a.fs, a.config.InputPath)
	if err != nil {
		return err
	}
	dst, err := a.loadDestination(src)
	if err != nil {
		return err
	}
	engine, err := a.engine(profile)
	if err != nil {
		return err
	}
	tr, err := a.newTranslator(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %w", apperrors.ErrInterrupted, ctx.Err())
		}
		return err
	}

	out := a.config.OutputPath
	defer func() {
		if saveErr := fileutil.SaveRecords(a.fs, out, dst); saveErr != nil {
			err = errors.Join(err, fmt.Errorf("%w: %w", ErrSaveFile, saveErr))
			return
		}
		a.logger.Printf("%s に保存しました\n", out)
	}()

	translated := 0
	for i := range src {
		if ctx.Err() != nil {
			a.logger.Warnf("翻訳を中断しました。保存して終了します\n")
			return fmt.Errorf("%w: %w", apperrors.ErrInterrupted, ctx.Err())
		}

		d := &dst[i]
		// 翻訳済みと、確認済み（review: false）のレコードは変更しない
		if d.RawTranslation != "" || d.ReviewCleared() {
			continue
		}

		source := src[i].Text
		raw, err := tr.Translate(ctx, source)
		if err != nil {
			if ctx.Err() != nil {
				a.logger.Warnf("翻訳を中断しました。保存して終了します\n")
				return fmt.Errorf("%w: %w", apperrors.ErrInterrupted, ctx.Err())
			}
			return fmt.Errorf("offset 0x%X: %w", src[i].Offset, err)
		}

		d.RawTranslation = raw
		d.Length = src[i].Length
		text, truncated := engine.Reflow(source, raw, d.Length)
		d.Text = text
		if truncated {
			d.SetReview(true)
			a.logger.Printf("offset 0x%X を切り詰めました: %s\n", d.Offset, text)
		}
		translated++

		if every := a.config.SaveEvery; every > 0 && (i+1)%every == 0 {
			if err := fileutil.SaveRecords(a.fs, out, dst); err != nil {
				return fmt.Errorf("%w: %w", ErrSaveFile, err)
			}
			a.logger.Infof("翻訳中 %d/%d\n", i+1, len(src))
		}
	}

	if c, ok := tr.(*translator.Cached); ok {
		hits, misses := c.Stats()
		a.logger.Printf("キャッシュ: ヒット %d / ミス %d\n", hits, misses)
	}
	a.logger.Infof("翻訳が完了しました（%d 件）: %s\n", translated, out)
	return nil
}

// loadDestination は出力先のレコードを用意します。
// 再開する場合は既存のファイルをオフセットで対応付け、ない場合は原文から新しく作ります
func (a *App) loadDestination(src []romtext.Record) ([]romtext.Record, error) {
	existing := map[int]romtext.Record{}
	if a.config.Resume && a.fs.FileExists(a.config.OutputPath) {
		records, err := fileutil.LoadRecords(a.fs, a.config.OutputPath)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			existing[r.Offset] = r
		}
		a.logger.Infof("%s から再開します（%d 件）\n", a.config.OutputPath, len(records))
	}

	dst := make([]romtext.Record, 0, len(src))
	for _, s := range src {
		d, ok := existing[s.Offset]
		if !ok {
			d = romtext.Record{Offset: s.Offset, Length: s.Length}
		}
		if d.SourceText == "" {
			d.SourceText = s.SourceText
		}
		if d.SourceText == "" {
			d.SourceText = s.Text
		}
		dst = append(dst, d)
	}
	return dst, nil
}

func (a *App) newTranslator(ctx context.Context) (interfaces.Translator, error) {
	if a.translator != nil {
		return a.translator, nil
	}
	cfg := a.config
	return translator.New(ctx, translator.Options{
		Provider:   cfg.Provider,
		SourceLang: cfg.SourceLang,
		TargetLang: cfg.TargetLang,
		APIKey:     cfg.APIKey,
		Endpoint:   cfg.Endpoint,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		CacheSize:  cfg.CacheSize,
		Logger:     a.logger,
	})
}
