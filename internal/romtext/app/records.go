package app

import (
	"context"
	"fmt"

	"github.com/shiroemons/go-romtext/internal/romtext/config"
	"github.com/shiroemons/go-romtext/internal/romtext/fileutil"
	"github.com/shiroemons/go-romtext/pkg/reflow"
	"github.com/shiroemons/go-romtext/pkg/romtext"
)

// loadPair は原文と訳文のレコードを読み込み、件数が一致するか確認します
func (a *App) loadPair(srcPath, dstPath string) ([]romtext.Record, []romtext.Record, error) {
	src, err := fileutil.LoadRecords(a.fs, srcPath)
	if err != nil {
		return nil, nil, err
	}
	dst, err := fileutil.LoadRecords(a.fs, dstPath)
	if err != nil {
		return nil, nil, err
	}
	if len(src) != len(dst) {
		return nil, nil, fmt.Errorf("%w: %s=%d, %s=%d", ErrRecordCount, srcPath, len(src), dstPath, len(dst))
	}
	return src, dst, nil
}

func (a *App) saveRecords(path string, records []romtext.Record) error {
	if err := fileutil.SaveRecords(a.fs, path, records); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFile, err)
	}
	return nil
}

// runFormat は訳文の翻訳エンジン出力から最終テキストを作り直します。
// 確認済み（review: false）のレコードは変更しません
func (a *App) runFormat(ctx context.Context, profile *config.Profile) error {
	src, dst, err := a.loadPair(a.config.InputPath, a.config.OutputPath)
	if err != nil {
		return err
	}
	engine, err := a.engine(profile)
	if err != nil {
		return err
	}

	formatted := 0
	for i := range dst {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		r := dst[i]
		r.Length = src[i].Length
		if engine.Apply(&r, src[i].Text) {
			dst[i] = r
			formatted++
		}
	}

	if err := a.saveRecords(a.config.OutputPath, dst); err != nil {
		return err
	}
	a.logger.Infof("%d/%d 件を整形しました: %s\n", formatted, len(dst), a.config.OutputPath)
	return nil
}

// runCheck は区切り文字の位置がおかしい文字列に要確認フラグを立ててファイルを更新します
func (a *App) runCheck(profile *config.Profile) error {
	records, err := fileutil.LoadRecords(a.fs, a.config.InputPath)
	if err != nil {
		return err
	}

	checker := reflow.NewFormatChecker(profile.SeparatorRune())
	var issues []romtext.Record
	for i := range records {
		if checker.Check(records[i].Text) {
			records[i].SetReview(true)
			issues = append(issues, records[i])
		}
	}

	if len(issues) > 0 {
		fmt.Fprintf(a.stdout, "%d 件の書式の問題が見つかりました。ファイルを更新しました\n", len(issues))
		for _, r := range issues {
			fmt.Fprintf(a.stdout, "  offset 0x%X: %q\n", r.Offset, r.Text)
		}
	} else {
		fmt.Fprintln(a.stdout, "書式の問題は見つかりませんでした")
	}
	return a.saveRecords(a.config.InputPath, records)
}

// runCheckFit は割り当てに収まらない文字列を報告します。見つかった場合はエラーを返します
func (a *App) runCheckFit(profile *config.Profile) error {
	records, err := fileutil.LoadRecords(a.fs, a.config.InputPath)
	if err != nil {
		return err
	}
	codec, err := a.codec(profile)
	if err != nil {
		return err
	}

	issues := romtext.CheckCapacity(records, codec)
	if len(issues) == 0 {
		fmt.Fprintln(a.stdout, "すべての文字列が収まります")
		return nil
	}

	fmt.Fprintf(a.stdout, "%d 件の文字列が長すぎます:\n\n", len(issues))
	for _, is := range issues {
		fmt.Fprintf(a.stdout, "   offset 0x%X (%d)   予約=%d   必要=%d   →   «%s»\n",
			is.Offset, is.Offset, is.Length, is.Need, is.Text)
	}
	return fmt.Errorf("%w: %d 件", ErrTooLong, len(issues))
}

// runMerge は新しいレコードに以前の訳文をオフセットで引き継ぎます
func (a *App) runMerge() error {
	records, err := fileutil.LoadRecords(a.fs, a.config.InputPath)
	if err != nil {
		return err
	}
	legacy, err := fileutil.LoadRecords(a.fs, a.config.LegacyPath)
	if err != nil {
		return err
	}

	byOffset := make(map[int]romtext.Record, len(legacy))
	for _, r := range legacy {
		byOffset[r.Offset] = r
	}

	merged := 0
	for i := range records {
		old, ok := byOffset[records[i].Offset]
		if !ok {
			continue
		}
		records[i].Text = old.Text
		records[i].RawTranslation = old.RawTranslation
		if old.Review != nil {
			records[i].SetReview(*old.Review)
		}
		merged++
	}

	if err := a.saveRecords(a.config.OutputPath, records); err != nil {
		return err
	}
	a.logger.Infof("%d/%d 件の訳文を引き継ぎました: %s\n", merged, len(records), a.config.OutputPath)
	return nil
}

// runSource は原文のテキストを訳文ファイルの text_source に書き込みます
func (a *App) runSource() error {
	src, dst, err := a.loadPair(a.config.InputPath, a.config.OutputPath)
	if err != nil {
		return err
	}
	for i := range dst {
		dst[i].SourceText = src[i].Text
	}
	if err := a.saveRecords(a.config.OutputPath, dst); err != nil {
		return err
	}
	a.logger.Infof("%d 件に text_source を追加しました: %s\n", len(dst), a.config.OutputPath)
	return nil
}
