package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/shiroemons/go-romtext/internal/romtext/config"
	"github.com/shiroemons/go-romtext/internal/romtext/fileutil"
	"github.com/shiroemons/go-romtext/pkg/repoint"
	"github.com/shiroemons/go-romtext/pkg/romcodec"
	"github.com/shiroemons/go-romtext/pkg/rompatch"
	"github.com/shiroemons/go-romtext/pkg/romtext"
)

// runExport はプロファイルの範囲から文字列を抽出してJSONに保存します
func (a *App) runExport(ctx context.Context, profile *config.Profile) error {
	rom, err := a.loadROM(ctx)
	if err != nil {
		return err
	}
	codec, err := a.codec(profile)
	if err != nil {
		return err
	}

	records, err := romtext.Extract(rom, profile.Ranges, codec)
	if err != nil {
		return err
	}
	for _, rg := range profile.Ranges {
		a.logger.Printf("範囲 %s を走査しました\n", rg)
	}

	out := a.config.OutputPath
	if out == "" {
		out = fileutil.JSONFilename(a.config.ROMPath)
	}
	if err := fileutil.SaveRecords(a.fs, out, records); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFile, err)
	}
	a.logger.Infof("%d 件の文字列を %s に保存しました\n", len(records), out)
	return nil
}

// runImport はJSONの文字列をROMに書き戻します。
// 収まらないレコードは飛ばして残りを書き込み、最後にエラーとして報告します
func (a *App) runImport(ctx context.Context, profile *config.Profile) error {
	rom, err := a.loadROM(ctx)
	if err != nil {
		return err
	}
	records, err := fileutil.LoadRecords(a.fs, a.config.InputPath)
	if err != nil {
		return err
	}
	codec, err := a.codec(profile)
	if err != nil {
		return err
	}

	written, writeErr := romtext.WriteBack(rom, records, codec)
	skipped := splitErrors(writeErr)
	for _, e := range skipped {
		a.logger.Warnf("%v\n", e)
	}
	a.logger.Infof("%d/%d 件の文字列を書き込みました\n", written, len(records))

	if err := a.saveROM(rom, "patched"); err != nil {
		return err
	}
	if len(skipped) > 0 {
		return fmt.Errorf("%w: %d 件", ErrRecordsSkipped, len(skipped))
	}
	return nil
}

// splitErrors は errors.Join でまとめたエラーを個別に分けます
func splitErrors(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// runDump は表示可能なバイトが続くブロックを一覧表示します
func (a *App) runDump(ctx context.Context) error {
	rom, err := a.loadROM(ctx)
	if err != nil {
		return err
	}

	enc := romcodec.ASCII
	if a.config.Latin1 {
		enc, err = romcodec.LookupEncoding("latin-1")
		if err != nil {
			return err
		}
	}

	for _, b := range romtext.ScanBlocks(rom, a.config.Start, a.config.MinLen, a.config.Latin1) {
		runes := make([]rune, 0, len(b.Data))
		for _, c := range b.Data {
			runes = append(runes, enc.DecodeByte(c))
		}
		text := strings.ReplaceAll(string(runes), "\n", " ")
		if w := a.config.Width; w > 0 && len(runes) > w {
			text = string(runes[:w])
		}
		fmt.Fprintf(a.stdout, "0x%06X+%04X: %s\n", b.Offset, len(b.Data), text)
	}
	return nil
}

// runRepoint はテキストブロックへの参照を付け替えます。
// --batch の場合はプロファイルのすべてのエントリを順に適用します
func (a *App) runRepoint(ctx context.Context, profile *config.Profile) error {
	rom, err := a.loadROM(ctx)
	if err != nil {
		return err
	}

	var entries []repoint.Options
	if a.config.Batch {
		if len(profile.Repoint) == 0 {
			return ErrNoRepoint
		}
		for _, e := range profile.Repoint {
			e.Overwrite = e.Overwrite || a.config.Overwrite
			e.SkipPointers = e.SkipPointers || a.config.SkipPointers
			entries = append(entries, e)
		}
	} else {
		opts, err := a.repointOptions(rom, profile)
		if err != nil {
			return err
		}
		entries = append(entries, opts)
	}

	for _, opts := range entries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		result, err := repoint.Apply(rom, opts)
		if err != nil {
			if opts.Name != "" {
				return fmt.Errorf("%s: %w", opts.Name, err)
			}
			return err
		}
		if result.FewPointers() {
			a.logger.Warnf("参照がほとんど見つかりませんでした（0x%X）。--overwrite を使うかオフセットを確認してください\n", opts.From)
		}
		fmt.Fprintln(a.stdout, result)
	}
	return a.saveROM(rom, "repointed")
}

// repointOptions はフラグから付け替えの設定を作ります。
// 指定されていない値はプロファイルの最初のエントリを使います
func (a *App) repointOptions(rom []byte, profile *config.Profile) (repoint.Options, error) {
	var opts repoint.Options
	if len(profile.Repoint) > 0 {
		opts = profile.Repoint[0]
	}

	cfg := a.config
	if cfg.From != 0 {
		opts.From = cfg.From
	} else if found := repoint.Locate(rom, profile.Marks.Source); found >= 0 && found != opts.From {
		a.logger.Infof("参照元の文字列を 0x%X で検出しました。0x%X を使います\n", found, opts.From)
	}
	if cfg.To != 0 {
		opts.To = cfg.To
	} else if found := repoint.Locate(rom, profile.Marks.Target); found >= 0 && found != opts.To {
		a.logger.Infof("参照先の文字列を 0x%X で検出しました。0x%X を使います\n", found, opts.To)
	}
	if cfg.ToEnd != 0 {
		opts.ToEnd = cfg.ToEnd
	}
	if cfg.SearchStart != 0 {
		opts.SearchStart = cfg.SearchStart
	}
	if cfg.SearchEnd != 0 {
		opts.SearchEnd = cfg.SearchEnd
	}
	if cfg.Length != 0 {
		opts.Length = cfg.Length
	}
	opts.Overwrite = cfg.Overwrite
	opts.SkipPointers = cfg.SkipPointers

	if opts.From == 0 && opts.To == 0 {
		return opts, ErrNoRepoint
	}
	return opts, nil
}

// runNOP は指定された領域か、プロファイルのパッチをNOPで埋めます
func (a *App) runNOP(ctx context.Context, profile *config.Profile) error {
	patches := profile.Patches
	if a.config.Size != 0 {
		patches = []rompatch.Patch{{Name: "nop", Offset: a.config.Offset, Size: a.config.Size}}
	}
	if len(patches) == 0 {
		return ErrNoPatches
	}

	rom, err := a.loadROM(ctx)
	if err != nil {
		return err
	}
	if err := rompatch.Apply(rom, patches); err != nil {
		return err
	}
	for _, p := range patches {
		a.logger.Infof("0x%X から %d バイトをNOPで埋めました（%s）\n", p.Offset, p.Size, p.Name)
	}
	return a.saveROM(rom, "nop")
}
