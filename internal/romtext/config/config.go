// Package config はromtextコマンドの設定管理を行います
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

const Version = "0.1.0"

// コマンド名
const (
	CmdExport    = "export"
	CmdImport    = "import"
	CmdTranslate = "translate"
	CmdFormat    = "format"
	CmdCheck     = "check"
	CmdCheckFit  = "checkfit"
	CmdMerge     = "merge"
	CmdSource    = "source"
	CmdDump      = "dump"
	CmdRepoint   = "repoint"
	CmdNOP       = "nop"
)

// Commands はサポートするコマンドの一覧
var Commands = []string{
	CmdExport, CmdImport, CmdTranslate, CmdFormat, CmdCheck, CmdCheckFit,
	CmdMerge, CmdSource, CmdDump, CmdRepoint, CmdNOP,
}

var (
	// ErrNoCommand はコマンドが指定されていない場合のエラー
	ErrNoCommand = errors.New("コマンドが指定されていません")

	// ErrUnknownCommand は不明なコマンドの場合のエラー
	ErrUnknownCommand = errors.New("不明なコマンドです")

	// ErrMissingFlag は必須のフラグが指定されていない場合のエラー
	ErrMissingFlag = errors.New("必須のフラグが指定されていません")
)

// 翻訳の既定値
const (
	DefaultProvider   = "google"
	DefaultSourceLang = "es"
	DefaultTargetLang = "de"
	DefaultSaveEvery  = 25
	DefaultMaxRetries = 5
	DefaultTimeout    = 30 * time.Second
	DefaultCacheSize  = 4096
)

// テキストブロック検索の既定値
const (
	DefaultMinLen = 20
	DefaultWidth  = 60
)

// Config はアプリケーションの設定を保持します
type Config struct {
	Command     string
	ROMPath     string
	InputPath   string
	OutputPath  string
	ProfilePath string
	Encoding    string
	DebugMode   bool
	DryRun      bool
	ShowVersion bool

	// translate
	Provider   string
	SourceLang string
	TargetLang string
	APIKey     string
	Endpoint   string
	MaxRetries int
	SaveEvery  int
	Resume     bool
	Timeout    time.Duration
	CacheSize  int

	// merge / source
	LegacyPath string

	// dump
	MinLen int
	Width  int
	Latin1 bool
	Start  int

	// repoint
	From         int
	To           int
	ToEnd        int
	SearchStart  int
	SearchEnd    int
	Overwrite    bool
	Length       int
	SkipPointers bool
	Batch        bool

	// nop
	Offset int
	Size   int
}

// ParseArgs はコマンドライン引数（プログラム名を除く）を解析して設定を返します
func ParseArgs(args []string, output io.Writer) (*Config, error) {
	if len(args) == 0 {
		printUsage(output)
		return nil, ErrNoCommand
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return &Config{ShowVersion: true}, nil
	case "--help", "-help", "-h", "help":
		printUsage(output)
		return nil, flag.ErrHelp
	}

	cfg := &Config{Command: args[0]}
	fs, err := newFlagSet(cfg, output)
	if err != nil {
		printUsage(output)
		return nil, err
	}
	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	if cfg.APIKey == "" {
		cfg.APIKey = apiKeyFromEnv(cfg.Provider)
	}
	if err := cfg.validate(); err != nil {
		fs.Usage()
		return nil, err
	}
	return cfg, nil
}

// newFlagSet はコマンドごとのフラグを登録します
func newFlagSet(cfg *Config, output io.Writer) (*flag.FlagSet, error) {
	fs := flag.NewFlagSet("romtext "+cfg.Command, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage of romtext %s:\n", cfg.Command)
		fs.PrintDefaults()
	}

	// 共通フラグ
	fs.BoolVar(&cfg.DebugMode, "debug", false, "enable debug output")
	fs.BoolVar(&cfg.DebugMode, "d", false, "enable debug output (shorthand)")
	fs.StringVar(&cfg.ProfilePath, "profile", "", "path to a ROM profile YAML (default: built-in Traysia profile)")
	fs.StringVar(&cfg.ProfilePath, "p", "", "path to a ROM profile YAML (shorthand)")
	fs.StringVar(&cfg.Encoding, "encoding", "", "base text encoding (overrides the profile, e.g. latin-1)")

	romFlag := func(usage string) {
		fs.StringVar(&cfg.ROMPath, "rom", "", usage)
		fs.StringVar(&cfg.ROMPath, "r", "", usage+" (shorthand)")
	}
	inFlag := func(usage string) {
		fs.StringVar(&cfg.InputPath, "in", "", usage)
		fs.StringVar(&cfg.InputPath, "i", "", usage+" (shorthand)")
	}
	outFlag := func(usage string) {
		fs.StringVar(&cfg.OutputPath, "out", "", usage)
		fs.StringVar(&cfg.OutputPath, "o", "", usage+" (shorthand)")
	}
	dryRunFlag := func() {
		fs.BoolVar(&cfg.DryRun, "dry-run", false, "perform a dry run without writing output files")
		fs.BoolVar(&cfg.DryRun, "n", false, "perform a dry run without writing output files (shorthand)")
	}

	switch cfg.Command {
	case CmdExport:
		romFlag("path to the source ROM (raw, .smd, .zip, .gz, .7z or .xz)")
		outFlag("output JSON file")
	case CmdImport:
		romFlag("path to the source ROM")
		inFlag("JSON file with the translated records")
		outFlag("path of the patched ROM")
		dryRunFlag()
	case CmdTranslate:
		inFlag("source JSON file")
		outFlag("destination JSON file (read when resuming)")
		fs.StringVar(&cfg.Provider, "provider", DefaultProvider, "translation backend: google, deepl or libre")
		fs.StringVar(&cfg.SourceLang, "source-lang", DefaultSourceLang, "source language code")
		fs.StringVar(&cfg.TargetLang, "target-lang", DefaultTargetLang, "target language code")
		fs.StringVar(&cfg.APIKey, "api-key", "", "API key (DeepL, LibreTranslate)")
		fs.StringVar(&cfg.Endpoint, "endpoint", "", "backend base URL (LibreTranslate server, DeepL override)")
		fs.IntVar(&cfg.MaxRetries, "max-retries", DefaultMaxRetries, "retries per string for transient failures")
		fs.IntVar(&cfg.SaveEvery, "save-every", DefaultSaveEvery, "save a snapshot every N strings (0 = only at the end)")
		fs.BoolVar(&cfg.Resume, "resume", false, "resume an existing destination file")
		fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "HTTP request timeout")
		fs.IntVar(&cfg.CacheSize, "cache-size", DefaultCacheSize, "number of cached translations (0 disables the cache)")
	case CmdFormat:
		inFlag("source JSON file")
		outFlag("translated JSON file (rewritten in place)")
	case CmdCheck, CmdCheckFit:
		inFlag("JSON file to check")
	case CmdMerge:
		inFlag("new JSON file (records to keep)")
		fs.StringVar(&cfg.LegacyPath, "legacy", "", "JSON file with the previous translations")
		fs.StringVar(&cfg.LegacyPath, "l", "", "JSON file with the previous translations (shorthand)")
		outFlag("merged JSON file")
	case CmdSource:
		inFlag("source JSON file")
		outFlag("translated JSON file (rewritten in place)")
	case CmdDump:
		romFlag("path to the ROM")
		fs.IntVar(&cfg.MinLen, "min-len", DefaultMinLen, "minimum block length")
		fs.IntVar(&cfg.Width, "width", DefaultWidth, "maximum characters to show per block; use 0 for all")
		fs.BoolVar(&cfg.Latin1, "latin1", false, "detect extended Latin-1 characters")
		fs.Var((*offsetValue)(&cfg.Start), "start", "start offset for scanning (hex or decimal)")
	case CmdRepoint:
		romFlag("path to the source ROM")
		outFlag("path of the patched ROM")
		fs.Var((*offsetValue)(&cfg.From), "from", "offset of the block currently referenced (hex or decimal)")
		fs.Var((*offsetValue)(&cfg.To), "to", "offset of the block to reference instead")
		fs.Var((*offsetValue)(&cfg.ToEnd), "to-end", "end offset of the target block")
		fs.Var((*offsetValue)(&cfg.SearchStart), "search-start", "start offset to search for pointers")
		fs.Var((*offsetValue)(&cfg.SearchEnd), "search-end", "end offset (exclusive) for pointer search")
		fs.BoolVar(&cfg.Overwrite, "overwrite", false, "copy the target block over the referenced one")
		fs.Var((*offsetValue)(&cfg.Length), "length", "bytes to copy when overwriting (default: target block length)")
		fs.BoolVar(&cfg.SkipPointers, "skip-pointers", false, "do not patch any pointer; only copy text if requested")
		fs.BoolVar(&cfg.Batch, "batch", false, "apply every repoint entry of the profile")
		dryRunFlag()
	case CmdNOP:
		romFlag("path to the source ROM")
		outFlag("path of the patched ROM")
		fs.Var((*offsetValue)(&cfg.Offset), "offset", "start of the region (default: patches of the profile)")
		fs.Var((*offsetValue)(&cfg.Size), "size", "size of the region in bytes")
		dryRunFlag()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, cfg.Command)
	}
	return fs, nil
}

// validate は必須フラグを確認します
func (c *Config) validate() error {
	need := func(name, value string) error {
		if value == "" {
			return fmt.Errorf("%w: --%s", ErrMissingFlag, name)
		}
		return nil
	}

	var errs []error
	switch c.Command {
	case CmdExport, CmdDump:
		errs = append(errs, need("rom", c.ROMPath))
	case CmdImport:
		errs = append(errs, need("rom", c.ROMPath), need("in", c.InputPath))
	case CmdTranslate, CmdFormat, CmdSource:
		errs = append(errs, need("in", c.InputPath), need("out", c.OutputPath))
	case CmdCheck, CmdCheckFit:
		errs = append(errs, need("in", c.InputPath))
	case CmdMerge:
		errs = append(errs, need("in", c.InputPath), need("legacy", c.LegacyPath), need("out", c.OutputPath))
	case CmdRepoint, CmdNOP:
		errs = append(errs, need("rom", c.ROMPath))
	}
	return errors.Join(errs...)
}

// apiKeyFromEnv は環境変数からAPIキーを取得します
func apiKeyFromEnv(provider string) string {
	switch provider {
	case "deepl":
		return os.Getenv("DEEPL_API_KEY")
	case "libre":
		return os.Getenv("LIBRETRANSLATE_API_KEY")
	}
	return ""
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: romtext <command> [options]")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  export     extract null-terminated strings from the ROM to JSON")
	fmt.Fprintln(w, "  import     write translated strings from JSON back into the ROM")
	fmt.Fprintln(w, "  translate  machine-translate a JSON file (resumable)")
	fmt.Fprintln(w, "  format     re-apply separators, case and truncation to translations")
	fmt.Fprintln(w, "  check      flag strings with broken separator placement")
	fmt.Fprintln(w, "  checkfit   report strings that do not fit their slot")
	fmt.Fprintln(w, "  merge      carry translations from an older JSON file by offset")
	fmt.Fprintln(w, "  source     copy source texts into a translated JSON file")
	fmt.Fprintln(w, "  dump       list printable text blocks in the ROM")
	fmt.Fprintln(w, "  repoint    repoint references from one text block to another")
	fmt.Fprintln(w, "  nop        fill a code region with 68000 NOP instructions")
	fmt.Fprintln(w, "  --version  show version information")
	fmt.Fprintln(w, "Run 'romtext <command> -h' for the options of a command.")
}

// offsetValue は16進数（0x接頭辞）または10進数のオフセットを受け付けるフラグ値
type offsetValue int

func (v *offsetValue) String() string {
	if v == nil {
		return "0"
	}
	return fmt.Sprintf("0x%X", int(*v))
}

func (v *offsetValue) Set(s string) error {
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return err
	}
	*v = offsetValue(n)
	return nil
}
