package config

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"
)

func TestParseArgs(t *testing.T) {
	var out bytes.Buffer
	cfg, err := ParseArgs([]string{"translate", "-i", "es.json", "--out", "de.json", "-provider", "deepl", "-api-key", "k:fx", "-save-every", "10", "-resume", "-d"}, &out)
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}

	if cfg.Command != CmdTranslate {
		t.Errorf("Expected Command 'translate', got '%s'", cfg.Command)
	}
	if cfg.InputPath != "es.json" {
		t.Errorf("Expected InputPath 'es.json', got '%s'", cfg.InputPath)
	}
	if cfg.OutputPath != "de.json" {
		t.Errorf("Expected OutputPath 'de.json', got '%s'", cfg.OutputPath)
	}
	if cfg.Provider != "deepl" || cfg.APIKey != "k:fx" {
		t.Errorf("Expected provider deepl with key, got %s / %s", cfg.Provider, cfg.APIKey)
	}
	if cfg.SaveEvery != 10 {
		t.Errorf("Expected SaveEvery 10, got %d", cfg.SaveEvery)
	}
	if !cfg.Resume || !cfg.DebugMode {
		t.Error("Expected Resume and DebugMode to be true")
	}
	if cfg.MaxRetries != DefaultMaxRetries {
		t.Errorf("Expected MaxRetries %d, got %d", DefaultMaxRetries, cfg.MaxRetries)
	}
}

func TestParseArgs_Offsets(t *testing.T) {
	var out bytes.Buffer
	cfg, err := ParseArgs([]string{"repoint", "-r", "rom.bin", "-from", "0x100000", "-to", "506630", "-search-end", "0x200000", "-overwrite"}, &out)
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if cfg.From != 0x100000 {
		t.Errorf("Expected From 0x100000, got 0x%X", cfg.From)
	}
	if cfg.To != 506630 {
		t.Errorf("Expected To 506630, got %d", cfg.To)
	}
	if cfg.SearchEnd != 0x200000 {
		t.Errorf("Expected SearchEnd 0x200000, got 0x%X", cfg.SearchEnd)
	}
	if !cfg.Overwrite {
		t.Error("Expected Overwrite to be true")
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"コマンドなし", nil, ErrNoCommand},
		{"不明なコマンド", []string{"unpack"}, ErrUnknownCommand},
		{"必須フラグなし", []string{"import", "-r", "rom.bin"}, ErrMissingFlag},
		{"ヘルプ", []string{"-h"}, flag.ErrHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := ParseArgs(tt.args, &out)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			if out.Len() == 0 {
				t.Error("Expected usage output")
			}
		})
	}
}

func TestParseArgs_Version(t *testing.T) {
	cfg, err := ParseArgs([]string{"--version"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if !cfg.ShowVersion {
		t.Error("Expected ShowVersion to be true")
	}
}

func TestParseArgs_APIKeyFromEnv(t *testing.T) {
	t.Setenv("DEEPL_API_KEY", "env-key")
	cfg, err := ParseArgs([]string{"translate", "-i", "a.json", "-o", "b.json", "-provider", "deepl"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("Expected APIKey 'env-key', got '%s'", cfg.APIKey)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer

	// デバッグモード有効
	logger := NewLogger(true, &buf)
	logger.Printf("test message %d\n", 123)
	if !strings.Contains(buf.String(), "test message 123") {
		t.Errorf("Expected debug output to contain 'test message 123', got '%s'", buf.String())
	}

	// デバッグモード無効
	buf.Reset()
	logger = NewLogger(false, &buf)
	logger.Printf("should not appear\n")
	if strings.Contains(buf.String(), "should not appear") {
		t.Error("Debug output should not appear when debug mode is disabled")
	}

	logger.Warnf("警告 %s", "x")
	if !strings.Contains(buf.String(), "警告 x") {
		t.Errorf("Expected warning in output, got '%s'", buf.String())
	}
}
