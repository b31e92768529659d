package config

import (
	"errors"
	"testing"
)

func TestDefaultProfile(t *testing.T) {
	p, err := DefaultProfile()
	if err != nil {
		t.Fatalf("DefaultProfile failed: %v", err)
	}

	if len(p.Ranges) != 6 {
		t.Fatalf("Expected 6 ranges, got %d", len(p.Ranges))
	}
	if p.Ranges[0].Start != 0x100000 || p.Ranges[0].End != 0x1181A5 {
		t.Errorf("Unexpected first range: %s", p.Ranges[0])
	}
	if len(p.Repoint) != 3 || p.Repoint[0].To != 0x07B706 || p.Repoint[0].ToEnd != 0x0937C4 {
		t.Errorf("Unexpected repoint entries: %+v", p.Repoint)
	}
	if len(p.Patches) != 1 || p.Patches[0].Offset != 0x1B520 || p.Patches[0].Size != 32 {
		t.Errorf("Unexpected patches: %+v", p.Patches)
	}
	if p.SeparatorRune() != '@' || p.Marker() != "/" {
		t.Errorf("Expected separator '@' and marker '/', got %q and %q", p.SeparatorRune(), p.Marker())
	}

	codec, err := p.Codec("")
	if err != nil {
		t.Fatalf("Codec failed: %v", err)
	}
	if got := string(codec.Encode("Größe")); got != "Groesse" {
		t.Errorf("Expected German transliteration, got %q", got)
	}
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name: "独自の文字表",
			yaml: "separator: '|'\ncharacter_map:\n  - {code: 0x41, char: 'é', canonical: true}\n",
		},
		{
			name:    "区切りが2文字",
			yaml:    "separator: '@@'\n",
			wantErr: ErrInvalidProfile,
		},
		{
			name:    "不正な範囲",
			yaml:    "ranges:\n  - {start: 0x20, end: 0x10}\n",
			wantErr: ErrInvalidProfile,
		},
		{
			name:    "YAMLの構文エラー",
			yaml:    "ranges: [",
			wantErr: ErrInvalidProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseProfile([]byte(tt.yaml))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseProfile failed: %v", err)
			}
			codec, err := p.Codec("ascii")
			if err != nil {
				t.Fatalf("Codec failed: %v", err)
			}
			if got := codec.Decode([]byte{0x81, 0x41}); got != "é" {
				t.Errorf("Expected 'é', got %q", got)
			}
			if p.SeparatorRune() != '|' {
				t.Errorf("Expected separator '|', got %q", p.SeparatorRune())
			}
		})
	}
}

func TestProfile_UnknownTransliteration(t *testing.T) {
	p, err := ParseProfile([]byte("transliteration: klingon\n"))
	if err != nil {
		t.Fatalf("ParseProfile failed: %v", err)
	}
	if _, err := p.Codec(""); !errors.Is(err, ErrUnknownTransliteration) {
		t.Errorf("Expected ErrUnknownTransliteration, got %v", err)
	}
}
