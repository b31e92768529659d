package repoint

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func filled(n int) []byte {
	return bytes.Repeat([]byte{0xFF}, n)
}

func TestPatterns(t *testing.T) {
	patterns, err := Patterns(0x100000, 0x07B706)
	if err != nil {
		t.Fatalf("Patterns failed: %v", err)
	}

	wantNames := []string{"be3", "le3", "be4", "le4", "be4shift", "le4shift", "hilo",
		"lea0", "lea1", "lea2", "lea3", "lea4", "lea5", "lea6", "lea7"}
	if len(patterns) != len(wantNames) {
		t.Fatalf("Expected %d patterns, got %d", len(wantNames), len(patterns))
	}
	for i, name := range wantNames {
		if patterns[i].Name != name {
			t.Errorf("patterns[%d].Name = %q, want %q", i, patterns[i].Name, name)
		}
	}

	tests := []struct {
		name string
		p    Pattern
		old  []byte
		new  []byte
	}{
		{"be3", patterns[0], []byte{0x10, 0x00, 0x00}, []byte{0x07, 0xB7, 0x06}},
		{"le3", patterns[1], []byte{0x00, 0x00, 0x10}, []byte{0x06, 0xB7, 0x07}},
		{"be4shift", patterns[4], []byte{0x10, 0x00, 0x00, 0x00}, []byte{0x07, 0xB7, 0x06, 0x00}},
		{"le4shift", patterns[5], []byte{0x00, 0x00, 0x00, 0x10}, []byte{0x00, 0x06, 0xB7, 0x07}},
		{"hilo", patterns[6], []byte{0x00, 0x10, 0x00, 0x00}, []byte{0x00, 0x07, 0xB7, 0x06}},
		{"lea3", patterns[10], []byte{0x47, 0xF9, 0x00, 0x10, 0x00, 0x00}, []byte{0x47, 0xF9, 0x00, 0x07, 0xB7, 0x06}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !bytes.Equal(tt.p.Old, tt.old) {
				t.Errorf("Old = % X, want % X", tt.p.Old, tt.old)
			}
			if !bytes.Equal(tt.p.New, tt.new) {
				t.Errorf("New = % X, want % X", tt.p.New, tt.new)
			}
		})
	}
}

func TestPatterns_OffsetRange(t *testing.T) {
	_, err := Patterns(0x1000000, 0)
	if !errors.Is(err, ErrOffsetRange) {
		t.Errorf("Expected ErrOffsetRange, got %v", err)
	}
}

func TestApply(t *testing.T) {
	newROM := func() []byte {
		rom := filled(32)
		copy(rom[0:], []byte{0x00, 0x10, 0x00, 0x00})
		copy(rom[8:], []byte{0x00, 0x00, 0x10})
		return rom
	}

	t.Run("全域を検索", func(t *testing.T) {
		rom := newROM()
		res, err := Apply(rom, Options{From: 0x100000, To: 0x07B706})
		if err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		if res.Total() != 2 {
			t.Errorf("Expected 2 replacements, got %d (%s)", res.Total(), res)
		}
		if !bytes.Equal(rom[0:4], []byte{0x00, 0x07, 0xB7, 0x06}) {
			t.Errorf("rom[0:4] = % X", rom[0:4])
		}
		if !bytes.Equal(rom[8:11], []byte{0x06, 0xB7, 0x07}) {
			t.Errorf("rom[8:11] = % X", rom[8:11])
		}
		if res.FewPointers() {
			t.Error("Expected FewPointers to be false")
		}
	})

	t.Run("検索範囲を制限", func(t *testing.T) {
		rom := newROM()
		res, err := Apply(rom, Options{From: 0x100000, To: 0x07B706, SearchEnd: 5})
		if err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		if res.Total() != 1 {
			t.Errorf("Expected 1 replacement, got %d", res.Total())
		}
		if !bytes.Equal(rom[8:11], []byte{0x00, 0x00, 0x10}) {
			t.Errorf("Expected bytes outside the window to stay, got % X", rom[8:11])
		}
		if !res.FewPointers() {
			t.Error("Expected FewPointers to be true")
		}
	})

	t.Run("不正な検索範囲", func(t *testing.T) {
		_, err := Apply(newROM(), Options{From: 0x100000, To: 0x07B706, SearchStart: 20, SearchEnd: 10})
		if !errors.Is(err, ErrSearchWindow) {
			t.Errorf("Expected ErrSearchWindow, got %v", err)
		}
	})
}

func TestApply_Overwrite(t *testing.T) {
	newROM := func() []byte {
		rom := filled(16)
		copy(rom[0:], "SPAN")
		copy(rom[8:], "ENGL")
		return rom
	}

	tests := []struct {
		name    string
		opts    Options
		want    string
		written int
		wantErr error
	}{
		{
			name:    "長さを指定",
			opts:    Options{From: 0, To: 8, Length: 4},
			want:    "ENGL",
			written: 4,
		},
		{
			name:    "終端から長さを計算",
			opts:    Options{From: 0, To: 8, ToEnd: 12},
			want:    "ENGL",
			written: 4,
		},
		{
			name:    "ROMの末尾で切り詰め",
			opts:    Options{From: 0, To: 12, Length: 10},
			want:    "\xFF\xFF\xFF\xFF",
			written: 4,
		},
		{
			name:    "書き込み先がはみ出す",
			opts:    Options{From: 14, To: 8, Length: 4},
			wantErr: ErrOverwriteRange,
		},
		{
			name:    "書き込み先のオフセットが桁あふれする",
			opts:    Options{From: math.MaxInt - 1, To: 8, Length: 4},
			wantErr: ErrOverwriteRange,
		},
		{
			name:    "コピー元のオフセットが桁あふれする",
			opts:    Options{From: 0, To: math.MaxInt - 1, Length: 4},
			wantErr: ErrOverwriteRange,
		},
		{
			name:    "長さが桁あふれする",
			opts:    Options{From: 12, To: 8, Length: math.MaxInt},
			wantErr: ErrOverwriteRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rom := newROM()
			tt.opts.Overwrite = true
			tt.opts.SkipPointers = true
			res, err := Apply(rom, tt.opts)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			if got := string(rom[0:4]); got != tt.want {
				t.Errorf("rom[0:4] = %q, want %q", got, tt.want)
			}
			if res.Overwritten != tt.written {
				t.Errorf("Expected %d bytes written, got %d", tt.written, res.Overwritten)
			}
			if len(res.Counts) != 0 {
				t.Errorf("Expected no pointer counts, got %v", res.Counts)
			}
		})
	}
}

func TestReplaceWithin(t *testing.T) {
	tests := []struct {
		name  string
		buf   string
		old   string
		new   string
		start int
		end   int
		want  string
		count int
	}{
		{"全件", "ABxABxAB", "AB", "CD", 0, 8, "CDxCDxCD", 3},
		{"開始位置", "ABxABxAB", "AB", "CD", 2, 8, "ABxCDxCD", 2},
		{"終了位置", "ABxABxAB", "AB", "CD", 0, 4, "CDxCDxAB", 2},
		{"置換後から再検索", "AAAA", "AA", "AB", 0, 4, "ABAB", 2},
		{"長さ違いは無視", "AB", "AB", "C", 0, 2, "AB", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := []byte(tt.buf)
			n := ReplaceWithin(buf, []byte(tt.old), []byte(tt.new), tt.start, tt.end)
			if n != tt.count {
				t.Errorf("Expected %d replacements, got %d", tt.count, n)
			}
			if string(buf) != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, string(buf))
			}
		})
	}
}

func TestResult_String(t *testing.T) {
	r := &Result{Counts: []Count{{"be3", 1}, {"le3", 0}}}
	want := "Replaced 1 pointers (be3:1, le3:0)"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLocate(t *testing.T) {
	rom := []byte("\x00\x00THE KINGDOM\x00EL REINO")
	if got := Locate(rom, "EL REINO"); got != 14 {
		t.Errorf("Expected 14, got %d", got)
	}
	if got := Locate(rom, "MISSING"); got != -1 {
		t.Errorf("Expected -1, got %d", got)
	}
	if got := Locate(rom, ""); got != -1 {
		t.Errorf("Expected -1 for empty mark, got %d", got)
	}
}
