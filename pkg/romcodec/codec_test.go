package romcodec

import (
	"bytes"
	"testing"
)

func newTestCodec(t *testing.T, encoding string, translit Transliterator) *Codec {
	t.Helper()
	c, err := New(Traysia, encoding, translit)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c
}

func TestCodec_Decode(t *testing.T) {
	c := newTestCodec(t, "latin-1", nil)

	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"エスケープ列", []byte{0x81, 0x4A}, "¡"},
		{"代替コード", []byte{0x81, 'j'}, "Á"},
		{"通常の文字", []byte("HOLA"), "HOLA"},
		{"混在", []byte{0x81, 'K', 'Q', 'u', 0x81, 'M', '?'}, "¿Qué?"},
		{"末尾の単独エスケープ", []byte{'A', 0x81}, "A\u0081"},
		{"未定義のエスケープ列", []byte{0x81, 0x20}, "\u0081 "},
		{"Latin-1の拡張文字", []byte{0xE9}, "é"},
		{"空", []byte{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Decode(tt.input)
			if got != tt.expected {
				t.Errorf("Decode(% X) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCodec_DecodeASCIIReplacement(t *testing.T) {
	c := newTestCodec(t, "ascii", nil)

	got := c.Decode([]byte{'A', 0xE9, 0x81, 'L'})
	if got != "A�á" {
		t.Errorf("Decode = %q, want %q", got, "A�á")
	}
}

func TestCodec_Encode(t *testing.T) {
	c := newTestCodec(t, "latin-1", nil)

	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{"正規の列を使う", "Á", []byte{0x81, 'R'}},
		{"感嘆符", "¡HOLA!", []byte{0x81, 'J', 'H', 'O', 'L', 'A', '!'}},
		{"ドイツ語", "ß", []byte{0x81, 'g'}},
		{"表現できない文字", "日本", []byte{'?', '?'}},
		{"Latin-1の文字", "ç", []byte{0xE7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Encode(tt.input)
			if !bytes.Equal(got, tt.expected) {
				t.Errorf("Encode(%q) = % X, want % X", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	c := newTestCodec(t, "latin-1", nil)

	inputs := []string{
		"",
		"¡Hola, señor!",
		"¿QUÉ HACES AQUÍ?",
		"ÁÉÍÓÚÑ áéíóúñ",
		"Größe über Äpfel",
		"PLAIN ASCII 0123 @   padding",
		"ç ø å",
	}

	for _, in := range inputs {
		got := c.Decode(c.Encode(in))
		if got != in {
			t.Errorf("Decode(Encode(%q)) = %q", in, got)
		}
	}
}

func TestCodec_Transliteration(t *testing.T) {
	c := newTestCodec(t, "latin-1", German)

	got := c.Encode("Größe")
	if string(got) != "Groesse" {
		t.Errorf("Encode = %q, want %q", got, "Groesse")
	}
	if c.EncodedLen("ü") != 2 {
		t.Errorf("EncodedLen(ü) = %d, want 2", c.EncodedLen("ü"))
	}
}

func TestCodec_Fits(t *testing.T) {
	c := newTestCodec(t, "latin-1", nil)

	tests := []struct {
		text   string
		length int
		want   bool
	}{
		{"ABC", 4, true},
		{"ABC", 3, false},
		{"¡A", 4, true},
		{"¡A", 3, false},
		{"", 1, true},
	}

	for _, tt := range tests {
		if got := c.Fits(tt.text, tt.length); got != tt.want {
			t.Errorf("Fits(%q, %d) = %v, want %v", tt.text, tt.length, got, tt.want)
		}
	}
}

func TestNewWithEncoding_NilTable(t *testing.T) {
	if _, err := NewWithEncoding(nil, ASCII, nil); err != ErrNilCharacterMap {
		t.Errorf("Expected ErrNilCharacterMap, got %v", err)
	}
}
