package reflow

import "testing"

func TestFormatChecker_Check(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"正常", "HOLA @ mundo", false},
		{"区切りの連続", "HOLA @@ mundo", true},
		{"区切りの後に空白なし", "HOLA @mundo", true},
		{"区切りの前に空白なし", "HOLA@ mundo", false},
		{"前後とも空白なし", "HOLA@mundo", true},
		{"末尾の区切り", "HOLA @", false},
		{"区切りなし", "HOLA mundo", false},
	}

	c := NewFormatChecker(DefaultSeparator)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Check(tt.text); got != tt.want {
				t.Errorf("Check(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
