package reflow

import (
	"regexp"
	"strings"
)

// FormatChecker は区切り文字の位置がおかしいテキストを検出します
type FormatChecker struct {
	sep     string
	glued   *regexp.Regexp
	squeeze *regexp.Regexp
}

// NewFormatChecker は区切り文字を指定して FormatChecker を作成します
func NewFormatChecker(sep rune) *FormatChecker {
	q := regexp.QuoteMeta(string(sep))
	return &FormatChecker{
		sep: string(sep),
		// 区切りの直後に空白以外が続く
		glued: regexp.MustCompile(q + `[^\s` + q + `]`),
		// 空白以外と英字に挟まれた区切り
		squeeze: regexp.MustCompile(`[^\s` + q + `]` + q + `[a-zA-Z]`),
	}
}

// Check は text に整形の問題がありそうなら true を返します
func (c *FormatChecker) Check(text string) bool {
	return strings.Contains(text, c.sep+c.sep) ||
		c.glued.MatchString(text) ||
		c.squeeze.MatchString(text)
}
