//go:build unit

package commands

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{name: "短い文字列はそのまま", input: "timeout", n: 500, want: "timeout"},
		{name: "ASCIIはバイト数で切る", input: strings.Repeat("a", 510), n: 500, want: strings.Repeat("a", 500)},
		{name: "マルチバイト文字の途中では切らない", input: strings.Repeat("a", 499) + "é" + strings.Repeat("b", 10), n: 500, want: strings.Repeat("a", 499)},
		{name: "3バイト文字の境界まで戻る", input: "ab日本語", n: 6, want: "ab日"},
		{name: "不正なUTF-8は置換される", input: "bad\xffbyte", n: 500, want: "bad�byte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.LessOrEqual(t, len(got), tt.n)
		})
	}
}
