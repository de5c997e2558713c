// Package hexcodec は16進バイト列テキストの整形と変換を行います
package hexcodec

import (
	"fmt"
	"strconv"
	"strings"
)

// 1行あたりのトークン数
const tokensPerLine = 16

// 省略表示する不正トークンの最大数
const maxInvalidShown = 5

// FormatLines は2桁の16進トークンを16個ごとに改行して整形します。
// トークンは大文字に統一され、空の入力には空文字列を返します。
func FormatLines(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}

	upper := make([]string, len(tokens))
	for i, token := range tokens {
		upper[i] = strings.ToUpper(token)
	}

	var lines []string
	for start := 0; start < len(upper); start += tokensPerLine {
		end := start + tokensPerLine
		if end > len(upper) {
			end = len(upper)
		}
		lines = append(lines, strings.Join(upper[start:end], " "))
	}
	return strings.Join(lines, "\n")
}

// Normalize は任意の空白で区切られたトークン列を正規形に整形します。
// 正規形に対して再適用しても結果は変わりません（冪等）。
func Normalize(text string) string {
	return FormatLines(strings.Fields(text))
}

// TokenStats はトークン数と不正なトークンの一覧を返します。
// 長さが2以外、または16進数字以外を含むトークンを不正とみなします。
func TokenStats(text string) (int, []string) {
	var invalid []string
	tokens := strings.Fields(text)
	for _, token := range tokens {
		if !isHexToken(token) {
			invalid = append(invalid, token)
		}
	}
	return len(tokens), invalid
}

// ToBytes は正規形の16進テキストをバイト列に変換します。
// 呼び出し側が事前にTokenStatsで検証している前提で、不正なトークンはエラーになります。
func ToBytes(text string) ([]byte, error) {
	tokens := strings.Fields(text)
	out := make([]byte, 0, len(tokens))
	for _, token := range tokens {
		value, err := strconv.ParseUint(token, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidToken, token)
		}
		out = append(out, byte(value))
	}
	return out, nil
}

// FromBytes はバイト列を正規形の16進テキストに変換します。
func FromBytes(data []byte) string {
	tokens := make([]string, len(data))
	for i, b := range data {
		tokens[i] = fmt.Sprintf("%02X", b)
	}
	return FormatLines(tokens)
}

// DescribeInvalid は不正トークンの先頭数件を列挙した説明文を返します。
// 件数が多い場合は残りを省略して件数のみ付記します。
func DescribeInvalid(invalid []string) string {
	if len(invalid) == 0 {
		return ""
	}
	shown := invalid
	if len(shown) > maxInvalidShown {
		shown = shown[:maxInvalidShown]
	}
	text := strings.Join(shown, ", ")
	if rest := len(invalid) - len(shown); rest > 0 {
		text += fmt.Sprintf(" (他%d件)", rest)
	}
	return text
}

func isHexToken(token string) bool {
	if len(token) != 2 {
		return false
	}
	for _, c := range token {
		if !isHexDigit(c) {
			return false
		}
	}
	return true
}

func isHexDigit(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
