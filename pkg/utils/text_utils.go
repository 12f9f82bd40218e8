package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
//
// 换行规则：
//   - 优先在空格处断行
//   - 单词超过最大宽度时强制按字符断行
//   - 支持多字节字符
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	if measureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""
	lastSpace := -1 // currentLine 中最后一个空格的字节下标

	for len(textStr) > 0 {
		r, size := utf8.DecodeRuneInString(textStr)
		char := textStr[:size]
		textStr = textStr[size:]

		testLine := currentLine + char
		if measureTextWidth(testLine, font) > maxWidth && currentLine != "" {
			if r == ' ' {
				// 恰好在空格处超宽：当前行完整收尾，空格丢弃
				lines = append(lines, currentLine)
				currentLine = ""
				lastSpace = -1
				continue
			}
			if lastSpace >= 0 {
				// 回退到最近的空格断行
				lines = append(lines, strings.TrimRight(currentLine[:lastSpace], " "))
				currentLine = currentLine[lastSpace+1:] + char
			} else {
				// 整行没有空格，强制断行
				lines = append(lines, currentLine)
				currentLine = char
			}
			lastSpace = strings.LastIndexByte(currentLine, ' ')
			continue
		}

		currentLine = testLine
		if r == ' ' {
			lastSpace = len(currentLine) - 1
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

// measureTextWidth 测量文本的渲染宽度（像素）
func measureTextWidth(s string, font *text.GoTextFace) float64 {
	w, _ := text.Measure(s, font, 0)
	return w
}
