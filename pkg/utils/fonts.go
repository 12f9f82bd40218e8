package utils

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// 字体加载
//
// 仓库不携带二进制字体资源，HUD 文本统一使用 Go 字体（goregular）。
// 字体源只解析一次，字号到 Face 的映射按需缓存。
// 渲染循环是单线程的，缓存无需加锁；sync.Once 只保护源的惰性解析。

var (
	fontSourceOnce sync.Once
	fontSource     *text.GoTextFaceSource
	fontSourceErr  error

	faceCache = map[float64]*text.GoTextFace{}
)

// loadFontSource 解析内置的 Go 字体
func loadFontSource() {
	fontSource, fontSourceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if fontSourceErr != nil {
		fontSourceErr = fmt.Errorf("解析内置字体失败: %w", fontSourceErr)
	}
}

// DefaultFace 返回指定字号的默认字体 Face
//
// 内置字体是编译期资源，解析失败属于程序错误，直接 panic。
func DefaultFace(size float64) *text.GoTextFace {
	fontSourceOnce.Do(loadFontSource)
	if fontSourceErr != nil {
		panic(fontSourceErr)
	}

	if face, ok := faceCache[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source:    fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	faceCache[size] = face
	return face
}
