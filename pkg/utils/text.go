// Package utils 提供通用工具函数
package utils

import (
	"bytes"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontSourceOnce sync.Once
	fontSource     *text.GoTextFaceSource
)

// faceSource 惰性构建共享字体源（Go Regular）
// 本仓库不携带字体资源文件，HUD 文本统一使用内置字体
func faceSource() *text.GoTextFaceSource {
	fontSourceOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			// 内置字体解析失败属于构建问题，不是运行时可恢复错误
			log.Fatalf("[Utils] Failed to parse built-in font: %v", err)
		}
		fontSource = src
	})
	return fontSource
}

// Face 返回指定字号的字体
func Face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: faceSource(), Size: size}
}

// DrawText 在逻辑表面上绘制左对齐文本
func DrawText(dst *ebiten.Image, str string, x, y, size float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, Face(size), op)
}

// DrawTextCentered 以 (x, y) 为水平中心绘制文本
func DrawTextCentered(dst *ebiten.Image, str string, x, y, size float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, str, Face(size), op)
}

// Clamp 把数值截断到 [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
