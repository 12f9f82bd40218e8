package config

import (
	"image/color"
	"testing"
)

const testMaterialYAML = `
materials:
  concrete:
    color: "#555555"
  water:
    color: "#00aaff"
    alpha: 0.5
  fuel:
    color: "#00ff00"
    emissive: true
`

// TestParseMaterialTable 测试材质表解析
func TestParseMaterialTable(t *testing.T) {
	table, err := ParseMaterialTable([]byte(testMaterialYAML))
	if err != nil {
		t.Fatalf("ParseMaterialTable() error: %v", err)
	}

	if table.Len() != 3 {
		t.Fatalf("Len() = %d, 期望 3", table.Len())
	}

	tests := []struct {
		name     string
		key      string
		color    color.RGBA
		alpha    float64
		emissive bool
	}{
		{"不透明混凝土", "concrete", color.RGBA{0x55, 0x55, 0x55, 0xff}, 1.0, false},
		{"半透明水体", "water", color.RGBA{0x00, 0xaa, 0xff, 0xff}, 0.5, false},
		{"自发光燃料", "fuel", color.RGBA{0x00, 0xff, 0x00, 0xff}, 1.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := table.Get(tt.key)
			if m.Color != tt.color {
				t.Errorf("Color = %v, 期望 %v", m.Color, tt.color)
			}
			if m.Alpha != tt.alpha {
				t.Errorf("Alpha = %v, 期望 %v", m.Alpha, tt.alpha)
			}
			if m.Emissive != tt.emissive {
				t.Errorf("Emissive = %v, 期望 %v", m.Emissive, tt.emissive)
			}
		})
	}
}

// TestParseMaterialTableErrors 测试非法材质定义
func TestParseMaterialTableErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"空表", `materials: {}`},
		{"非法颜色格式", "materials:\n  bad:\n    color: \"red\""},
		{"非法十六进制", "materials:\n  bad:\n    color: \"#zzzzzz\""},
		{"alpha 越界", "materials:\n  bad:\n    color: \"#ffffff\"\n    alpha: 1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseMaterialTable([]byte(tt.yaml)); err == nil {
				t.Error("期望返回错误，实际为 nil")
			}
		})
	}
}

// TestMaterialGetUnknown 引用未定义材质必须 panic
func TestMaterialGetUnknown(t *testing.T) {
	table, err := ParseMaterialTable([]byte(testMaterialYAML))
	if err != nil {
		t.Fatalf("ParseMaterialTable() error: %v", err)
	}

	if table.Has("plutonium") {
		t.Error("Has(plutonium) = true, 期望 false")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Get(plutonium) 应该 panic")
		}
	}()
	table.Get("plutonium")
}
