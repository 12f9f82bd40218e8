package config

import (
	"fmt"
	"image/color"

	"github.com/gonewx/voxelreactor/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// Material 单个绘制样式
// Emissive 为 true 的材质不参与光照计算，始终以原色全亮绘制
type Material struct {
	Color    color.RGBA
	Alpha    float64
	Emissive bool
}

// MaterialTable 只读的材质样式表
// 启动时构造一次，以引用方式传入各实体工厂；不允许运行时修改
type MaterialTable struct {
	materials map[string]Material
}

// materialEntry 材质的 YAML 表示
type materialEntry struct {
	Color    string   `yaml:"color"`
	Alpha    *float64 `yaml:"alpha"` // 缺省为 1.0
	Emissive bool     `yaml:"emissive"`
}

// materialFile 材质表的 YAML 顶层结构
type materialFile struct {
	Materials map[string]materialEntry `yaml:"materials"`
}

// ParseMaterialTable 从 YAML 数据解析材质表
func ParseMaterialTable(data []byte) (*MaterialTable, error) {
	var file materialFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("解析材质表失败: %w", err)
	}
	if len(file.Materials) == 0 {
		return nil, fmt.Errorf("材质表为空")
	}

	table := &MaterialTable{materials: make(map[string]Material, len(file.Materials))}
	for name, entry := range file.Materials {
		rgba, err := parseHexColor(entry.Color)
		if err != nil {
			return nil, fmt.Errorf("材质 %s: %w", name, err)
		}
		alpha := 1.0
		if entry.Alpha != nil {
			alpha = *entry.Alpha
			if alpha < 0 || alpha > 1 {
				return nil, fmt.Errorf("材质 %s: alpha 必须在 [0,1] 范围内，实际 %v", name, alpha)
			}
		}
		table.materials[name] = Material{
			Color:    rgba,
			Alpha:    alpha,
			Emissive: entry.Emissive,
		}
	}
	return table, nil
}

// LoadMaterialTable 从嵌入资源加载材质表
func LoadMaterialTable() (*MaterialTable, error) {
	data, err := embedded.ReadFile("data/materials.yaml")
	if err != nil {
		return nil, fmt.Errorf("读取 data/materials.yaml 失败: %w", err)
	}
	return ParseMaterialTable(data)
}

// Get 返回指定名称的材质
// 引用不存在的材质是编程错误，直接 panic
func (t *MaterialTable) Get(name string) Material {
	m, ok := t.materials[name]
	if !ok {
		panic(fmt.Sprintf("material %q not defined in material table", name))
	}
	return m
}

// Has 检查材质是否存在
func (t *MaterialTable) Has(name string) bool {
	_, ok := t.materials[name]
	return ok
}

// Len 返回材质数量
func (t *MaterialTable) Len() int {
	return len(t.materials)
}

// parseHexColor 解析 "#rrggbb" 形式的颜色值
func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("颜色值必须为 #rrggbb 格式，实际为 %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("颜色值 %q 解析失败: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
