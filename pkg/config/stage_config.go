package config

import (
	"fmt"

	"github.com/gonewx/voxelreactor/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// StageID 阶段标识符
type StageID string

// 四个固定阶段的 ID，顺序即导览顺序
const (
	StageCore         StageID = "CORE"
	StageHeatExchange StageID = "HEAT_EXCHANGE"
	StageTurbine      StageID = "TURBINE"
	StageCooling      StageID = "COOLING"
)

// expectedStageOrder 阶段目录必须严格按此顺序定义
var expectedStageOrder = []StageID{StageCore, StageHeatExchange, StageTurbine, StageCooling}

// StageInfo 单个导览阶段的静态描述
// 进程启动时从 data/stages.yaml 加载后不再变更
type StageInfo struct {
	ID          StageID `yaml:"id"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	// 相机位姿（世界坐标）：切换到该阶段时相机飞向的位置与注视点
	CameraPosition [3]float64 `yaml:"cameraPosition"`
	CameraTarget   [3]float64 `yaml:"cameraTarget"`
}

// StageCatalog 只读的阶段目录
// 唯一的寻址方式是 0~Len()-1 的索引，越界访问是调用方的编程错误
type StageCatalog struct {
	stages []StageInfo
}

// stageCatalogFile 阶段目录的 YAML 顶层结构
type stageCatalogFile struct {
	Stages []StageInfo `yaml:"stages"`
}

// ParseStageCatalog 从 YAML 数据解析并校验阶段目录
//
// 校验规则：
//   - 必须恰好包含 4 个阶段
//   - ID 必须按固定顺序出现（CORE, HEAT_EXCHANGE, TURBINE, COOLING）
//   - 标题和描述不能为空
func ParseStageCatalog(data []byte) (*StageCatalog, error) {
	var file stageCatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("解析阶段目录失败: %w", err)
	}

	if len(file.Stages) != len(expectedStageOrder) {
		return nil, fmt.Errorf("阶段目录必须包含 %d 个阶段，实际 %d 个",
			len(expectedStageOrder), len(file.Stages))
	}

	for i, stage := range file.Stages {
		if stage.ID != expectedStageOrder[i] {
			return nil, fmt.Errorf("阶段 %d 的 ID 应为 %s，实际为 %s",
				i, expectedStageOrder[i], stage.ID)
		}
		if stage.Title == "" {
			return nil, fmt.Errorf("阶段 %s 缺少标题", stage.ID)
		}
		if stage.Description == "" {
			return nil, fmt.Errorf("阶段 %s 缺少描述", stage.ID)
		}
	}

	return &StageCatalog{stages: file.Stages}, nil
}

// LoadStageCatalog 从嵌入资源加载阶段目录
func LoadStageCatalog() (*StageCatalog, error) {
	data, err := embedded.ReadFile("data/stages.yaml")
	if err != nil {
		return nil, fmt.Errorf("读取 data/stages.yaml 失败: %w", err)
	}
	return ParseStageCatalog(data)
}

// Len 返回阶段数量（恒为 4）
func (c *StageCatalog) Len() int {
	return len(c.stages)
}

// StageAt 返回指定索引的阶段信息
// index 必须在 [0, Len()-1] 范围内，越界会 panic（由调用方负责钳制）
func (c *StageCatalog) StageAt(index int) StageInfo {
	if index < 0 || index >= len(c.stages) {
		panic(fmt.Sprintf("stage index %d out of range [0, %d]", index, len(c.stages)-1))
	}
	return c.stages[index]
}
