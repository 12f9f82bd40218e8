package game

import (
	"log"
	"math"

	"github.com/gonewx/voxelreactor/pkg/config"
)

// ReactorState 反应堆演示的全局状态
//
// 两个自由度驱动整个演示：
//   - StageIndex：导览阶段（0 ~ 3），决定镜头机位与讲解文案
//   - ControlRodLevel：控制棒抽出程度（0 ~ 1），决定反应强度
//
// 其余一切可见量（功率、涡轮转速、粒子显隐、辉光亮度）
// 都是这两个值的派生量，不单独存储。
type ReactorState struct {
	catalog *config.StageCatalog

	stageIndex      int
	controlRodLevel float64
}

// NewReactorState 创建初始状态的反应堆
//
// 演示从第一阶段开始，控制棒默认抽出两成。
func NewReactorState(catalog *config.StageCatalog) *ReactorState {
	return &ReactorState{
		catalog:         catalog,
		stageIndex:      config.InitialStageIndex,
		controlRodLevel: config.InitialControlRodLevel,
	}
}

// StageIndex 返回当前阶段下标（0 起）
func (rs *ReactorState) StageIndex() int {
	return rs.stageIndex
}

// CurrentStage 返回当前阶段的配置信息
func (rs *ReactorState) CurrentStage() config.StageInfo {
	return rs.catalog.StageAt(rs.stageIndex)
}

// StageCount 返回导览阶段总数
func (rs *ReactorState) StageCount() int {
	return rs.catalog.Len()
}

// AtFirstStage 当前是否处于第一阶段
func (rs *ReactorState) AtFirstStage() bool {
	return rs.stageIndex == 0
}

// AtLastStage 当前是否处于最后阶段
func (rs *ReactorState) AtLastStage() bool {
	return rs.stageIndex == rs.catalog.Len()-1
}

// NextStage 前进到下一阶段
//
// 已在最后阶段时不做任何事（不回绕）。
// 返回阶段是否发生了变化。
func (rs *ReactorState) NextStage() bool {
	if rs.AtLastStage() {
		return false
	}
	rs.stageIndex++
	log.Printf("[ReactorState] 进入阶段 %d: %s", rs.stageIndex+1, rs.CurrentStage().Title)
	return true
}

// PrevStage 回退到上一阶段
//
// 已在第一阶段时不做任何事（不回绕）。
// 返回阶段是否发生了变化。
func (rs *ReactorState) PrevStage() bool {
	if rs.AtFirstStage() {
		return false
	}
	rs.stageIndex--
	log.Printf("[ReactorState] 返回阶段 %d: %s", rs.stageIndex+1, rs.CurrentStage().Title)
	return true
}

// ControlRodLevel 返回控制棒抽出程度（0 = 全插入，1 = 全抽出）
func (rs *ReactorState) ControlRodLevel() float64 {
	return rs.controlRodLevel
}

// SetControlRodLevel 设置控制棒抽出程度
//
// 超出 [0, 1] 的值会被钳制。
func (rs *ReactorState) SetControlRodLevel(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	rs.controlRodLevel = level
}

// ReactionIntensity 反应强度（0 ~ 1）
//
// 当前模型里强度与控制棒抽出程度线性相等，
// 单独提供方法是为了让派生量不直接耦合到滑块值。
func (rs *ReactorState) ReactionIntensity() float64 {
	return rs.controlRodLevel
}

// TurbineSpeed 涡轮转速（派生量）
func (rs *ReactorState) TurbineSpeed() float64 {
	return rs.ReactionIntensity() * config.TurbineSpeedFactor
}

// PowerOutputMW 当前电功率（兆瓦，四舍五入取整）
func (rs *ReactorState) PowerOutputMW() int {
	return int(math.Round(rs.ReactionIntensity() * config.PowerOutputMaxMW))
}

// SteamVisible 蒸汽粒子是否应当可见
func (rs *ReactorState) SteamVisible() bool {
	return rs.ReactionIntensity() > config.SteamPresenceThreshold
}

// NeutronsVisible 中子粒子是否应当可见
func (rs *ReactorState) NeutronsVisible() bool {
	return rs.ReactionIntensity() > config.NeutronPresenceThreshold
}
