package systems

import (
	"testing"

	"github.com/gonewx/voxelreactor/pkg/config"
	"github.com/gonewx/voxelreactor/pkg/game"
)

// testStagesYAML 测试用的最小阶段目录
const testStagesYAML = `
stages:
  - id: CORE
    title: "1. The Reactor Core"
    description: "Fission happens here."
    cameraPosition: [5, 5, 5]
    cameraTarget: [0, 0, 0]
  - id: HEAT_EXCHANGE
    title: "2. Heat Exchange & Steam"
    description: "Water becomes steam."
    cameraPosition: [2, 4, 0]
    cameraTarget: [0, 2, 0]
  - id: TURBINE
    title: "3. The Turbine & Generator"
    description: "Steam spins the turbine."
    cameraPosition: [-8, 3, 0]
    cameraTarget: [-5, 1, 0]
  - id: COOLING
    title: "4. Cooling System"
    description: "Steam is condensed back."
    cameraPosition: [-12, 6, -5]
    cameraTarget: [-8, 0, 0]
`

// newTestState 创建测试用的反应堆状态
func newTestState(t *testing.T) *game.ReactorState {
	t.Helper()
	catalog, err := config.ParseStageCatalog([]byte(testStagesYAML))
	if err != nil {
		t.Fatalf("解析阶段配置失败: %v", err)
	}
	return game.NewReactorState(catalog)
}
