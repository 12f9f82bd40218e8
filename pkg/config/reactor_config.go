package config

// 反应堆可视化配置常量
// 数值来源为固定的演示设定，不提供运行时修改

// 初始应用状态
const (
	// InitialStageIndex 启动时的阶段索引
	InitialStageIndex = 0

	// InitialControlRodLevel 启动时的控制棒水平（0=全插入，1=全抽出）
	InitialControlRodLevel = 0.2
)

// 派生标量
const (
	// TurbineSpeedFactor 涡轮转速 = 反应强度 × 该系数
	TurbineSpeedFactor = 0.5

	// TurbineSpinScale 涡轮每帧角度累积的放大系数（angle += speed × dt × scale）
	TurbineSpinScale = 10.0

	// PowerOutputMaxMW 功率读数满量程（controlRodLevel × 该值，取整显示）
	PowerOutputMaxMW = 1200.0
)

// 次级效果出现阈值（固定常量，严格大于判定）
const (
	// NeutronPresenceThreshold 中子粒子群出现阈值
	NeutronPresenceThreshold = 0.2

	// SteamPresenceThreshold 蒸汽粒子群出现阈值
	SteamPresenceThreshold = 0.3

	// GeneratorFlickerThreshold 发电机电弧光闪烁的最小转速
	GeneratorFlickerThreshold = 0.1
)

// 粒子群参数
const (
	// NeutronSwarmCount 堆芯中子粒子数量
	NeutronSwarmCount = 20

	// PipeSteamSwarmCount 热交换管道处蒸汽粒子数量
	PipeSteamSwarmCount = 30

	// TowerSteamSwarmCount 冷却塔顶蒸汽粒子数量
	TowerSteamSwarmCount = 100

	// SteamRiseHeight 蒸汽上升循环高度（y 对该值取模回绕）
	SteamRiseHeight = 6.0

	// SteamLift 蒸汽实例相对群体原点的基础抬升
	SteamLift = 2.0

	// NeutronJitterAmplitude 中子抖动振幅
	NeutronJitterAmplitude = 0.2

	// NeutronJitterRate 中子抖动频率系数
	NeutronJitterRate = 10.0

	// NeutronInstanceScale 中子实例的固定缩放
	NeutronInstanceScale = 0.2

	// ParticleCubeSize 粒子实例的基础立方体边长
	ParticleCubeSize = 0.2
)

// 粒子群随机种子（固定值保证同一次构建的布局可复现）
const (
	NeutronSwarmSeed     = 101
	PipeSteamSwarmSeed   = 202
	TowerSteamSwarmSeed  = 303
	StarfieldSeed        = 404
	GeneratorFlickerSeed = 505
)

// 相机
const (
	// CameraFOVDegrees 相机垂直视场角（度）
	CameraFOVDegrees = 45.0

	// CameraFlyDuration 阶段切换时相机飞行动画时长（秒）
	CameraFlyDuration = 1.2
)

// 控制棒
const (
	// ControlRodTravel 控制棒垂直行程（可视水平 0~1 映射到该距离）
	ControlRodTravel = 1.0

	// CoreGlowMaxIntensity 堆芯辉光强度基准（实际强度 = 基准 - 可视水平）
	CoreGlowMaxIntensity = 2.0
)

// SceneOffsetY 整个 3D 场景组的垂直偏移
const SceneOffsetY = -2.0
