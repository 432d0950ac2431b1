package config

// 布局配置常量
// 本文件定义了战场尺寸、实体碰撞盒尺寸以及 HUD / 触控控件位置
// 所有坐标使用"战场坐标系"（左上角为原点，Y 轴向下）

// Play Field (战场)
const (
	// GameWindowWidth 逻辑屏幕宽度（像素），Layout 返回该值
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// FieldWidth 战场宽度（浮点，供模拟计算使用）
	FieldWidth = float64(GameWindowWidth)

	// FieldHeight 战场高度（浮点）
	FieldHeight = float64(GameWindowHeight)
)

// Entity Sizes (实体尺寸)
const (
	// PlayerWidth / PlayerHeight 玩家碰撞盒
	PlayerWidth  = 30.0
	PlayerHeight = 30.0

	// PlayerStartX 玩家初始X：水平居中
	PlayerStartX = FieldWidth/2 - PlayerWidth/2

	// PlayerStartY 玩家初始Y：距底部 80 像素
	PlayerStartY = FieldHeight - 80

	// BulletWidth / BulletHeight 子弹碰撞盒（玩家与敌方共用）
	BulletWidth  = 4.0
	BulletHeight = 10.0

	// EnemyWidth / EnemyHeight 普通敌机碰撞盒
	EnemyWidth  = 30.0
	EnemyHeight = 30.0

	// ObstacleWidth / ObstacleHeight 障碍物碰撞盒
	ObstacleWidth  = 40.0
	ObstacleHeight = 40.0

	// BossWidth / BossHeight Boss 碰撞盒（同时是图片绘制尺寸）
	BossWidth  = 160.0
	BossHeight = 160.0

	// BossStartY Boss 登场时的初始Y（完全在屏幕上方）
	BossStartY = -BossHeight
)

// HUD (界面)
const (
	// HUDFontSize 分数/残机文字大小
	HUDFontSize = 18.0

	// BossBarWidth / BossBarHeight Boss 血条尺寸，水平居中
	BossBarWidth  = 200.0
	BossBarHeight = 10.0

	// BossBarY Boss 血条顶部Y
	BossBarY = 20.0

	// BossNameY Boss 名称基线Y
	BossNameY = 36.0

	// DamageTextFontSize 伤害数字字体大小
	DamageTextFontSize = 16.0

	// StarCount 背景星星数量
	StarCount = 50
)

// Touch Controls (移动端触控)
const (
	// JoystickRadius 虚拟摇杆半径（像素），超出半径的位移按单位圆截断
	JoystickRadius = 50.0

	// JoystickCenterX / JoystickCenterY 虚拟摇杆中心（左下角）
	JoystickCenterX = 90.0
	JoystickCenterY = FieldHeight - 90

	// ShootButtonRadius 发射按钮半径
	ShootButtonRadius = 40.0

	// ShootButtonX / ShootButtonY 发射按钮中心（右下角）
	ShootButtonX = FieldWidth - 90
	ShootButtonY = FieldHeight - 90
)

// TicksPerSecond 模拟频率，一次 Update 为一帧
const TicksPerSecond = 60

// MillisPerTick 每帧对应的模拟毫秒数（Boss 弹道的时间函数使用）
const MillisPerTick = 1000.0 / TicksPerSecond
