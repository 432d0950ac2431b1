package components

// DamageTextComponent 飘字伤害数字
type DamageTextComponent struct {
	Damage   int
	LifeTime int     // 剩余帧数
	Alpha    float64 // 0.0 ~ 1.0
}
