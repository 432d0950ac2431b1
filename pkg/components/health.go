package components

// HealthComponent 存储实体的生命值信息
// 用于敌机、障碍物和 Boss；玩家的残机数保存在 GameState 中
type HealthComponent struct {
	CurrentHealth  int  // 当前生命值
	MaxHealth      int  // 最大生命值
	Indestructible bool // 不可破坏（只吸收子弹）
}

// IsDead 生命值是否已耗尽
func (h *HealthComponent) IsDead() bool {
	return !h.Indestructible && h.CurrentHealth <= 0
}

// TakeDamage 扣除生命值，不会低于 0
// 不可破坏的实体不受影响，返回是否因此死亡
func (h *HealthComponent) TakeDamage(amount int) bool {
	if h.Indestructible {
		return false
	}
	h.CurrentHealth -= amount
	if h.CurrentHealth < 0 {
		h.CurrentHealth = 0
	}
	return h.CurrentHealth == 0
}

// Ratio 当前生命值占最大生命值的比例，用于血条
func (h *HealthComponent) Ratio() float64 {
	if h.MaxHealth <= 0 {
		return 0
	}
	return float64(h.CurrentHealth) / float64(h.MaxHealth)
}
