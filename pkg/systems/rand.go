package systems

// RandSource 随机数来源
// *math/rand.Rand 满足该接口；测试中用脚本化的实现控制每次抽取
type RandSource interface {
	// Float64 返回 [0, 1) 的随机数
	Float64() float64
}
