// Package systems 实现模拟引擎的各个子系统
//
// 架构说明：
//   - Battle（模拟时钟）是世界状态的唯一写者，按固定顺序驱动各系统
//   - 各系统通过构造函数注入依赖，不持有全局状态
//   - 渲染层只消费 HUDSnapshot，不直接读取世界
package systems

// InputState 单步进的玩家输入
// 由场景层从键盘/手柄采集后注入，测试可直接构造
type InputState struct {
	MoveX float64 // 横向移动 [-1, 1]
	MoveY float64 // 纵向移动 [-1, 1]
	Focus bool    // 低速精确移动
	Cast  []bool  // 法术槽位施放请求，与装备顺序对齐
}

// CastRequested 判断指定槽位是否请求施放
func (in *InputState) CastRequested(slot int) bool {
	return slot < len(in.Cast) && in.Cast[slot]
}

// ClearCasts 清除已消费的施放请求（每步进末尾调用）
func (in *InputState) ClearCasts() {
	for i := range in.Cast {
		in.Cast[i] = false
	}
}
