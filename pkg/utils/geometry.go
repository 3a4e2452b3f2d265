package utils

import "math"

// Clamp 将 v 收拢到 [min, max] 区间
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampInt 将 v 收拢到 [min, max] 区间（整数版本）
func ClampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Lerp 在 a 和 b 之间按 t 线性插值，t 取 [0,1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// DistSq 返回两点间距离的平方
// 碰撞检测只比较平方距离，避免每对实体都调用 math.Sqrt
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CalculateTargetAngle 计算从源点指向目标点的角度（弧度）
// 约定：正下方为 0，顺时针为正（屏幕坐标系，Y轴向下）
func CalculateTargetAngle(srcX, srcY, targetX, targetY float64) float64 {
	return math.Atan2(targetX-srcX, targetY-srcY)
}

// NormalizeAngle 将角度规范化到 [-π, π)
// math.Mod 保留被除数符号，负输入需要补一整圈
func NormalizeAngle(angle float64) float64 {
	m := math.Mod(angle+math.Pi, math.Pi*2)
	if m < 0 {
		m += math.Pi * 2
	}
	return m - math.Pi
}

// VelocityToward 返回从源点以 speed 朝目标点移动的速度分量
// 源点与目标点重合时返回竖直向下的速度，避免零向量
func VelocityToward(srcX, srcY, targetX, targetY, speed float64) (vx, vy float64) {
	dx := targetX - srcX
	dy := targetY - srcY
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, speed
	}
	return dx / dist * speed, dy / dist * speed
}
