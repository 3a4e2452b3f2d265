package entities

// Particle 纯装饰粒子
// 不参与任何碰撞判定，寿命归零后在步进末尾被过滤
type Particle struct {
	Base

	Life    int // 剩余寿命（帧）
	MaxLife int
}

// NewParticle 创建粒子
func NewParticle(id EntityID, x, y, vx, vy float64, life int, color string) *Particle {
	return &Particle{
		Base: Base{
			ID:    id,
			X:     x,
			Y:     y,
			VX:    vx,
			VY:    vy,
			Color: color,
		},
		Life:    life,
		MaxLife: life,
	}
}

// Alpha 返回由剩余寿命推导的透明度 [0,1]
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Age 粒子老化一步，寿命归零时标记移除
func (p *Particle) Age() {
	p.Life--
	if p.Life <= 0 {
		p.MarkDead()
	}
	p.Advance()
}
