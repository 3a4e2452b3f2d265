package systems

import (
	"math"
	"math/rand"

	"github.com/gonewx/starblitz/pkg/entities"
)

// SpawnExplosion 在指定位置放射n个爆炸粒子
// 粒子速度与寿命取自战斗自己的随机源，同种子局面完全可复现
func SpawnExplosion(w *entities.World, rng *rand.Rand, x, y float64, color string, n int) {
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		speed := 1.0 + rng.Float64()*2.0
		w.AddParticle(entities.NewParticle(
			w.AllocID(),
			x, y,
			math.Sin(angle)*speed, math.Cos(angle)*speed,
			20+rng.Intn(20),
			color,
		))
	}
}

// SpawnSparkle 在指定位置放出少量火花（弹丸消散、擦弹反馈）
func SpawnSparkle(w *entities.World, rng *rand.Rand, x, y float64, color string) {
	for i := 0; i < 4; i++ {
		w.AddParticle(entities.NewParticle(
			w.AllocID(),
			x, y,
			rng.Float64()*2-1, rng.Float64()*2-1,
			10+rng.Intn(10),
			color,
		))
	}
}
