package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/starblitz/pkg/entities"
)

// TestEffectsReproducibleWithSeededSource 相同种子的随机源产生完全一致的粒子
func TestEffectsReproducibleWithSeededSource(t *testing.T) {
	w1, w2 := entities.NewWorld(), entities.NewWorld()

	SpawnExplosion(w1, rand.New(rand.NewSource(11)), 100, 100, "amber", 8)
	SpawnExplosion(w2, rand.New(rand.NewSource(11)), 100, 100, "amber", 8)

	if len(w1.Particles) != 8 || len(w2.Particles) != 8 {
		t.Fatalf("expected 8 particles in both worlds, got %d and %d",
			len(w1.Particles), len(w2.Particles))
	}
	for i := range w1.Particles {
		a, b := w1.Particles[i], w2.Particles[i]
		if a.VX != b.VX || a.VY != b.VY || a.Life != b.Life {
			t.Errorf("particle %d diverged: (%v,%v,%d) vs (%v,%v,%d)",
				i, a.VX, a.VY, a.Life, b.VX, b.VY, b.Life)
		}
	}
}
