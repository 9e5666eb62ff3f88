package consts

import (
	"math"
	"testing"

	"github.com/zeebo/assert"
)

func TestT(t *testing.T) {
	for i := range T {
		exp := uint32(math.Floor(4294967296 * math.Abs(math.Sin(float64(i+1)))))
		assert.Equal(t, T[i], exp)
	}
}

func TestSched(t *testing.T) {
	// every round reads each message word exactly once
	for r := range Sched {
		var seen [16]bool
		for _, k := range Sched[r] {
			assert.That(t, !seen[k])
			seen[k] = true
		}
	}
}

func TestRoles(t *testing.T) {
	// each step rotates the role assignment right by one register
	for p := 1; p < len(Roles); p++ {
		for j := range Roles[p] {
			assert.Equal(t, Roles[p][j], Roles[p-1][(j+3)%4])
		}
	}
}
