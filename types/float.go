package types

import "github.com/chewxy/math32"

const floatCmpEpsilon = 1e-6

// Compare two vectors component-wise using the given threshold.
func ApproxEqual(v1, v2 Vec3, threshold float32) bool {
	for i := 0; i < 3; i++ {
		if math32.Abs(v1[i]-v2[i]) > threshold {
			return false
		}
	}
	return true
}
