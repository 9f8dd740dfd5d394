// SPDX-License-Identifier: EPL-2.0

package block

import vecmath "github.com/cwbudde/algo-vecmath"

// scale multiplies n strided samples starting at off by g.
// Contiguous float64 runs go through the vectorized kernel.
func scale[T Sample](data []T, off, stride, n int, g T) {
	if stride == 1 {
		if d, ok := any(data).([]float64); ok {
			vecmath.ScaleBlockInPlace(d[off:off+n], any(g).(float64))
			return
		}
	}
	for f, idx := 0, off; f < n; f, idx = f+1, idx+stride {
		data[idx] *= g
	}
}
