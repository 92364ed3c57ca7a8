package batch

import "math"

// Matrices are column major: m[0:3] is the X axis, m[3:6] Y, m[6:9] Z and
// m[9:12] the translation.

func mulPointsScalar[V ~[3]E, M ~[12]E, E float32 | float64](dst, src []V, m M) {
	for i, p := range src {
		dst[i] = V{
			m[0]*p[0] + m[3]*p[1] + m[6]*p[2] + m[9],
			m[1]*p[0] + m[4]*p[1] + m[7]*p[2] + m[10],
			m[2]*p[0] + m[5]*p[1] + m[8]*p[2] + m[11],
		}
	}
}

func mulVectorsScalar[V ~[3]E, M ~[12]E, E float32 | float64](dst, src []V, m M) {
	for i, v := range src {
		dst[i] = V{
			m[0]*v[0] + m[3]*v[1] + m[6]*v[2],
			m[1]*v[0] + m[4]*v[1] + m[7]*v[2],
			m[2]*v[0] + m[5]*v[1] + m[8]*v[2],
		}
	}
}

func mulPointsWide[V ~[3]E, M ~[12]E, E float32 | float64](dst, src []V, m M) {
	m0, m1, m2 := m[0], m[1], m[2]
	m3, m4, m5 := m[3], m[4], m[5]
	m6, m7, m8 := m[6], m[7], m[8]
	t0, t1, t2 := m[9], m[10], m[11]

	n := len(src)
	// Hoisted bounds check for the unrolled loop.
	dst = dst[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		a, b, c, d := src[i], src[i+1], src[i+2], src[i+3]
		dst[i] = V{
			m0*a[0] + m3*a[1] + m6*a[2] + t0,
			m1*a[0] + m4*a[1] + m7*a[2] + t1,
			m2*a[0] + m5*a[1] + m8*a[2] + t2,
		}
		dst[i+1] = V{
			m0*b[0] + m3*b[1] + m6*b[2] + t0,
			m1*b[0] + m4*b[1] + m7*b[2] + t1,
			m2*b[0] + m5*b[1] + m8*b[2] + t2,
		}
		dst[i+2] = V{
			m0*c[0] + m3*c[1] + m6*c[2] + t0,
			m1*c[0] + m4*c[1] + m7*c[2] + t1,
			m2*c[0] + m5*c[1] + m8*c[2] + t2,
		}
		dst[i+3] = V{
			m0*d[0] + m3*d[1] + m6*d[2] + t0,
			m1*d[0] + m4*d[1] + m7*d[2] + t1,
			m2*d[0] + m5*d[1] + m8*d[2] + t2,
		}
	}

	// Tail.
	mulPointsScalar(dst[i:], src[i:], m)
}

func mulVectorsWide[V ~[3]E, M ~[12]E, E float32 | float64](dst, src []V, m M) {
	m0, m1, m2 := m[0], m[1], m[2]
	m3, m4, m5 := m[3], m[4], m[5]
	m6, m7, m8 := m[6], m[7], m[8]

	n := len(src)
	dst = dst[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		a, b, c, d := src[i], src[i+1], src[i+2], src[i+3]
		dst[i] = V{
			m0*a[0] + m3*a[1] + m6*a[2],
			m1*a[0] + m4*a[1] + m7*a[2],
			m2*a[0] + m5*a[1] + m8*a[2],
		}
		dst[i+1] = V{
			m0*b[0] + m3*b[1] + m6*b[2],
			m1*b[0] + m4*b[1] + m7*b[2],
			m2*b[0] + m5*b[1] + m8*b[2],
		}
		dst[i+2] = V{
			m0*c[0] + m3*c[1] + m6*c[2],
			m1*c[0] + m4*c[1] + m7*c[2],
			m2*c[0] + m5*c[1] + m8*c[2],
		}
		dst[i+3] = V{
			m0*d[0] + m3*d[1] + m6*d[2],
			m1*d[0] + m4*d[1] + m7*d[2],
			m2*d[0] + m5*d[1] + m8*d[2],
		}
	}

	mulVectorsScalar(dst[i:], src[i:], m)
}

// The fused kernels accumulate in float64 and round once to E, so single
// precision results are as accurate as double precision ones before rounding.

func mulPointsFused[V ~[3]E, M ~[12]E, E float32 | float64](dst, src []V, m M) {
	var f [12]float64
	for i, x := range m {
		f[i] = float64(x)
	}

	n := len(src)
	dst = dst[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = fusedPoint[V](&f, src[i])
		dst[i+1] = fusedPoint[V](&f, src[i+1])
		dst[i+2] = fusedPoint[V](&f, src[i+2])
		dst[i+3] = fusedPoint[V](&f, src[i+3])
	}
	for ; i < n; i++ {
		dst[i] = fusedPoint[V](&f, src[i])
	}
}

func mulVectorsFused[V ~[3]E, M ~[12]E, E float32 | float64](dst, src []V, m M) {
	var f [12]float64
	for i, x := range m {
		f[i] = float64(x)
	}

	n := len(src)
	dst = dst[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = fusedVector[V](&f, src[i])
		dst[i+1] = fusedVector[V](&f, src[i+1])
		dst[i+2] = fusedVector[V](&f, src[i+2])
		dst[i+3] = fusedVector[V](&f, src[i+3])
	}
	for ; i < n; i++ {
		dst[i] = fusedVector[V](&f, src[i])
	}
}

func fusedPoint[V ~[3]E, E float32 | float64](m *[12]float64, p V) V {
	x, y, z := float64(p[0]), float64(p[1]), float64(p[2])
	return V{
		E(math.FMA(m[0], x, math.FMA(m[3], y, math.FMA(m[6], z, m[9])))),
		E(math.FMA(m[1], x, math.FMA(m[4], y, math.FMA(m[7], z, m[10])))),
		E(math.FMA(m[2], x, math.FMA(m[5], y, math.FMA(m[8], z, m[11])))),
	}
}

func fusedVector[V ~[3]E, E float32 | float64](m *[12]float64, v V) V {
	x, y, z := float64(v[0]), float64(v[1]), float64(v[2])
	return V{
		E(math.FMA(m[0], x, math.FMA(m[3], y, m[6]*z))),
		E(math.FMA(m[1], x, math.FMA(m[4], y, m[7]*z))),
		E(math.FMA(m[2], x, math.FMA(m[5], y, m[8]*z))),
	}
}
