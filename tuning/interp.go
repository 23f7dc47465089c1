package tuning

// catmullRom interpolates between p1 and p2 at t in [0, 1] using the
// neighbours p0 and p3 (4-point cubic Hermite with Catmull-Rom tangents).
// It reproduces straight lines exactly.
func catmullRom(t, p0, p1, p2, p3 float64) float64 {
	c0 := p1
	c1 := 0.5 * (p2 - p0)
	c2 := p0 - 2.5*p1 + 2*p2 - 0.5*p3
	c3 := 0.5*(p3-p0) + 1.5*(p1-p2)
	return ((c3*t+c2)*t+c1)*t + c0
}
