package geom

// CircularIndex treats a slice as a circular buffer. It gives the modular
// index for length n, but unlike the raw modulo operator it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
