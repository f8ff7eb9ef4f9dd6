package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// Gravity is the default downward acceleration in screen pixels per
	// second squared (+Y is down in screen coordinates).
	Gravity = 900.0
)
