package wpi

// Point is a position in the normalized drawing plane.
type Point struct {
	X float64
	Y float64
}

// Sensor to plane mapping. Y is scaled by 2 because the sensor's vertical
// resolution is half its horizontal one; X is shifted by 320 to move the
// device origin into the plane.
const (
	sensorScale   = 32
	sensorBias    = 5
	planeOffsetX  = 320
	verticalScale = 2
)

// Transform maps raw sensor readings to plane coordinates:
//
//	x = (xRaw + 5) / 32 + 320
//	y = (yRaw * 2 + 5) / 32
func Transform(xRaw, yRaw int16) Point {
	return Point{
		X: (float64(xRaw)+sensorBias)/sensorScale + planeOffsetX,
		Y: (float64(yRaw)*verticalScale + sensorBias) / sensorScale,
	}
}
