package scaler

const (
	// round trip of every mode stays within this absolute error for well scaled data
	RoundTripTolerance = 1e-9

	// digits kept by Round, 0.66666 -> 0.6667
	DisplayPrecision = 4
)
