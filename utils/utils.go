package utils

import "math"

func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	pow := math.Pow10(int(round))
	return math.Round(f*pow) / pow
}

func FormatFloats(data []float64, round int32) []float64 {
	res := make([]float64, len(data))
	for i, v := range data {
		res[i] = FormatFloat(v, round)
	}
	return res
}

func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
