// 指示: miu200521358
package mmath

import "math"

const (
	// vectorEpsilon は零判定に使う許容誤差。
	vectorEpsilon = 1e-8
)

// DegToRad は度をラジアンへ変換する。
func DegToRad(degree float64) float64 {
	return degree * math.Pi / 180.0
}

// RadToDeg はラジアンを度へ変換する。
func RadToDeg(radian float64) float64 {
	return radian * 180.0 / math.Pi
}

// Clamp はmin-maxで値をクランプする。
func Clamp(value float64, min float64, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Clamp01 は値を[0,1]へクランプする。
func Clamp01(value float64) float64 {
	return Clamp(value, 0.0, 1.0)
}
