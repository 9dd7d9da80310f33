// 指示: miu200521358
// Package mmath は手指リグ計算に使う数学プリミティブを提供する。
package mmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 は3次元ベクトルを表す。
type Vec3 struct {
	r3.Vec
}

// 基本ベクトル定数。
var (
	ZERO_VEC3       = Vec3{}
	ONE_VEC3        = Vec3{Vec: r3.Vec{X: 1, Y: 1, Z: 1}}
	UNIT_X_VEC3     = Vec3{Vec: r3.Vec{X: 1}}
	UNIT_Y_VEC3     = Vec3{Vec: r3.Vec{Y: 1}}
	UNIT_Z_VEC3     = Vec3{Vec: r3.Vec{Z: 1}}
	UNIT_X_NEG_VEC3 = Vec3{Vec: r3.Vec{X: -1}}
	UNIT_Y_NEG_VEC3 = Vec3{Vec: r3.Vec{Y: -1}}
	UNIT_Z_NEG_VEC3 = Vec3{Vec: r3.Vec{Z: -1}}
)

// NewVec3 は成分を指定してVec3を生成する。
func NewVec3(x float64, y float64, z float64) Vec3 {
	return Vec3{Vec: r3.Vec{X: x, Y: y, Z: z}}
}

// Added は加算結果を返す。
func (v Vec3) Added(other Vec3) Vec3 {
	return Vec3{Vec: r3.Add(v.Vec, other.Vec)}
}

// Subed は減算結果を返す。
func (v Vec3) Subed(other Vec3) Vec3 {
	return Vec3{Vec: r3.Sub(v.Vec, other.Vec)}
}

// MuledScalar はスカラー倍を返す。
func (v Vec3) MuledScalar(scalar float64) Vec3 {
	return Vec3{Vec: r3.Scale(scalar, v.Vec)}
}

// MuledVec は成分ごとの積を返す。
func (v Vec3) MuledVec(other Vec3) Vec3 {
	return NewVec3(v.X*other.X, v.Y*other.Y, v.Z*other.Z)
}

// DivedVec は成分ごとの商を返す。除数成分がほぼ0の場合はその成分を割らない。
func (v Vec3) DivedVec(other Vec3) Vec3 {
	return NewVec3(
		divComponent(v.X, other.X),
		divComponent(v.Y, other.Y),
		divComponent(v.Z, other.Z),
	)
}

// divComponent は1成分の除算を行う。
func divComponent(value float64, divisor float64) float64 {
	if math.Abs(divisor) <= vectorEpsilon {
		return value
	}
	return value / divisor
}

// Dot は内積を返す。
func (v Vec3) Dot(other Vec3) float64 {
	return r3.Dot(v.Vec, other.Vec)
}

// Cross は外積を返す。
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{Vec: r3.Cross(v.Vec, other.Vec)}
}

// Length はベクトル長を返す。
func (v Vec3) Length() float64 {
	return r3.Norm(v.Vec)
}

// Normalized は単位ベクトルを返す。長さがほぼ0の場合はゼロベクトルを返す。
func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	if length <= vectorEpsilon {
		return ZERO_VEC3
	}
	return v.MuledScalar(1.0 / length)
}

// Distance は2点間距離を返す。
func (v Vec3) Distance(other Vec3) float64 {
	return v.Subed(other).Length()
}

// NearEquals は成分ごとの近似一致を判定する。
func (v Vec3) NearEquals(other Vec3, epsilon float64) bool {
	return math.Abs(v.X-other.X) <= epsilon &&
		math.Abs(v.Y-other.Y) <= epsilon &&
		math.Abs(v.Z-other.Z) <= epsilon
}
