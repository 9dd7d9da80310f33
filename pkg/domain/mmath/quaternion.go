// 指示: miu200521358
package mmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion は回転を表す単位四元数を表す。
type Quaternion struct {
	quat.Number
}

// NewQuaternion は単位回転(無回転)を生成する。
func NewQuaternion() Quaternion {
	return Quaternion{Number: quat.Number{Real: 1}}
}

// NewQuaternionByValues は成分(x, y, z, w)から回転を生成する。
func NewQuaternionByValues(x float64, y float64, z float64, w float64) Quaternion {
	return Quaternion{Number: quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}}
}

// NewQuaternionFromAxisAngle は回転軸と角度(ラジアン)から回転を生成する。
// 軸が不定(ほぼ零ベクトル)の場合は単位回転を返す。
func NewQuaternionFromAxisAngle(axis Vec3, angle float64) Quaternion {
	normalized := axis.Normalized()
	if normalized.Length() <= vectorEpsilon {
		return NewQuaternion()
	}
	half := angle * 0.5
	sin := math.Sin(half)
	return Quaternion{Number: quat.Number{
		Real: math.Cos(half),
		Imag: normalized.X * sin,
		Jmag: normalized.Y * sin,
		Kmag: normalized.Z * sin,
	}}
}

// NewQuaternionFromDegrees はX(ピッチ)/Y(ヨー)/Z(ロール)の度数から回転を生成する。
// 適用順はヨー、ピッチ、ロールで固定する。
func NewQuaternionFromDegrees(xDegree float64, yDegree float64, zDegree float64) Quaternion {
	yaw := NewQuaternionFromAxisAngle(UNIT_Y_VEC3, DegToRad(yDegree))
	pitch := NewQuaternionFromAxisAngle(UNIT_X_VEC3, DegToRad(xDegree))
	roll := NewQuaternionFromAxisAngle(UNIT_Z_VEC3, DegToRad(zDegree))
	return yaw.Muled(pitch).Muled(roll)
}

// Muled は回転の合成(this ∘ other)を返す。
func (q Quaternion) Muled(other Quaternion) Quaternion {
	return Quaternion{Number: quat.Mul(q.Number, other.Number)}
}

// Inversed は逆回転を返す。ノルムがほぼ0の場合は単位回転を返す。
func (q Quaternion) Inversed() Quaternion {
	norm := q.Norm()
	if norm <= vectorEpsilon {
		return NewQuaternion()
	}
	return Quaternion{Number: quat.Inv(q.Number)}
}

// Norm は四元数のノルムを返す。
func (q Quaternion) Norm() float64 {
	return quat.Abs(q.Number)
}

// Normalized は単位四元数を返す。ノルムがほぼ0の場合は単位回転を返す。
func (q Quaternion) Normalized() Quaternion {
	norm := q.Norm()
	if norm <= vectorEpsilon {
		return NewQuaternion()
	}
	return Quaternion{Number: quat.Scale(1.0/norm, q.Number)}
}

// MulVec3 はベクトルへ回転を適用する。
func (q Quaternion) MulVec3(v Vec3) Vec3 {
	pure := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	rotated := quat.Mul(quat.Mul(q.Number, pure), quat.Conj(q.Number))
	return NewVec3(rotated.Imag, rotated.Jmag, rotated.Kmag)
}

// Dot は四元数の内積を返す。
func (q Quaternion) Dot(other Quaternion) float64 {
	return q.Real*other.Real + q.Imag*other.Imag + q.Jmag*other.Jmag + q.Kmag*other.Kmag
}

// NearEquals は回転としての近似一致を判定する。qと-qは同一回転として扱う。
func (q Quaternion) NearEquals(other Quaternion, epsilon float64) bool {
	aligned := other
	if q.Dot(other) < 0 {
		aligned = Quaternion{Number: quat.Scale(-1, other.Number)}
	}
	return math.Abs(q.Real-aligned.Real) <= epsilon &&
		math.Abs(q.Imag-aligned.Imag) <= epsilon &&
		math.Abs(q.Jmag-aligned.Jmag) <= epsilon &&
		math.Abs(q.Kmag-aligned.Kmag) <= epsilon
}
