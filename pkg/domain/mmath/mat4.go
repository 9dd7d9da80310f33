// 指示: miu200521358
package mmath

import "github.com/go-gl/mathgl/mgl64"

// Mgl64Quat は描画層が利用するmgl64形式の四元数へ変換する。
func (q Quaternion) Mgl64Quat() mgl64.Quat {
	return mgl64.Quat{
		W: q.Real,
		V: mgl64.Vec3{q.Imag, q.Jmag, q.Kmag},
	}
}

// Mgl64Vec3 は描画層が利用するmgl64形式のベクトルへ変換する。
func (v Vec3) Mgl64Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// ComposeMat4 は平行移動・回転・スケールから同次変換行列を合成する。
func ComposeMat4(translation Vec3, rotation Quaternion, scale Vec3) mgl64.Mat4 {
	translate := mgl64.Translate3D(translation.X, translation.Y, translation.Z)
	rotate := rotation.Normalized().Mgl64Quat().Mat4()
	scaling := mgl64.Scale3D(scale.X, scale.Y, scale.Z)
	return translate.Mul4(rotate).Mul4(scaling)
}
