// 指示: miu200521358
package mmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewQuaternionFromAxisAngleRotatesVector(t *testing.T) {
	rotation := NewQuaternionFromAxisAngle(UNIT_Y_VEC3, DegToRad(90))
	rotated := rotation.MulVec3(UNIT_X_VEC3)
	if !rotated.NearEquals(UNIT_Z_NEG_VEC3, 1e-9) {
		t.Fatalf("rotated vector mismatch: %v", rotated)
	}
}

func TestNewQuaternionFromAxisAngleDegenerateAxisReturnsIdentity(t *testing.T) {
	rotation := NewQuaternionFromAxisAngle(ZERO_VEC3, DegToRad(45))
	if !rotation.NearEquals(NewQuaternion(), 0) {
		t.Fatalf("degenerate axis should yield identity: %v", rotation)
	}
}

func TestNewQuaternionFromDegreesAppliesYawPitchRollOrder(t *testing.T) {
	composed := NewQuaternionFromDegrees(30, 40, 50)
	yaw := NewQuaternionFromAxisAngle(UNIT_Y_VEC3, DegToRad(40))
	pitch := NewQuaternionFromAxisAngle(UNIT_X_VEC3, DegToRad(30))
	roll := NewQuaternionFromAxisAngle(UNIT_Z_VEC3, DegToRad(50))
	expected := yaw.Muled(pitch).Muled(roll)
	if !composed.NearEquals(expected, 1e-12) {
		t.Fatalf("composition order mismatch: %v != %v", composed, expected)
	}
}

func TestNewQuaternionFromDegreesZeroIsIdentity(t *testing.T) {
	rotation := NewQuaternionFromDegrees(0, 0, 0)
	if !rotation.NearEquals(NewQuaternion(), 0) {
		t.Fatalf("zero degrees should yield identity: %v", rotation)
	}
}

func TestMuledIsNonCommutative(t *testing.T) {
	a := NewQuaternionFromAxisAngle(UNIT_X_VEC3, DegToRad(35))
	b := NewQuaternionFromAxisAngle(UNIT_Y_VEC3, DegToRad(50))
	ab := a.Muled(b)
	ba := b.Muled(a)
	if ab.NearEquals(ba, 1e-9) {
		t.Fatalf("rotation composition should not commute: %v == %v", ab, ba)
	}
}

func TestInversedCancelsRotation(t *testing.T) {
	rotation := NewQuaternionFromDegrees(10, 20, 30)
	identity := rotation.Muled(rotation.Inversed())
	if !identity.NearEquals(NewQuaternion(), 1e-12) {
		t.Fatalf("rotation times inverse should be identity: %v", identity)
	}
}

func TestDotReflectsHalfAngle(t *testing.T) {
	rotation := NewQuaternionFromAxisAngle(UNIT_Z_VEC3, DegToRad(90))
	dot := math.Abs(rotation.Dot(NewQuaternion()))
	expected := math.Cos(DegToRad(45))
	if math.Abs(dot-expected) > 1e-9 {
		t.Fatalf("dot magnitude mismatch: %f != %f", dot, expected)
	}
}

func TestNearEqualsTreatsNegatedQuaternionAsSameRotation(t *testing.T) {
	rotation := NewQuaternionFromAxisAngle(UNIT_Y_VEC3, DegToRad(120))
	negated := Quaternion{}
	negated.Real = -rotation.Real
	negated.Imag = -rotation.Imag
	negated.Jmag = -rotation.Jmag
	negated.Kmag = -rotation.Kmag
	if !rotation.NearEquals(negated, 1e-12) {
		t.Fatalf("q and -q should match as rotations")
	}
}

func TestComposeMat4TransformsPoint(t *testing.T) {
	matrix := ComposeMat4(
		NewVec3(1, 2, 3),
		NewQuaternionFromAxisAngle(UNIT_Y_VEC3, DegToRad(90)),
		NewVec3(2, 2, 2),
	)
	point := matrix.Mul4x1(mgl64.Vec4{1, 0, 0, 1})
	// 回転でX軸は-Z軸へ移り、スケール2と平行移動が乗る。
	if math.Abs(point[0]-1) > 1e-9 || math.Abs(point[1]-2) > 1e-9 || math.Abs(point[2]-1) > 1e-9 {
		t.Fatalf("transformed point mismatch: %v", point)
	}
}
