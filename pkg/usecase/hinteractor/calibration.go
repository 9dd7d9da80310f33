// 指示: miu200521358
package hinteractor

import (
	"github.com/miu200521358/mu_handrig/pkg/domain/mmath"
	"github.com/miu200521358/mu_handrig/pkg/domain/model"
)

// 既定の較正定数(度およびゲイン)。実行時は一切再計算しない。
const (
	fingerMetacarpalFlexionDegree   = 80.0
	fingerProximalFlexionDegree     = 100.0
	fingerIntermediateFlexionDegree = 80.0
	fingerDistalFlexionDegree       = 60.0

	thumbMetacarpalFlexionDegree   = 45.0
	thumbProximalFlexionDegree     = 55.0
	thumbIntermediateFlexionDegree = 70.0
	thumbDistalFlexionDegree       = 80.0

	fingerMetacarpalWeight   = 1.0
	fingerProximalWeight     = 0.9
	fingerIntermediateWeight = 0.8
	fingerDistalWeight       = 0.7

	thumbMetacarpalWeight   = 0.8
	thumbProximalWeight     = 0.9
	thumbIntermediateWeight = 0.85
	thumbDistalWeight       = 0.9

	thumbSplayDegree  = 25.0
	indexSplayDegree  = 8.0
	middleSplayDegree = 0.0
	ringSplayDegree   = -8.0
	pinkySplayDegree  = -18.0

	thumbAbductionDegree  = 0.0
	indexAbductionDegree  = -6.0
	middleAbductionDegree = 0.0
	ringAbductionDegree   = 6.0
	pinkyAbductionDegree  = 12.0

	thumbOppositionGain = 0.6

	defaultSmoothing = 0.35

	// flexionRotationSign は屈曲回転の符号規約。全指共通で固定する。
	flexionRotationSign = 1.0

	axisEpsilon = 1e-8
)

// JointSpec は関節種別ごとの屈曲較正定数を表す。角度はラジアンで保持する。
type JointSpec struct {
	MaxFlexionAngle    float64
	DistributionWeight float64
}

// FingerSpec は指ごとの較正定数を表す。角度はラジアンで保持する。
type FingerSpec struct {
	SplayAngle     float64
	AbductionCoeff float64
	OppositionGain float64
	Joints         map[model.FingerSegment]JointSpec
}

// Calibration はリグ全体の較正定数を表す。
type Calibration struct {
	Smoothing float64
	Fingers   map[model.FingerName]FingerSpec
}

// DefaultCalibration は既定の較正定数表を生成する。
func DefaultCalibration() *Calibration {
	regularJoints := map[model.FingerSegment]JointSpec{
		model.SEGMENT_METACARPAL: {
			MaxFlexionAngle:    mmath.DegToRad(fingerMetacarpalFlexionDegree),
			DistributionWeight: fingerMetacarpalWeight,
		},
		model.SEGMENT_PROXIMAL: {
			MaxFlexionAngle:    mmath.DegToRad(fingerProximalFlexionDegree),
			DistributionWeight: fingerProximalWeight,
		},
		model.SEGMENT_INTERMEDIATE: {
			MaxFlexionAngle:    mmath.DegToRad(fingerIntermediateFlexionDegree),
			DistributionWeight: fingerIntermediateWeight,
		},
		model.SEGMENT_DISTAL: {
			MaxFlexionAngle:    mmath.DegToRad(fingerDistalFlexionDegree),
			DistributionWeight: fingerDistalWeight,
		},
	}
	thumbJoints := map[model.FingerSegment]JointSpec{
		model.SEGMENT_METACARPAL: {
			MaxFlexionAngle:    mmath.DegToRad(thumbMetacarpalFlexionDegree),
			DistributionWeight: thumbMetacarpalWeight,
		},
		model.SEGMENT_PROXIMAL: {
			MaxFlexionAngle:    mmath.DegToRad(thumbProximalFlexionDegree),
			DistributionWeight: thumbProximalWeight,
		},
		model.SEGMENT_INTERMEDIATE: {
			MaxFlexionAngle:    mmath.DegToRad(thumbIntermediateFlexionDegree),
			DistributionWeight: thumbIntermediateWeight,
		},
		model.SEGMENT_DISTAL: {
			MaxFlexionAngle:    mmath.DegToRad(thumbDistalFlexionDegree),
			DistributionWeight: thumbDistalWeight,
		},
	}

	return &Calibration{
		Smoothing: defaultSmoothing,
		Fingers: map[model.FingerName]FingerSpec{
			model.THUMB: {
				SplayAngle:     mmath.DegToRad(thumbSplayDegree),
				AbductionCoeff: mmath.DegToRad(thumbAbductionDegree),
				OppositionGain: thumbOppositionGain,
				Joints:         thumbJoints,
			},
			model.INDEX: {
				SplayAngle:     mmath.DegToRad(indexSplayDegree),
				AbductionCoeff: mmath.DegToRad(indexAbductionDegree),
				Joints:         cloneJointSpecs(regularJoints),
			},
			model.MIDDLE: {
				SplayAngle:     mmath.DegToRad(middleSplayDegree),
				AbductionCoeff: mmath.DegToRad(middleAbductionDegree),
				Joints:         cloneJointSpecs(regularJoints),
			},
			model.RING: {
				SplayAngle:     mmath.DegToRad(ringSplayDegree),
				AbductionCoeff: mmath.DegToRad(ringAbductionDegree),
				Joints:         cloneJointSpecs(regularJoints),
			},
			model.PINKY: {
				SplayAngle:     mmath.DegToRad(pinkySplayDegree),
				AbductionCoeff: mmath.DegToRad(pinkyAbductionDegree),
				Joints:         cloneJointSpecs(regularJoints),
			},
		},
	}
}

// cloneJointSpecs は指間で共有しないようJointSpec表を複製する。
func cloneJointSpecs(specs map[model.FingerSegment]JointSpec) map[model.FingerSegment]JointSpec {
	cloned := make(map[model.FingerSegment]JointSpec, len(specs))
	for segment, spec := range specs {
		cloned[segment] = spec
	}
	return cloned
}

// jointAxes は関節ローカル座標系で表した回転軸較正値を表す。
type jointAxes struct {
	flexion mmath.Vec3
	fan     mmath.Vec3
}

// defaultJointAxes はバインドポーズから軸を導出できない場合の既定軸を返す。
func defaultJointAxes() jointAxes {
	return jointAxes{
		flexion: mmath.UNIT_X_NEG_VEC3,
		fan:     mmath.UNIT_Y_VEC3,
	}
}

// bakeJointAxes はバインドポーズの骨方向から屈曲軸と扇軸を導出して焼き込む。
// 骨方向と基準下方向の外積で屈曲軸を決め、関節ローカル系へ変換して保持する。
// 幾何が退化している関節は既定軸へフォールバックする。
func bakeJointAxes(joints *model.JointCollection) map[string]jointAxes {
	axes := map[string]jointAxes{}
	if joints == nil {
		return axes
	}

	for _, finger := range model.FingerNames() {
		chainNames := finger.ChainJointNames()
		previousDirection := mmath.ZERO_VEC3
		for position, name := range chainNames {
			joint, exists := joints.GetByName(name)
			if !exists {
				continue
			}
			jointPosition, jointRotation, _, err := joints.WorldTransform(joint.Index())
			if err != nil {
				continue
			}

			boneDirection := resolveBoneDirection(joints, chainNames, position, jointPosition)
			if boneDirection.Length() <= axisEpsilon {
				boneDirection = previousDirection
			} else {
				previousDirection = boneDirection
			}

			axes[name] = localizeJointAxes(jointRotation, boneDirection)
		}
	}
	return axes
}

// resolveBoneDirection はチェーン上の次関節位置から骨方向を求める。
func resolveBoneDirection(
	joints *model.JointCollection,
	chainNames []string,
	position int,
	jointPosition mmath.Vec3,
) mmath.Vec3 {
	for next := position + 1; next < len(chainNames); next++ {
		nextJoint, exists := joints.GetByName(chainNames[next])
		if !exists {
			continue
		}
		nextPosition, _, _, err := joints.WorldTransform(nextJoint.Index())
		if err != nil {
			continue
		}
		direction := nextPosition.Subed(jointPosition)
		if direction.Length() > axisEpsilon {
			return direction.Normalized()
		}
	}
	return mmath.ZERO_VEC3
}

// localizeJointAxes はワールド系の骨方向から関節ローカル系の回転軸を作る。
func localizeJointAxes(jointRotation mmath.Quaternion, boneDirection mmath.Vec3) jointAxes {
	baked := defaultJointAxes()
	inverse := jointRotation.Inversed()

	flexionWorld := boneDirection.Cross(mmath.UNIT_Y_NEG_VEC3).Normalized()
	if flexionWorld.Length() > axisEpsilon {
		flexionLocal := inverse.MulVec3(flexionWorld).Normalized()
		if flexionLocal.Length() > axisEpsilon {
			baked.flexion = flexionLocal
		}
	}

	fanLocal := inverse.MulVec3(mmath.UNIT_Y_VEC3).Normalized()
	if fanLocal.Length() > axisEpsilon {
		baked.fan = fanLocal
	}
	return baked
}
