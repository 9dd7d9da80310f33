// 指示: miu200521358
package hinteractor

import (
	"math"

	"github.com/miu200521358/mu_handrig/pkg/domain/mmath"
	"github.com/miu200521358/mu_handrig/pkg/domain/model"
)

// jointComposer はレスト姿勢を基準に毎フレームのローカル回転を合成する。
type jointComposer struct {
	rest        *model.RestPoseTable
	calibration *Calibration
	axes        map[string]jointAxes
}

// newJointComposer は合成器を生成する。
func newJointComposer(
	rest *model.RestPoseTable,
	calibration *Calibration,
	axes map[string]jointAxes,
) *jointComposer {
	return &jointComposer{
		rest:        rest,
		calibration: calibration,
		axes:        axes,
	}
}

// composeFingers は現在の制御値から全指のローカル回転を骨格へ書き込む。
func (c *jointComposer) composeFingers(joints *model.JointCollection, values PoseValues) {
	for _, finger := range model.FingerNames() {
		c.composeFinger(joints, finger, values.Curl(finger))
	}
}

// composeFinger は1指分のローカル回転を合成する。
// 合成順はレスト∘扇(開き/寄せ)∘屈曲で固定する。回転合成は非可換のため順序を変えない。
// レスト姿勢表に無い関節は回転を適用せず飛ばす(明示方針)。
func (c *jointComposer) composeFinger(joints *model.JointCollection, finger model.FingerName, bend float64) {
	fingerSpec, fingerExists := c.calibration.Fingers[finger]
	if !fingerExists {
		return
	}
	bend = mmath.Clamp01(bend)

	for _, segment := range model.AnimatedFingerSegments() {
		name := finger.JointName(segment)
		restTransform, restExists := c.rest.Get(name)
		if !restExists {
			continue
		}
		joint, jointExists := joints.GetByName(name)
		if !jointExists {
			continue
		}
		jointSpec, specExists := fingerSpec.Joints[segment]
		if !specExists {
			continue
		}

		rotation := restTransform.Rotation
		if segment == model.SEGMENT_METACARPAL {
			rotation = c.composeBaseRotation(rotation, name, finger, fingerSpec, jointSpec, bend)
		}
		rotation = rotation.Muled(c.flexionRotation(name, jointSpec, bend))
		joint.Rotation = rotation
	}
}

// composeBaseRotation は付け根関節専用の副回転を合成する。
// 通常指はレスト∘静的スプレイ∘動的内転、親指はレスト∘対立回転を先行適用する。
func (c *jointComposer) composeBaseRotation(
	rotation mmath.Quaternion,
	name string,
	finger model.FingerName,
	fingerSpec FingerSpec,
	jointSpec JointSpec,
	bend float64,
) mmath.Quaternion {
	axes := c.resolveAxes(name)
	if finger == model.THUMB {
		// 対立回転は二乗イージングで高曲げ域ほど強く効かせる。
		oppositionAngle := -(bend * bend) * jointSpec.MaxFlexionAngle * fingerSpec.OppositionGain
		return rotation.Muled(mmath.NewQuaternionFromAxisAngle(axes.fan, oppositionAngle))
	}
	splay := mmath.NewQuaternionFromAxisAngle(axes.fan, fingerSpec.SplayAngle*bend)
	abduction := mmath.NewQuaternionFromAxisAngle(axes.fan, fingerSpec.AbductionCoeff*bend)
	return rotation.Muled(splay).Muled(abduction)
}

// flexionRotation は屈曲回転を作る。角度はmin(1, bend×配分重み)×最大角で決める。
func (c *jointComposer) flexionRotation(name string, jointSpec JointSpec, bend float64) mmath.Quaternion {
	weighted := math.Min(1.0, bend*jointSpec.DistributionWeight)
	angle := weighted * jointSpec.MaxFlexionAngle * flexionRotationSign
	return mmath.NewQuaternionFromAxisAngle(c.resolveAxes(name).flexion, angle)
}

// resolveAxes は焼き込み済み回転軸を返す。未較正の関節は既定軸を使う。
func (c *jointComposer) resolveAxes(name string) jointAxes {
	if axes, exists := c.axes[name]; exists {
		return axes
	}
	return defaultJointAxes()
}
