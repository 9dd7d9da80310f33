// 指示: miu200521358
package hinteractor

import (
	"github.com/miu200521358/mu_handrig/pkg/domain/mmath"
	"github.com/miu200521358/mu_handrig/pkg/domain/model"
)

// applyWristOrientation は手首姿勢角(度)をルート関節のレスト回転へ合成する。
// 軸適用順はヨー、ピッチ、ロールで固定し、同値に見える別姿勢の曖昧さを避ける。
// 姿勢角が全て0の場合はレスト回転そのものを再現する。
func applyWristOrientation(
	joints *model.JointCollection,
	rest *model.RestPoseTable,
	values PoseValues,
) {
	restTransform, restExists := rest.Get(model.WRIST_JOINT_NAME)
	if !restExists {
		return
	}
	wrist, wristExists := joints.GetByName(model.WRIST_JOINT_NAME)
	if !wristExists {
		return
	}

	orientation := mmath.NewQuaternionFromDegrees(values.Pitch, values.Yaw, values.Roll)
	wrist.Rotation = restTransform.Rotation.Muled(orientation)
}
