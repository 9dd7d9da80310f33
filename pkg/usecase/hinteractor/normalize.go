// 指示: miu200521358
package hinteractor

import (
	"fmt"

	"github.com/miu200521358/mu_handrig/pkg/domain/mmath"
	"github.com/miu200521358/mu_handrig/pkg/domain/model"
)

// normalizeOutcome は階層正規化の結果状態を表す。
type normalizeOutcome struct {
	applied  bool
	degraded bool
	reason   string
}

// worldSnapshot は正規化前のワールド変換退避値を表す。
type worldSnapshot struct {
	position mmath.Vec3
	rotation mmath.Quaternion
	scale    mmath.Vec3
}

// normalizeFingerHierarchy はフラット骨格を指ごとのチェーン階層へ組み替える。
// 組み替え前後でワールド変換を保存する。手首欠落時は骨格へ触れず縮退状態を返す。
// 既に階層化済みの骨格には何もしない。
func normalizeFingerHierarchy(joints *model.JointCollection) (normalizeOutcome, error) {
	if joints == nil || joints.Len() == 0 {
		return normalizeOutcome{}, fmt.Errorf("正規化対象の骨格が未設定です")
	}

	wrist, wristExists := joints.GetByName(model.WRIST_JOINT_NAME)
	if !wristExists {
		return normalizeOutcome{
			degraded: true,
			reason:   fmt.Sprintf("手首関節が見つかりません: %s", model.WRIST_JOINT_NAME),
		}, nil
	}
	if !joints.IsFlat() {
		// 二重正規化はローカル変換を壊すため、フラット構造のみ対象とする。
		return normalizeOutcome{}, nil
	}

	snapshots, err := collectWorldSnapshots(joints)
	if err != nil {
		return normalizeOutcome{}, err
	}

	for _, finger := range model.FingerNames() {
		if err := relinkFingerChain(joints, finger, wrist.Index(), snapshots); err != nil {
			return normalizeOutcome{}, err
		}
	}
	return normalizeOutcome{applied: true}, nil
}

// collectWorldSnapshots は全関節のワールド変換をindex単位で退避する。
func collectWorldSnapshots(joints *model.JointCollection) (map[int]worldSnapshot, error) {
	snapshots := map[int]worldSnapshot{}
	for _, joint := range joints.Values() {
		position, rotation, scale, err := joints.WorldTransform(joint.Index())
		if err != nil {
			return nil, err
		}
		snapshots[joint.Index()] = worldSnapshot{
			position: position,
			rotation: rotation,
			scale:    scale,
		}
	}
	return snapshots, nil
}

// relinkFingerChain は1指分のチェーンを手首起点へ付け替える。
// チェーン名が骨格に存在しない場合はその関節を飛ばし、次の関節を直近の祖先へ繋ぐ。
func relinkFingerChain(
	joints *model.JointCollection,
	finger model.FingerName,
	wristIndex int,
	snapshots map[int]worldSnapshot,
) error {
	parentIndex := wristIndex
	for _, name := range finger.ChainJointNames() {
		joint, exists := joints.GetByName(name)
		if !exists {
			continue
		}
		if err := joints.Reparent(joint.Index(), parentIndex); err != nil {
			return err
		}
		recomputeLocalTransform(joint, snapshots[joint.Index()], snapshots[parentIndex])
		parentIndex = joint.Index()
	}
	return nil
}

// recomputeLocalTransform は新しい親チェーン経由で元ワールド変換を再現する
// ローカル変換を逆算する。
func recomputeLocalTransform(joint *model.Joint, snapshot worldSnapshot, parent worldSnapshot) {
	inverseParentRotation := parent.rotation.Inversed()
	joint.Rotation = inverseParentRotation.Muled(snapshot.rotation)
	joint.Translation = inverseParentRotation.
		MulVec3(snapshot.position.Subed(parent.position)).
		DivedVec(parent.scale)
	joint.Scale = snapshot.scale.DivedVec(parent.scale)
}
