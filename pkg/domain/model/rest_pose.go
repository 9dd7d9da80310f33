// 指示: miu200521358
package model

import "github.com/miu200521358/mu_handrig/pkg/domain/mmath"

// RestTransform はレスト姿勢の1関節分ローカル変換を表す。
type RestTransform struct {
	Translation mmath.Vec3
	Rotation    mmath.Quaternion
}

// RestPoseTable は正規化直後に一度だけ採取するレスト姿勢表を表す。
// 採取後は不変であり、実行時回転は常に本表を基準に合成する。
type RestPoseTable struct {
	entries map[string]RestTransform
}

// CaptureRestPose は骨格の現在ローカル変換をレスト姿勢として採取する。
func CaptureRestPose(joints *JointCollection) *RestPoseTable {
	entries := map[string]RestTransform{}
	if joints != nil {
		for _, joint := range joints.Values() {
			entries[joint.Name()] = RestTransform{
				Translation: joint.Translation,
				Rotation:    joint.Rotation,
			}
		}
	}
	return &RestPoseTable{entries: entries}
}

// Get は指定関節のレスト変換を返す。
func (t *RestPoseTable) Get(name string) (RestTransform, bool) {
	entry, exists := t.entries[name]
	return entry, exists
}

// Len は採取済み関節数を返す。
func (t *RestPoseTable) Len() int {
	return len(t.entries)
}
