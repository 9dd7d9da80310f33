// 指示: miu200521358
package model

// FingerName は指の種別を表す。
type FingerName string

// 指種別一覧。
const (
	THUMB  FingerName = "thumb"
	INDEX  FingerName = "index"
	MIDDLE FingerName = "middle"
	RING   FingerName = "ring"
	PINKY  FingerName = "pinky"
)

// FingerSegment は指内の関節区分を表す。
type FingerSegment string

// 指関節区分一覧。付け根から指先の順で定義する。
const (
	SEGMENT_METACARPAL   FingerSegment = "metacarpal"
	SEGMENT_PROXIMAL     FingerSegment = "proximal"
	SEGMENT_INTERMEDIATE FingerSegment = "intermediate"
	SEGMENT_DISTAL       FingerSegment = "distal"
	SEGMENT_TIP          FingerSegment = "tip"
)

// WRIST_JOINT_NAME は手首(ルート)関節の規定名。
const WRIST_JOINT_NAME = "wrist"

// String は指名を返す。
func (f FingerName) String() string {
	return string(f)
}

// JointName は指と区分から関節名を組み立てる。
func (f FingerName) JointName(segment FingerSegment) string {
	return string(f) + "_" + string(segment)
}

// ChainJointNames は付け根から指先へ並ぶ関節名チェーンを返す。
func (f FingerName) ChainJointNames() []string {
	names := make([]string, 0, len(FingerSegments()))
	for _, segment := range FingerSegments() {
		names = append(names, f.JointName(segment))
	}
	return names
}

// FingerNames は全指を親指から小指の順で返す。
func FingerNames() []FingerName {
	return []FingerName{THUMB, INDEX, MIDDLE, RING, PINKY}
}

// FingerSegments は指関節区分を付け根から指先の順で返す。
func FingerSegments() []FingerSegment {
	return []FingerSegment{
		SEGMENT_METACARPAL,
		SEGMENT_PROXIMAL,
		SEGMENT_INTERMEDIATE,
		SEGMENT_DISTAL,
		SEGMENT_TIP,
	}
}

// AnimatedFingerSegments は回転計算対象の区分を返す。指先葉関節は対象外。
func AnimatedFingerSegments() []FingerSegment {
	return []FingerSegment{
		SEGMENT_METACARPAL,
		SEGMENT_PROXIMAL,
		SEGMENT_INTERMEDIATE,
		SEGMENT_DISTAL,
	}
}
