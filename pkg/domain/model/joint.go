// 指示: miu200521358
// Package model は手骨格のドメインモデルを提供する。
package model

import "github.com/miu200521358/mu_handrig/pkg/domain/mmath"

// Joint は骨格上の1関節を表す。親子関係はコレクション内indexで保持する。
type Joint struct {
	name         string
	index        int
	Translation  mmath.Vec3
	Rotation     mmath.Quaternion
	Scale        mmath.Vec3
	ParentIndex  int
	ChildIndexes []int
}

// NewJoint は初期ローカル変換を持つ関節を生成する。
func NewJoint(name string) *Joint {
	return &Joint{
		name:        name,
		index:       -1,
		Rotation:    mmath.NewQuaternion(),
		Scale:       mmath.ONE_VEC3,
		ParentIndex: -1,
	}
}

// Name は関節名を返す。
func (j *Joint) Name() string {
	return j.name
}

// Index はコレクション内indexを返す。未登録の場合は-1を返す。
func (j *Joint) Index() int {
	return j.index
}
