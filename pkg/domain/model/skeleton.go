// 指示: miu200521358
package model

import (
	"fmt"

	"github.com/miu200521358/mu_handrig/pkg/domain/mmath"
	"github.com/tiendc/go-deepcopy"
)

// JointCollection は関節をフラット配列で保持する骨格を表す。
type JointCollection struct {
	joints      []*Joint
	nameIndexes map[string]int
}

// NewJointCollection は空の骨格を生成する。
func NewJointCollection() *JointCollection {
	return &JointCollection{
		joints:      []*Joint{},
		nameIndexes: map[string]int{},
	}
}

// Append は関節を登録してindexを返す。名前は空不可かつ一意とする。
func (jc *JointCollection) Append(joint *Joint) (int, error) {
	if joint == nil {
		return -1, fmt.Errorf("登録対象の関節が未設定です")
	}
	if joint.Name() == "" {
		return -1, fmt.Errorf("関節名が未設定です")
	}
	if _, exists := jc.nameIndexes[joint.Name()]; exists {
		return -1, fmt.Errorf("関節名が重複しています: %s", joint.Name())
	}
	joint.index = len(jc.joints)
	jc.joints = append(jc.joints, joint)
	jc.nameIndexes[joint.Name()] = joint.index
	return joint.index, nil
}

// Get は指定indexの関節を返す。
func (jc *JointCollection) Get(index int) (*Joint, error) {
	if index < 0 || index >= len(jc.joints) {
		return nil, fmt.Errorf("関節indexが範囲外です: %d", index)
	}
	return jc.joints[index], nil
}

// GetByName は指定名の関節を返す。
func (jc *JointCollection) GetByName(name string) (*Joint, bool) {
	index, exists := jc.nameIndexes[name]
	if !exists {
		return nil, false
	}
	return jc.joints[index], true
}

// Values は全関節を登録順で返す。
func (jc *JointCollection) Values() []*Joint {
	return jc.joints
}

// Len は関節数を返す。
func (jc *JointCollection) Len() int {
	return len(jc.joints)
}

// RootIndexes は親を持たない関節のindex一覧を返す。
func (jc *JointCollection) RootIndexes() []int {
	roots := []int{}
	for _, joint := range jc.joints {
		if joint.ParentIndex < 0 {
			roots = append(roots, joint.Index())
		}
	}
	return roots
}

// IsFlat は非ルート関節がすべて単一ルート直下に並ぶ構造か判定する。
func (jc *JointCollection) IsFlat() bool {
	roots := jc.RootIndexes()
	if len(roots) != 1 || len(jc.joints) < 3 {
		return false
	}
	rootIndex := roots[0]
	for _, joint := range jc.joints {
		if joint.Index() == rootIndex {
			continue
		}
		if joint.ParentIndex != rootIndex {
			return false
		}
	}
	return true
}

// Reparent は親子リンクをindex書き換えで付け替える。自己参照と循環は拒否する。
func (jc *JointCollection) Reparent(childIndex int, parentIndex int) error {
	child, err := jc.Get(childIndex)
	if err != nil {
		return err
	}
	parent, err := jc.Get(parentIndex)
	if err != nil {
		return err
	}
	if childIndex == parentIndex {
		return fmt.Errorf("自身を親に設定できません: %s", child.Name())
	}
	if jc.isAncestor(childIndex, parentIndex) {
		return fmt.Errorf("循環する親子関係は設定できません: %s -> %s", child.Name(), parent.Name())
	}

	if child.ParentIndex >= 0 {
		if previous, prevErr := jc.Get(child.ParentIndex); prevErr == nil {
			previous.ChildIndexes = removeIndex(previous.ChildIndexes, childIndex)
		}
	}
	child.ParentIndex = parentIndex
	parent.ChildIndexes = append(parent.ChildIndexes, childIndex)
	return nil
}

// isAncestor はcandidateがjointの祖先(または自身)か判定する。
func (jc *JointCollection) isAncestor(candidateIndex int, jointIndex int) bool {
	current := jointIndex
	for depth := 0; depth <= len(jc.joints); depth++ {
		if current < 0 {
			return false
		}
		if current == candidateIndex {
			return true
		}
		joint, err := jc.Get(current)
		if err != nil {
			return false
		}
		current = joint.ParentIndex
	}
	return true
}

// removeIndex はindex一覧から指定値を取り除く。
func removeIndex(indexes []int, target int) []int {
	filtered := indexes[:0]
	for _, index := range indexes {
		if index != target {
			filtered = append(filtered, index)
		}
	}
	return filtered
}

// WorldTransform は親方向へ合成したワールド変換(位置・回転・スケール)を返す。
func (jc *JointCollection) WorldTransform(index int) (mmath.Vec3, mmath.Quaternion, mmath.Vec3, error) {
	joint, err := jc.Get(index)
	if err != nil {
		return mmath.ZERO_VEC3, mmath.NewQuaternion(), mmath.ONE_VEC3, err
	}
	if joint.ParentIndex < 0 {
		return joint.Translation, joint.Rotation, joint.Scale, nil
	}
	if jc.isAncestor(index, joint.ParentIndex) {
		return mmath.ZERO_VEC3, mmath.NewQuaternion(), mmath.ONE_VEC3,
			fmt.Errorf("親子関係が循環しています: %s", joint.Name())
	}

	parentPosition, parentRotation, parentScale, err := jc.WorldTransform(joint.ParentIndex)
	if err != nil {
		return mmath.ZERO_VEC3, mmath.NewQuaternion(), mmath.ONE_VEC3, err
	}
	worldScale := parentScale.MuledVec(joint.Scale)
	worldRotation := parentRotation.Muled(joint.Rotation)
	worldPosition := parentPosition.Added(
		parentRotation.MulVec3(parentScale.MuledVec(joint.Translation)),
	)
	return worldPosition, worldRotation, worldScale, nil
}

// Clone は骨格の複製を返す。複製後の変更は元骨格へ影響しない。
func (jc *JointCollection) Clone() (*JointCollection, error) {
	cloned := NewJointCollection()
	for _, joint := range jc.joints {
		copied := NewJoint(joint.Name())
		if err := deepcopy.Copy(copied, joint); err != nil {
			return nil, fmt.Errorf("関節の複製に失敗しました: %s: %w", joint.Name(), err)
		}
		if _, err := cloned.Append(copied); err != nil {
			return nil, err
		}
	}
	return cloned, nil
}
