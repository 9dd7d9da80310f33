// 指示: miu200521358
package hinteractor

import (
	"math"

	"github.com/miu200521358/mu_handrig/pkg/domain/model"
)

// poseReferenceFrameRate は平滑化係数の基準フレームレート。
// 実フレームレートに依らずsmoothingの意味を一定に保つ。
const poseReferenceFrameRate = 60.0

// PoseValues は制御値一式(指曲げ強度と手首姿勢角)を表す。
type PoseValues struct {
	Thumb  float64
	Index  float64
	Middle float64
	Ring   float64
	Pinky  float64
	Roll   float64
	Pitch  float64
	Yaw    float64
}

// Curl は指定指の曲げ強度を返す。
func (v PoseValues) Curl(finger model.FingerName) float64 {
	switch finger {
	case model.THUMB:
		return v.Thumb
	case model.INDEX:
		return v.Index
	case model.MIDDLE:
		return v.Middle
	case model.RING:
		return v.Ring
	case model.PINKY:
		return v.Pinky
	default:
		return 0
	}
}

// PoseState は目標値と補間済み現在値を保持する。
type PoseState struct {
	current   PoseValues
	target    PoseValues
	smoothing float64
}

// NewPoseState は平滑化係数を指定して状態を生成する。
// smoothingが(0,1]の範囲外の場合は既定値へ置き換える。
func NewPoseState(smoothing float64) *PoseState {
	if smoothing <= 0 || smoothing > 1 {
		smoothing = defaultSmoothing
	}
	return &PoseState{smoothing: smoothing}
}

// ApplyFrame は制御フレームの指定項目のみを目標値へ反映する。
// nil項目は直前の目標値を維持する。後着フレームが常に優先される。
func (s *PoseState) ApplyFrame(frame model.ControlFrame) {
	if frame.Fingers != nil {
		applyScalar(&s.target.Thumb, frame.Fingers.Thumb)
		applyScalar(&s.target.Index, frame.Fingers.Index)
		applyScalar(&s.target.Middle, frame.Fingers.Middle)
		applyScalar(&s.target.Ring, frame.Fingers.Ring)
		applyScalar(&s.target.Pinky, frame.Fingers.Pinky)
	}
	if frame.Orientation != nil {
		applyScalar(&s.target.Roll, frame.Orientation.Roll)
		applyScalar(&s.target.Pitch, frame.Orientation.Pitch)
		applyScalar(&s.target.Yaw, frame.Orientation.Yaw)
	}
}

// applyScalar は指定値が存在する場合のみ目標値を上書きする。
func applyScalar(target *float64, value *float64) {
	if value == nil {
		return
	}
	*target = *value
}

// Update は現在値を目標値へフレームレート非依存の指数平滑で近づける。
func (s *PoseState) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	alpha := 1.0 - math.Pow(1.0-s.smoothing, deltaTime*poseReferenceFrameRate)
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	s.current.Thumb += (s.target.Thumb - s.current.Thumb) * alpha
	s.current.Index += (s.target.Index - s.current.Index) * alpha
	s.current.Middle += (s.target.Middle - s.current.Middle) * alpha
	s.current.Ring += (s.target.Ring - s.current.Ring) * alpha
	s.current.Pinky += (s.target.Pinky - s.current.Pinky) * alpha
	s.current.Roll += (s.target.Roll - s.current.Roll) * alpha
	s.current.Pitch += (s.target.Pitch - s.current.Pitch) * alpha
	s.current.Yaw += (s.target.Yaw - s.current.Yaw) * alpha
}

// Current は補間済み現在値を返す。
func (s *PoseState) Current() PoseValues {
	return s.current
}

// Target は最新の目標値を返す。
func (s *PoseState) Target() PoseValues {
	return s.target
}
