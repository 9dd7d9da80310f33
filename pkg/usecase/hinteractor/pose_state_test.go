// 指示: miu200521358
package hinteractor

import (
	"math"
	"testing"

	"github.com/miu200521358/mu_handrig/pkg/domain/model"
)

func TestUpdateConvergesMonotonically(t *testing.T) {
	state := NewPoseState(0.3)
	state.ApplyFrame(curlFrame(model.INDEX, 1.0))

	previousGap := math.Abs(1.0 - state.Current().Index)
	for i := 0; i < 200; i++ {
		state.Update(1.0 / 60.0)
		gap := math.Abs(1.0 - state.Current().Index)
		if gap > previousGap {
			t.Fatalf("gap should never grow: step=%d %f > %f", i, gap, previousGap)
		}
		if previousGap > 1e-9 && gap >= previousGap {
			t.Fatalf("gap should strictly shrink while nonzero: step=%d", i)
		}
		if state.Current().Index > 1.0+1e-12 {
			t.Fatalf("current should not overshoot: %f", state.Current().Index)
		}
		previousGap = gap
	}
	if previousGap > 1e-6 {
		t.Fatalf("current should converge: gap=%f", previousGap)
	}
}

func TestUpdateIsFrameRateIndependent(t *testing.T) {
	fast := NewPoseState(0.5)
	slow := NewPoseState(0.5)
	frame := curlFrame(model.MIDDLE, 0.8)
	fast.ApplyFrame(frame)
	slow.ApplyFrame(frame)

	for i := 0; i < 60; i++ {
		fast.Update(1.0 / 60.0)
	}
	for i := 0; i < 30; i++ {
		slow.Update(1.0 / 30.0)
	}

	if math.Abs(fast.Current().Middle-slow.Current().Middle) > 1e-9 {
		t.Fatalf("smoothing should be frame rate independent: %f != %f",
			fast.Current().Middle, slow.Current().Middle)
	}
}

func TestApplyFramePartialUpdateKeepsPriorTargets(t *testing.T) {
	state := NewPoseState(0.5)
	state.ApplyFrame(model.ControlFrame{
		Fingers: &model.ControlFingers{
			Index: floatPtr(0.5),
			Ring:  floatPtr(0.25),
		},
		Orientation: &model.ControlOrientation{Roll: floatPtr(45)},
	})
	// 項目を持たないフレームは直前の目標値を維持する。
	state.ApplyFrame(model.ControlFrame{
		Fingers: &model.ControlFingers{Thumb: floatPtr(1.0)},
	})

	target := state.Target()
	if target.Index != 0.5 || target.Ring != 0.25 || target.Thumb != 1.0 {
		t.Fatalf("partial update mismatch: %+v", target)
	}
	if target.Roll != 45 {
		t.Fatalf("orientation target should stay: %f", target.Roll)
	}
}

func TestApplyFrameLastWriteWins(t *testing.T) {
	state := NewPoseState(0.5)
	state.ApplyFrame(curlFrame(model.PINKY, 0.2))
	state.ApplyFrame(curlFrame(model.PINKY, 0.9))
	if state.Target().Pinky != 0.9 {
		t.Fatalf("last frame should win: %f", state.Target().Pinky)
	}
}

func TestUpdateIgnoresNonPositiveDelta(t *testing.T) {
	state := NewPoseState(0.5)
	state.ApplyFrame(curlFrame(model.THUMB, 1.0))
	state.Update(0)
	state.Update(-0.5)
	if state.Current().Thumb != 0 {
		t.Fatalf("non positive delta should not advance: %f", state.Current().Thumb)
	}
}

func TestNewPoseStateReplacesInvalidSmoothing(t *testing.T) {
	state := NewPoseState(0)
	state.ApplyFrame(curlFrame(model.THUMB, 1.0))
	state.Update(1.0 / 60.0)
	if state.Current().Thumb <= 0 {
		t.Fatalf("invalid smoothing should fall back to default and still converge")
	}
}

func TestSmoothingOneConvergesInSingleStep(t *testing.T) {
	state := NewPoseState(1.0)
	state.ApplyFrame(curlFrame(model.RING, 0.7))
	state.Update(1.0 / 60.0)
	if math.Abs(state.Current().Ring-0.7) > 1e-12 {
		t.Fatalf("smoothing 1.0 should converge immediately: %f", state.Current().Ring)
	}
}
