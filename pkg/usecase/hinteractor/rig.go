// 指示: miu200521358
package hinteractor

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/miu200521358/mu_handrig/pkg/domain/mmath"
	"github.com/miu200521358/mu_handrig/pkg/domain/model"
	"github.com/miu200521358/mu_handrig/pkg/usecase/port/houtput"
	"github.com/miu200521358/mu_handrig/pkg/shared/base/logging"
)

// HandRigUsecase は手指リグの準備処理を提供する。
type HandRigUsecase struct {
	skeletonReader houtput.ISkeletonReader
	log            *logging.Logger
}

// NewHandRigUsecase はユースケースを生成する。
func NewHandRigUsecase(skeletonReader houtput.ISkeletonReader) *HandRigUsecase {
	return &HandRigUsecase{
		skeletonReader: skeletonReader,
		log:            logging.Named("hinteractor"),
	}
}

// LoadSkeleton は骨格アセットを読み込む。
func (uc *HandRigUsecase) LoadSkeleton(rep houtput.ISkeletonReader, path string) (*model.JointCollection, error) {
	reader := rep
	if reader == nil {
		reader = uc.skeletonReader
	}
	if reader == nil {
		return nil, fmt.Errorf("骨格読み込みリポジトリが設定されていません")
	}
	return reader.Load(path)
}

// Prepare は骨格を正規化し、軸較正とレスト姿勢採取を経てリグを構築する。
// 正規化はアニメーション開始前に一度だけ実行する。手首欠落時は骨格を
// フラット構造のまま残し、縮退状態としてリグを返す(アニメーションは継続可能)。
func (uc *HandRigUsecase) Prepare(request PrepareRequest) (*PrepareResult, error) {
	if request.Skeleton == nil || request.Skeleton.Len() == 0 {
		return nil, fmt.Errorf("リグ対象の骨格が未設定です")
	}
	reportPrepareProgress(request.ProgressReporter, PrepareProgressEvent{
		Type:       PrepareProgressEventTypeSkeletonValidated,
		JointCount: request.Skeleton.Len(),
	})

	calibration := request.Calibration
	if calibration == nil {
		calibration = DefaultCalibration()
	}

	joints, err := request.Skeleton.Clone()
	if err != nil {
		return nil, err
	}

	outcome, err := normalizeFingerHierarchy(joints)
	if err != nil {
		return nil, err
	}
	switch {
	case outcome.degraded:
		uc.log.Warn("骨格正規化を中断しました。指の階層が不正なまま続行します", "reason", outcome.reason)
		reportPrepareProgress(request.ProgressReporter, PrepareProgressEvent{
			Type:       PrepareProgressEventTypeNormalizeDegraded,
			JointCount: joints.Len(),
			Degraded:   true,
		})
	case outcome.applied:
		reportPrepareProgress(request.ProgressReporter, PrepareProgressEvent{
			Type:       PrepareProgressEventTypeNormalizeCompleted,
			JointCount: joints.Len(),
		})
	default:
		reportPrepareProgress(request.ProgressReporter, PrepareProgressEvent{
			Type:       PrepareProgressEventTypeNormalizeSkipped,
			JointCount: joints.Len(),
		})
	}

	axes := bakeJointAxes(joints)
	reportPrepareProgress(request.ProgressReporter, PrepareProgressEvent{
		Type:       PrepareProgressEventTypeAxesBaked,
		JointCount: len(axes),
	})

	restPose := model.CaptureRestPose(joints)
	reportPrepareProgress(request.ProgressReporter, PrepareProgressEvent{
		Type:       PrepareProgressEventTypeRestPoseCaptured,
		JointCount: restPose.Len(),
	})

	rig := &HandRig{
		joints:   joints,
		rest:     restPose,
		composer: newJointComposer(restPose, calibration, axes),
		pose:     NewPoseState(calibration.Smoothing),
		degraded: outcome.degraded,
	}
	return &PrepareResult{
		Rig:            rig,
		Degraded:       outcome.degraded,
		DegradedReason: outcome.reason,
	}, nil
}

// HandRig は正規化済み骨格と毎フレーム姿勢計算の実体を表す。
// 単一スレッドの描画ループから同期的に駆動される前提とする。
type HandRig struct {
	joints   *model.JointCollection
	rest     *model.RestPoseTable
	composer *jointComposer
	pose     *PoseState
	degraded bool
}

// ApplyFrame は制御フレームを目標値へ後着優先で併合する。
func (r *HandRig) ApplyFrame(frame model.ControlFrame) {
	r.pose.ApplyFrame(frame)
}

// Update は制御値を平滑化し、全関節のローカル回転を再計算する。
func (r *HandRig) Update(deltaTime float64) {
	r.pose.Update(deltaTime)
	values := r.pose.Current()
	r.composer.composeFingers(r.joints, values)
	applyWristOrientation(r.joints, r.rest, values)
}

// LocalRotations は関節名からローカル回転への対応を返す。
func (r *HandRig) LocalRotations() map[string]mmath.Quaternion {
	rotations := make(map[string]mmath.Quaternion, r.joints.Len())
	for _, joint := range r.joints.Values() {
		rotations[joint.Name()] = joint.Rotation
	}
	return rotations
}

// WorldMatrices は描画・スキニング協調先が消費する同次変換行列を返す。
func (r *HandRig) WorldMatrices() (map[string]mgl64.Mat4, error) {
	matrices := make(map[string]mgl64.Mat4, r.joints.Len())
	for _, joint := range r.joints.Values() {
		position, rotation, scale, err := r.joints.WorldTransform(joint.Index())
		if err != nil {
			return nil, err
		}
		matrices[joint.Name()] = mmath.ComposeMat4(position, rotation, scale)
	}
	return matrices, nil
}

// Skeleton はリグ内部の骨格を返す。描画側の読み取り用で、書き込みは更新処理のみが行う。
func (r *HandRig) Skeleton() *model.JointCollection {
	return r.joints
}

// RestPose は採取済みレスト姿勢表を返す。
func (r *HandRig) RestPose() *model.RestPoseTable {
	return r.rest
}

// Degraded は正規化が縮退状態で終わったかを返す。
func (r *HandRig) Degraded() bool {
	return r.degraded
}
