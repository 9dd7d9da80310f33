// 指示: miu200521358
// Package hinteractor は手指リグの正規化と毎フレーム姿勢計算を提供する。
package hinteractor

import "github.com/miu200521358/mu_handrig/pkg/domain/model"

// SkeletonData はリグ対象の骨格を表す。
type SkeletonData = model.JointCollection

// PrepareProgressEventType はリグ準備処理の進捗イベント種別を表す。
type PrepareProgressEventType string

const (
	// PrepareProgressEventTypeSkeletonValidated は骨格検証完了イベントを表す。
	PrepareProgressEventTypeSkeletonValidated PrepareProgressEventType = "skeleton_validated"
	// PrepareProgressEventTypeNormalizeCompleted は階層正規化完了イベントを表す。
	PrepareProgressEventTypeNormalizeCompleted PrepareProgressEventType = "normalize_completed"
	// PrepareProgressEventTypeNormalizeSkipped は正規化省略(既階層化)イベントを表す。
	PrepareProgressEventTypeNormalizeSkipped PrepareProgressEventType = "normalize_skipped"
	// PrepareProgressEventTypeNormalizeDegraded は正規化中断(手首欠落)イベントを表す。
	PrepareProgressEventTypeNormalizeDegraded PrepareProgressEventType = "normalize_degraded"
	// PrepareProgressEventTypeAxesBaked は回転軸較正完了イベントを表す。
	PrepareProgressEventTypeAxesBaked PrepareProgressEventType = "axes_baked"
	// PrepareProgressEventTypeRestPoseCaptured はレスト姿勢採取完了イベントを表す。
	PrepareProgressEventTypeRestPoseCaptured PrepareProgressEventType = "rest_pose_captured"
)

// PrepareProgressEvent はリグ準備処理の進捗イベントを表す。
type PrepareProgressEvent struct {
	Type       PrepareProgressEventType
	JointCount int
	Degraded   bool
}

// IPrepareProgressReporter はリグ準備処理の進捗通知契約を表す。
type IPrepareProgressReporter interface {
	// ReportPrepareProgress はリグ準備進捗を通知する。
	ReportPrepareProgress(event PrepareProgressEvent)
}

// PrepareRequest はリグ準備要求を表す。
type PrepareRequest struct {
	Skeleton         *SkeletonData
	Calibration      *Calibration
	ProgressReporter IPrepareProgressReporter
}

// PrepareResult はリグ準備結果を表す。
type PrepareResult struct {
	Rig            *HandRig
	Degraded       bool
	DegradedReason string
}

// reportPrepareProgress はリグ準備進捗を通知する。
func reportPrepareProgress(reporter IPrepareProgressReporter, event PrepareProgressEvent) {
	if reporter == nil {
		return
	}
	reporter.ReportPrepareProgress(event)
}
