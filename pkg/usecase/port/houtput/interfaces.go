// 指示: miu200521358
// Package houtput はユースケースが依存する外部契約を提供する。
package houtput

import "github.com/miu200521358/mu_handrig/pkg/domain/model"

// ISkeletonReader は骨格アセットの読み込み契約を表す。
type ISkeletonReader interface {
	// CanLoad はパスの形式が読み込み可能か判定する。
	CanLoad(path string) bool
	// InferName はパスから表示名を推定する。
	InferName(path string) string
	// Load は骨格アセットを読み込む。
	Load(path string) (*model.JointCollection, error)
}
