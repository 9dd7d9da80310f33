// 指示: miu200521358
// Package io_skeleton はJSON骨格アセットの読み込みを提供する。
package io_skeleton

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_handrig/pkg/domain/mmath"
	"github.com/miu200521358/mu_handrig/pkg/domain/model"
	"github.com/miu200521358/mu_handrig/pkg/shared/base/logging"
)

// LoadProgressEventType は骨格読込進捗イベント種別を表す。
type LoadProgressEventType string

const (
	// LoadProgressEventTypeFileReadComplete はファイル読込完了イベントを表す。
	LoadProgressEventTypeFileReadComplete LoadProgressEventType = "file_read_complete"
	// LoadProgressEventTypeJsonParsed はJSON解析完了イベントを表す。
	LoadProgressEventTypeJsonParsed LoadProgressEventType = "json_parsed"
	// LoadProgressEventTypeCompleted は骨格構築完了イベントを表す。
	LoadProgressEventTypeCompleted LoadProgressEventType = "completed"
)

// LoadProgressEvent は骨格読込進捗イベントを表す。
type LoadProgressEvent struct {
	Type          LoadProgressEventType
	FileSizeBytes int
	JointCount    int
}

// SkeletonRepository はJSON骨格入力の読み込み契約を表す。
type SkeletonRepository struct {
	log                  *logging.Logger
	loadProgressReporter func(LoadProgressEvent)
}

// NewSkeletonRepository はSkeletonRepositoryを生成する。
func NewSkeletonRepository() *SkeletonRepository {
	return &SkeletonRepository{log: logging.Named("io_skeleton")}
}

// SetLoadProgressReporter は骨格読込進捗受信コールバックを設定する。
func (r *SkeletonRepository) SetLoadProgressReporter(reporter func(LoadProgressEvent)) {
	if r == nil {
		return
	}
	r.loadProgressReporter = reporter
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *SkeletonRepository) CanLoad(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// InferName はパスから表示名を推定する。
func (r *SkeletonRepository) InferName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// Load はJSON骨格アセットを読み込み、関節コレクションを構築する。
// 親リンクは名前参照のため、関節定義の並び順に依存しない。
func (r *SkeletonRepository) Load(path string) (*model.JointCollection, error) {
	if !r.CanLoad(path) {
		return nil, fmt.Errorf("対応していない骨格ファイル形式です: %s", path)
	}
	r.log.Info("骨格読込開始", "file", filepath.Base(path))

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("骨格ファイルが見つかりません: %s: %w", path, err)
		}
		return nil, fmt.Errorf("骨格ファイルの読み取りに失敗しました: %w", err)
	}
	r.reportLoadProgress(LoadProgressEvent{
		Type:          LoadProgressEventTypeFileReadComplete,
		FileSizeBytes: len(b),
	})

	doc := skeletonDocument{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("骨格JSONの解析に失敗しました: %w", err)
	}
	if len(doc.Joints) == 0 {
		return nil, fmt.Errorf("骨格JSONに関節定義がありません")
	}
	r.reportLoadProgress(LoadProgressEvent{
		Type:          LoadProgressEventTypeJsonParsed,
		FileSizeBytes: len(b),
		JointCount:    len(doc.Joints),
	})

	joints, err := buildJointCollection(doc.Joints)
	if err != nil {
		return nil, err
	}
	r.reportLoadProgress(LoadProgressEvent{
		Type:          LoadProgressEventTypeCompleted,
		FileSizeBytes: len(b),
		JointCount:    joints.Len(),
	})
	r.log.Info("骨格読込完了", "file", filepath.Base(path), "joints", joints.Len())
	return joints, nil
}

// reportLoadProgress は読込進捗イベントを通知する。
func (r *SkeletonRepository) reportLoadProgress(event LoadProgressEvent) {
	if r == nil || r.loadProgressReporter == nil {
		return
	}
	r.loadProgressReporter(event)
}

// skeletonDocument は骨格JSONのトップレベル要素を表す。
type skeletonDocument struct {
	Name   string          `json:"name"`
	Joints []skeletonJoint `json:"joints"`
}

// skeletonJoint は骨格JSONの関節要素を表す。
type skeletonJoint struct {
	Name        string    `json:"name"`
	Parent      string    `json:"parent"`
	Translation []float64 `json:"translation"`
	Rotation    []float64 `json:"rotation"`
	Scale       []float64 `json:"scale"`
}

// buildJointCollection は関節定義から骨格を構築し、親リンクを名前で解決する。
func buildJointCollection(defs []skeletonJoint) (*model.JointCollection, error) {
	joints := model.NewJointCollection()

	for _, def := range defs {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return nil, fmt.Errorf("関節名が空の定義があります")
		}
		joint := model.NewJoint(name)

		translation, err := parseVec3(def.Translation, mmath.ZERO_VEC3, "joints.translation")
		if err != nil {
			return nil, err
		}
		joint.Translation = translation

		scale, err := parseVec3(def.Scale, mmath.ONE_VEC3, "joints.scale")
		if err != nil {
			return nil, err
		}
		joint.Scale = scale

		rotation, err := parseQuaternion(def.Rotation)
		if err != nil {
			return nil, err
		}
		joint.Rotation = rotation

		if _, err := joints.Append(joint); err != nil {
			return nil, err
		}
	}

	for _, def := range defs {
		parentName := strings.TrimSpace(def.Parent)
		if parentName == "" {
			continue
		}
		child, _ := joints.GetByName(strings.TrimSpace(def.Name))
		parent, exists := joints.GetByName(parentName)
		if !exists {
			return nil, fmt.Errorf("親関節が見つかりません: %s -> %s", def.Name, parentName)
		}
		if err := joints.Reparent(child.Index(), parent.Index()); err != nil {
			return nil, err
		}
	}
	return joints, nil
}

// parseVec3 はスライスをVec3へ変換する。
func parseVec3(values []float64, defaultValue mmath.Vec3, label string) (mmath.Vec3, error) {
	if len(values) == 0 {
		return defaultValue, nil
	}
	if len(values) != 3 {
		return mmath.ZERO_VEC3, fmt.Errorf("%s の要素数が不正です: %d", label, len(values))
	}
	return mmath.NewVec3(values[0], values[1], values[2]), nil
}

// parseQuaternion はスライス(x, y, z, w)をQuaternionへ変換する。
func parseQuaternion(values []float64) (mmath.Quaternion, error) {
	if len(values) == 0 {
		return mmath.NewQuaternion(), nil
	}
	if len(values) != 4 {
		return mmath.NewQuaternion(), fmt.Errorf("joints.rotation の要素数が不正です: %d", len(values))
	}
	return mmath.NewQuaternionByValues(values[0], values[1], values[2], values[3]).Normalized(), nil
}
