// 指示: miu200521358
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/miu200521358/mu_handrig/pkg/domain/model"
)

func TestParseOptionsWithFlags(t *testing.T) {
	errBuf := bytes.NewBuffer(nil)
	opts, err := parseOptions([]string{"-in", "hand.json", "-frames", "curl.jsonl", "-dt", "0.01", "-steps", "3"}, errBuf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.inputPath != "hand.json" {
		t.Fatalf("inputPath mismatch: %s", opts.inputPath)
	}
	if opts.framesPath != "curl.jsonl" {
		t.Fatalf("framesPath mismatch: %s", opts.framesPath)
	}
	if opts.deltaTime != 0.01 {
		t.Fatalf("deltaTime mismatch: %f", opts.deltaTime)
	}
	if opts.steps != 3 {
		t.Fatalf("steps mismatch: %d", opts.steps)
	}
}

func TestParseOptionsWithPositionalInput(t *testing.T) {
	errBuf := bytes.NewBuffer(nil)
	opts, err := parseOptions([]string{"hand.json"}, errBuf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.inputPath != "hand.json" {
		t.Fatalf("inputPath mismatch: %s", opts.inputPath)
	}
	if opts.deltaTime != 1.0/60.0 {
		t.Fatalf("default deltaTime mismatch: %f", opts.deltaTime)
	}
	if opts.steps != 1 {
		t.Fatalf("default steps mismatch: %d", opts.steps)
	}
}

func TestParseOptionsRequireJsonExt(t *testing.T) {
	errBuf := bytes.NewBuffer(nil)
	_, err := parseOptions([]string{"-in", "hand.gltf"}, errBuf)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), ".json") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseOptionsRejectsInvalidArgs(t *testing.T) {
	cases := [][]string{
		{},
		{"-in", "hand.json", "-frames", "curl.txt"},
		{"-in", "hand.json", "-dt", "0"},
		{"-in", "hand.json", "-steps", "0"},
	}
	for _, args := range cases {
		if _, err := parseOptions(args, bytes.NewBuffer(nil)); err == nil {
			t.Fatalf("args should be rejected: %v", args)
		}
	}
}

// writeTestSkeletonJSON はフラット構造の手骨格JSONを一時ディレクトリへ書き出す。
func writeTestSkeletonJSON(t *testing.T, dir string) string {
	t.Helper()
	fingerOffsets := map[model.FingerName]float64{
		model.THUMB:  0.05,
		model.INDEX:  0.02,
		model.MIDDLE: 0.0,
		model.RING:   -0.02,
		model.PINKY:  -0.04,
	}
	segmentDepths := map[model.FingerSegment]float64{
		model.SEGMENT_METACARPAL:   -0.03,
		model.SEGMENT_PROXIMAL:     -0.08,
		model.SEGMENT_INTERMEDIATE: -0.11,
		model.SEGMENT_DISTAL:       -0.13,
		model.SEGMENT_TIP:          -0.145,
	}

	joints := []map[string]any{
		{"name": "hand_armature"},
		{"name": model.WRIST_JOINT_NAME, "parent": "hand_armature"},
	}
	for _, finger := range model.FingerNames() {
		for _, segment := range model.FingerSegments() {
			joints = append(joints, map[string]any{
				"name":        finger.JointName(segment),
				"parent":      "hand_armature",
				"translation": []float64{fingerOffsets[finger], 0, segmentDepths[segment]},
			})
		}
	}

	b, err := json.Marshal(map[string]any{"name": "hand", "joints": joints})
	if err != nil {
		t.Fatalf("json marshal failed: %v", err)
	}
	path := filepath.Join(dir, "hand.json")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write skeleton failed: %v", err)
	}
	return path
}

func TestRunReplaysFramesAndPrintsRotations(t *testing.T) {
	t.Setenv("MU_HANDRIG_CONFIG", "")
	dir := t.TempDir()
	skeletonPath := writeTestSkeletonJSON(t, dir)

	framesPath := filepath.Join(dir, "curl.jsonl")
	frames := strings.Join([]string{
		`{"fingers": {"index": 0.5}}`,
		``,
		`{"fingers": {"index": 1.0}, "orientation": {"roll": 30.0}}`,
	}, "\n")
	if err := os.WriteFile(framesPath, []byte(frames), 0o644); err != nil {
		t.Fatalf("write frames failed: %v", err)
	}

	outBuf := bytes.NewBuffer(nil)
	errBuf := bytes.NewBuffer(nil)
	if err := run([]string{"-in", skeletonPath, "-frames", framesPath, "-steps", "2"}, outBuf, errBuf); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	output := outBuf.String()
	if !strings.Contains(output, "再生完了") {
		t.Fatalf("completion message missing: %s", output)
	}
	if strings.Contains(output, "縮退状態") {
		t.Fatalf("run should not degrade: %s", output)
	}
	for _, finger := range model.FingerNames() {
		for _, segment := range model.FingerSegments() {
			if !strings.Contains(output, finger.JointName(segment)+":") {
				t.Fatalf("rotation line missing: %s", finger.JointName(segment))
			}
		}
	}
	if !strings.Contains(output, model.WRIST_JOINT_NAME+":") {
		t.Fatalf("wrist rotation line missing: %s", output)
	}
}

func TestRunWithoutFramesKeepsNeutralPose(t *testing.T) {
	t.Setenv("MU_HANDRIG_CONFIG", "")
	dir := t.TempDir()
	skeletonPath := writeTestSkeletonJSON(t, dir)

	outBuf := bytes.NewBuffer(nil)
	if err := run([]string{"-in", skeletonPath}, outBuf, bytes.NewBuffer(nil)); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	// 中立姿勢の関節はすべて無回転のまま出力される。
	if !strings.Contains(outBuf.String(), "index_proximal: x=0.000000 y=0.000000 z=0.000000 w=1.000000") {
		t.Fatalf("neutral rotation missing: %s", outBuf.String())
	}
}

func TestRunFailsOnMissingSkeletonFile(t *testing.T) {
	t.Setenv("MU_HANDRIG_CONFIG", "")
	err := run(
		[]string{"-in", filepath.Join(t.TempDir(), "absent.json")},
		bytes.NewBuffer(nil),
		bytes.NewBuffer(nil),
	)
	if err == nil {
		t.Fatalf("missing skeleton file should fail")
	}
}

func TestRunFailsOnMalformedFrames(t *testing.T) {
	t.Setenv("MU_HANDRIG_CONFIG", "")
	dir := t.TempDir()
	skeletonPath := writeTestSkeletonJSON(t, dir)
	framesPath := filepath.Join(dir, "curl.jsonl")
	if err := os.WriteFile(framesPath, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write frames failed: %v", err)
	}

	err := run([]string{"-in", skeletonPath, "-frames", framesPath}, bytes.NewBuffer(nil), bytes.NewBuffer(nil))
	if err == nil {
		t.Fatalf("malformed frames should fail")
	}
}
