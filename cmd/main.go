// 指示: miu200521358
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/miu200521358/mu_handrig/pkg/adapter/io_skeleton"
	"github.com/miu200521358/mu_handrig/pkg/domain/model"
	"github.com/miu200521358/mu_handrig/pkg/infra/config"
	"github.com/miu200521358/mu_handrig/pkg/shared/base/logging"
	"github.com/miu200521358/mu_handrig/pkg/usecase/hinteractor"
)

// options はCLI引数を保持する。
type options struct {
	inputPath  string
	framesPath string
	deltaTime  float64
	steps      int
}

// main は骨格の正規化と制御フレーム再生を実行する。
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
func run(args []string, out io.Writer, errOut io.Writer) error {
	opts, err := parseOptions(args, errOut)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("設定の読み込みに失敗しました: %w", err)
	}
	if err := logging.SetLevelString(cfg.LogLevel); err != nil {
		return err
	}

	repository := io_skeleton.NewSkeletonRepository()
	if !repository.CanLoad(opts.inputPath) {
		return fmt.Errorf("入力形式が未対応です: %s", opts.inputPath)
	}

	fmt.Fprintf(out, "[mu_handrig] 骨格読み込み開始: %s\n", opts.inputPath)
	joints, err := repository.Load(opts.inputPath)
	if err != nil {
		return fmt.Errorf("骨格読み込みに失敗しました: %w", err)
	}

	calibration := hinteractor.DefaultCalibration()
	cfg.ApplyTo(calibration)

	usecase := hinteractor.NewHandRigUsecase(repository)
	result, err := usecase.Prepare(hinteractor.PrepareRequest{
		Skeleton:    joints,
		Calibration: calibration,
	})
	if err != nil {
		return fmt.Errorf("リグ準備に失敗しました: %w", err)
	}
	if result.Degraded {
		fmt.Fprintf(out, "[mu_handrig] 縮退状態で続行します: %s\n", result.DegradedReason)
	}

	frames, err := loadControlFrames(opts.framesPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "[mu_handrig] 再生開始: frames=%d dt=%.5f steps=%d\n", len(frames), opts.deltaTime, opts.steps)
	replayFrames(result.Rig, frames, opts.deltaTime, opts.steps)

	printLocalRotations(out, result.Rig)
	fmt.Fprintf(out, "[mu_handrig] 再生完了: %s\n", repository.InferName(opts.inputPath))
	return nil
}

// parseOptions はCLI引数を解析する。
func parseOptions(args []string, errOut io.Writer) (options, error) {
	fs := flag.NewFlagSet("mu_handrig", flag.ContinueOnError)
	fs.SetOutput(errOut)

	in := fs.String("in", "", "入力骨格JSONファイルパス")
	frames := fs.String("frames", "", "制御フレームJSONLファイルパス(省略時は中立姿勢)")
	deltaTime := fs.Float64("dt", 1.0/60.0, "1ステップあたりの経過秒数")
	steps := fs.Int("steps", 1, "フレームごとの更新ステップ数")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if *in == "" && fs.NArg() > 0 {
		*in = fs.Arg(0)
	}
	if *in == "" {
		return options{}, fmt.Errorf("入力骨格JSONファイルを指定してください (-in)")
	}
	if !strings.EqualFold(filepath.Ext(*in), ".json") {
		return options{}, fmt.Errorf("入力拡張子が .json ではありません: %s", *in)
	}
	if *frames != "" && !strings.EqualFold(filepath.Ext(*frames), ".jsonl") {
		return options{}, fmt.Errorf("フレーム拡張子が .jsonl ではありません: %s", *frames)
	}
	if *deltaTime <= 0 {
		return options{}, fmt.Errorf("経過秒数は正の値を指定してください (-dt): %f", *deltaTime)
	}
	if *steps <= 0 {
		return options{}, fmt.Errorf("更新ステップ数は正の値を指定してください (-steps): %d", *steps)
	}

	return options{
		inputPath:  *in,
		framesPath: *frames,
		deltaTime:  *deltaTime,
		steps:      *steps,
	}, nil
}

// loadControlFrames はJSONL形式の制御フレーム列を読み込む。空行は読み飛ばす。
func loadControlFrames(path string) ([]model.ControlFrame, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("制御フレームファイルの読み取りに失敗しました: %w", err)
	}
	defer f.Close()

	frames := []model.ControlFrame{}
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		frame := model.ControlFrame{}
		if err := json.Unmarshal([]byte(text), &frame); err != nil {
			return nil, fmt.Errorf("制御フレームの解析に失敗しました: line=%d: %w", line, err)
		}
		frames = append(frames, frame)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("制御フレームファイルの走査に失敗しました: %w", err)
	}
	return frames, nil
}

// replayFrames は制御フレーム列を適用しながらリグを更新する。
// フレームが無い場合も指定ステップ数だけ中立姿勢で更新する。
func replayFrames(rig *hinteractor.HandRig, frames []model.ControlFrame, deltaTime float64, steps int) {
	if len(frames) == 0 {
		for i := 0; i < steps; i++ {
			rig.Update(deltaTime)
		}
		return
	}
	for _, frame := range frames {
		rig.ApplyFrame(frame)
		for i := 0; i < steps; i++ {
			rig.Update(deltaTime)
		}
	}
}

// printLocalRotations は全関節のローカル回転を名前順で出力する。
func printLocalRotations(out io.Writer, rig *hinteractor.HandRig) {
	rotations := rig.LocalRotations()
	names := make([]string, 0, len(rotations))
	for name := range rotations {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rotation := rotations[name]
		fmt.Fprintf(out, "%s: x=%.6f y=%.6f z=%.6f w=%.6f\n",
			name, rotation.Imag, rotation.Jmag, rotation.Kmag, rotation.Real)
	}
}
