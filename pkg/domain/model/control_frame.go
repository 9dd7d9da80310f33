// 指示: miu200521358
package model

// ControlFingers は指ごとの曲げ強度([0,1]想定)を表す。未指定項目はnilとする。
type ControlFingers struct {
	Thumb  *float64 `json:"thumb,omitempty"`
	Index  *float64 `json:"index,omitempty"`
	Middle *float64 `json:"middle,omitempty"`
	Ring   *float64 `json:"ring,omitempty"`
	Pinky  *float64 `json:"pinky,omitempty"`
}

// ControlOrientation は手首姿勢角(度)を表す。未指定項目はnilとする。
type ControlOrientation struct {
	Roll  *float64 `json:"roll,omitempty"`
	Pitch *float64 `json:"pitch,omitempty"`
	Yaw   *float64 `json:"yaw,omitempty"`
}

// ControlFrame は外部ソースが供給する制御フレームを表す。
// 部分更新を前提とし、nil項目は直前の目標値を維持する。
type ControlFrame struct {
	Fingers     *ControlFingers     `json:"fingers,omitempty"`
	Orientation *ControlOrientation `json:"orientation,omitempty"`
	Timestamp   *float64            `json:"timestamp,omitempty"`
}
