package geomesh

import (
	"github.com/paulmach/orb"
	"github.com/rotisserie/eris"
)

// 2次元座標
type XY struct {
	X float64
	Y float64
}

// バウンディングボックス
// 経緯度（10進法）またはメートル座標の軸並行矩形。
// コーデックのデコード処理が生成する不変の値型です。
type Bounds struct {
	XMin float64 `yaml:"x_min" json:"x_min"`
	YMin float64 `yaml:"y_min" json:"y_min"`
	XMax float64 `yaml:"x_max" json:"x_max"`
	YMax float64 `yaml:"y_max" json:"y_max"`
}

// 範囲の検証 (x_min < x_max かつ y_min < y_max)
func (b Bounds) Validate() error {
	if b.XMin >= b.XMax || b.YMin >= b.YMax {
		return eris.Wrapf(ErrInvalidBoundingBox,
			"x: [%f, %f], y: [%f, %f]", b.XMin, b.XMax, b.YMin, b.YMax)
	}
	return nil
}

// 点 (x, y) が範囲内（境界含む）にあるかの判定
func (b Bounds) Contains(x float64, y float64) bool {
	return b.XMin <= x && x <= b.XMax && b.YMin <= y && y <= b.YMax
}

// 他の範囲と重なりを持つかの判定
func (b Bounds) Intersects(o Bounds) bool {
	return b.XMax > o.XMin && b.XMin < o.XMax && b.YMax > o.YMin && b.YMin < o.YMax
}

// 範囲を閉じたリングのポリゴンへ変換します（南西から反時計回り）。
func (b Bounds) Polygon() orb.Polygon {
	return orb.Polygon{
		orb.Ring{
			{b.XMin, b.YMin},
			{b.XMax, b.YMin},
			{b.XMax, b.YMax},
			{b.XMin, b.YMax},
			{b.XMin, b.YMin},
		},
	}
}
