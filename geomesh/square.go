package geomesh

import (
	"fmt"
	"math"

	"github.com/rotisserie/eris"
)

//--------------------------------------
// 四角形メッシュ処理
// 面積や辺の長さを指定して任意の範囲に四角形メッシュを生成します。
// ヘクタールやキロメートル単位で指定したい場合は、範囲の座標を経緯度ではなく
// 平面直角座標系などのメートル単位の座標で指定する事。
//--------------------------------------

// 格子の刻み計算に使用する整数スケール
// 浮動小数の加算を繰り返すと格子線がずれるため、整数化してから刻みます。
const squareScale = 1e10

// 指定した左上の座標と辺の長さから四角形の範囲を計算します。
// vertical に0を指定した場合は horizontal と同じ長さになります。
func CreateSquareFromLength(xMin float64, yMax float64, horizontal float64, vertical float64) Bounds {
	if vertical == 0 {
		vertical = horizontal
	}
	return Bounds{
		XMin: xMin,
		YMin: yMax - vertical,
		XMax: xMin + horizontal,
		YMax: yMax,
	}
}

// 指定した左上の座標と面積から正四角形の範囲を計算します。
func CreateSquareFromArea(xMin float64, yMax float64, area float64) Bounds {
	side := math.Sqrt(area)
	return CreateSquareFromLength(xMin, yMax, side, side)
}

// 生成された1つの四角形
type SquareCell struct {
	ID     int
	XY     string // "列番号/行番号" (左上始まり0～)
	Bounds Bounds
}

// 四角形メッシュを生成するオブジェクト
type SquareMesh struct {
	Bounds Bounds
}

// メッシュ生成範囲からSquareMeshの取得
func NewSquareMesh(xMin float64, yMin float64, xMax float64, yMax float64) *SquareMesh {
	return &SquareMesh{Bounds: Bounds{XMin: xMin, YMin: yMin, XMax: xMax, YMax: yMax}}
}

// 指定した辺の長さで範囲内に四角形メッシュを生成します。
// 左上から右向き、次いで下向きの順に列挙します。
func (sm *SquareMesh) GenerateFromLength(horizontal float64, vertical float64) ([]SquareCell, error) {
	if err := sm.Bounds.Validate(); err != nil {
		return nil, err
	}
	if vertical == 0 {
		vertical = horizontal
	}
	if horizontal <= 0 || vertical <= 0 {
		return nil, eris.Wrapf(ErrInvalidGridSpec,
			"square side must be positive: horizontal %f, vertical %f", horizontal, vertical)
	}

	// 範囲のスケール変換
	xMin := int64(sm.Bounds.XMin * squareScale)
	yMax := int64(sm.Bounds.YMax * squareScale)
	xMax := int64(sm.Bounds.XMax * squareScale)
	yMin := int64(sm.Bounds.YMin * squareScale)
	h := int64(horizontal * squareScale)
	v := int64(vertical * squareScale)

	var cells []SquareCell
	yID := 0
	for y := yMax; y > yMin; y -= v {
		xID := 0
		for x := xMin; x < xMax; x += h {
			square := CreateSquareFromLength(float64(x), float64(y), float64(h), float64(v))
			// スケールを戻す
			square = Bounds{
				XMin: square.XMin / squareScale,
				YMin: square.YMin / squareScale,
				XMax: square.XMax / squareScale,
				YMax: square.YMax / squareScale,
			}
			cells = append(cells, SquareCell{
				ID:     len(cells),
				XY:     fmt.Sprintf("%d/%d", xID, yID),
				Bounds: square,
			})
			xID++
		}
		yID++
	}
	return cells, nil
}

// 指定した面積の正四角形で範囲内に四角形メッシュを生成します。
func (sm *SquareMesh) GenerateFromArea(area float64) ([]SquareCell, error) {
	if area <= 0 {
		return nil, eris.Wrapf(ErrInvalidGridSpec, "square area must be positive: %f", area)
	}
	side := math.Sqrt(area)
	return sm.GenerateFromLength(side, side)
}
