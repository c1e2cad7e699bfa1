package geomesh

import (
	"fmt"
	"math"

	"github.com/hhkbp2/go-logging"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v2"
)

//--------------------------------------
// タイルメッシュ処理
// Webメルカトル上のスリッピーマップタイル (x, y, zoom) を扱います。
//--------------------------------------

// タイルの既定サイズ（ピクセル）
const TileSize = 256

// 座標の小数点以下の桁数
const decimalPlaces = 4

const floorNum = 1e4 // 10^decimalPlaces

// Webメルカトルの座標範囲
var tileScope = Bounds{
	XMin: -20037508.342789244,
	YMin: -20037508.342789244,
	XMax: 20037508.342789244,
	YMax: 20037508.342789244,
}

// 指定した小数点以下の桁数で値を切り捨てます。
func floorDecimal(value float64) float64 {
	return math.Floor(value*floorNum) / floorNum
}

// 指定した小数点以下の桁数で値を切り上げます。
func ceilDecimal(value float64) float64 {
	return math.Ceil(value*floorNum) / floorNum
}

// タイル番号
// x は180度西経から東向き、y は北極から南向きに増加します。
// 範囲 [0, 2^zoom) の外の番号も拒否せずそのまま保持します。
type TileIndex struct {
	X    int `yaml:"x_idx"`
	Y    int `yaml:"y_idx"`
	Zoom int `yaml:"zoom_level"`
}

// タイルメッシュの設計
// タイル番号に、投影座標系での範囲、経緯度での範囲、解像度を付加した読み取り専用の値です。
type TileDesign struct {
	ZoomLevel int
	XIdx      int
	YIdx      int

	// Webメルカトル（メートル）での範囲
	Bounds Bounds

	// 経緯度（10進法）での範囲
	LonLatBounds Bounds

	// ピクセル数
	Width  int
	Height int
}

// x方向の解像度 [m/px]
func (td *TileDesign) XResolution() float64 {
	return floorDecimal((td.Bounds.XMax - td.Bounds.XMin) / float64(td.Width))
}

// y方向の解像度 [m/px]
// 画素の行は南向き、座標は北向きに増加するため負の値を返します。
func (td *TileDesign) YResolution() float64 {
	return -floorDecimal((td.Bounds.YMax - td.Bounds.YMin) / float64(td.Height))
}

// "zoom/x/y" 形式
func (td *TileDesign) ZXY() string {
	return fmt.Sprintf("%d/%d/%d", td.ZoomLevel, td.XIdx, td.YIdx)
}

// YAML形式
func (td *TileDesign) String() string {
	data := struct {
		CRS struct {
			Name string `yaml:"name"`
			EPSG int    `yaml:"epsg"`
			Unit string `yaml:"unit"`
		} `yaml:"crs"`
		XYZ        TileIndex `yaml:"XYZ"`
		Bounds     Bounds    `yaml:"bounds"`
		Resolution struct {
			X float64 `yaml:"x_resolution [m/px]"`
			Y float64 `yaml:"y_resolution [m/px]"`
		} `yaml:"resolution"`
	}{}
	data.CRS.Name = CRSWebMercator.Name()
	data.CRS.EPSG = int(CRSWebMercator)
	data.CRS.Unit = CRSWebMercator.Unit()
	data.XYZ = TileIndex{X: td.XIdx, Y: td.YIdx, Zoom: td.ZoomLevel}
	data.Bounds = td.Bounds
	data.Resolution.X = td.XResolution()
	data.Resolution.Y = td.YResolution()

	out, err := yaml.Marshal(data)
	if err != nil {
		return ""
	}
	return string(out)
}

// タイルメッシュを設計するためのオブジェクト
// 状態を持たず、すべての操作は入力のみから再現可能です。
type TileDesigner struct {
	Width  int
	Height int
}

// 256x256ピクセルのTileDesignerの取得
func NewTileDesigner() *TileDesigner {
	return &TileDesigner{Width: TileSize, Height: TileSize}
}

// 経緯度とズームレベルからタイル番号を計算します。
// 入力座標系 in がEPSG:3857の場合は経緯度へ変換してから計算します。
// 投影範囲外の座標から得られる範囲外の番号はそのまま返します。
func (td *TileDesigner) LonLatToTileIndex(lon float64, lat float64, zoom int, in CRS) (TileIndex, error) {
	if zoom < 0 {
		return TileIndex{}, eris.Wrapf(ErrInvalidZoomLevel, "zoom %d", zoom)
	}
	xy, err := TransformXY(lon, lat, in, CRSWGS84)
	if err != nil {
		return TileIndex{}, err
	}

	// Webメルカトルへ投影し、±20037508.3428mの範囲を 2^zoom 分割の
	// タイル格子へ線形に割り付けます。y はタイル行が南向きのため反転します。
	m, err := TransformXY(xy.X, xy.Y, CRSWGS84, CRSWebMercator)
	if err != nil {
		return TileIndex{}, err
	}
	n := math.Exp2(float64(zoom))
	fx := (m.X - tileScope.XMin) / (tileScope.XMax - tileScope.XMin) * n
	fy := (tileScope.YMax - m.Y) / (tileScope.YMax - tileScope.YMin) * n

	return TileIndex{
		X:    int(math.Floor(fx)),
		Y:    int(math.Floor(fy)),
		Zoom: zoom,
	}, nil
}

// タイル番号とズームレベルからタイルデザインを生成します。
// 投影座標系の範囲はズームレベルでの格子間隔から直接計算し、
// 経緯度の範囲は四隅を逆投影して求めます。
func (td *TileDesigner) FromTileIndex(x int, y int, zoom int) (*TileDesign, error) {
	if zoom < 0 {
		return nil, eris.Wrapf(ErrInvalidZoomLevel, "zoom %d", zoom)
	}

	n := math.Exp2(float64(zoom))
	size := (tileScope.XMax - tileScope.XMin) / n

	// 最小の辺は切り捨て、最大の辺は切り上げ。
	// タイル境界上の座標が西・南側のタイルへ振り分けられても、
	// そのタイルの範囲から外れないことを保証します。
	bounds := Bounds{
		XMin: floorDecimal(tileScope.XMin + float64(x)*size),
		YMin: floorDecimal(tileScope.YMax - float64(y+1)*size),
		XMax: ceilDecimal(tileScope.XMin + float64(x+1)*size),
		YMax: ceilDecimal(tileScope.YMax - float64(y)*size),
	}

	sw, err := TransformXY(bounds.XMin, bounds.YMin, CRSWebMercator, CRSWGS84)
	if err != nil {
		return nil, err
	}
	ne, err := TransformXY(bounds.XMax, bounds.YMax, CRSWebMercator, CRSWGS84)
	if err != nil {
		return nil, err
	}

	return &TileDesign{
		ZoomLevel:    zoom,
		XIdx:         x,
		YIdx:         y,
		Bounds:       bounds,
		LonLatBounds: Bounds{XMin: sw.X, YMin: sw.Y, XMax: ne.X, YMax: ne.Y},
		Width:        td.Width,
		Height:       td.Height,
	}, nil
}

// 経緯度とズームレベルからタイルデザインを生成します。
func (td *TileDesigner) FromLonLat(lon float64, lat float64, zoom int, in CRS) (*TileDesign, error) {
	idx, err := td.LonLatToTileIndex(lon, lat, zoom, in)
	if err != nil {
		return nil, err
	}
	return td.FromTileIndex(idx.X, idx.Y, idx.Zoom)
}

// 指定した範囲に重なるタイルをすべて生成します。
// 範囲の南西端と北東端のタイル番号から矩形範囲を求め、
// x昇順、y昇順の順に網羅的に列挙します。
func (td *TileDesigner) Tiles(b Bounds, zoom int, in CRS) ([]*TileDesign, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	sw, err := td.LonLatToTileIndex(b.XMin, b.YMin, zoom, in)
	if err != nil {
		return nil, err
	}
	ne, err := td.LonLatToTileIndex(b.XMax, b.YMax, zoom, in)
	if err != nil {
		return nil, err
	}

	// タイルのy番号は緯度と逆向きのため、北東端のyが下限になる
	designs := make([]*TileDesign, 0, (sw.Y-ne.Y+1)*(ne.X-sw.X+1))
	for x := sw.X; x <= ne.X; x++ {
		for y := ne.Y; y <= sw.Y; y++ {
			design, err := td.FromTileIndex(x, y, zoom)
			if err != nil {
				return nil, err
			}
			designs = append(designs, design)
		}
	}

	logger := logging.GetLogger("geomesh")
	logger.Debugf("generated %d tiles at zoom %d", len(designs), zoom)

	return designs, nil
}
