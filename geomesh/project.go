package geomesh

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
	"github.com/rotisserie/eris"
)

//--------------------------------------
// 座標変換
// 経緯度(EPSG:4326)とWebメルカトル(EPSG:3857)の相互変換のみを扱います。
// 任意のCRS対応は行いません。
//--------------------------------------

// 座標参照系
type CRS int

const (
	CRSWGS84       CRS = 4326 // 経緯度
	CRSWebMercator CRS = 3857 // Webメルカトル（メートル）
)

// EPSGコードからCRSを取得します。4326と3857のみサポートします。
func ParseCRS(epsg int) (CRS, error) {
	switch epsg {
	case 4326:
		return CRSWGS84, nil
	case 3857:
		return CRSWebMercator, nil
	}
	return 0, eris.Wrapf(ErrInvalidCRS, "EPSG:%d", epsg)
}

// CRS名の取得
func (c CRS) Name() string {
	switch c {
	case CRSWGS84:
		return "WGS 84"
	case CRSWebMercator:
		return "WGS 84 / Pseudo-Mercator"
	}
	return "unknown"
}

// 座標単位の取得
func (c CRS) Unit() string {
	if c == CRSWebMercator {
		return "metre"
	}
	return "degree"
}

// x座標とy座標を指定した座標系から別の座標系に変換します。
func TransformXY(x float64, y float64, in CRS, out CRS) (XY, error) {
	if _, err := ParseCRS(int(in)); err != nil {
		return XY{}, err
	}
	if _, err := ParseCRS(int(out)); err != nil {
		return XY{}, err
	}
	if in == out {
		return XY{X: x, Y: y}, nil
	}

	var p orb.Point
	if in == CRSWGS84 {
		p = project.WGS84.ToMercator(orb.Point{x, y})
	} else {
		p = project.Mercator.ToWGS84(orb.Point{x, y})
	}
	return XY{X: p[0], Y: p[1]}, nil
}
