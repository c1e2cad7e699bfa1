package geomesh

import (
	"math"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

//--------------------------------------
// 度分秒変換
//--------------------------------------

// 度分秒経緯度（DDDMMSS.sss形式）を10進法経緯度に変換します。
// 整数部は6桁または7桁（度2～3桁、分2桁、秒2桁）でなければなりません。
// digits は小数点以下の桁数で、0以下の場合は9桁になります。
func DMSToDegree(dms float64, digits int) (float64, error) {
	if digits <= 0 {
		digits = 9
	}

	text := strconv.FormatFloat(dms, 'f', -1, 64)
	intPart, fracPart, found := strings.Cut(text, ".")
	if !found {
		fracPart = "0"
	}
	if len(intPart) < 6 || 7 < len(intPart) {
		return 0, eris.Errorf("dms must have a 6- or 7-digit integer part: %s", text)
	}

	sec, err := strconv.ParseFloat(intPart[len(intPart)-2:]+"."+fracPart, 64)
	if err != nil {
		return 0, eris.Errorf("dms %s is not a sexagesimal value", text)
	}
	min, _ := strconv.Atoi(intPart[len(intPart)-4 : len(intPart)-2])
	deg, _ := strconv.Atoi(intPart[:len(intPart)-4])

	value := float64(deg) + float64(min)/60 + sec/3600
	scale := math.Pow10(digits)
	return math.Round(value*scale) / scale, nil
}

// 度分秒の経度・緯度の組を10進法に変換します。
func DMSToDegreeLonLat(lon float64, lat float64) (XY, error) {
	degLon, err := DMSToDegree(lon, 0)
	if err != nil {
		return XY{}, err
	}
	degLat, err := DMSToDegree(lat, 0)
	if err != nil {
		return XY{}, err
	}
	return XY{X: degLon, Y: degLat}, nil
}
