package geomesh

import (
	"github.com/rotisserie/eris"
)

//--------------------------------------
// エラー定義
// すべて入力検証エラー。操作の冒頭で同期的に検出し、そのまま呼び出し元へ返します。
// 内部でのリトライや回復は行いません。
//--------------------------------------

var (
	// メッシュコードに数字以外の文字が含まれている
	ErrInvalidCodeFormat = eris.New("mesh code must contain only digits")

	// メッシュコードの桁数が 4, 6, 8, 9, 10 のいずれでもない
	ErrInvalidCodeLength = eris.New("mesh code length must be one of 4, 6, 8, 9 or 10")

	// 2分の1・4分の1メッシュの区画コードが 1～4 の範囲外
	ErrInvalidQuadrantDigit = eris.New("quadrant digit must be 1, 2, 3 or 4")

	// ズームレベルが負
	ErrInvalidZoomLevel = eris.New("zoom level must be a non-negative integer")

	// 範囲指定が不正 (min >= max)
	ErrInvalidBoundingBox = eris.New("bounding box min values must be less than max values")

	// メッシュ名などのグリッド指定が不正
	ErrInvalidGridSpec = eris.New("unrecognized grid specification")

	// サポート外の座標参照系
	ErrInvalidCRS = eris.New("unsupported coordinate reference system")
)
