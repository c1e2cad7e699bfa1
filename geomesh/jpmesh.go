package geomesh

import (
	"fmt"
	"math"
	"strconv"

	"github.com/hhkbp2/go-logging"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v2"
)

//--------------------------------------
// 地域メッシュコード処理
// ref: 『統計に用いる標準地域メッシュおよび標準地域メッシュコード』
// ref: 地域メッシュ統計の特質・沿革 p12 (https://www.stat.go.jp/data/mesh/pdf/gaiyo1.pdf)
//--------------------------------------

// メッシュ次数
type MeshLevel int

const (
	MeshLevelFirst     MeshLevel = iota // 第1次メッシュ (約80km)
	MeshLevelSecondary                  // 第2次メッシュ (約10km)
	MeshLevelStandard                   // 基準地域メッシュ (約1km)
	MeshLevelHalf                       // 2分の1地域メッシュ (約500m)
	MeshLevelQuarter                    // 4分の1地域メッシュ (約250m)
)

// 各次数の固定定数。
// セルの大きさは再分割の浮動小数演算で求めず、小数第10位で切り捨てた
// 固定値を使います。これにより四分の一メッシュまでビット再現可能な境界が得られます。
//
//	緯度方向: 40分, 5分, 30秒, 15秒, 7.5秒
//	経度方向: 1度, 7.5分, 45秒, 22.5秒, 11.25秒
var meshLevels = [...]struct {
	name    string
	codeLen int
	latUnit float64
	lonUnit float64
}{
	MeshLevelFirst:     {"1st", 4, 0.6666666666, 1.0},
	MeshLevelSecondary: {"2nd", 6, 0.0833333333, 0.125},
	MeshLevelStandard:  {"standard", 8, 0.0083333333, 0.0125},
	MeshLevelHalf:      {"half", 9, 0.0041666666, 0.00625},
	MeshLevelQuarter:   {"quarter", 10, 0.0020833333, 0.003125},
}

// メッシュ名 ("1st", "2nd", "standard", "half", "quarter") から次数を取得します。
func ParseMeshLevel(name string) (MeshLevel, error) {
	for level, spec := range meshLevels {
		if spec.name == name {
			return MeshLevel(level), nil
		}
	}
	return 0, eris.Wrapf(ErrInvalidGridSpec, "mesh level %q", name)
}

// メッシュ名の取得
func (l MeshLevel) String() string {
	return meshLevels[l].name
}

// コードの桁数の取得
func (l MeshLevel) CodeLength() int {
	return meshLevels[l].codeLen
}

// 地域メッシュコード
// 1地点に対する第1次～4分の1の5段階のコードを保持します。
// 上位のコードは常に下位のコードの接頭辞になります。
type MeshCode struct {
	First     string `yaml:"first_mesh_code"`
	Secondary string `yaml:"secandary_mesh_code"`
	Standard  string `yaml:"standard_mesh_code"`
	Half      string `yaml:"half_mesh_code"`
	Quarter   string `yaml:"quarter_mesh_code"`
}

// 経度 lon, 緯度 lat（いずれも10進法）から地域メッシュコードを取得します。
// 日本の適用範囲外の座標も同じ算術で計算されます（実用上の意味は持ちません）。
func NewMeshCode(lon float64, lat float64) MeshCode {
	// 緯度方向: 分単位で順に40分, 5分, 30秒, 15秒, 7.5秒へ divmod を繰り返す
	p, a := divmod(lat*60, 40)
	q, b := divmod(a, 5)
	r, c := divmod(b*60, 30)
	s, d := divmod(c, 15)
	t, _ := divmod(d, 7.5)

	// 経度方向: 1度, 7.5分, 45秒, 22.5秒, 11.25秒
	u := math.Floor(lon)
	f := lon - u
	v, g := divmod(f*60, 7.5)
	w, h := divmod(g*60, 45)
	x, j := divmod(h, 22.5)
	y, _ := divmod(j, 11.25)

	// 区画コード: 南西=1, 南東=2, 北西=3, 北東=4
	m := int(s)*2 + int(x) + 1
	n := int(t)*2 + int(y) + 1

	first := fmt.Sprintf("%02d%02d", int(p), int(u)-100)
	secondary := first + strconv.Itoa(int(q)) + strconv.Itoa(int(v))
	standard := secondary + strconv.Itoa(int(r)) + strconv.Itoa(int(w))
	half := standard + strconv.Itoa(m)
	quarter := half + strconv.Itoa(n)

	return MeshCode{
		First:     first,
		Secondary: secondary,
		Standard:  standard,
		Half:      half,
		Quarter:   quarter,
	}
}

// 指定した次数のコードの取得
func (mc MeshCode) Code(level MeshLevel) string {
	switch level {
	case MeshLevelFirst:
		return mc.First
	case MeshLevelSecondary:
		return mc.Secondary
	case MeshLevelStandard:
		return mc.Standard
	case MeshLevelHalf:
		return mc.Half
	}
	return mc.Quarter
}

// YAML形式
func (mc MeshCode) String() string {
	out, err := yaml.Marshal(mc)
	if err != nil {
		return ""
	}
	return string(out)
}

// メッシュコード code から範囲（経緯度）への変換
// コードの桁数 (4, 6, 8, 9, 10) が次数を決定します。
// 範囲の原点はコードを上位の次数から順に復元した累積値、
// 最大値は原点にその次数の固定セル寸法を加えた値です。
func MeshCodeToBounds(code string) (Bounds, error) {
	for _, ch := range code {
		if ch < '0' || ch > '9' {
			return Bounds{}, eris.Wrapf(ErrInvalidCodeFormat, "code %q", code)
		}
	}

	var level MeshLevel
	switch len(code) {
	case 4:
		level = MeshLevelFirst
	case 6:
		level = MeshLevelSecondary
	case 8:
		level = MeshLevelStandard
	case 9:
		level = MeshLevelHalf
	case 10:
		level = MeshLevelQuarter
	default:
		return Bounds{}, eris.Wrapf(ErrInvalidCodeLength, "code %q has %d digits", code, len(code))
	}

	// 第1次メッシュ: 緯度40分間隔、経度1度間隔
	lat, _ := strconv.Atoi(code[0:2])
	lon, _ := strconv.Atoi(code[2:4])
	y := float64(lat) * meshLevels[MeshLevelFirst].latUnit
	x := float64(lon + 100)

	if level >= MeshLevelSecondary {
		// 第2次メッシュ: 緯度5分間隔、経度7.5分間隔
		y += float64(code[4]-'0') * meshLevels[MeshLevelSecondary].latUnit
		x += float64(code[5]-'0') * meshLevels[MeshLevelSecondary].lonUnit
	}
	if level >= MeshLevelStandard {
		// 基準地域メッシュ: 緯度30秒間隔、経度45秒間隔
		y += float64(code[6]-'0') * meshLevels[MeshLevelStandard].latUnit
		x += float64(code[7]-'0') * meshLevels[MeshLevelStandard].lonUnit
	}
	if level >= MeshLevelHalf {
		latOff, lonOff, err := quadrantOffsets(code, 8)
		if err != nil {
			return Bounds{}, err
		}
		y += float64(latOff) * meshLevels[MeshLevelHalf].latUnit
		x += float64(lonOff) * meshLevels[MeshLevelHalf].lonUnit
	}
	if level >= MeshLevelQuarter {
		latOff, lonOff, err := quadrantOffsets(code, 9)
		if err != nil {
			return Bounds{}, err
		}
		y += float64(latOff) * meshLevels[MeshLevelQuarter].latUnit
		x += float64(lonOff) * meshLevels[MeshLevelQuarter].lonUnit
	}

	return Bounds{
		XMin: x,
		YMin: y,
		XMax: x + meshLevels[level].lonUnit,
		YMax: y + meshLevels[level].latUnit,
	}, nil
}

// 区画コード（南西=1, 南東=2, 北西=3, 北東=4）から緯度・経度方向のオフセットを取得します。
func quadrantOffsets(code string, pos int) (latOff int, lonOff int, err error) {
	d := int(code[pos] - '0')
	if d < 1 || d > 4 {
		return 0, 0, eris.Wrapf(ErrInvalidQuadrantDigit, "digit %d at position %d of %q", d, pos, code)
	}
	return (d - 1) / 2, (d - 1) % 2, nil
}

// 生成された1つのメッシュ
type MeshCell struct {
	Code   string
	Bounds Bounds
}

// 指定した範囲（経緯度）に重なる地域メッシュをすべて生成します。
// 範囲の南西端と北東端のメッシュ番号から行・列の整数範囲を求め、
// 行方向（緯度昇順）、列方向（経度昇順）の順に網羅的に列挙します。
// 親メッシュ境界をまたぐ桁の繰り上がりも整数演算で吸収されるため、
// 重複も欠落も発生しません。
func GenerateMesh(b Bounds, level MeshLevel) ([]MeshCell, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	rowMin, colMin := meshIndexOf(b.XMin, b.YMin, level)
	rowMax, colMax := meshIndexOf(b.XMax, b.YMax, level)

	cells := make([]MeshCell, 0, (rowMax-rowMin+1)*(colMax-colMin+1))
	for row := rowMin; row <= rowMax; row++ {
		for col := colMin; col <= colMax; col++ {
			code := meshCodeOf(row, col, level)
			bounds, err := MeshCodeToBounds(code)
			if err != nil {
				return nil, err
			}
			cells = append(cells, MeshCell{Code: code, Bounds: bounds})
		}
	}

	logger := logging.GetLogger("geomesh")
	logger.Debugf("generated %d %s mesh cells (%d rows x %d cols)",
		len(cells), level, rowMax-rowMin+1, colMax-colMin+1)

	return cells, nil
}

// 地点の属するメッシュの通し番号（行=緯度方向、列=経度方向）を取得します。
// 番号は次数に応じた全域の整数インデックスで、文字列比較と異なり
// 親メッシュ境界での桁の折り返しを含みません。
func meshIndexOf(lon float64, lat float64, level MeshLevel) (row int, col int) {
	p, a := divmod(lat*60, 40)
	q, b := divmod(a, 5)
	r, c := divmod(b*60, 30)
	s, d := divmod(c, 15)
	t, _ := divmod(d, 7.5)

	u := math.Floor(lon)
	f := lon - u
	v, g := divmod(f*60, 7.5)
	w, h := divmod(g*60, 45)
	x, j := divmod(h, 22.5)
	y, _ := divmod(j, 11.25)

	row = int(p)
	col = int(u) - 100
	if level >= MeshLevelSecondary {
		row = row*8 + int(q)
		col = col*8 + int(v)
	}
	if level >= MeshLevelStandard {
		row = row*10 + int(r)
		col = col*10 + int(w)
	}
	if level >= MeshLevelHalf {
		row = row*2 + int(s)
		col = col*2 + int(x)
	}
	if level >= MeshLevelQuarter {
		row = row*2 + int(t)
		col = col*2 + int(y)
	}
	return row, col
}

// 通し番号 (row, col) からメッシュコード文字列を復元します。
// meshIndexOf の逆変換です。
func meshCodeOf(row int, col int, level MeshLevel) string {
	var s, t, x, y int
	if level >= MeshLevelQuarter {
		t = row % 2
		row /= 2
		y = col % 2
		col /= 2
	}
	if level >= MeshLevelHalf {
		s = row % 2
		row /= 2
		x = col % 2
		col /= 2
	}
	var r, w int
	if level >= MeshLevelStandard {
		r = row % 10
		row /= 10
		w = col % 10
		col /= 10
	}
	var q, v int
	if level >= MeshLevelSecondary {
		q = row % 8
		row /= 8
		v = col % 8
		col /= 8
	}

	code := fmt.Sprintf("%02d%02d", row, col)
	if level >= MeshLevelSecondary {
		code += strconv.Itoa(q) + strconv.Itoa(v)
	}
	if level >= MeshLevelStandard {
		code += strconv.Itoa(r) + strconv.Itoa(w)
	}
	if level >= MeshLevelHalf {
		code += strconv.Itoa(s*2 + x + 1)
	}
	if level >= MeshLevelQuarter {
		code += strconv.Itoa(t*2 + y + 1)
	}
	return code
}

// 商（切り下げ）と剰余の取得
func divmod(a float64, b float64) (float64, float64) {
	q := math.Floor(a / b)
	return q, a - q*b
}
