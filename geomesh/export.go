package geomesh

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/paulmach/orb/geojson"
)

//--------------------------------------
// 出力処理
// 列挙結果をGeoJSONまたはCSVとして書き出します。
// コア側は常に素のスライスを返し、表形式への整形はここで行います。
//--------------------------------------

// GeoJSON形式（地域メッシュ）
// 各メッシュをポリゴンのフィーチャとし、mesh_codeプロパティを付加します。
func MeshToGeoJSON(cells []MeshCell, buf *bytes.Buffer) error {
	fc := geojson.NewFeatureCollection()
	for _, cell := range cells {
		f := geojson.NewFeature(cell.Bounds.Polygon())
		f.Properties["mesh_code"] = cell.Code
		fc.Append(f)
	}
	return writeJSON(fc, buf)
}

// CSV形式（地域メッシュ）
func MeshToCSV(cells []MeshCell, buf *bytes.Buffer) {
	buf.WriteString("mesh_code,x_min,y_min,x_max,y_max\n")
	for _, cell := range cells {
		buf.WriteString(cell.Code)
		writeBounds(cell.Bounds, buf)
		buf.WriteString("\n")
	}
}

// GeoJSON形式（タイルメッシュ）
// 各タイルを投影座標のポリゴンのフィーチャとし、番号と解像度のプロパティを付加します。
func TilesToGeoJSON(designs []*TileDesign, buf *bytes.Buffer) error {
	fc := geojson.NewFeatureCollection()
	for _, td := range designs {
		f := geojson.NewFeature(td.Bounds.Polygon())
		f.Properties["zxy"] = td.ZXY()
		f.Properties["zoom_level"] = td.ZoomLevel
		f.Properties["x_idx"] = td.XIdx
		f.Properties["y_idx"] = td.YIdx
		f.Properties["x_resolution"] = td.XResolution()
		f.Properties["y_resolution"] = td.YResolution()
		fc.Append(f)
	}
	return writeJSON(fc, buf)
}

// CSV形式（タイルメッシュ）
func TilesToCSV(designs []*TileDesign, buf *bytes.Buffer) {
	buf.WriteString("zxy,zoom_level,x_idx,y_idx,x_resolution,y_resolution,x_min,y_min,x_max,y_max\n")
	for _, td := range designs {
		buf.WriteString(td.ZXY())
		buf.WriteString(",")
		buf.WriteString(strconv.Itoa(td.ZoomLevel))
		buf.WriteString(",")
		buf.WriteString(strconv.Itoa(td.XIdx))
		buf.WriteString(",")
		buf.WriteString(strconv.Itoa(td.YIdx))
		writeFloat(td.XResolution(), buf)
		writeFloat(td.YResolution(), buf)
		writeBounds(td.Bounds, buf)
		buf.WriteString("\n")
	}
}

// GeoJSON形式（四角形メッシュ）
func SquaresToGeoJSON(cells []SquareCell, buf *bytes.Buffer) error {
	fc := geojson.NewFeatureCollection()
	for _, cell := range cells {
		f := geojson.NewFeature(cell.Bounds.Polygon())
		f.Properties["id"] = cell.ID
		f.Properties["xy"] = cell.XY
		fc.Append(f)
	}
	return writeJSON(fc, buf)
}

// CSV形式（四角形メッシュ）
func SquaresToCSV(cells []SquareCell, buf *bytes.Buffer) {
	buf.WriteString("id,xy,x_min,y_min,x_max,y_max\n")
	for _, cell := range cells {
		buf.WriteString(strconv.Itoa(cell.ID))
		buf.WriteString(",")
		buf.WriteString(cell.XY)
		writeBounds(cell.Bounds, buf)
		buf.WriteString("\n")
	}
}

func writeJSON(fc *geojson.FeatureCollection, buf *bytes.Buffer) error {
	out, err := json.Marshal(fc)
	if err != nil {
		return err
	}
	buf.Write(out)
	return nil
}

func writeBounds(b Bounds, buf *bytes.Buffer) {
	writeFloat(b.XMin, buf)
	writeFloat(b.YMin, buf)
	writeFloat(b.XMax, buf)
	writeFloat(b.YMax, buf)
}

func writeFloat(v float64, buf *bytes.Buffer) {
	buf.WriteString(",")
	buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
}
