// GeoMesh
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/udawtr/geomesh-go/geomesh"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	// コマンドライン引数の処理
	parser := argparse.NewParser("GeoMesh", "Converts coordinates to Japanese standard area mesh codes and web map tiles")

	lat := parser.FloatPositional(&argparse.Options{
		Default: 35.6581,
		Help:    "対象地点の緯度（10進法）"})

	lon := parser.FloatPositional(&argparse.Options{
		Default: 139.7417,
		Help:    "対象地点の経度（10進法）"})

	mode := parser.Selector("m", "mode", []string{"code", "jpmesh", "tile", "square"}, &argparse.Options{
		Default: "code",
		Help:    "処理モード メッシュコード=code(デフォルト), 地域メッシュ生成=jpmesh, タイル=tile, 四角形メッシュ=square"})

	meshLevel := parser.Selector("", "mesh_level", []string{"1st", "2nd", "standard", "half", "quarter"}, &argparse.Options{
		Default: "standard",
		Help:    "生成する地域メッシュの次数"})

	zoom := parser.Int("z", "zoom", &argparse.Options{
		Default: 15,
		Help:    "タイルのズームレベル"})

	crs := parser.Int("", "crs", &argparse.Options{
		Default: 4326,
		Help:    "入力座標のEPSGコード 4326 or 3857"})

	xMin := parser.Float("", "x_min", &argparse.Options{Default: 0.0, Help: "生成範囲の最小x座標"})
	yMin := parser.Float("", "y_min", &argparse.Options{Default: 0.0, Help: "生成範囲の最小y座標"})
	xMax := parser.Float("", "x_max", &argparse.Options{Default: 0.0, Help: "生成範囲の最大x座標"})
	yMax := parser.Float("", "y_max", &argparse.Options{Default: 0.0, Help: "生成範囲の最大y座標"})

	length := parser.Float("", "length", &argparse.Options{
		Default: 0.0,
		Help:    "四角形メッシュの辺の長さ（範囲座標と同じ単位）"})

	area := parser.Float("", "area", &argparse.Options{
		Default: 0.0,
		Help:    "四角形メッシュの面積（辺の長さの指定と排他）"})

	dms := parser.Flag("", "dms", &argparse.Options{
		Help: "経緯度を度分秒（DDDMMSS.sss形式）として解釈する"})

	format := parser.Selector("f", "file", []string{"GeoJSON", "CSV"}, &argparse.Options{
		Default: "GeoJSON",
		Help:    "出力形式 GeoJSON or CSV"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "保存ファイルパス"})

	verbose := parser.Flag("v", "verbose", &argparse.Options{
		Help: "デバッグログを出力する"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	if *verbose {
		logging.GetLogger("geomesh").SetLevel(logging.LevelDebug)
	}

	// 度分秒で指定された場合は10進法へ変換
	if *dms {
		xy, err := geomesh.DMSToDegreeLonLat(*lon, *lat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		*lon, *lat = xy.X, xy.Y
	}

	inCRS, err := geomesh.ParseCRS(*crs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	bbox := geomesh.Bounds{XMin: *xMin, YMin: *yMin, XMax: *xMax, YMax: *yMax}

	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	switch *mode {
	case "code":
		// 1地点の地域メッシュコードとタイル番号
		code := geomesh.NewMeshCode(*lon, *lat)
		buf.WriteString(code.String())

		design, err := geomesh.NewTileDesigner().FromLonLat(*lon, *lat, *zoom, inCRS)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		buf.WriteString(design.String())

	case "jpmesh":
		level, err := geomesh.ParseMeshLevel(*meshLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		cells, err := geomesh.GenerateMesh(bbox, level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		log.Printf("%d個の%sメッシュを生成しました", len(cells), level)
		if *format == "CSV" {
			geomesh.MeshToCSV(cells, buf)
		} else {
			if err := geomesh.MeshToGeoJSON(cells, buf); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s\n", err)
				os.Exit(1)
			}
		}

	case "tile":
		designs, err := geomesh.NewTileDesigner().Tiles(bbox, *zoom, inCRS)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		log.Printf("ズームレベル%dのタイルを%d個生成しました", *zoom, len(designs))
		if *format == "CSV" {
			geomesh.TilesToCSV(designs, buf)
		} else {
			if err := geomesh.TilesToGeoJSON(designs, buf); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s\n", err)
				os.Exit(1)
			}
		}

	case "square":
		sm := geomesh.NewSquareMesh(*xMin, *yMin, *xMax, *yMax)
		var cells []geomesh.SquareCell
		if *area > 0 {
			cells, err = sm.GenerateFromArea(*area)
		} else {
			cells, err = sm.GenerateFromLength(*length, 0)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		log.Printf("%d個の四角形メッシュを生成しました", len(cells))
		if *format == "CSV" {
			geomesh.SquaresToCSV(cells, buf)
		} else {
			if err := geomesh.SquaresToGeoJSON(cells, buf); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s\n", err)
				os.Exit(1)
			}
		}
	}

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		log.Printf("保存: %s", *filename)
		err := os.WriteFile(*filename, buf.Bytes(), os.ModePerm)
		if err != nil {
			panic(err)
		}
	}
}
