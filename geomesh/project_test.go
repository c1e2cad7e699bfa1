package geomesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseCRS(t *testing.T) {
	crs, err := ParseCRS(4326)
	assert.NoError(t, err)
	assert.Equal(t, CRSWGS84, crs)

	crs, err = ParseCRS(3857)
	assert.NoError(t, err)
	assert.Equal(t, CRSWebMercator, crs)

	_, err = ParseCRS(6677)
	assert.ErrorIs(t, err, ErrInvalidCRS)
}

func Test_TransformXY(t *testing.T) {
	// 原点は変換後も原点
	xy, err := TransformXY(0, 0, CRSWGS84, CRSWebMercator)
	assert.NoError(t, err)
	assert.InDelta(t, 0.0, xy.X, 1e-9)
	assert.InDelta(t, 0.0, xy.Y, 1e-9)

	// 東経180度はWebメルカトルの東端
	xy, err = TransformXY(180, 0, CRSWGS84, CRSWebMercator)
	assert.NoError(t, err)
	assert.InDelta(t, 20037508.342789244, xy.X, 1e-6)
}

func Test_TransformXY_RoundTrip(t *testing.T) {
	lon, lat := 139.7417, 35.6581

	m, err := TransformXY(lon, lat, CRSWGS84, CRSWebMercator)
	assert.NoError(t, err)

	back, err := TransformXY(m.X, m.Y, CRSWebMercator, CRSWGS84)
	assert.NoError(t, err)
	assert.InDelta(t, lon, back.X, 1e-9)
	assert.InDelta(t, lat, back.Y, 1e-9)
}

func Test_TransformXY_SameCRS(t *testing.T) {
	xy, err := TransformXY(139.7, 35.6, CRSWGS84, CRSWGS84)
	assert.NoError(t, err)
	assert.Equal(t, 139.7, xy.X)
	assert.Equal(t, 35.6, xy.Y)
}

func Test_TransformXY_InvalidCRS(t *testing.T) {
	_, err := TransformXY(0, 0, CRS(9999), CRSWGS84)
	assert.ErrorIs(t, err, ErrInvalidCRS)
}

func Test_Bounds_Validate(t *testing.T) {
	assert.NoError(t, Bounds{XMin: 0, YMin: 0, XMax: 1, YMax: 1}.Validate())
	assert.ErrorIs(t, Bounds{XMin: 1, YMin: 0, XMax: 0, YMax: 1}.Validate(), ErrInvalidBoundingBox)
	assert.ErrorIs(t, Bounds{XMin: 0, YMin: 1, XMax: 1, YMax: 1}.Validate(), ErrInvalidBoundingBox)
}

func Test_Bounds_Polygon(t *testing.T) {
	poly := Bounds{XMin: 139.0, YMin: 35.0, XMax: 140.0, YMax: 36.0}.Polygon()

	assert.Len(t, poly, 1)
	ring := poly[0]
	assert.Len(t, ring, 5)
	// 始点と終点が一致する閉じたリング
	assert.Equal(t, ring[0], ring[4])
	assert.True(t, ring.Closed())
}
