package geomesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CreateSquareFromLength(t *testing.T) {
	// 左上(0, 100)から水平10、垂直5の四角形
	square := CreateSquareFromLength(0, 100, 10, 5)
	assert.Equal(t, Bounds{XMin: 0, YMin: 95, XMax: 10, YMax: 100}, square)

	// 垂直の指定を省略すると正方形になる
	square = CreateSquareFromLength(0, 100, 10, 0)
	assert.Equal(t, Bounds{XMin: 0, YMin: 90, XMax: 10, YMax: 100}, square)
}

func Test_CreateSquareFromArea(t *testing.T) {
	square := CreateSquareFromArea(0, 100, 100)
	assert.Equal(t, Bounds{XMin: 0, YMin: 90, XMax: 10, YMax: 100}, square)
}

func Test_GenerateFromLength(t *testing.T) {
	sm := NewSquareMesh(0, 0, 100, 100)

	cells, err := sm.GenerateFromLength(10, 0)
	assert.NoError(t, err)
	assert.Len(t, cells, 100)

	// 左上始まりで右向き、次いで下向きに列挙される
	assert.Equal(t, "0/0", cells[0].XY)
	assert.Equal(t, Bounds{XMin: 0, YMin: 90, XMax: 10, YMax: 100}, cells[0].Bounds)
	assert.Equal(t, "9/0", cells[9].XY)
	assert.Equal(t, "0/1", cells[10].XY)
	assert.Equal(t, "9/9", cells[99].XY)

	// IDは通し番号
	for i, cell := range cells {
		assert.Equal(t, i, cell.ID)
	}
}

func Test_GenerateFromLength_Rectangular(t *testing.T) {
	sm := NewSquareMesh(0, 0, 100, 50)

	cells, err := sm.GenerateFromLength(20, 10)
	assert.NoError(t, err)
	// 5列 x 5行
	assert.Len(t, cells, 25)
	assert.Equal(t, Bounds{XMin: 0, YMin: 40, XMax: 20, YMax: 50}, cells[0].Bounds)
}

func Test_GenerateFromArea(t *testing.T) {
	sm := NewSquareMesh(0, 0, 100, 100)

	cells, err := sm.GenerateFromArea(100)
	assert.NoError(t, err)
	assert.Len(t, cells, 100)
	assert.Equal(t, Bounds{XMin: 0, YMin: 90, XMax: 10, YMax: 100}, cells[0].Bounds)
}

func Test_GenerateFromLength_Invalid(t *testing.T) {
	sm := NewSquareMesh(0, 0, 100, 100)

	_, err := sm.GenerateFromLength(-10, 0)
	assert.ErrorIs(t, err, ErrInvalidGridSpec)

	_, err = NewSquareMesh(100, 0, 0, 100).GenerateFromLength(10, 0)
	assert.ErrorIs(t, err, ErrInvalidBoundingBox)
}

func Test_GenerateFromArea_Invalid(t *testing.T) {
	sm := NewSquareMesh(0, 0, 100, 100)

	_, err := sm.GenerateFromArea(0)
	assert.ErrorIs(t, err, ErrInvalidGridSpec)
}
