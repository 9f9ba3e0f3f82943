package world

import "testing"

// newFixtureMap строит эталонную сетку 11x10 (x: -5..5, z: -5..4)
func newFixtureMap(t *testing.T) *TerrainMap {
	t.Helper()

	c := NewColumn
	columns := [][]Column{
		{c(Snow, 8), c(Snow, 5), c(Snow, 5), c(Snow, 5), c(Grass, 5), c(Grass, 5), c(Grass, 5), c(Snow, 5), c(Snow, 5), c(Snow, 8)},
		{c(Grass, 5), c(Grass, 5), c(Grass, 5), c(Grass, 4), c(Snow, 5), c(Snow, 6), c(Snow, 7), c(Grass, 5), c(Grass, 5), c(Grass, 5)},
		{c(Grass, 5), c(Grass, 5), c(Grass, 3), c(Grass, 4), c(Grass, 5), c(Grass, 5), c(Grass, 5), c(Grass, 5), c(Grass, 5), c(Grass, 5)},
		{c(Grass, 4), c(Grass, 4), c(Grass, 3), c(Grass, 4), c(Grass, 5), c(Grass, 4), c(Grass, 4), c(Grass, 5), c(Grass, 5), c(Grass, 5)},
		{c(Grass, 4), c(Grass, 4), c(Grass, 4), c(Grass, 4), c(Grass, 5), c(Grass, 6), c(Grass, 5), c(Grass, 4), c(Grass, 4), c(Grass, 4)},
		{c(Grass, 3), c(Grass, 3), c(Grass, 3), c(Grass, 4), c(Grass, 5), c(Grass, 6), c(Grass, 3), c(Grass, 3), c(Grass, 3), c(Grass, 3)},
		{c(Grass, 2), c(Grass, 2), c(Grass, 3), c(Grass, 4), c(Grass, 5), c(Grass, 4), c(Grass, 2), c(Grass, 2), c(Grass, 2), c(Grass, 2)},
		{c(Grass, 1), c(Grass, 1), c(Grass, 3), c(Grass, 4), c(Grass, 4), c(Grass, 3), c(Grass, 2), c(Grass, 2), c(Grass, 2), c(Grass, 2)},
		{c(Grass, 1), c(Grass, 2), c(Grass, 3), c(Grass, 3), c(Grass, 3), c(Grass, 2), c(Grass, 2), c(Grass, 2), c(Grass, 2), c(Grass, 2)},
		{c(Grass, 2), c(Grass, 8), c(Grass, 3), c(Grass, 4), c(Grass, 3), c(Grass, 2), c(Grass, 2), c(Grass, 2), c(Grass, 8), c(Grass, 2)},
		{c(Grass, 8), c(Grass, 3), c(Grass, 3), c(Grass, 4), c(Grass, 3), c(Grass, 4), c(Grass, 3), c(Grass, 3), c(Grass, 2), c(Grass, 8)},
	}

	m, err := NewTerrainMapFromColumns(columns)
	if err != nil {
		t.Fatalf("Не удалось построить эталонную карту: %v", err)
	}
	return m
}
