package world

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Формат дампа колонок (до сжатия zstd):
//
//	"TMAP" | version u8 | width u32 LE | height u32 LE | (surface u8, height i8) * width*height
//
// Колонки идут в порядке x, затем z.
const (
	dumpMagic   = "TMAP"
	dumpVersion = 1

	maxDumpMemory = 13 + 2*MaxColumns // заголовок и два байта на колонку
)

var ErrBadDump = errors.New("terrain: некорректный дамп колонок")

// EncodeColumns пишет сжатый дамп всех колонок карты
func EncodeColumns(w io.Writer, m *TerrainMap) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}

	header := make([]byte, 0, 13)
	header = append(header, dumpMagic...)
	header = append(header, dumpVersion)
	header = binary.LittleEndian.AppendUint32(header, m.size.Width)
	header = binary.LittleEndian.AppendUint32(header, m.size.Height)
	if _, err := enc.Write(header); err != nil {
		enc.Close()
		return err
	}

	row := make([]byte, 0, 2*int(m.size.Height))
	for _, cols := range m.columns {
		row = row[:0]
		for _, col := range cols {
			row = append(row, byte(col.Surface), byte(col.Height))
		}
		if _, err := enc.Write(row); err != nil {
			enc.Close()
			return err
		}
	}
	return enc.Close()
}

// DecodeColumns читает дамп, записанный EncodeColumns. Карта возвращается незамороженной.
func DecodeColumns(r io.Reader) (*TerrainMap, error) {
	dec, err := zstd.NewReader(r, zstd.WithDecoderMaxMemory(maxDumpMemory))
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()

	var header [13]byte
	if _, err := io.ReadFull(dec, header[:]); err != nil {
		return nil, fmt.Errorf("%w: заголовок: %v", ErrBadDump, err)
	}
	if string(header[0:4]) != dumpMagic || header[4] != dumpVersion {
		return nil, fmt.Errorf("%w: неизвестная сигнатура", ErrBadDump)
	}
	size := NewSize(binary.LittleEndian.Uint32(header[5:9]), binary.LittleEndian.Uint32(header[9:13]))
	if err := size.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDump, err)
	}

	// колонки копятся по мере чтения, сетка выделяется только после полного дампа
	cells := make([]Column, 0, int(size.Height))
	row := make([]byte, 2*int(size.Height))
	for ix := 0; ix < int(size.Width); ix++ {
		if _, err := io.ReadFull(dec, row); err != nil {
			return nil, fmt.Errorf("%w: строка %d: %v", ErrBadDump, ix, err)
		}
		for iz := 0; iz < int(size.Height); iz++ {
			surface := SurfaceType(row[2*iz])
			if surface >= surfaceCount {
				return nil, fmt.Errorf("%w: тип поверхности %d", ErrBadDump, surface)
			}
			cells = append(cells, Column{Surface: surface, Height: int8(row[2*iz+1])})
		}
	}

	m := NewTerrainMap(size)
	for ix := range m.columns {
		copy(m.columns[ix], cells[ix*int(size.Height):])
	}
	return m, nil
}
