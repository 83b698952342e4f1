// Package excel writes the inventory to xlsx and reads stock counts back.
package excel

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Spok95/concretrack/internal/domain/materials"
)

var ErrBadFile = errors.New("invalid stock count file")

var header = []interface{}{
	"id", "name", "unit", "current_stock", "min_stock", "max_stock", "status", "cost_per_unit", "supplier",
}

const (
	colID    = 0
	colStock = 3
)

// StockCount is one row of a physical stock count.
type StockCount struct {
	Row   int
	ID    int64
	Stock float64
}

func ExportInventory(ms []materials.Material) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	for i, m := range ms {
		row := []interface{}{
			m.ID, m.Name, string(m.Unit), m.CurrentStock, m.MinStock, m.MaxStock,
			string(m.Status), m.CostPerUnit, m.Supplier,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseStockCounts reads id and current_stock from the first sheet.
// Rows with an empty stock cell are skipped.
func ParseStockCounts(data []byte) ([]StockCount, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFile, err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFile, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: no data rows", ErrBadFile)
	}
	if len(rows[0]) <= colStock {
		return nil, fmt.Errorf("%w: expected at least %d columns", ErrBadFile, colStock+1)
	}

	var out []StockCount
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) <= colStock {
			continue
		}
		idStr := strings.TrimSpace(row[colID])
		stockStr := strings.TrimSpace(row[colStock])
		if idStr == "" || stockStr == "" {
			continue
		}
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: id %q", ErrBadFile, i+1, idStr)
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(stockStr, ",", "."), 64)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: row %d: current_stock %q", ErrBadFile, i+1, stockStr)
		}
		out = append(out, StockCount{Row: i + 1, ID: id, Stock: v})
	}
	return out, nil
}
