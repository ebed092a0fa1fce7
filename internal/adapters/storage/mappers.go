package storage

import (
	"encoding/json"
	"fmt"

	"github.com/paramdex/paramdex/internal/domain"
)

// rowModelToDomain decodes a stored row against the table schema
func rowModelToDomain(m ParamRowModel, t *domain.Table) (*domain.Row, error) {
	var encoded []string
	if err := json.Unmarshal([]byte(m.Data), &encoded); err != nil {
		return nil, fmt.Errorf("row %d: malformed data: %w", m.ID, err)
	}
	if len(encoded) != len(t.Schema) {
		return nil, fmt.Errorf("row %d: has %d cells, layout expects %d", m.ID, len(encoded), len(t.Schema))
	}
	row := t.NewRow(m.ID, m.Name)
	for i, text := range encoded {
		v, err := domain.Decode(t.Schema[i].Kind, text)
		if err != nil {
			return nil, fmt.Errorf("row %d cell %s: %w", m.ID, t.Schema[i].Name, err)
		}
		row.Cells[i].Value = v
	}
	return row, nil
}

// domainToRowModel encodes a row for storage
func domainToRowModel(table string, r *domain.Row) (ParamRowModel, error) {
	encoded := make([]string, len(r.Cells))
	for i := range r.Cells {
		encoded[i] = r.Cells[i].Value.Encode()
	}
	data, err := json.Marshal(encoded)
	if err != nil {
		return ParamRowModel{}, fmt.Errorf("row %d: %w", r.ID, err)
	}
	return ParamRowModel{
		Data:  string(data),
		ID:    r.ID,
		Name:  r.Name,
		Table: table,
	}, nil
}

// domainToTableModel converts a table header to ParamTableModel (GORM)
func domainToTableModel(t *domain.Table, position int, layoutName string) ParamTableModel {
	return ParamTableModel{
		Description: t.Description,
		LayoutName:  layoutName,
		Name:        t.Name,
		Position:    position,
	}
}
