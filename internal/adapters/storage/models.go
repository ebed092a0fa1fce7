package storage

import "time"

// MetaModel is the GORM model for archive metadata
type MetaModel struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null;default:''"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (MetaModel) TableName() string { return "meta" }

// ParamTableModel is the GORM model for one param table header
type ParamTableModel struct {
	Description string `gorm:"not null;default:''"`
	LayoutName  string `gorm:"not null;default:''"`
	Name        string `gorm:"primaryKey"`
	Position    int    `gorm:"not null;default:0;index:idx_position"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ParamTableModel) TableName() string { return "param_tables" }

// ParamRowModel is the GORM model for one row. Data holds the encoded cell
// values as a JSON array in schema order.
type ParamRowModel struct {
	Data  string `gorm:"not null;default:'[]'"`
	ID    int64  `gorm:"primaryKey;autoIncrement:false"`
	Name  string `gorm:"not null;default:''"`
	Table string `gorm:"column:table_name;primaryKey;index:idx_table"`
}

// TableName specifies the table name for GORM
func (ParamRowModel) TableName() string { return "param_rows" }
