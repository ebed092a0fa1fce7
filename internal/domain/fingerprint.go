package domain

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes every table name, row ID, row name and cell value.
// Two catalogs with equal content have equal fingerprints.
func (c *Catalog) Fingerprint() uint64 {
	d := xxhash.New()
	sep := []byte{0}
	for _, t := range c.Tables {
		_, _ = d.WriteString(t.Name)
		_, _ = d.Write(sep)
		for _, row := range t.Rows {
			_, _ = d.WriteString(strconv.FormatInt(row.ID, 10))
			_, _ = d.Write(sep)
			_, _ = d.WriteString(row.Name)
			_, _ = d.Write(sep)
			for i := range row.Cells {
				_, _ = d.WriteString(row.Cells[i].Value.Encode())
				_, _ = d.Write(sep)
			}
		}
	}
	return d.Sum64()
}
