package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paramdex/paramdex/internal/config"
	"github.com/paramdex/paramdex/internal/domain"
)

func TestParseKeyValues(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "l", want: []string{"l"}},
		{input: "up, k", want: []string{"up", "k"}},
		{input: " , ctrl+s,,", want: []string{"ctrl+s"}},
		{input: "", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseKeyValues(tt.input))
		})
	}
}

func TestSummarizeTable(t *testing.T) {
	layout := &domain.Layout{
		Description: "Goods",
		Cells:       []domain.CellDef{{Name: "price", Kind: domain.KindS32}},
	}
	table := domain.NewTable("EquipParamGoods", layout)
	for _, id := range []int64{1, 2, 3} {
		_, err := table.CreateRow(id, "")
		require.NoError(t, err)
	}
	v, err := domain.IntValue(domain.KindS32, 120)
	require.NoError(t, err)
	require.NoError(t, table.Rows[1].Cells[0].Set(v))

	s := summarizeTable(table)
	assert.Equal(t, tableSummary{Name: "EquipParamGoods", Rows: 3, Modified: 1, Description: "Goods"}, s)

	table.MarkError("row 7 is truncated")
	assert.Equal(t, "row 7 is truncated", summarizeTable(table).Error)
}

func TestTableWarnings(t *testing.T) {
	ok := domain.NewTable("Good", &domain.Layout{})
	broken := domain.NewTable("Broken", &domain.Layout{})
	broken.MarkError("unknown layout")

	warnings := tableWarnings(domain.NewCatalog("a.db", []*domain.Table{ok, broken}))

	require.Len(t, warnings, 1)
	assert.EqualError(t, warnings[0], "Broken: unknown layout")
}

func TestArchivePath(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		env      string
		settings string
		want     string
		wantErr  bool
	}{
		{name: "flag wins", flag: "/a.db", env: "/b.db", settings: "/c.db", want: "/a.db"},
		{name: "env over settings", env: "/b.db", settings: "/c.db", want: "/b.db"},
		{name: "settings", settings: "/c.db", want: "/c.db"},
		{name: "none", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PARAMDEX_ARCHIVE", tt.env)
			c := &CLI{Archive: tt.flag, settings: &config.Settings{ArchivePath: tt.settings}}

			got, err := c.archivePath()
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrNoArchive)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
