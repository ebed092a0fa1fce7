package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paramdex/paramdex/internal/domain"
)

func TestJSONLayoutSource_LoadLayouts(t *testing.T) {
	dir := t.TempDir()
	layout := weaponLayout(t)
	layout.Enums = map[string][]domain.EnumOption{"FLAG": {{Label: "Off", Value: 0}, {Label: "On", Value: 1}}}
	layout.Cells[1].Enum = "FLAG"
	require.NoError(t, WriteLayout(dir, layout))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Broken.json"), []byte(`{"cells": [{"name": "x", "type": "s33"}]}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	layouts, err := NewJSONLayoutSource().LoadLayouts(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, layouts, 1)

	got := layouts["Weapon"]
	require.NotNil(t, got)
	assert.Equal(t, "Weapons", got.Description)
	require.Len(t, got.Cells, len(layout.Cells))
	for i, def := range layout.Cells {
		assert.Equal(t, def.Name, got.Cells[i].Name)
		assert.Equal(t, def.Kind, got.Cells[i].Kind)
		assert.True(t, def.Default.Equal(got.Cells[i].Default), "default of %s", def.Name)
	}
	assert.Equal(t, "FLAG", got.Cells[1].Enum)
	assert.Len(t, got.Enums["FLAG"], 2)
}

func TestLayoutFile_Defaults(t *testing.T) {
	tests := []struct {
		name    string
		cell    LayoutCell
		want    string
		wantErr bool
	}{
		{name: "integer", cell: LayoutCell{Name: "a", Type: "s16", Default: "-3"}, want: "-3"},
		{name: "hex", cell: LayoutCell{Name: "b", Type: "x8", Default: "1F"}, want: "1F"},
		{name: "bool", cell: LayoutCell{Name: "c", Type: "b8", Default: "true"}, want: "true"},
		{name: "unset", cell: LayoutCell{Name: "d", Type: "u32"}, want: "0"},
		{name: "padding", cell: LayoutCell{Name: "e", Type: "dummy", Size: 3}, want: "000000"},
		{name: "out of range", cell: LayoutCell{Name: "f", Type: "u8", Default: "300"}, wantErr: true},
		{name: "fixstr too long", cell: LayoutCell{Name: "g", Type: "fixstr", Size: 2, Default: "abc"}, wantErr: true},
		{name: "unknown type", cell: LayoutCell{Name: "h", Type: "s64"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := LayoutFile{Cells: []LayoutCell{tt.cell}}.toDomain("L")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, layout.Cells[0].Default.String())
		})
	}
}
