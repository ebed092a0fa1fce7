package domain

import "errors"

var (
	ErrBackupMissing   = errors.New("backup file not found")
	ErrDuplicateRowID  = errors.New("row ID already exists")
	ErrInvalidValue    = errors.New("invalid value")
	ErrLayoutMissing   = errors.New("layout not found")
	ErrNoArchive       = errors.New("no archive loaded")
	ErrRowNotFound     = errors.New("row not found")
	ErrTableNotFound   = errors.New("table not found")
	ErrValueOutOfRange = errors.New("value out of range")
)
