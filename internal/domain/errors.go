package domain

import "errors"

var (
	// ErrSourceUnreadable means the input workbook is missing, unreadable,
	// or has no worksheet.
	ErrSourceUnreadable = errors.New("source not found or unreadable")

	// ErrColumnMissing means a required column is absent after the rename.
	ErrColumnMissing = errors.New("required column missing")

	// ErrDestinationUnwritable means the output file could not be written.
	ErrDestinationUnwritable = errors.New("destination not writable")
)
