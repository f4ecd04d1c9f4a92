package importer

import (
	"errors"
	"io"

	"github.com/xuri/excelize/v2"
)

// NewXLSXSource reads the first sheet of an XLSX workbook up front and
// serves its rows. Row 1 of the sheet is taken as the header.
func NewXLSXSource(r io.Reader) (RowSource, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &SourceError{Kind: "xlsx", Err: err}
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, &SourceError{Kind: "xlsx", Err: errors.New("workbook has no sheets")}
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, &SourceError{Kind: "xlsx", Err: err}
	}

	return newMemSource("xlsx", rows)
}
