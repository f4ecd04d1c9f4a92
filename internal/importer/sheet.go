package importer

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetConfig describes a linked Google Sheets range.
type SheetConfig struct {
	CredentialsJSON []byte
	SpreadsheetID   string
	ReadRange       string // A1 notation, e.g. "Schedule!A1:I200"
}

// NewSheetSource fetches the configured spreadsheet range in a single
// Values.Get call and serves its rows. Row 1 of the fetched range is
// taken as the header. Credential, network and API failures are all
// fatal *SourceError values.
func NewSheetSource(ctx context.Context, cfg SheetConfig) (RowSource, error) {
	if len(cfg.CredentialsJSON) == 0 {
		return nil, &SourceError{Kind: "sheet", Err: errors.New("missing Google API credentials")}
	}
	if cfg.SpreadsheetID == "" || cfg.ReadRange == "" {
		return nil, &SourceError{Kind: "sheet", Err: errors.New("missing spreadsheet id or range")}
	}

	service, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(cfg.CredentialsJSON),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, &SourceError{Kind: "sheet", Err: err}
	}

	resp, err := service.Spreadsheets.Values.Get(cfg.SpreadsheetID, cfg.ReadRange).Context(ctx).Do()
	if err != nil {
		return nil, &SourceError{Kind: "sheet", Err: err}
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, values := range resp.Values {
		cells := make([]string, 0, len(values))
		for _, v := range values {
			cells = append(cells, fmt.Sprint(v))
		}
		rows = append(rows, cells)
	}

	return newMemSource("sheet", rows)
}
