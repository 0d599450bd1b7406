package attendance

import "errors"

var (
	ErrWorkbookEmpty   = errors.New("workbook is empty")
	ErrWorkbookNoData  = errors.New("workbook contains only headers, no data rows")
	ErrWorkbookInvalid = errors.New("workbook could not be read")
)
