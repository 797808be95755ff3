package payroll

import "errors"

var ErrMissingDateRange = errors.New("start_date and end_date are required")
