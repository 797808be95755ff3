package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	Name       string
	DNI        string
	HourlyRate decimal.Decimal
	HireDate   time.Time
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
