package form

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/asaskevich/govalidator"
	v "github.com/go-ozzo/ozzo-validation/v4"
	gerr "github.com/tastyhub/dashboard-manager/internal/errors"
	"github.com/tastyhub/dashboard-manager/internal/period"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// DashboardQuery is the query string accepted by dashboard routes.
type DashboardQuery struct {
	Period string
	Limit  string

	limit int
}

// NewDashboardQuery reads period and limit from q.
func NewDashboardQuery(q url.Values) *DashboardQuery {
	return &DashboardQuery{
		Period: q.Get("period"),
		Limit:  strings.TrimSpace(q.Get("limit")),
	}
}

// Validate checks limit. Period is never rejected; unknown tokens resolve to month.
func (dq *DashboardQuery) Validate() error {
	dq.limit = DefaultLimit
	err := ValidateStruct(dq,
		v.Field(&dq.Limit, v.By(validateLimit)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", gerr.ErrInvalidLimit, err)
	}
	if dq.Limit != "" {
		n, _ := govalidator.ToInt(dq.Limit)
		dq.limit = int(n)
	}
	return nil
}

func validateLimit(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !govalidator.IsInt(s) {
		return fmt.Errorf("must be an integer")
	}
	n, err := govalidator.ToInt(s)
	if err != nil {
		return fmt.Errorf("must be an integer")
	}
	if n < 1 || n > MaxLimit {
		return fmt.Errorf("must be between 1 and %d", MaxLimit)
	}
	return nil
}

// Token returns the normalized period token.
func (dq *DashboardQuery) Token() period.Token {
	return period.ParseToken(dq.Period)
}

// LimitValue returns the validated limit; call Validate first.
func (dq *DashboardQuery) LimitValue() int {
	if dq.limit == 0 {
		return DefaultLimit
	}
	return dq.limit
}
