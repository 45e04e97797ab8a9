// Package service
package service

import (
	c "github.com/half-nothing/simple-surety/internal/interfaces/config"
	. "github.com/half-nothing/simple-surety/internal/interfaces/service"
	"github.com/half-nothing/simple-surety/internal/interfaces/surety"
)

var ErrValueFormat = ApiStatus{StatusName: "VALUE_FORMAT_ERROR", Description: "value must be a decimal amount of units", HttpCode: BadRequest}

// parseAmount reads a decimal unit string such as "0.5" into sub-units
func parseAmount(value string) (surety.Amount, *ApiStatus) {
	if value == "" {
		return 0, &ErrLackParam
	}
	units, err := c.ParseValue(value)
	if err != nil {
		return 0, &ErrValueFormat
	}
	return surety.Amount(units), nil
}

func pageOf[T any](items []*T, query *PageQuery, total int64) *PageResponse[T] {
	return &PageResponse[T]{Items: items, Page: query.Page, PageSize: query.PageSize, Total: total}
}
