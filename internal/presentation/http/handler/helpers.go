package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sakshidhaba/pos-api/internal/domain/report"
	"github.com/sakshidhaba/pos-api/pkg/pagination"
)

// rangeFromQuery reads the reporting window from the query string,
// defaulting to today.
func rangeFromQuery(c *gin.Context) report.Range {
	return report.ParseRange(c.Query("range"))
}

// paginationParams normalizes page/per_page values from a bound filter.
func paginationParams(page, perPage int) *pagination.PaginationParams {
	params := pagination.DefaultPagination()
	if page > 0 {
		params.Page = page
	}
	if perPage > 0 {
		params.PerPage = perPage
	}
	return params
}
