package dto

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spec-kit/enquiry-service/internal/repository"
	"github.com/spec-kit/enquiry-service/pkg/util"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ListQuery captures raw pagination and ordering input shared by list
// endpoints. Validation is fail-fast: the first violated constraint wins.
type ListQuery struct {
	Limit   *int
	Offset  *int
	OrderBy *repository.OrderBy
}

func (q ListQuery) validate(orderFields []string) error {
	if q.Limit != nil {
		if *q.Limit < 1 {
			return util.NewInvalidArgument("limit must be at least 1")
		}
		if *q.Limit > 100 {
			return util.NewInvalidArgument("limit must be at most 100")
		}
	}
	if q.Offset != nil && *q.Offset < 0 {
		return util.NewInvalidArgument("offset must be at least 0")
	}
	if q.OrderBy != nil {
		if !contains(orderFields, q.OrderBy.Field) {
			return util.NewInvalidArgument(fmt.Sprintf("orderBy must be one of %s", strings.Join(orderFields, ", ")))
		}
		if q.OrderBy.Direction != "asc" && q.OrderBy.Direction != "desc" {
			return util.NewInvalidArgument("orderDirection must be asc or desc")
		}
	}
	return nil
}

// Page converts the validated query into repository paging parameters.
func (q ListQuery) Page() repository.ListPage {
	return repository.ListPage{Limit: q.Limit, Offset: q.Offset, OrderBy: q.OrderBy}
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func validateID(id int64) error {
	if id <= 0 {
		return util.NewInvalidArgument("id must be a positive integer")
	}
	return nil
}

// DeleteResponse reports a completed delete.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
