package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/enquiry-service/internal/api/dto"
	"github.com/spec-kit/enquiry-service/internal/repository"
	"github.com/spec-kit/enquiry-service/pkg/util"
)

func parseIDParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, util.NewInvalidArgument("id must be a positive integer")
	}
	return id, nil
}

// parseListQuery coerces limit/offset/orderBy/orderDirection query strings.
// Range and enum checks belong to the DTO validation; only type coercion
// fails here.
func parseListQuery(c *fiber.Ctx) (dto.ListQuery, error) {
	var query dto.ListQuery

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return query, util.NewInvalidArgument("limit must be an integer")
		}
		query.Limit = &limit
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return query, util.NewInvalidArgument("offset must be an integer")
		}
		query.Offset = &offset
	}
	if field := c.Query("orderBy"); field != "" {
		direction := c.Query("orderDirection")
		if direction == "" {
			direction = "desc"
		}
		query.OrderBy = &repository.OrderBy{Field: field, Direction: direction}
	}

	return query, nil
}
