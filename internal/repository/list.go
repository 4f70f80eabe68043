package repository

// OrderBy selects an ordering field by its API name and a direction of "asc"
// or "desc". Field names are validated upstream against the per-resource
// whitelist; repositories map them onto columns.
type OrderBy struct {
	Field     string
	Direction string
}

// ListPage captures pagination and ordering for list queries. A nil Limit
// means no cap, a nil Offset means list-start.
type ListPage struct {
	Limit   *int
	Offset  *int
	OrderBy *OrderBy
}

func orderClause(columns map[string]string, orderBy *OrderBy) string {
	column := "created_at"
	direction := "DESC"
	if orderBy != nil {
		if mapped, ok := columns[orderBy.Field]; ok {
			column = mapped
		}
		if orderBy.Direction == "asc" {
			direction = "ASC"
		}
	}
	return " ORDER BY " + column + " " + direction
}
