package model

import (
	gDto "linka/shared/dto"
)

// The status filter binds to "current_status" so the same statement can SET status.
const argCurrentStatus = "current_status"

func FilterByIDAndStatus(id string, statuses ...string) gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filter.Add(gDto.Filter{Field: FieldID, Operator: gDto.FilterOperatorEq, Value: id, Table: TableName})

	return *filter.Add(statusFilter(statuses))
}

// FilterByTargetAndStatus selects the bookings of one ride or accommodation.
func FilterByTargetAndStatus(targetField, targetID string, statuses ...string) gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filter.Add(gDto.Filter{Field: targetField, Operator: gDto.FilterOperatorEq, Value: targetID, Table: TableName})

	return *filter.Add(statusFilter(statuses))
}

func statusFilter(statuses []string) gDto.Filter {
	if len(statuses) == 1 {
		return gDto.Filter{Field: FieldStatus, ArgName: argCurrentStatus, Operator: gDto.FilterOperatorEq, Value: statuses[0], Table: TableName}
	}

	return gDto.Filter{Field: FieldStatus, ArgName: argCurrentStatus, Operator: gDto.FilterOperatorIn, Value: statuses, Table: TableName}
}
