// Package schema maps arbitrarily named spreadsheet columns to the
// semantic roles a Gantt chart needs.
package schema

import (
	"fmt"
	"strings"
)

// Role identifies the semantic meaning of a spreadsheet column.
type Role string

const (
	// RoleTask is the task name column. Mandatory.
	RoleTask Role = "task"
	// RoleStartDate is the task start date column. Mandatory.
	RoleStartDate Role = "start_date"
	// RoleEndDate is the task end date column. Mandatory.
	RoleEndDate Role = "end_date"
	// RolePhase is the optional grouping column used for coloring.
	RolePhase Role = "phase"
	// RoleDuration is the optional display-only duration column.
	RoleDuration Role = "duration"
)

// RoleMapping maps each resolved role to the concrete column name it
// was matched to.
type RoleMapping map[Role]string

// Column returns the mapped column name for role, or "" when the role
// was not resolved (possible only for the optional roles).
func (m RoleMapping) Column(role Role) string {
	return m[role]
}

// MandatoryRoles lists the roles that must resolve for a chart to be
// produced, in processing order.
var MandatoryRoles = []Role{RoleTask, RoleStartDate, RoleEndDate}

// roleOrder is the fixed processing order over all roles. When two
// roles would claim the same column, the earlier role in this order
// wins and the later role must match a different column.
var roleOrder = []Role{RoleTask, RoleStartDate, RoleEndDate, RolePhase, RoleDuration}

// Patterns holds the candidate substrings per role, highest priority
// first. A column matches a pattern when its lowercased name contains
// the pattern. The table is package data so the matching behavior is
// inspectable and testable without touching the scan itself.
var Patterns = map[Role][]string{
	RoleTask:      {"task", "name", "description"},
	RoleStartDate: {"start", "begin"},
	RoleEndDate:   {"end", "finish"},
	RolePhase:     {"phase", "category", "group"},
	RoleDuration:  {"duration", "weeks", "days"},
}

// Error reports the mandatory roles that could not be resolved. All
// missing roles are reported together so callers can show a complete
// remediation message in one shot.
type Error struct {
	// Missing lists the unresolved mandatory roles in processing order.
	Missing []Role
}

func (e *Error) Error() string {
	names := make([]string, len(e.Missing))
	for i, r := range e.Missing {
		names[i] = string(r)
	}
	return fmt.Sprintf("required columns not found: %s", strings.Join(names, ", "))
}

// Resolve maps column names to semantic roles.
//
// For each role, candidate patterns are tried in priority order; within
// a pattern, columns are scanned in table order and the first match
// wins. Once a role matches at some priority it never falls through to
// a lower-priority pattern. A column claimed by an earlier role is
// invisible to later roles. Matching is case-insensitive and does not
// trim whitespace. The scan is fully deterministic: the same column
// list always yields the same mapping.
//
// Resolve returns a *Error listing every unresolved mandatory role when
// task, start_date, or end_date cannot be matched. Unresolved optional
// roles (phase, duration) are simply absent from the mapping.
func Resolve(columns []string) (RoleMapping, error) {
	lowered := make([]string, len(columns))
	for i, c := range columns {
		lowered[i] = strings.ToLower(c)
	}

	mapping := make(RoleMapping)
	claimed := make([]bool, len(columns))

	for _, role := range roleOrder {
		for _, pattern := range Patterns[role] {
			matched := false
			for i, name := range lowered {
				if claimed[i] {
					continue
				}
				if strings.Contains(name, pattern) {
					mapping[role] = columns[i]
					claimed[i] = true
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
	}

	var missing []Role
	for _, role := range MandatoryRoles {
		if _, ok := mapping[role]; !ok {
			missing = append(missing, role)
		}
	}
	if len(missing) > 0 {
		return nil, &Error{Missing: missing}
	}

	return mapping, nil
}
