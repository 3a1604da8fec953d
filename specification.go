package identity

import (
	"sort"
	"strings"
)

// Specification describes a query over a collection: a predicate, at most
// one ordering comparator, and an optional paging window. It is pure data;
// ApplySpecification evaluates it. Both comparators report the less-than
// relation on the ordering key; OrderByDescending applies it in reverse.
// When both are set the ascending one applies.
type Specification[T any] struct {
	Criteria          func(T) bool
	OrderBy           func(a, b T) bool
	OrderByDescending func(a, b T) bool
	Skip              int
	Take              int
	PagingEnabled     bool
}

// WithPaging returns a copy of the specification with a skip/take window
// applied.
func (s Specification[T]) WithPaging(skip, take int) Specification[T] {
	s.Skip = skip
	s.Take = take
	s.PagingEnabled = true
	return s
}

// ApplySpecification evaluates a specification against a slice in fixed
// order: filter, then ordering, then paging. Paging after filter and sort
// keeps pages stable and deterministic. The input slice is not modified.
func ApplySpecification[T any](source []T, spec Specification[T]) []T {
	out := make([]T, 0, len(source))
	for _, item := range source {
		if spec.Criteria == nil || spec.Criteria(item) {
			out = append(out, item)
		}
	}

	if spec.OrderBy != nil {
		sort.SliceStable(out, func(i, j int) bool { return spec.OrderBy(out[i], out[j]) })
	} else if spec.OrderByDescending != nil {
		sort.SliceStable(out, func(i, j int) bool { return spec.OrderByDescending(out[j], out[i]) })
	}

	if spec.PagingEnabled {
		skip := spec.Skip
		if skip < 0 {
			skip = 0
		}
		if skip >= len(out) {
			return out[:0]
		}
		out = out[skip:]
		if spec.Take >= 0 && spec.Take < len(out) {
			out = out[:spec.Take]
		}
	}

	return out
}

// UserByEmail matches a single user by case-insensitive email equality
func UserByEmail(email string) Specification[*User] {
	return Specification[*User]{
		Criteria: func(u *User) bool {
			return strings.EqualFold(u.Email, email)
		},
	}
}

// ActiveUsers matches active users ordered by creation time ascending
func ActiveUsers() Specification[*User] {
	return Specification[*User]{
		Criteria: func(u *User) bool { return u.IsActive },
		OrderBy:  func(a, b *User) bool { return a.CreatedAt.Before(b.CreatedAt) },
	}
}

// UsersByRole matches active users with the given role ordered by last
// name ascending.
func UsersByRole(role string) Specification[*User] {
	return Specification[*User]{
		Criteria: func(u *User) bool {
			return u.IsActive && strings.EqualFold(u.Role, role)
		},
		OrderBy: func(a, b *User) bool { return a.LastName < b.LastName },
	}
}

// PaginatedUsers matches active users, optionally narrowed to a role when
// role is non-empty, windowed to pageIndex*pageSize/pageSize and ordered
// by creation time ascending.
func PaginatedUsers(pageIndex, pageSize int, role string) Specification[*User] {
	spec := Specification[*User]{
		Criteria: func(u *User) bool {
			if !u.IsActive {
				return false
			}
			return role == "" || strings.EqualFold(u.Role, role)
		},
		OrderBy: func(a, b *User) bool { return a.CreatedAt.Before(b.CreatedAt) },
	}
	return spec.WithPaging(pageIndex*pageSize, pageSize)
}
