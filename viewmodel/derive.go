package viewmodel

import (
	"sort"

	"sbweb/lmsapi"
)

// DashboardListCap bounds the dashboard item lists; full counts are reported
// separately.
const DashboardListCap = 5

// NotificationCap bounds the notification dropdown, most recent first.
const NotificationCap = 20

// ClampPercent bounds a progress percentage to [0,100]. The server is the
// source of truth but a progress bar must not visually overflow.
func ClampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// SortLessons returns the lessons ordered ascending by sortOrder, stable for
// equal values (original fetch order wins).
func SortLessons(lessons []lmsapi.Lesson) []lmsapi.Lesson {
	sorted := make([]lmsapi.Lesson, len(lessons))
	copy(sorted, lessons)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortOrder < sorted[j].SortOrder
	})
	return sorted
}

// Neighbors walks the already-fetched, already-sorted lesson list around the
// selected lesson. No network call: prev is nil at index 0, next is nil at
// the last index. An unknown lesson ID yields no neighbors.
func Neighbors(lessons []lmsapi.Lesson, lessonID int64) (prev, next *lmsapi.Lesson) {
	for i := range lessons {
		if lessons[i].ID != lessonID {
			continue
		}
		if i > 0 {
			prev = &lessons[i-1]
		}
		if i < len(lessons)-1 {
			next = &lessons[i+1]
		}
		return prev, next
	}
	return nil, nil
}

// CapItems truncates a display list to at most n items.
func CapItems[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(items) <= n {
		return items
	}
	return items[:n]
}

// CourseCard is one row of the "my courses" view: an enrollment with its
// progress snapshot joined by courseId.
type CourseCard struct {
	Enrollment       lmsapi.Enrollment `json:"enrollment"`
	TotalLessons     int               `json:"totalLessons"`
	CompletedLessons int               `json:"completedLessons"`
	ProgressPercent  int               `json:"progressPercent"`
	HasProgress      bool              `json:"hasProgress"`
}

// JoinCourses merges the enrollment list with the separately fetched
// progress snapshots. An enrollment with no matching snapshot still renders,
// defaulted to 0%; a snapshot with no matching enrollment is dropped.
// Grouping into active/completed is decided by Enrollment.Status alone.
func JoinCourses(enrollments []lmsapi.Enrollment, progress []lmsapi.CourseProgress) []CourseCard {
	byCourse := make(map[int64]lmsapi.CourseProgress, len(progress))
	for _, p := range progress {
		byCourse[p.CourseID] = p
	}

	cards := make([]CourseCard, 0, len(enrollments))
	for _, e := range enrollments {
		card := CourseCard{Enrollment: e}
		if p, ok := byCourse[e.CourseID]; ok {
			card.TotalLessons = p.TotalLessons
			card.CompletedLessons = p.CompletedLessons
			card.ProgressPercent = ClampPercent(p.ProgressPercentage)
			card.HasProgress = true
		}
		cards = append(cards, card)
	}
	return cards
}
