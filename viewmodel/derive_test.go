package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sbweb/lmsapi"
)

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 0, ClampPercent(-5))
	assert.Equal(t, 0, ClampPercent(0))
	assert.Equal(t, 42, ClampPercent(42))
	assert.Equal(t, 100, ClampPercent(100))
	assert.Equal(t, 100, ClampPercent(250))
}

func TestSortLessonsStable(t *testing.T) {
	lessons := []lmsapi.Lesson{
		{ID: 1, Title: "C", SortOrder: 2},
		{ID: 2, Title: "A", SortOrder: 1},
		{ID: 3, Title: "B", SortOrder: 1},
	}

	sorted := SortLessons(lessons)

	// Equal sort orders keep their fetch order: A before B.
	require.Len(t, sorted, 3)
	assert.Equal(t, "A", sorted[0].Title)
	assert.Equal(t, "B", sorted[1].Title)
	assert.Equal(t, "C", sorted[2].Title)

	// Input slice is untouched.
	assert.Equal(t, "C", lessons[0].Title)
}

func TestNeighbors(t *testing.T) {
	lessons := []lmsapi.Lesson{{ID: 10}, {ID: 20}, {ID: 30}}

	prev, next := Neighbors(lessons, 10)
	assert.Nil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, int64(20), next.ID)

	prev, next = Neighbors(lessons, 20)
	require.NotNil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, int64(10), prev.ID)
	assert.Equal(t, int64(30), next.ID)

	prev, next = Neighbors(lessons, 30)
	require.NotNil(t, prev)
	assert.Equal(t, int64(20), prev.ID)
	assert.Nil(t, next)

	prev, next = Neighbors(lessons, 99)
	assert.Nil(t, prev)
	assert.Nil(t, next)

	prev, next = Neighbors(nil, 10)
	assert.Nil(t, prev)
	assert.Nil(t, next)
}

func TestCapItems(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	assert.Len(t, CapItems(items, 5), 5)
	assert.Equal(t, []int{1, 2, 3}, CapItems(items[:3], 5))
	assert.Empty(t, CapItems(items, 0))
	assert.Empty(t, CapItems(items, -1))
}

func TestJoinCourses(t *testing.T) {
	enrollments := []lmsapi.Enrollment{
		{ID: 1, CourseID: 100, Status: lmsapi.EnrollmentActive},
		{ID: 2, CourseID: 200, Status: lmsapi.EnrollmentCompleted},
	}
	progress := []lmsapi.CourseProgress{
		{CourseID: 100, TotalLessons: 10, CompletedLessons: 4, ProgressPercentage: 40},
		{CourseID: 999, ProgressPercentage: 80}, // no matching enrollment
	}

	cards := JoinCourses(enrollments, progress)
	require.Len(t, cards, 2)

	assert.Equal(t, int64(100), cards[0].Enrollment.CourseID)
	assert.True(t, cards[0].HasProgress)
	assert.Equal(t, 40, cards[0].ProgressPercent)
	assert.Equal(t, 4, cards[0].CompletedLessons)

	// Enrollment without a snapshot still renders at 0%.
	assert.Equal(t, int64(200), cards[1].Enrollment.CourseID)
	assert.False(t, cards[1].HasProgress)
	assert.Equal(t, 0, cards[1].ProgressPercent)
}

func TestJoinCoursesClampsPercent(t *testing.T) {
	cards := JoinCourses(
		[]lmsapi.Enrollment{{CourseID: 1, Status: lmsapi.EnrollmentActive}},
		[]lmsapi.CourseProgress{{CourseID: 1, ProgressPercentage: 130}},
	)
	require.Len(t, cards, 1)
	assert.Equal(t, 100, cards[0].ProgressPercent)
}

func TestNewPager(t *testing.T) {
	first := NewPager(lmsapi.Page[int]{Page: 0, TotalPages: 3, TotalElements: 25, First: true, Last: false})
	assert.False(t, first.HasPrev)
	assert.True(t, first.HasNext)

	middle := NewPager(lmsapi.Page[int]{Page: 1, TotalPages: 3, TotalElements: 25, First: false, Last: false})
	assert.True(t, middle.HasPrev)
	assert.True(t, middle.HasNext)

	last := NewPager(lmsapi.Page[int]{Page: 2, TotalPages: 3, TotalElements: 25, First: false, Last: true})
	assert.True(t, last.HasPrev)
	assert.False(t, last.HasNext)

	only := NewPager(lmsapi.Page[int]{Page: 0, TotalPages: 1, TotalElements: 2, First: true, Last: true})
	assert.False(t, only.HasPrev)
	assert.False(t, only.HasNext)

	negative := NewPager(lmsapi.Page[int]{Page: -1, First: true, Last: true})
	assert.Equal(t, 0, negative.Page)
	assert.False(t, negative.HasPrev)
}
