package viewmodel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sbweb/lmsapi"
)

// fakeAPI serves canned JSON per path and 404s everything else.
func fakeAPI(t *testing.T, routes map[string]any) *lmsapi.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "Not found"})
			return
		}
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return lmsapi.New(srv.URL, 5*time.Second)
}

func TestLoadCourseDetailNotEnrolled(t *testing.T) {
	api := fakeAPI(t, map[string]any{
		"/courses/7": lmsapi.Course{ID: 7, Title: "Go Basics", Published: true},
		"/courses/7/lessons": []lmsapi.Lesson{
			{ID: 2, Title: "Second", SortOrder: 2},
			{ID: 1, Title: "First", SortOrder: 1},
		},
		// Enrollment, progress, my review, reviews and categories all 404.
	})

	vm, err := LoadCourseDetail(context.Background(), api, "tok", 7, 0, 10)
	require.NoError(t, err)

	assert.Equal(t, "Go Basics", vm.Course.Title)
	assert.False(t, vm.IsEnrolled)
	assert.Nil(t, vm.Enrollment)
	assert.Nil(t, vm.Progress)
	assert.Nil(t, vm.MyReview)
	assert.NotNil(t, vm.Reviews)
	assert.Empty(t, vm.Reviews)

	require.Len(t, vm.Lessons, 2)
	assert.Equal(t, "First", vm.Lessons[0].Title)
	assert.Equal(t, "Second", vm.Lessons[1].Title)
}

func TestLoadCourseDetailEnrolled(t *testing.T) {
	comment := "Great course"
	api := fakeAPI(t, map[string]any{
		"/courses/7":            lmsapi.Course{ID: 7, Title: "Go Basics"},
		"/courses/7/lessons":    []lmsapi.Lesson{{ID: 1, SortOrder: 1}},
		"/courses/7/enrollment": lmsapi.Enrollment{ID: 3, CourseID: 7, Status: lmsapi.EnrollmentActive},
		"/courses/7/progress":   lmsapi.CourseProgress{CourseID: 7, ProgressPercentage: 150},
		"/courses/7/reviews/my": lmsapi.Review{ID: 9, Rating: 5, Comment: &comment},
		"/courses/7/reviews": lmsapi.Page[lmsapi.Review]{
			Content: []lmsapi.Review{{ID: 9, Rating: 5}},
			Page:    0, TotalPages: 1, TotalElements: 1, First: true, Last: true,
		},
		"/categories/courses/7": []lmsapi.Category{{ID: 1, Name: "Backend"}},
	})

	vm, err := LoadCourseDetail(context.Background(), api, "tok", 7, 0, 10)
	require.NoError(t, err)

	assert.True(t, vm.IsEnrolled)
	require.NotNil(t, vm.Progress)
	assert.Equal(t, 100, vm.Progress.ProgressPercentage)
	require.NotNil(t, vm.MyReview)
	assert.Equal(t, 5, vm.MyReview.Rating)
	require.Len(t, vm.Reviews, 1)
	assert.False(t, vm.ReviewPage.HasNext)
	require.Len(t, vm.Categories, 1)
}

func TestLoadCourseDetailPrimaryFailure(t *testing.T) {
	// The course itself is missing, so the whole screen fails even though
	// secondary reads could have succeeded.
	api := fakeAPI(t, map[string]any{
		"/courses/7/lessons": []lmsapi.Lesson{},
	})

	_, err := LoadCourseDetail(context.Background(), api, "tok", 7, 0, 10)
	require.Error(t, err)
	assert.True(t, lmsapi.IsNotFound(err))
}

func TestLoadLearnScreen(t *testing.T) {
	api := fakeAPI(t, map[string]any{
		"/courses/7": lmsapi.Course{ID: 7, Title: "Go Basics"},
		"/courses/7/lessons": []lmsapi.Lesson{
			{ID: 1, Title: "First", SortOrder: 1},
			{ID: 2, Title: "Second", SortOrder: 2},
			{ID: 3, Title: "Third", SortOrder: 3},
		},
		"/courses/7/progress": lmsapi.CourseProgress{
			CourseID: 7, TotalLessons: 3, CompletedLessons: 1, ProgressPercentage: 33,
			LessonProgresses: []lmsapi.LessonProgress{
				{LessonID: 1, Completed: true},
				{LessonID: 2, Completed: false},
			},
		},
		"/courses/7/lessons/2/content": lmsapi.LessonContent{LessonID: 2, Content: "# Second"},
	})

	vm, err := LoadLearnScreen(context.Background(), api, "tok", 7, 2)
	require.NoError(t, err)

	require.NotNil(t, vm.Selected)
	assert.Equal(t, int64(2), vm.Selected.ID)
	require.NotNil(t, vm.Content)
	assert.Equal(t, "# Second", vm.Content.Content)

	require.NotNil(t, vm.Prev)
	require.NotNil(t, vm.Next)
	assert.Equal(t, int64(1), vm.Prev.ID)
	assert.Equal(t, int64(3), vm.Next.ID)

	assert.True(t, vm.Completed[1])
	assert.False(t, vm.Completed[2])
}

func TestLoadLearnScreenNotEnrolled(t *testing.T) {
	// No progress snapshot means not enrolled; the screen must fail rather
	// than render a half page.
	api := fakeAPI(t, map[string]any{
		"/courses/7":         lmsapi.Course{ID: 7},
		"/courses/7/lessons": []lmsapi.Lesson{{ID: 1, SortOrder: 1}},
	})

	_, err := LoadLearnScreen(context.Background(), api, "tok", 7, 0)
	require.Error(t, err)
	assert.True(t, lmsapi.IsNotFound(err))
}

func TestLoadLearnScreenFallsBackToFirstLesson(t *testing.T) {
	api := fakeAPI(t, map[string]any{
		"/courses/7": lmsapi.Course{ID: 7},
		"/courses/7/lessons": []lmsapi.Lesson{
			{ID: 5, Title: "Only", SortOrder: 1},
		},
		"/courses/7/progress": lmsapi.CourseProgress{CourseID: 7},
		// Content endpoint 404s: the page still renders, body missing.
	})

	vm, err := LoadLearnScreen(context.Background(), api, "tok", 7, 999)
	require.NoError(t, err)
	require.NotNil(t, vm.Selected)
	assert.Equal(t, int64(5), vm.Selected.ID)
	assert.Nil(t, vm.Content)
	assert.Nil(t, vm.Prev)
	assert.Nil(t, vm.Next)
}

func TestLoadLearnerDashboard(t *testing.T) {
	pending := make([]lmsapi.PendingTaskItem, 7)
	for i := range pending {
		pending[i] = lmsapi.PendingTaskItem{TaskID: int64(i + 1)}
	}
	api := fakeAPI(t, map[string]any{
		"/enrollments/my": []lmsapi.Enrollment{
			{CourseID: 1, Status: lmsapi.EnrollmentActive},
			{CourseID: 2, Status: lmsapi.EnrollmentCompleted},
			{CourseID: 3, Status: lmsapi.EnrollmentDropped},
		},
		"/enrollments/my/progress": []lmsapi.CourseProgress{
			{CourseID: 1, ProgressPercentage: 50},
		},
		"/dashboard/learner": lmsapi.LearnerDashboardResponse{PendingTasks: pending},
	})

	vm, err := LoadLearnerDashboard(context.Background(), api, "tok")
	require.NoError(t, err)

	require.Len(t, vm.ActiveCourses, 1)
	assert.Equal(t, 50, vm.ActiveCourses[0].ProgressPercent)
	require.Len(t, vm.CompletedCourses, 1)
	assert.False(t, vm.CompletedCourses[0].HasProgress)

	// Display list capped, full count preserved.
	assert.Len(t, vm.PendingTasks, DashboardListCap)
	assert.Equal(t, 7, vm.PendingTaskCount)
}

func TestLoadLearnerDashboardBoardFailureDegrades(t *testing.T) {
	api := fakeAPI(t, map[string]any{
		"/enrollments/my":          []lmsapi.Enrollment{},
		"/enrollments/my/progress": []lmsapi.CourseProgress{},
		// Dashboard projection 404s; lists degrade to empty.
	})

	vm, err := LoadLearnerDashboard(context.Background(), api, "tok")
	require.NoError(t, err)
	assert.Empty(t, vm.PendingTasks)
	assert.Zero(t, vm.PendingTaskCount)
	assert.Empty(t, vm.RecentFeedbacks)
}
