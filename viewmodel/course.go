package viewmodel

import (
	"context"

	"golang.org/x/sync/errgroup"

	"sbweb/lmsapi"
)

// CourseDetail composes the course-detail screen: the course record and its
// lessons are primary, everything about the current user's relationship to
// the course (enrollment, own review, progress) is supplementary.
type CourseDetail struct {
	Course     lmsapi.Course          `json:"course"`
	Lessons    []lmsapi.Lesson        `json:"lessons"`
	IsEnrolled bool                   `json:"isEnrolled"`
	Enrollment *lmsapi.Enrollment     `json:"enrollment"`
	Progress   *lmsapi.CourseProgress `json:"progress"`
	MyReview   *lmsapi.Review         `json:"myReview"`
	Reviews    []lmsapi.Review        `json:"reviews"`
	ReviewPage Pager                  `json:"reviewPage"`
	Categories []lmsapi.Category      `json:"categories"`
}

func LoadCourseDetail(ctx context.Context, api *lmsapi.Client, token string, courseID int64, reviewPage, reviewSize int) (*CourseDetail, error) {
	g, ctx := errgroup.WithContext(ctx)

	vm := &CourseDetail{}
	var reviews lmsapi.Page[lmsapi.Review]

	primary(g, ctx, &vm.Course, func(ctx context.Context) (lmsapi.Course, error) {
		return api.GetCourse(ctx, token, courseID)
	})
	primary(g, ctx, &vm.Lessons, func(ctx context.Context) ([]lmsapi.Lesson, error) {
		return api.ListLessons(ctx, token, courseID)
	})
	secondary(g, ctx, &vm.Enrollment, func(ctx context.Context) (*lmsapi.Enrollment, error) {
		e, err := api.GetEnrollment(ctx, token, courseID)
		if err != nil {
			return nil, err
		}
		return &e, nil
	})
	secondary(g, ctx, &vm.Progress, func(ctx context.Context) (*lmsapi.CourseProgress, error) {
		p, err := api.GetCourseProgress(ctx, token, courseID)
		if err != nil {
			return nil, err
		}
		p.ProgressPercentage = ClampPercent(p.ProgressPercentage)
		return &p, nil
	})
	secondary(g, ctx, &vm.MyReview, func(ctx context.Context) (*lmsapi.Review, error) {
		r, err := api.MyReview(ctx, token, courseID)
		if err != nil {
			return nil, err
		}
		return &r, nil
	})
	secondary(g, ctx, &reviews, func(ctx context.Context) (lmsapi.Page[lmsapi.Review], error) {
		return api.ListReviews(ctx, token, courseID, reviewPage, reviewSize)
	})
	secondary(g, ctx, &vm.Categories, func(ctx context.Context) ([]lmsapi.Category, error) {
		return api.CourseCategories(ctx, token, courseID)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	vm.IsEnrolled = vm.Enrollment != nil
	vm.Lessons = SortLessons(vm.Lessons)
	vm.Reviews = reviews.Content
	vm.ReviewPage = NewPager(reviews)
	if vm.Reviews == nil {
		vm.Reviews = []lmsapi.Review{}
	}
	return vm, nil
}
