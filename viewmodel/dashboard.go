package viewmodel

import (
	"context"

	"golang.org/x/sync/errgroup"

	"sbweb/lmsapi"
)

// LearnerDashboard is the composed state of the learner dashboard screen.
type LearnerDashboard struct {
	ActiveCourses    []CourseCard                `json:"activeCourses"`
	CompletedCourses []CourseCard                `json:"completedCourses"`
	PendingTasks     []lmsapi.PendingTaskItem    `json:"pendingTasks"`
	PendingTaskCount int                         `json:"pendingTaskCount"`
	RecentFeedbacks  []lmsapi.RecentFeedbackItem `json:"recentFeedbacks"`
}

// LoadLearnerDashboard fans out the dashboard reads, joins enrollments with
// their progress snapshots and groups courses by enrollment status. The
// enrollment and progress lists are primary; the server-computed dashboard
// projections are supplementary and degrade to empty lists.
func LoadLearnerDashboard(ctx context.Context, api *lmsapi.Client, token string) (*LearnerDashboard, error) {
	g, ctx := errgroup.WithContext(ctx)

	var (
		enrollments []lmsapi.Enrollment
		progress    []lmsapi.CourseProgress
		board       lmsapi.LearnerDashboardResponse
	)

	primary(g, ctx, &enrollments, func(ctx context.Context) ([]lmsapi.Enrollment, error) {
		return api.MyEnrollments(ctx, token)
	})
	primary(g, ctx, &progress, func(ctx context.Context) ([]lmsapi.CourseProgress, error) {
		return api.MyProgress(ctx, token)
	})
	secondary(g, ctx, &board, func(ctx context.Context) (lmsapi.LearnerDashboardResponse, error) {
		return api.LearnerDashboard(ctx, token)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	vm := &LearnerDashboard{
		ActiveCourses:    []CourseCard{},
		CompletedCourses: []CourseCard{},
		PendingTasks:     CapItems(board.PendingTasks, DashboardListCap),
		PendingTaskCount: len(board.PendingTasks),
		RecentFeedbacks:  CapItems(board.RecentFeedbacks, DashboardListCap),
	}
	for _, card := range JoinCourses(enrollments, progress) {
		switch card.Enrollment.Status {
		case lmsapi.EnrollmentActive:
			vm.ActiveCourses = append(vm.ActiveCourses, card)
		case lmsapi.EnrollmentCompleted:
			vm.CompletedCourses = append(vm.CompletedCourses, card)
		}
	}
	return vm, nil
}

// InstructorDashboard shows the review queue: the unreviewed count in full,
// the submission list capped for display.
type InstructorDashboard struct {
	UnreviewedCount   int                           `json:"unreviewedCount"`
	RecentSubmissions []lmsapi.RecentSubmissionItem `json:"recentSubmissions"`
}

func LoadInstructorDashboard(ctx context.Context, api *lmsapi.Client, token string) (*InstructorDashboard, error) {
	board, err := api.InstructorDashboard(ctx, token)
	if err != nil {
		return nil, err
	}
	return &InstructorDashboard{
		UnreviewedCount:   board.UnreviewedCount,
		RecentSubmissions: CapItems(board.RecentSubmissions, DashboardListCap),
	}, nil
}
