package viewmodel

import (
	"context"

	"golang.org/x/sync/errgroup"

	"sbweb/lmsapi"
)

// LearnScreen composes the course-learning page: sorted lesson sidebar,
// progress bar, the selected lesson with its content, and previous/next
// navigation derived purely from the fetched list.
type LearnScreen struct {
	Course    lmsapi.Course         `json:"course"`
	Lessons   []lmsapi.Lesson       `json:"lessons"`
	Progress  lmsapi.CourseProgress `json:"progress"`
	Completed map[int64]bool        `json:"completed"`
	Selected  *lmsapi.Lesson        `json:"selected"`
	Content   *lmsapi.LessonContent `json:"content"`
	Prev      *lmsapi.Lesson        `json:"prev"`
	Next      *lmsapi.Lesson        `json:"next"`
}

// LoadLearnScreen fans out the three independent reads, then resolves the
// selected lesson and fetches its content as a dependent second step.
// All three reads are primary here: without the progress snapshot the user
// is not enrolled and the screen shows its error state with a way back.
func LoadLearnScreen(ctx context.Context, api *lmsapi.Client, token string, courseID, lessonID int64) (*LearnScreen, error) {
	g, gctx := errgroup.WithContext(ctx)

	vm := &LearnScreen{}
	primary(g, gctx, &vm.Course, func(ctx context.Context) (lmsapi.Course, error) {
		return api.GetCourse(ctx, token, courseID)
	})
	primary(g, gctx, &vm.Lessons, func(ctx context.Context) ([]lmsapi.Lesson, error) {
		return api.ListLessons(ctx, token, courseID)
	})
	primary(g, gctx, &vm.Progress, func(ctx context.Context) (lmsapi.CourseProgress, error) {
		return api.GetCourseProgress(ctx, token, courseID)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	vm.Lessons = SortLessons(vm.Lessons)
	vm.Progress.ProgressPercentage = ClampPercent(vm.Progress.ProgressPercentage)
	vm.Completed = completedByLesson(vm.Progress)

	selectLesson(vm, lessonID)
	if vm.Selected != nil {
		// Dependent read: the content fetch needs the resolved lesson, so it
		// stays sequential. Failure degrades to a missing body, not a dead page.
		if content, err := api.GetLessonContent(ctx, token, courseID, vm.Selected.ID); err == nil {
			vm.Content = &content
		}
	}
	return vm, nil
}

// completedByLesson indexes the progress snapshot for sidebar checkmarks.
func completedByLesson(p lmsapi.CourseProgress) map[int64]bool {
	completed := make(map[int64]bool, len(p.LessonProgresses))
	for _, lp := range p.LessonProgresses {
		if lp.Completed {
			completed[lp.LessonID] = true
		}
	}
	return completed
}

// selectLesson picks the requested lesson, falling back to the first one,
// and derives the prev/next neighbors as a pure index walk.
func selectLesson(vm *LearnScreen, lessonID int64) {
	if len(vm.Lessons) == 0 {
		return
	}
	vm.Selected = &vm.Lessons[0]
	if lessonID > 0 {
		for i := range vm.Lessons {
			if vm.Lessons[i].ID == lessonID {
				vm.Selected = &vm.Lessons[i]
				break
			}
		}
	}
	vm.Prev, vm.Next = Neighbors(vm.Lessons, vm.Selected.ID)
}
