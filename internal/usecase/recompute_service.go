package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/NickLiffen/bearwood-lakes-fantasy/internal/domain/schedule"
)

type RecomputeInput struct {
	Season     int
	MaxWorkers int
}

type RecomputeResult struct {
	Season       int                   `json:"season"`
	TaskCount    int                   `json:"task_count"`
	SuccessCount int                   `json:"success_count"`
	FailedCount  int                   `json:"failed_count"`
	WorkerCount  int                   `json:"worker_count"`
	Tasks        []RecomputeTaskResult `json:"tasks"`
}

type RecomputeTaskResult struct {
	PeriodType string `json:"period_type"`
	Label      string `json:"label"`
	Status     string `json:"status"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

const (
	recomputeStatusSuccess = "success"
	recomputeStatusFailed  = "failed"

	defaultRecomputeWorkers = 4
	maxRecomputeWorkers     = 16
)

type boardProvider interface {
	GetLeaderboard(ctx context.Context, season int, periodType schedule.PeriodType, ref time.Time) (Leaderboard, error)
}

type recomputeTask struct {
	periodType schedule.PeriodType
	ref        time.Time
	label      string
}

// RecomputeService warms the leaderboard cache by computing every elapsed
// period of a season on a bounded worker pool. Admins run it after bulk score
// corrections so the first member request after an edit is not the one that
// pays for the recompute.
type RecomputeService struct {
	boards boardProvider
	loc    *time.Location
	now    func() time.Time
}

func NewRecomputeService(boards boardProvider, loc *time.Location) *RecomputeService {
	if loc == nil {
		loc = time.Local
	}
	return &RecomputeService{
		boards: boards,
		loc:    loc,
		now:    time.Now,
	}
}

func (s *RecomputeService) Recompute(ctx context.Context, input RecomputeInput) (RecomputeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecomputeService.Recompute")
	defer span.End()

	if s.boards == nil {
		return RecomputeResult{}, fmt.Errorf("%w: leaderboard provider is not configured", ErrDependencyUnavailable)
	}
	if input.Season <= 0 {
		return RecomputeResult{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	tasks := s.buildTasks(input.Season)
	workerCount := normalizeRecomputeWorkerCount(input.MaxWorkers, len(tasks))
	result := RecomputeResult{
		Season:      input.Season,
		TaskCount:   len(tasks),
		WorkerCount: workerCount,
		Tasks:       make([]RecomputeTaskResult, 0, len(tasks)),
	}
	if len(tasks) == 0 {
		return result, nil
	}

	rows := make(chan RecomputeTaskResult, len(tasks))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return RecomputeResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var workers sync.WaitGroup
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := RecomputeTaskResult{
				PeriodType: string(task.periodType),
				Label:      task.label,
			}

			if _, boardErr := s.boards.GetLeaderboard(ctx, input.Season, task.periodType, task.ref); boardErr != nil {
				row.Status = recomputeStatusFailed
				row.Message = boardErr.Error()
				failedCount.Add(1)
			} else {
				row.Status = recomputeStatusSuccess
				successCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()

			rows <- row
		}); err != nil {
			workers.Done()
			return RecomputeResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		if result.Tasks[i].PeriodType != result.Tasks[j].PeriodType {
			return result.Tasks[i].PeriodType < result.Tasks[j].PeriodType
		}
		return result.Tasks[i].Label < result.Tasks[j].Label
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())

	return result, nil
}

// buildTasks enumerates every period of the season that has started: each
// elapsed gameweek, each elapsed month, and the season itself.
func (s *RecomputeService) buildTasks(season int) []recomputeTask {
	seasonStart := schedule.SeasonStart(season, s.loc)
	seasonEnd := schedule.SeasonEnd(season, s.loc)

	horizon := s.now().In(s.loc)
	if horizon.After(seasonEnd) {
		horizon = seasonEnd
	}
	if horizon.Before(seasonStart) {
		return nil
	}

	var tasks []recomputeTask

	firstSaturday := schedule.SeasonFirstSaturday(seasonStart)
	for ref := firstSaturday; !ref.After(horizon); ref = ref.AddDate(0, 0, 7) {
		week := schedule.WeekOf(ref, seasonStart)
		tasks = append(tasks, recomputeTask{
			periodType: schedule.PeriodWeek,
			ref:        ref,
			label:      week.Label,
		})
	}

	for ref := seasonStart; !ref.After(horizon); ref = ref.AddDate(0, 1, 0) {
		month := schedule.MonthOf(ref)
		tasks = append(tasks, recomputeTask{
			periodType: schedule.PeriodMonth,
			ref:        ref,
			label:      month.Label,
		})
	}

	tasks = append(tasks, recomputeTask{
		periodType: schedule.PeriodSeason,
		ref:        seasonStart,
		label:      schedule.SeasonOf(season, s.loc).Label,
	})

	return tasks
}

func normalizeRecomputeWorkerCount(requested, taskCount int) int {
	count := requested
	if count <= 0 {
		count = defaultRecomputeWorkers
	}
	if count > maxRecomputeWorkers {
		count = maxRecomputeWorkers
	}
	if taskCount > 0 && count > taskCount {
		count = taskCount
	}
	if count < 1 {
		count = 1
	}
	return count
}
