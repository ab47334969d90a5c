package http

import (
	"time"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title       string     `json:"title"       binding:"required,max=255"`
	Description string     `json:"description" binding:"max=2000"`
	Completed   bool       `json:"completed"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

func (r createReq) validate() error {
	if r.Category != "" && !model.TaskCategory(r.Category).Valid() {
		return task.ErrInvalidCategory
	}
	if r.Priority != "" && !model.TaskPriority(r.Priority).Valid() {
		return task.ErrInvalidPriority
	}
	return nil
}

func (r createReq) toInput() task.AddInput {
	return task.AddInput{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		Category:    model.TaskCategory(r.Category),
		Priority:    model.TaskPriority(r.Priority),
		DueDate:     r.DueDate,
	}
}

// ---

type listReq struct {
	Category  *string `form:"category"`
	Priority  *string `form:"priority"`
	Completed *bool   `form:"completed"`
}

func (r listReq) validate() error {
	if r.Category != nil && !model.TaskCategory(*r.Category).Valid() {
		return task.ErrInvalidCategory
	}
	if r.Priority != nil && !model.TaskPriority(*r.Priority).Valid() {
		return task.ErrInvalidPriority
	}
	return nil
}

func (r listReq) toInput() task.FilterInput {
	var input task.FilterInput
	if r.Category != nil {
		c := model.TaskCategory(*r.Category)
		input.Category = &c
	}
	if r.Priority != nil {
		p := model.TaskPriority(*r.Priority)
		input.Priority = &p
	}
	input.Completed = r.Completed
	return input
}

// ---

type updateReq struct {
	ID          string     `json:"-"` // populated from URI param
	Title       *string    `json:"title"       binding:"omitempty,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Completed   *bool      `json:"completed"`
	Category    *string    `json:"category"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

func (r updateReq) validate() error {
	if r.Category != nil && !model.TaskCategory(*r.Category).Valid() {
		return task.ErrInvalidCategory
	}
	if r.Priority != nil && !model.TaskPriority(*r.Priority).Valid() {
		return task.ErrInvalidPriority
	}
	return nil
}

func (r updateReq) toInput() task.UpdateInput {
	input := task.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		DueDate:     r.DueDate,
	}
	if r.Category != nil {
		c := model.TaskCategory(*r.Category)
		input.Category = &c
	}
	if r.Priority != nil {
		p := model.TaskPriority(*r.Priority)
		input.Priority = &p
	}
	return input
}

// ---

type generateReq struct {
	Topic    string `json:"topic"    binding:"required,max=255"`
	Count    int    `json:"count"    binding:"omitempty,min=1,max=20"`
	Category string `json:"category"`
}

func (r generateReq) validate() error {
	if r.Category != "" && !model.TaskCategory(r.Category).Valid() {
		return task.ErrInvalidCategory
	}
	return nil
}

func (r generateReq) toInput() task.GenerateInput {
	return task.GenerateInput{
		Topic:    r.Topic,
		Count:    r.Count,
		Category: model.TaskCategory(r.Category),
	}
}

// ---

type candidateReq struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	AIGenerated bool       `json:"ai_generated"`
}

type commitReq struct {
	Candidates []candidateReq `json:"candidates" binding:"required,dive"`
}

func (r commitReq) validate() error {
	for _, cand := range r.Candidates {
		if cand.Category != "" && !model.TaskCategory(cand.Category).Valid() {
			return task.ErrInvalidCategory
		}
		if cand.Priority != "" && !model.TaskPriority(cand.Priority).Valid() {
			return task.ErrInvalidPriority
		}
	}
	return nil
}

func (r commitReq) toInput() task.CommitInput {
	candidates := make([]task.Candidate, len(r.Candidates))
	for i, cand := range r.Candidates {
		candidates[i] = task.Candidate{
			Title:       cand.Title,
			Description: cand.Description,
			Category:    model.TaskCategory(cand.Category),
			Priority:    model.TaskPriority(cand.Priority),
			DueDate:     cand.DueDate,
			AIGenerated: cand.AIGenerated,
		}
	}
	return task.CommitInput{Candidates: candidates}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	UserID      string     `json:"user_id"`
	AIGenerated bool       `json:"ai_generated"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Category:    string(t.Category),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		UserID:      t.UserID,
		AIGenerated: t.AIGenerated,
	}
}

func newTaskRespList(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.AddOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.FilterOutput) listResp {
	return listResp{
		Tasks: newTaskRespList(out.Tasks),
		Total: out.Total,
	}
}

type statsResp struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	CompletionRate float64 `json:"completion_rate"`
}

func (h *handler) newStatsResp(stats model.TaskStats) statsResp {
	return statsResp{
		Total:          stats.Total,
		Completed:      stats.Completed,
		Pending:        stats.Pending,
		CompletionRate: stats.CompletionRate,
	}
}

type updateResp struct {
	Task  taskResp `json:"task"`
	Found bool     `json:"found"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task), Found: out.Found}
}

type toggleResp struct {
	Task  taskResp `json:"task"`
	Found bool     `json:"found"`
}

func (h *handler) newToggleResp(out task.ToggleOutput) toggleResp {
	return toggleResp{Task: newTaskResp(out.Task), Found: out.Found}
}

type generateResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
	Error string     `json:"error,omitempty"`
}

func (h *handler) newGenerateResp(out task.GenerateOutput, status task.GenerationStatus) generateResp {
	return generateResp{
		Tasks: newTaskRespList(out.Tasks),
		Count: out.Count,
		Error: status.Error,
	}
}

type commitResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newCommitResp(out task.CommitOutput) commitResp {
	return commitResp{
		Tasks: newTaskRespList(out.Tasks),
		Count: out.Count,
	}
}
