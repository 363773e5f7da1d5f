package service

import (
	"context"

	"mindcare/internal/model"
)

// In-memory fakes for the repository and cache interfaces. Logs store
// most-recent-first to match the Mongo sort order.

type fakeAssessmentRepo struct {
	responses []*model.AssessmentResponse
}

func (r *fakeAssessmentRepo) Append(_ context.Context, resp *model.AssessmentResponse) error {
	r.responses = append([]*model.AssessmentResponse{resp}, r.responses...)
	return nil
}

func (r *fakeAssessmentRepo) Recent(_ context.Context, studentID, instrumentID string, limit int64) ([]*model.AssessmentResponse, error) {
	var out []*model.AssessmentResponse
	for _, resp := range r.responses {
		if resp.StudentID != studentID {
			continue
		}
		if instrumentID != "" && resp.InstrumentID != instrumentID {
			continue
		}
		out = append(out, resp)
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeAssessmentRepo) Latest(ctx context.Context, studentID, instrumentID string) (*model.AssessmentResponse, error) {
	recent, err := r.Recent(ctx, studentID, instrumentID, 1)
	if err != nil || len(recent) == 0 {
		return nil, err
	}
	return recent[0], nil
}

type fakeMoodRepo struct {
	entries []*model.MoodEntry
}

func (r *fakeMoodRepo) Append(_ context.Context, entry *model.MoodEntry) error {
	r.entries = append([]*model.MoodEntry{entry}, r.entries...)
	return nil
}

func (r *fakeMoodRepo) Recent(_ context.Context, studentID string, limit int64) ([]*model.MoodEntry, error) {
	var out []*model.MoodEntry
	for _, e := range r.entries {
		if e.StudentID != studentID {
			continue
		}
		out = append(out, e)
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

type fakeBadgeRepo struct {
	badges []*model.Badge
}

func (r *fakeBadgeRepo) Append(_ context.Context, badge *model.Badge) error {
	r.badges = append([]*model.Badge{badge}, r.badges...)
	return nil
}

func (r *fakeBadgeRepo) Recent(_ context.Context, studentID string, limit int64) ([]*model.Badge, error) {
	var out []*model.Badge
	for _, b := range r.badges {
		if b.StudentID == studentID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeCrisisRepo struct {
	alerts []*model.CrisisAlert
}

func (r *fakeCrisisRepo) Append(_ context.Context, alert *model.CrisisAlert) error {
	r.alerts = append([]*model.CrisisAlert{alert}, r.alerts...)
	return nil
}

func (r *fakeCrisisRepo) Recent(_ context.Context, limit int64) ([]*model.CrisisAlert, error) {
	return r.alerts, nil
}

type fakeSleepRepo struct {
	entries []*model.SleepEntry
}

func (r *fakeSleepRepo) Append(_ context.Context, entry *model.SleepEntry) error {
	r.entries = append([]*model.SleepEntry{entry}, r.entries...)
	return nil
}

func (r *fakeSleepRepo) Recent(_ context.Context, studentID string, limit int64) ([]*model.SleepEntry, error) {
	var out []*model.SleepEntry
	for _, e := range r.entries {
		if e.StudentID == studentID {
			out = append(out, e)
		}
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

type fakePointsCache struct {
	totals map[string]int64
}

func newFakePointsCache() *fakePointsCache {
	return &fakePointsCache{totals: make(map[string]int64)}
}

func (c *fakePointsCache) Add(_ context.Context, studentID string, points int) (int64, error) {
	c.totals[studentID] += int64(points)
	return c.totals[studentID], nil
}

func (c *fakePointsCache) Get(_ context.Context, studentID string) (int64, error) {
	return c.totals[studentID], nil
}

type fakeTrendCache struct {
	summaries map[string]*model.MoodTrendSummary
}

func newFakeTrendCache() *fakeTrendCache {
	return &fakeTrendCache{summaries: make(map[string]*model.MoodTrendSummary)}
}

func (c *fakeTrendCache) Get(_ context.Context, studentID string) (*model.MoodTrendSummary, error) {
	return c.summaries[studentID], nil
}

func (c *fakeTrendCache) Set(_ context.Context, studentID string, summary *model.MoodTrendSummary) error {
	c.summaries[studentID] = summary
	return nil
}

func (c *fakeTrendCache) Invalidate(_ context.Context, studentID string) error {
	delete(c.summaries, studentID)
	return nil
}

type fakeRiskCache struct {
	snapshots map[string]*model.RiskFusionResult
}

func newFakeRiskCache() *fakeRiskCache {
	return &fakeRiskCache{snapshots: make(map[string]*model.RiskFusionResult)}
}

func (c *fakeRiskCache) Get(_ context.Context, studentID string) (*model.RiskFusionResult, error) {
	return c.snapshots[studentID], nil
}

func (c *fakeRiskCache) Set(_ context.Context, result *model.RiskFusionResult) error {
	c.snapshots[result.StudentID] = result
	return nil
}

type recordedMessage struct {
	MsgType string
	Payload interface{}
}

type fakeAlerts struct {
	counselor []recordedMessage
	student   map[string][]recordedMessage
}

func newFakeAlerts() *fakeAlerts {
	return &fakeAlerts{student: make(map[string][]recordedMessage)}
}

func (a *fakeAlerts) BroadcastToCounselors(msgType string, payload interface{}) {
	a.counselor = append(a.counselor, recordedMessage{msgType, payload})
}

func (a *fakeAlerts) NotifyStudent(studentID string, msgType string, payload interface{}) {
	a.student[studentID] = append(a.student[studentID], recordedMessage{msgType, payload})
}
