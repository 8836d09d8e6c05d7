package app

import (
	"context"
	"sort"

	"github.com/example/cadet-tracker/internal/apperr"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockCadetRepository implements secondary.CadetRepository for testing.
type mockCadetRepository struct {
	cadets    map[int64]*secondary.CadetRecord
	nextID    int64
	createErr error
	getErr    error
	listErr   error
	updateErr error
}

func newMockCadetRepository() *mockCadetRepository {
	return &mockCadetRepository{cadets: make(map[int64]*secondary.CadetRecord), nextID: 1}
}

func (m *mockCadetRepository) Create(ctx context.Context, cadet *secondary.CadetRecord) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	id := m.nextID
	m.nextID++
	stored := *cadet
	stored.ID = id
	m.cadets[id] = &stored
	return id, nil
}

func (m *mockCadetRepository) GetByID(ctx context.Context, id int64) (*secondary.CadetRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if c, ok := m.cadets[id]; ok {
		return c, nil
	}
	return nil, apperr.NotFound("cadet %d not found", id)
}

func (m *mockCadetRepository) GetByCAPID(ctx context.Context, capID int) (*secondary.CadetRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, c := range m.cadets {
		if c.CAPID == capID {
			return c, nil
		}
	}
	return nil, apperr.NotFound("cadet with CAP ID %d not found", capID)
}

func (m *mockCadetRepository) List(ctx context.Context) ([]*secondary.CadetRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.CadetRecord
	for _, c := range m.cadets {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].LastName < result[j].LastName })
	return result, nil
}

func (m *mockCadetRepository) Update(ctx context.Context, cadet *secondary.CadetRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	existing, ok := m.cadets[cadet.ID]
	if !ok {
		return apperr.NotFound("cadet %d not found", cadet.ID)
	}
	if cadet.FirstName != "" {
		existing.FirstName = cadet.FirstName
	}
	if cadet.LastName != "" {
		existing.LastName = cadet.LastName
	}
	if cadet.DateOfBirth != "" {
		existing.DateOfBirth = cadet.DateOfBirth
	}
	if cadet.JoinDate != "" {
		existing.JoinDate = cadet.JoinDate
	}
	return nil
}

// mockRankRepository implements secondary.RankRepository for testing.
type mockRankRepository struct {
	catalog   []*secondary.RankRecord
	awarded   map[int64][]int64 // cadetID -> rankIDs
	awardedOn map[int64]string  // cadetID -> date of last award
	setErr    error
}

func newMockRankRepository() *mockRankRepository {
	return &mockRankRepository{
		awarded:   make(map[int64][]int64),
		awardedOn: make(map[int64]string),
	}
}

func (m *mockRankRepository) ListOrdered(ctx context.Context) ([]*secondary.RankRecord, error) {
	result := make([]*secondary.RankRecord, len(m.catalog))
	copy(result, m.catalog)
	sort.Slice(result, func(i, j int) bool { return result[i].Order < result[j].Order })
	return result, nil
}

func (m *mockRankRepository) GetByID(ctx context.Context, id int64) (*secondary.RankRecord, error) {
	for _, r := range m.catalog {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, apperr.NotFound("rank %d not found", id)
}

func (m *mockRankRepository) RanksForCadet(ctx context.Context, cadetID int64) ([]*secondary.RankRecord, error) {
	var result []*secondary.RankRecord
	for _, rankID := range m.awarded[cadetID] {
		for _, r := range m.catalog {
			if r.ID == rankID {
				result = append(result, r)
			}
		}
	}
	return result, nil
}

func (m *mockRankRepository) SetCadetRank(ctx context.Context, cadetID, rankID int64, awardedOn string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.awarded[cadetID] = []int64{rankID}
	m.awardedOn[cadetID] = awardedOn
	return nil
}

// mockRequirementRepository implements secondary.RequirementRepository for testing.
type mockRequirementRepository struct {
	requirements map[int64]*secondary.RequirementRecord
	links        map[[2]int64]bool // (rankID, requirementID)
	nextID       int64
}

func newMockRequirementRepository() *mockRequirementRepository {
	return &mockRequirementRepository{
		requirements: make(map[int64]*secondary.RequirementRecord),
		links:        make(map[[2]int64]bool),
		nextID:       1,
	}
}

func (m *mockRequirementRepository) Create(ctx context.Context, req *secondary.RequirementRecord) (int64, error) {
	id := m.nextID
	m.nextID++
	stored := *req
	stored.ID = id
	m.requirements[id] = &stored
	return id, nil
}

func (m *mockRequirementRepository) GetByID(ctx context.Context, id int64) (*secondary.RequirementRecord, error) {
	if r, ok := m.requirements[id]; ok {
		return r, nil
	}
	return nil, apperr.NotFound("requirement %d not found", id)
}

func (m *mockRequirementRepository) Update(ctx context.Context, req *secondary.RequirementRecord) error {
	existing, ok := m.requirements[req.ID]
	if !ok {
		return apperr.NotFound("requirement %d not found", req.ID)
	}
	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.Description != "" {
		existing.Description = req.Description
	}
	return nil
}

func (m *mockRequirementRepository) List(ctx context.Context) ([]*secondary.RequirementRecord, error) {
	var result []*secondary.RequirementRecord
	for _, r := range m.requirements {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockRequirementRepository) ForRank(ctx context.Context, rankID int64) ([]*secondary.RequirementRecord, error) {
	var result []*secondary.RequirementRecord
	for key := range m.links {
		if key[0] != rankID {
			continue
		}
		if r, ok := m.requirements[key[1]]; ok {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockRequirementRepository) Link(ctx context.Context, rankID, requirementID int64) error {
	m.links[[2]int64{rankID, requirementID}] = true
	return nil
}

func (m *mockRequirementRepository) Unlink(ctx context.Context, rankID, requirementID int64) error {
	delete(m.links, [2]int64{rankID, requirementID})
	return nil
}

func (m *mockRequirementRepository) LinkExists(ctx context.Context, rankID, requirementID int64) (bool, error) {
	return m.links[[2]int64{rankID, requirementID}], nil
}

// mockCompletionRepository implements secondary.CompletionRepository for testing.
type mockCompletionRepository struct {
	completions map[[2]int64]string // (cadetID, requirementID) -> date
	insertErr   error
	deleteErr   error
}

func newMockCompletionRepository() *mockCompletionRepository {
	return &mockCompletionRepository{completions: make(map[[2]int64]string)}
}

func (m *mockCompletionRepository) CompletedForCadet(ctx context.Context, cadetID int64) (map[int64]string, error) {
	result := make(map[int64]string)
	for key, date := range m.completions {
		if key[0] == cadetID {
			result[key[1]] = date
		}
	}
	return result, nil
}

func (m *mockCompletionRepository) Exists(ctx context.Context, cadetID, requirementID int64) (bool, error) {
	_, ok := m.completions[[2]int64{cadetID, requirementID}]
	return ok, nil
}

func (m *mockCompletionRepository) Insert(ctx context.Context, cadetID, requirementID int64, dateCompleted string) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.completions[[2]int64{cadetID, requirementID}] = dateCompleted
	return nil
}

func (m *mockCompletionRepository) Delete(ctx context.Context, cadetID, requirementID int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.completions, [2]int64{cadetID, requirementID})
	return nil
}

// mockInspectionRepository implements secondary.InspectionRepository for testing.
type mockInspectionRepository struct {
	inspections map[int64]*secondary.InspectionRecord
	breakdowns  map[int64][]*secondary.InspectionItemRecord
	nextID      int64
	breakdown   bool
	upsertErr   error
}

func newMockInspectionRepository() *mockInspectionRepository {
	return &mockInspectionRepository{
		inspections: make(map[int64]*secondary.InspectionRecord),
		breakdowns:  make(map[int64][]*secondary.InspectionItemRecord),
		nextID:      1,
		breakdown:   true,
	}
}

func (m *mockInspectionRepository) Find(ctx context.Context, cadetID int64, date string) (*secondary.InspectionRecord, error) {
	for _, insp := range m.inspections {
		if insp.CadetID == cadetID && insp.Date == date {
			return insp, nil
		}
	}
	return nil, nil
}

func (m *mockInspectionRepository) GetByID(ctx context.Context, id int64) (*secondary.InspectionRecord, error) {
	if insp, ok := m.inspections[id]; ok {
		return insp, nil
	}
	return nil, apperr.NotFound("inspection %d not found", id)
}

func (m *mockInspectionRepository) Upsert(ctx context.Context, insp *secondary.InspectionRecord, items []*secondary.InspectionItemRecord) (int64, error) {
	if m.upsertErr != nil {
		return 0, m.upsertErr
	}
	id := int64(0)
	for _, existing := range m.inspections {
		if existing.CadetID == insp.CadetID && existing.Date == insp.Date {
			id = existing.ID
			break
		}
	}
	if id == 0 {
		id = m.nextID
		m.nextID++
	}
	stored := *insp
	stored.ID = id
	m.inspections[id] = &stored
	if m.breakdown {
		m.breakdowns[id] = items
	}
	return id, nil
}

func (m *mockInspectionRepository) ListForCadet(ctx context.Context, cadetID int64) ([]*secondary.InspectionRecord, error) {
	var result []*secondary.InspectionRecord
	for _, insp := range m.inspections {
		if insp.CadetID == cadetID {
			result = append(result, insp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

func (m *mockInspectionRepository) Breakdown(ctx context.Context, inspectionID int64) ([]*secondary.InspectionItemRecord, error) {
	if !m.breakdown {
		return nil, nil
	}
	return m.breakdowns[inspectionID], nil
}

func (m *mockInspectionRepository) SupportsBreakdown() bool {
	return m.breakdown
}

// mockPositionRepository implements secondary.PositionRepository for testing.
type mockPositionRepository struct {
	positions   map[int64]*secondary.PositionRecord
	assignments []*secondary.PositionAssignmentRecord
	nextID      int64
}

func newMockPositionRepository() *mockPositionRepository {
	return &mockPositionRepository{positions: make(map[int64]*secondary.PositionRecord), nextID: 1}
}

func (m *mockPositionRepository) Create(ctx context.Context, pos *secondary.PositionRecord) (int64, error) {
	id := m.nextID
	m.nextID++
	stored := *pos
	stored.ID = id
	m.positions[id] = &stored
	return id, nil
}

func (m *mockPositionRepository) GetByID(ctx context.Context, id int64) (*secondary.PositionRecord, error) {
	if p, ok := m.positions[id]; ok {
		return p, nil
	}
	return nil, apperr.NotFound("position %d not found", id)
}

func (m *mockPositionRepository) List(ctx context.Context) ([]*secondary.PositionRecord, error) {
	var result []*secondary.PositionRecord
	for _, p := range m.positions {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockPositionRepository) Assign(ctx context.Context, cadetID, positionID int64, startDate string) error {
	name := ""
	if p, ok := m.positions[positionID]; ok {
		name = p.Name
	}
	m.assignments = append(m.assignments, &secondary.PositionAssignmentRecord{
		ID:           int64(len(m.assignments) + 1),
		CadetID:      cadetID,
		PositionID:   positionID,
		PositionName: name,
		StartDate:    startDate,
	})
	return nil
}

func (m *mockPositionRepository) ForCadet(ctx context.Context, cadetID int64) ([]*secondary.PositionAssignmentRecord, error) {
	var result []*secondary.PositionAssignmentRecord
	for _, a := range m.assignments {
		if a.CadetID == cadetID {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartDate > result[j].StartDate })
	return result, nil
}

func (m *mockPositionRepository) EndAssignment(ctx context.Context, assignmentID int64, endDate string) error {
	for _, a := range m.assignments {
		if a.ID == assignmentID {
			a.EndDate = endDate
			return nil
		}
	}
	return apperr.NotFound("assignment %d not found", assignmentID)
}

// mockReportRepository implements secondary.ReportRepository for testing.
type mockReportRepository struct {
	reports map[int64]*secondary.ReportRecord
	nextID  int64
}

func newMockReportRepository() *mockReportRepository {
	return &mockReportRepository{reports: make(map[int64]*secondary.ReportRecord), nextID: 1}
}

func (m *mockReportRepository) Create(ctx context.Context, report *secondary.ReportRecord) (int64, error) {
	id := m.nextID
	m.nextID++
	stored := *report
	stored.ID = id
	m.reports[id] = &stored
	return id, nil
}

func (m *mockReportRepository) GetByID(ctx context.Context, id int64) (*secondary.ReportRecord, error) {
	if r, ok := m.reports[id]; ok {
		return r, nil
	}
	return nil, apperr.NotFound("report %d not found", id)
}

func (m *mockReportRepository) List(ctx context.Context, filters secondary.ReportFilters) ([]*secondary.ReportRecord, error) {
	var result []*secondary.ReportRecord
	for _, r := range m.reports {
		if filters.CadetID != 0 && r.CadetID != filters.CadetID {
			continue
		}
		if filters.Unresolved && r.Resolved {
			continue
		}
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *mockReportRepository) Resolve(ctx context.Context, id int64, resolvedBy string) error {
	r, ok := m.reports[id]
	if !ok {
		return apperr.NotFound("report %d not found", id)
	}
	r.Resolved = true
	r.ResolvedBy = resolvedBy
	return nil
}

// mockAuditLogRepository implements secondary.AuditLogRepository for testing.
type mockAuditLogRepository struct {
	entries []*secondary.AuditRecord
}

func newMockAuditLogRepository() *mockAuditLogRepository {
	return &mockAuditLogRepository{}
}

func (m *mockAuditLogRepository) Create(ctx context.Context, entry *secondary.AuditRecord) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockAuditLogRepository) ListRecent(ctx context.Context, limit int) ([]*secondary.AuditRecord, error) {
	var result []*secondary.AuditRecord
	for i := len(m.entries) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, m.entries[i])
	}
	return result, nil
}

// mockLogWriter implements secondary.LogWriter for testing. Entries are
// recorded as "<action>:<entityType>:<entityID>". A non-nil err makes every
// call fail, exercising the best-effort contract.
type mockLogWriter struct {
	entries []string
	err     error
}

func newMockLogWriter() *mockLogWriter {
	return &mockLogWriter{}
}

func (m *mockLogWriter) LogCreate(ctx context.Context, entityType, entityID string) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, "create:"+entityType+":"+entityID)
	return nil
}

func (m *mockLogWriter) LogUpdate(ctx context.Context, entityType, entityID, fieldName, oldValue, newValue string) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, "update:"+entityType+":"+entityID)
	return nil
}

func (m *mockLogWriter) LogDelete(ctx context.Context, entityType, entityID string) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, "delete:"+entityType+":"+entityID)
	return nil
}
