package app

import (
	"context"
	"strconv"

	"github.com/example/cadet-tracker/internal/core/inspection"
	"github.com/example/cadet-tracker/internal/ports/primary"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

// InspectionServiceImpl implements the InspectionService interface.
type InspectionServiceImpl struct {
	engine         *inspection.Engine
	cadetRepo      secondary.CadetRepository
	inspectionRepo secondary.InspectionRepository
	logWriter      secondary.LogWriter
}

// NewInspectionService creates a new InspectionService with injected dependencies.
func NewInspectionService(
	engine *inspection.Engine,
	cadetRepo secondary.CadetRepository,
	inspectionRepo secondary.InspectionRepository,
	logWriter secondary.LogWriter,
) *InspectionServiceImpl {
	return &InspectionServiceImpl{
		engine:         engine,
		cadetRepo:      cadetRepo,
		inspectionRepo: inspectionRepo,
		logWriter:      logWriter,
	}
}

func toEngineItems(items []primary.ChecklistItem) []inspection.Item {
	out := make([]inspection.Item, len(items))
	for i, it := range items {
		out[i] = inspection.Item{Section: it.Section, Name: it.Name, Score: it.Score, Comment: it.Comment}
	}
	return out
}

// Calculate scores a checklist without persisting anything.
func (s *InspectionServiceImpl) Calculate(ctx context.Context, req primary.CalculateRequest) (*primary.InspectionResult, error) {
	result, err := s.engine.Calculate(toEngineItems(req.Items), req.OverallComment)
	if err != nil {
		return nil, err
	}
	return &primary.InspectionResult{
		Total:    result.Total,
		MaxTotal: s.engine.Catalog().MaxTotal(),
		Rating:   string(result.Rating),
		Comments: result.Comments,
	}, nil
}

// SubmitInspection scores a checklist and persists it. An existing
// inspection for the same cadet and date is updated in place.
func (s *InspectionServiceImpl) SubmitInspection(ctx context.Context, req primary.SubmitInspectionRequest) (*primary.Inspection, error) {
	result, err := s.engine.Calculate(toEngineItems(req.Items), req.OverallComment)
	if err != nil {
		return nil, err
	}

	date, err := normalizeDate("inspection date", req.Date)
	if err != nil {
		return nil, err
	}

	cadet, err := s.cadetRepo.GetByCAPID(ctx, req.CAPID)
	if err != nil {
		return nil, err
	}

	itemRecords := make([]*secondary.InspectionItemRecord, len(req.Items))
	for i, it := range req.Items {
		itemRecords[i] = &secondary.InspectionItemRecord{
			Section: it.Section,
			Item:    it.Name,
			Score:   it.Score,
			Comment: it.Comment,
		}
	}

	id, err := s.inspectionRepo.Upsert(ctx, &secondary.InspectionRecord{
		CadetID:        cadet.ID,
		InspectorCAPID: req.InspectorCAPID,
		Date:           date,
		Total:          result.Total,
		Rating:         string(result.Rating),
		Comments:       result.Comments,
	}, itemRecords)
	if err != nil {
		return nil, err
	}

	_ = s.logWriter.LogCreate(ctx, "inspection", strconv.FormatInt(id, 10))

	insp := &primary.Inspection{
		ID:             id,
		CadetID:        cadet.ID,
		InspectorCAPID: req.InspectorCAPID,
		Date:           date,
		Total:          result.Total,
		Rating:         string(result.Rating),
		Comments:       result.Comments,
	}
	if s.inspectionRepo.SupportsBreakdown() {
		insp.Items = req.Items
	}
	return insp, nil
}

func (s *InspectionServiceImpl) loadBreakdown(ctx context.Context, insp *primary.Inspection) error {
	if !s.inspectionRepo.SupportsBreakdown() {
		return nil
	}
	rows, err := s.inspectionRepo.Breakdown(ctx, insp.ID)
	if err != nil {
		return err
	}
	for _, row := range rows {
		insp.Items = append(insp.Items, primary.ChecklistItem{
			Section: row.Section,
			Name:    row.Item,
			Score:   row.Score,
			Comment: row.Comment,
		})
	}
	return nil
}

func recordToInspection(r *secondary.InspectionRecord) *primary.Inspection {
	return &primary.Inspection{
		ID:             r.ID,
		CadetID:        r.CadetID,
		InspectorCAPID: r.InspectorCAPID,
		Date:           r.Date,
		Total:          r.Total,
		Rating:         r.Rating,
		Comments:       r.Comments,
	}
}

// FindInspection retrieves the inspection for a cadet and date, or nil when
// none exists.
func (s *InspectionServiceImpl) FindInspection(ctx context.Context, capID int, date string) (*primary.Inspection, error) {
	date, err := normalizeDate("inspection date", date)
	if err != nil {
		return nil, err
	}

	cadet, err := s.cadetRepo.GetByCAPID(ctx, capID)
	if err != nil {
		return nil, err
	}

	record, err := s.inspectionRepo.Find(ctx, cadet.ID, date)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	insp := recordToInspection(record)
	if err := s.loadBreakdown(ctx, insp); err != nil {
		return nil, err
	}
	return insp, nil
}

// ListInspections lists a cadet's inspections, newest first.
func (s *InspectionServiceImpl) ListInspections(ctx context.Context, capID int) ([]*primary.Inspection, error) {
	cadet, err := s.cadetRepo.GetByCAPID(ctx, capID)
	if err != nil {
		return nil, err
	}

	records, err := s.inspectionRepo.ListForCadet(ctx, cadet.ID)
	if err != nil {
		return nil, err
	}

	inspections := make([]*primary.Inspection, len(records))
	for i, r := range records {
		inspections[i] = recordToInspection(r)
	}
	return inspections, nil
}

// Checklist returns the catalog the engine scores against.
func (s *InspectionServiceImpl) Checklist(ctx context.Context) *primary.Checklist {
	catalog := s.engine.Catalog()
	out := &primary.Checklist{Sections: make([]primary.ChecklistSection, len(catalog.Sections))}
	for i, sec := range catalog.Sections {
		items := make([]string, len(sec.Items))
		copy(items, sec.Items)
		out.Sections[i] = primary.ChecklistSection{Name: sec.Name, Items: items}
	}
	return out
}

// Ensure InspectionServiceImpl implements the interface
var _ primary.InspectionService = (*InspectionServiceImpl)(nil)
