package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aferrand/decisions-collector/constants"
	"github.com/aferrand/decisions-collector/gen/ent"
	"github.com/aferrand/decisions-collector/gen/ent/decision"
	"github.com/aferrand/decisions-collector/internal/common"
	"github.com/aferrand/decisions-collector/internal/entity"
)

// DecisionPatch carries the fields a minor diff is allowed to touch.
// Nil pointers mean "leave unchanged".
type DecisionPatch struct {
	ChamberID        *string
	ChamberName      *string
	JurisdictionCode *string
	JurisdictionName *string
	GroupID          *string
	RegisterNumber   *string
	MatterCode       *string
	MatterLabel      *string
	ProcedureCode    *string
	Solution         *string
	Selection        *bool
	DateDecision     *time.Time
	Parties          []entity.Party
	Composition      []entity.Magistrate
	LabelStatus      *constants.LabelStatus
	PublishStatus    *constants.PublishStatus
}

// DecisionRepository is the narrow gateway to the downstream decision database.
type DecisionRepository interface {
	// GetBySourceID returns nil (no error) when the source id is unknown downstream.
	GetBySourceID(ctx context.Context, sourceID int64) (*entity.NormalizedDecision, error)
	Save(ctx context.Context, d *entity.NormalizedDecision) (*entity.NormalizedDecision, error)
	Overwrite(ctx context.Context, id uuid.UUID, d *entity.NormalizedDecision) error
	Patch(ctx context.Context, id uuid.UUID, p DecisionPatch) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, sourceName string, status constants.LabelStatus, fromDate, toDate *time.Time) ([]*entity.NormalizedDecision, error)
}

type decisionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDecisionRepository(client *ent.Client, logger *slog.Logger) DecisionRepository {
	return &decisionRepository{
		client: client,
		logger: logger,
	}
}

func (r *decisionRepository) GetBySourceID(ctx context.Context, sourceID int64) (*entity.NormalizedDecision, error) {
	row, err := r.client.Decision.Query().
		Where(decision.SourceID(sourceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to query decision", "source_id", sourceID, "error", err)
		return nil, common.WrapError(common.ErrInfrastructure, err.Error())
	}
	return toEntity(row)
}

func (r *decisionRepository) Save(ctx context.Context, d *entity.NormalizedDecision) (*entity.NormalizedDecision, error) {
	parties, composition, err := marshalLists(d)
	if err != nil {
		return nil, err
	}

	row, err := r.client.Decision.Create().
		SetSourceID(d.SourceID).
		SetSourceName(d.SourceName).
		SetOriginalText(d.OriginalText).
		SetJurisdictionID(d.JurisdictionID).
		SetJurisdictionCode(d.JurisdictionCode).
		SetJurisdictionName(d.JurisdictionName).
		SetChamberID(d.ChamberID).
		SetChamberName(d.ChamberName).
		SetGroupID(d.GroupID).
		SetCaseNumber(d.CaseNumber).
		SetRegisterNumber(d.RegisterNumber).
		SetMatterCode(d.MatterCode).
		SetMatterLabel(d.MatterLabel).
		SetProcedureCode(d.ProcedureCode).
		SetSolution(d.Solution).
		SetPublic(d.Public).
		SetDebatPublic(d.DebatPublic).
		SetSelection(d.Selection).
		SetParties(parties).
		SetComposition(composition).
		SetOccultationAdditionalTerms(d.Occultation.AdditionalTerms).
		SetOccultationCategories(constants.AsStringSlice(d.Occultation.CategoriesToOmit)).
		SetOccultationMotivation(d.Occultation.MotivationOccultation).
		SetLabelStatus(string(d.LabelStatus)).
		SetPublishStatus(string(d.PublishStatus)).
		SetDateDecision(d.DateDecision).
		SetDateCreation(d.DateCreation).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			r.logger.Error("decision insert conflict", "source_id", d.SourceID, "error", err)
			return nil, common.NewAppError("DECISION_CONFLICT", "duplicate source_id", err)
		}
		r.logger.Error("failed to insert decision", "source_id", d.SourceID, "error", err)
		return nil, common.WrapError(common.ErrInfrastructure, err.Error())
	}
	return toEntity(row)
}

// Overwrite replaces every normalized field of an existing record (major diff).
// The row id, source id and creation date are preserved.
func (r *decisionRepository) Overwrite(ctx context.Context, id uuid.UUID, d *entity.NormalizedDecision) error {
	parties, composition, err := marshalLists(d)
	if err != nil {
		return err
	}

	err = r.client.Decision.UpdateOneID(id).
		SetOriginalText(d.OriginalText).
		SetJurisdictionID(d.JurisdictionID).
		SetJurisdictionCode(d.JurisdictionCode).
		SetJurisdictionName(d.JurisdictionName).
		SetChamberID(d.ChamberID).
		SetChamberName(d.ChamberName).
		SetGroupID(d.GroupID).
		SetCaseNumber(d.CaseNumber).
		SetRegisterNumber(d.RegisterNumber).
		SetMatterCode(d.MatterCode).
		SetMatterLabel(d.MatterLabel).
		SetProcedureCode(d.ProcedureCode).
		SetSolution(d.Solution).
		SetPublic(d.Public).
		SetDebatPublic(d.DebatPublic).
		SetSelection(d.Selection).
		SetParties(parties).
		SetComposition(composition).
		SetOccultationAdditionalTerms(d.Occultation.AdditionalTerms).
		SetOccultationCategories(constants.AsStringSlice(d.Occultation.CategoriesToOmit)).
		SetOccultationMotivation(d.Occultation.MotivationOccultation).
		SetLabelStatus(string(d.LabelStatus)).
		SetPublishStatus(string(d.PublishStatus)).
		SetDateDecision(d.DateDecision).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.WrapError(common.ErrNotFound, "decision vanished before overwrite")
		}
		r.logger.Error("failed to overwrite decision", "id", id, "error", err)
		return common.WrapError(common.ErrInfrastructure, err.Error())
	}
	return nil
}

func (r *decisionRepository) Patch(ctx context.Context, id uuid.UUID, p DecisionPatch) error {
	upd := r.client.Decision.UpdateOneID(id).
		SetNillableChamberID(p.ChamberID).
		SetNillableChamberName(p.ChamberName).
		SetNillableJurisdictionCode(p.JurisdictionCode).
		SetNillableJurisdictionName(p.JurisdictionName).
		SetNillableGroupID(p.GroupID).
		SetNillableRegisterNumber(p.RegisterNumber).
		SetNillableMatterCode(p.MatterCode).
		SetNillableMatterLabel(p.MatterLabel).
		SetNillableProcedureCode(p.ProcedureCode).
		SetNillableSolution(p.Solution).
		SetNillableSelection(p.Selection).
		SetNillableDateDecision(p.DateDecision)

	if p.Parties != nil {
		raw, err := json.Marshal(p.Parties)
		if err != nil {
			return common.WrapError(err, "marshal parties")
		}
		upd = upd.SetParties(raw)
	}
	if p.Composition != nil {
		raw, err := json.Marshal(p.Composition)
		if err != nil {
			return common.WrapError(err, "marshal composition")
		}
		upd = upd.SetComposition(raw)
	}
	if p.LabelStatus != nil {
		upd = upd.SetLabelStatus(string(*p.LabelStatus))
	}
	if p.PublishStatus != nil {
		upd = upd.SetPublishStatus(string(*p.PublishStatus))
	}

	if err := upd.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.WrapError(common.ErrNotFound, "decision vanished before patch")
		}
		r.logger.Error("failed to patch decision", "id", id, "error", err)
		return common.WrapError(common.ErrInfrastructure, err.Error())
	}
	return nil
}

func (r *decisionRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Decision.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.WrapError(common.ErrNotFound, "decision not found")
		}
		r.logger.Error("failed to delete decision", "id", id, "error", err)
		return common.WrapError(common.ErrInfrastructure, err.Error())
	}
	return nil
}

func (r *decisionRepository) List(ctx context.Context, sourceName string, status constants.LabelStatus, fromDate, toDate *time.Time) ([]*entity.NormalizedDecision, error) {
	q := r.client.Decision.Query().Where(decision.SourceName(sourceName))
	if status != "" {
		q = q.Where(decision.LabelStatus(string(status)))
	}
	if fromDate != nil {
		q = q.Where(decision.DateDecisionGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(decision.DateDecisionLTE(*toDate))
	}
	rows, err := q.Order(decision.ByDateDecision()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list decisions", "source", sourceName, "error", err)
		return nil, common.WrapError(common.ErrInfrastructure, err.Error())
	}

	result := make([]*entity.NormalizedDecision, len(rows))
	for i, row := range rows {
		d, err := toEntity(row)
		if err != nil {
			return nil, err
		}
		result[i] = d
	}
	return result, nil
}

func marshalLists(d *entity.NormalizedDecision) (json.RawMessage, json.RawMessage, error) {
	parties, err := json.Marshal(d.Parties)
	if err != nil {
		return nil, nil, common.WrapError(err, "marshal parties")
	}
	composition, err := json.Marshal(d.Composition)
	if err != nil {
		return nil, nil, common.WrapError(err, "marshal composition")
	}
	return parties, composition, nil
}

func toEntity(row *ent.Decision) (*entity.NormalizedDecision, error) {
	var parties []entity.Party
	if len(row.Parties) > 0 {
		if err := json.Unmarshal(row.Parties, &parties); err != nil {
			return nil, common.WrapError(err, "unmarshal parties")
		}
	}
	var composition []entity.Magistrate
	if len(row.Composition) > 0 {
		if err := json.Unmarshal(row.Composition, &composition); err != nil {
			return nil, common.WrapError(err, "unmarshal composition")
		}
	}

	cats := make([]constants.Category, len(row.OccultationCategories))
	for i, c := range row.OccultationCategories {
		cats[i] = constants.Category(c)
	}

	return &entity.NormalizedDecision{
		ID:               row.ID,
		SourceID:         row.SourceID,
		SourceName:       row.SourceName,
		OriginalText:     row.OriginalText,
		JurisdictionID:   row.JurisdictionID,
		JurisdictionCode: row.JurisdictionCode,
		JurisdictionName: row.JurisdictionName,
		ChamberID:        row.ChamberID,
		ChamberName:      row.ChamberName,
		GroupID:          row.GroupID,
		CaseNumber:       row.CaseNumber,
		RegisterNumber:   row.RegisterNumber,
		MatterCode:       row.MatterCode,
		MatterLabel:      row.MatterLabel,
		ProcedureCode:    row.ProcedureCode,
		Solution:         row.Solution,
		Public:           row.Public,
		DebatPublic:      row.DebatPublic,
		Selection:        row.Selection,
		Parties:          parties,
		Composition:      composition,
		Occultation: entity.Occultation{
			AdditionalTerms:       row.OccultationAdditionalTerms,
			CategoriesToOmit:      cats,
			MotivationOccultation: row.OccultationMotivation,
		},
		LabelStatus:   constants.LabelStatus(row.LabelStatus),
		PublishStatus: constants.PublishStatus(row.PublishStatus),
		DateDecision:  row.DateDecision,
		DateCreation:  row.DateCreation,
	}, nil
}
