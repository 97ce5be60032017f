package mappers

import (
	"fmt"

	"blogsummarizer/internal/domain/summary"
	"blogsummarizer/internal/infrastructure/persistence/models"
)

// SummaryMapper converts summary records to and from their stored forms.
type SummaryMapper interface {
	// ToEntity converts a persistence model to a domain entity.
	ToEntity(model *models.SummaryModel) (*summary.SummaryRecord, error)

	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *summary.SummaryRecord) *models.SummaryModel

	// DocumentToEntity converts an archive document to a domain entity.
	DocumentToEntity(doc *models.SummaryDocument) (*summary.SummaryRecord, error)

	// ToDocument converts a domain entity to an archive document.
	ToDocument(entity *summary.SummaryRecord) *models.SummaryDocument
}

// SummaryMapperImpl is the concrete implementation of SummaryMapper.
type SummaryMapperImpl struct{}

// NewSummaryMapper creates a new summary mapper.
func NewSummaryMapper() SummaryMapper {
	return &SummaryMapperImpl{}
}

func (m *SummaryMapperImpl) ToEntity(model *models.SummaryModel) (*summary.SummaryRecord, error) {
	if model == nil {
		return nil, nil
	}

	url := ""
	if model.URL != nil {
		url = *model.URL
	}

	entity, err := summary.ReconstructSummaryRecord(
		model.RecordID,
		url,
		model.OriginalText,
		model.SummaryEn,
		model.SummaryUr,
		model.CreatedAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct summary record: %w", err)
	}
	return entity, nil
}

func (m *SummaryMapperImpl) ToModel(entity *summary.SummaryRecord) *models.SummaryModel {
	if entity == nil {
		return nil
	}

	var url *string
	if entity.SourceURL() != "" {
		u := entity.SourceURL()
		url = &u
	}

	return &models.SummaryModel{
		RecordID:     entity.ID(),
		URL:          url,
		OriginalText: entity.OriginalText(),
		SummaryEn:    entity.SummaryEn(),
		SummaryUr:    entity.SummaryTranslated(),
		CreatedAt:    entity.CreatedAt(),
	}
}

func (m *SummaryMapperImpl) DocumentToEntity(doc *models.SummaryDocument) (*summary.SummaryRecord, error) {
	if doc == nil {
		return nil, nil
	}

	entity, err := summary.ReconstructSummaryRecord(
		doc.RecordID,
		doc.URL,
		doc.FullText,
		doc.SummaryEn,
		doc.SummaryUr,
		doc.CreatedAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct archived summary: %w", err)
	}
	return entity, nil
}

func (m *SummaryMapperImpl) ToDocument(entity *summary.SummaryRecord) *models.SummaryDocument {
	if entity == nil {
		return nil
	}

	return &models.SummaryDocument{
		RecordID:  entity.ID(),
		URL:       entity.SourceURL(),
		FullText:  entity.OriginalText(),
		SummaryEn: entity.SummaryEn(),
		SummaryUr: entity.SummaryTranslated(),
		CreatedAt: entity.CreatedAt(),
	}
}
