package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pr-poehali-dev/office-supply-webshop/mapping"
	"github.com/pr-poehali-dev/office-supply-webshop/models"
	"github.com/pr-poehali-dev/office-supply-webshop/sheet"
	"github.com/pr-poehali-dev/office-supply-webshop/state"
	"go.uber.org/zap"
)

const (
	msgProcessingFailed = "Ошибка обработки файла"
	msgTransportFailed  = "Ошибка соединения с сервером обработки"
)

// FileProcessor parses a price list remotely.
type FileProcessor interface {
	Process(ctx context.Context, filename, contentType string, data []byte) (*models.ProcessResponse, error)
}

// UploadService runs the admin upload cycle: file selection, remote
// processing and the column mapping dialog.
type UploadService struct {
	processor FileProcessor
	catalog   CatalogService
	builder   *PriceListBuilder
	logger    *zap.Logger
	// preserveOverrides keeps manual mapping choices when a new file arrives.
	preserveOverrides bool
	now               func() time.Time
}

func NewUploadService(processor FileProcessor, catalog CatalogService, builder *PriceListBuilder, preserveOverrides bool, logger *zap.Logger) *UploadService {
	return &UploadService{
		processor:         processor,
		catalog:           catalog,
		builder:           builder,
		logger:            logger,
		preserveOverrides: preserveOverrides,
		now:               time.Now,
	}
}

// IsSupportedSpreadsheet accepts .xlsx and .xls names and spreadsheet MIME types.
func IsSupportedSpreadsheet(filename, contentType string) bool {
	if strings.Contains(contentType, "sheet") {
		return true
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}

// Select records the chosen file. Unsupported files are ignored and leave the
// state unchanged. An open mapping dialog is re-detected against the new header.
func (s *UploadService) Select(st *state.State, filename, contentType string, data []byte) bool {
	if !IsSupportedSpreadsheet(filename, contentType) {
		s.logger.Debug("Ignoring unsupported upload", zap.String("filename", filename), zap.String("content_type", contentType))
		return false
	}

	table, err := sheet.Read(filename, data)
	if err != nil {
		s.logger.Debug("Header not readable locally", zap.String("filename", filename), zap.Error(err))
		table = nil
	}

	st.Lock()
	defer st.Unlock()
	st.Upload.Filename = filename
	st.Upload.ContentType = contentType
	st.Upload.Data = data
	st.Upload.Table = table

	if st.Mapping != nil && table != nil {
		if err := st.Mapping.SetColumns(table.Header); err != nil {
			s.logger.Warn("Failed to refresh column mapping", zap.Error(err))
		}
	}
	return true
}

func (s *UploadService) Status(st *state.State) models.UploadStatus {
	st.Lock()
	defer st.Unlock()
	return models.UploadStatus{
		Filename: st.Upload.Filename,
		Size:     len(st.Upload.Data),
		InFlight: st.InFlight(),
		Outcome:  st.Upload.Outcome,
	}
}

// Process submits the selected file. Only one submission per session may be
// outstanding. Every completed submission replaces the previous outcome.
func (s *UploadService) Process(ctx context.Context, st *state.State) (*models.UploadOutcome, error) {
	st.Lock()
	filename, contentType, data := st.Upload.Filename, st.Upload.ContentType, st.Upload.Data
	st.Unlock()
	if filename == "" {
		return nil, ErrNoFileSelected
	}

	if !st.BeginSubmission() {
		return nil, ErrSubmissionInFlight
	}
	defer st.EndSubmission()

	outcome := s.submit(ctx, filename, contentType, data)

	st.Lock()
	st.Upload.Outcome = outcome
	st.Unlock()
	return outcome, nil
}

func (s *UploadService) submit(ctx context.Context, filename, contentType string, data []byte) *models.UploadOutcome {
	outcome := &models.UploadOutcome{At: s.now()}

	resp, err := s.processor.Process(ctx, filename, contentType, data)
	if err != nil {
		s.logger.Warn("File submission failed", zap.String("filename", filename), zap.Error(err))
		outcome.Kind = models.OutcomeTransportError
		outcome.Message = msgTransportFailed
		if msg := err.Error(); msg != "" {
			outcome.Message = fmt.Sprintf("%s: %s", msgTransportFailed, msg)
		}
		return outcome
	}

	if !resp.Success {
		s.logger.Info("File rejected by processor", zap.String("filename", filename), zap.String("error", resp.Error))
		outcome.Kind = models.OutcomeProcessingFailed
		outcome.Message = resp.Error
		if outcome.Message == "" {
			outcome.Message = msgProcessingFailed
		}
		return outcome
	}

	if err := s.catalog.ReplaceCatalog(ctx, resp.Products, resp.Categories); err != nil {
		outcome.Kind = models.OutcomeProcessingFailed
		outcome.Message = msgProcessingFailed
		return outcome
	}
	total := len(resp.Products)
	if resp.TotalProducts != nil {
		total = *resp.TotalProducts
	}
	outcome.Kind = models.OutcomeSuccess
	outcome.TotalProducts = total
	outcome.Categories = resp.Categories
	outcome.Message = resp.Message
	if outcome.Message == "" {
		outcome.Message = processedMessage(total, len(resp.Categories))
	}
	return outcome
}

func processedMessage(products, categories int) string {
	return fmt.Sprintf("Обработано %d товаров из %d категорий", products, categories)
}

// OpenMapping starts a new mapping dialog. Without explicit columns the header
// of the selected file is used.
func (s *UploadService) OpenMapping(st *state.State, columns []string) (models.MappingView, error) {
	st.Lock()
	defer st.Unlock()

	if len(columns) == 0 {
		if st.Upload.Table == nil {
			return models.MappingView{}, ErrHeaderUnavailable
		}
		columns = st.Upload.Table.Header
	}
	session := mapping.NewSession(mapping.WithPreserveOverrides(s.preserveOverrides))
	if err := session.SetColumns(columns); err != nil {
		return models.MappingView{}, err
	}
	st.Mapping = session
	return session.View(), nil
}

func (s *UploadService) Mapping(st *state.State) (models.MappingView, error) {
	st.Lock()
	defer st.Unlock()
	if st.Mapping == nil {
		return models.MappingView{}, ErrNoMappingSession
	}
	return st.Mapping.View(), nil
}

// SetMappingColumns feeds a new header row into the open dialog.
func (s *UploadService) SetMappingColumns(st *state.State, columns []string) (models.MappingView, error) {
	st.Lock()
	defer st.Unlock()
	if st.Mapping == nil {
		return models.MappingView{}, ErrNoMappingSession
	}
	if err := st.Mapping.SetColumns(columns); err != nil {
		return models.MappingView{}, err
	}
	return st.Mapping.View(), nil
}

func (s *UploadService) OverrideMapping(st *state.State, index int, column string) (models.MappingView, error) {
	st.Lock()
	defer st.Unlock()
	if st.Mapping == nil {
		return models.MappingView{}, ErrNoMappingSession
	}
	if err := st.Mapping.Override(index, column); err != nil {
		return models.MappingView{}, err
	}
	return st.Mapping.View(), nil
}

// ConfirmMapping closes the dialog and hands out the mapping. When the
// selected file was read locally its rows are imported with that mapping.
func (s *UploadService) ConfirmMapping(ctx context.Context, st *state.State) (*ConfirmResult, error) {
	st.Lock()
	defer st.Unlock()
	if st.Mapping == nil {
		return nil, ErrNoMappingSession
	}
	confirmed, err := st.Mapping.Confirm()
	if err != nil {
		return nil, err
	}
	st.Mapping = nil

	result := &ConfirmResult{Mapping: confirmed}
	table := st.Upload.Table
	if table == nil {
		return result, nil
	}

	outcome := &models.UploadOutcome{At: s.now()}
	products, categories, err := s.builder.BuildProducts(table, confirmed)
	if err == nil {
		err = s.catalog.ReplaceCatalog(ctx, products, categories)
	}
	if err != nil {
		s.logger.Warn("Import with confirmed mapping failed", zap.String("filename", st.Upload.Filename), zap.Error(err))
		outcome.Kind = models.OutcomeProcessingFailed
		outcome.Message = fmt.Sprintf("%s: %v", msgProcessingFailed, err)
	} else {
		outcome.Kind = models.OutcomeSuccess
		outcome.TotalProducts = len(products)
		outcome.Categories = categories
		outcome.Message = processedMessage(len(products), len(categories))
	}
	st.Upload.Outcome = outcome
	result.Outcome = outcome
	return result, nil
}

// IsMappingError reports errors caused by invalid dialog input.
func IsMappingError(err error) bool {
	return errors.Is(err, mapping.ErrFieldIndexOutOfRange) ||
		errors.Is(err, mapping.ErrUnknownColumn) ||
		errors.Is(err, mapping.ErrUnknownField)
}
