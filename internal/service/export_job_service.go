package service

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/patent-lifecycle-api/internal/models"
	appErrors "github.com/noah-isme/patent-lifecycle-api/pkg/errors"
	"github.com/noah-isme/patent-lifecycle-api/pkg/export"
	"github.com/noah-isme/patent-lifecycle-api/pkg/jobs"
	"github.com/noah-isme/patent-lifecycle-api/pkg/storage"
)

// Export job states.
const (
	ExportStatusPending = "pending"
	ExportStatusRunning = "running"
	ExportStatusDone    = "done"
	ExportStatusFailed  = "failed"
)

const exportJobType = "register-export"

// ExportJob tracks one asynchronous register export.
type ExportJob struct {
	ID            string     `json:"id"`
	Format        string     `json:"format"`
	Status        string     `json:"status"`
	FileName      string     `json:"file_name,omitempty"`
	DownloadToken string     `json:"download_token,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	Error         string     `json:"error,omitempty"`
}

// ExportJobService renders register exports in the background and hands out
// signed download tokens. Job state is held in memory; exports are ephemeral
// artifacts and expired files are swept on an interval.
type ExportJobService struct {
	register registerLister
	store    *storage.ExportStore
	signer   *storage.DownloadSigner
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger

	queue      *jobs.Queue
	fileTTL    time.Duration
	mu         sync.RWMutex
	records    map[string]*ExportJob
	stopSweep  context.CancelFunc
	sweepEvery time.Duration
}

// NewExportJobService constructs the service and its worker queue.
func NewExportJobService(register registerLister, store *storage.ExportStore, signer *storage.DownloadSigner, workers int, fileTTL time.Duration, logger *zap.Logger) *ExportJobService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if fileTTL <= 0 {
		fileTTL = 24 * time.Hour
	}
	s := &ExportJobService{
		register:   register,
		store:      store,
		signer:     signer,
		csv:        export.NewCSVExporter(),
		pdf:        export.NewPDFExporter(),
		logger:     logger,
		fileTTL:    fileTTL,
		records:    make(map[string]*ExportJob),
		sweepEvery: time.Hour,
	}
	s.queue = jobs.NewQueue("register-exports", s.process, jobs.Options{
		Workers: workers,
		Logger:  logger,
	})
	return s
}

// Start launches the workers and the expired-file sweeper.
func (s *ExportJobService) Start(ctx context.Context) {
	s.queue.Start(ctx)

	sweepCtx, cancel := context.WithCancel(ctx)
	s.stopSweep = cancel
	go s.sweep(sweepCtx)
}

// Stop drains the workers.
func (s *ExportJobService) Stop() {
	if s.stopSweep != nil {
		s.stopSweep()
	}
	s.queue.Stop()
}

// Enqueue schedules a register export for the acting admin.
func (s *ExportJobService) Enqueue(ctx context.Context, claims *models.JWTClaims, format string) (*ExportJob, error) {
	if claims == nil || claims.Role != models.RoleAdmin {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "only admins may export the register")
	}
	if format != "csv" && format != "pdf" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}

	record := &ExportJob{
		ID:        uuid.NewString(),
		Format:    format,
		Status:    ExportStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.records[record.ID] = record
	s.mu.Unlock()

	if err := s.queue.Enqueue(jobs.Job{ID: record.ID, Type: exportJobType, Payload: format}); err != nil {
		s.mu.Lock()
		delete(s.records, record.ID)
		s.mu.Unlock()
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to schedule export")
	}

	s.logger.Info("register export scheduled", zap.String("job_id", record.ID), zap.String("format", format))
	return s.snapshot(record.ID), nil
}

// Get returns the current state of an export job.
func (s *ExportJobService) Get(claims *models.JWTClaims, jobID string) (*ExportJob, error) {
	if claims == nil || claims.Role != models.RoleAdmin {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "only admins may inspect export jobs")
	}
	record := s.snapshot(jobID)
	if record == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "export job not found")
	}
	return record, nil
}

// Open validates a download token and returns the exported file. The token is
// the sole credential; expired tokens are rejected.
func (s *ExportJobService) Open(token string) (*os.File, string, error) {
	_, name, _, err := s.signer.Verify(token, false)
	if err != nil {
		return nil, "", appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired download token")
	}
	file, err := s.store.Open(name)
	if err != nil {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "export file no longer available")
	}
	contentType := "text/csv"
	if filepath.Ext(name) == ".pdf" {
		contentType = "application/pdf"
	}
	return file, contentType, nil
}

func (s *ExportJobService) process(ctx context.Context, job jobs.Job) error {
	format, _ := job.Payload.(string)
	s.setStatus(job.ID, ExportStatusRunning, "")

	patents, err := s.register.List(ctx)
	if err != nil {
		s.setStatus(job.ID, ExportStatusFailed, err.Error())
		return err
	}

	reg := registerFromPatents(patents)

	var data []byte
	switch format {
	case "pdf":
		data, err = s.pdf.Render(reg, "Patent Register")
	default:
		data, err = s.csv.Render(reg)
	}
	if err != nil {
		s.setStatus(job.ID, ExportStatusFailed, err.Error())
		return err
	}

	filename := job.ID + "." + format
	if err := s.store.Save(filename, data); err != nil {
		s.setStatus(job.ID, ExportStatusFailed, err.Error())
		return err
	}

	token, expiresAt, err := s.signer.Sign(job.ID, filename)
	if err != nil {
		s.setStatus(job.ID, ExportStatusFailed, err.Error())
		return err
	}

	s.mu.Lock()
	if record, ok := s.records[job.ID]; ok {
		record.Status = ExportStatusDone
		record.FileName = filename
		record.DownloadToken = token
		record.ExpiresAt = &expiresAt
		record.Error = ""
	}
	s.mu.Unlock()

	s.logger.Info("register export completed", zap.String("job_id", job.ID), zap.String("file", filename))
	return nil
}

func (s *ExportJobService) setStatus(jobID, status, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if record, ok := s.records[jobID]; ok {
		record.Status = status
		record.Error = errMsg
	}
}

func (s *ExportJobService) snapshot(jobID string) *ExportJob {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[jobID]
	if !ok {
		return nil
	}
	copied := *record
	return &copied
}

func (s *ExportJobService) sweep(ctx context.Context) {
	ticker := time.NewTicker(s.sweepEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.store.Sweep(s.fileTTL)
			if err != nil {
				s.logger.Warn("export cleanup failed", zap.Error(err))
				continue
			}
			if removed > 0 {
				s.logger.Info("expired exports removed", zap.Int("count", removed))
			}
		}
	}
}

// registerFromPatents flattens the register into exportable rows.
func registerFromPatents(patents []models.Patent) export.Register {
	reg := export.Register{
		Headers: []string{"ID", "Title", "Applicant", "Filing Date", "Domain", "Type", "Status"},
	}
	for _, p := range patents {
		reg.Rows = append(reg.Rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Title,
			p.ApplName,
			p.FilingDate.Format(filingDateLayout),
			p.Domain,
			string(p.PatentType),
			string(p.Status),
		})
	}
	return reg
}
