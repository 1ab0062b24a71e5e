package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"receiptapi/internal/model"
	"receiptapi/internal/receipt"
	"receiptapi/internal/render"
	"receiptapi/internal/repository"
	"receiptapi/internal/storage"
	"receiptapi/internal/validation"
)

const (
	// KeyPrefix is the object-store folder holding receipt PDFs.
	KeyPrefix = "receipts"

	DefaultFilename      = "car-sale-receipt.pdf"
	DefaultPresignExpiry = 15 * time.Minute
	DefaultCreator       = "receiptapi"

	defaultLimit = 10
	maxLimit     = 100
)

var tracer = otel.Tracer("receiptapi/internal/service")

// ReceiptListResult is one page of receipts.
type ReceiptListResult struct {
	Items []model.Receipt `json:"data"`
	Total int             `json:"total"`
}

// DownloadURL is a presigned link to a receipt PDF.
type DownloadURL struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ReceiptService holds the receipt use cases.
type ReceiptService interface {
	// Preview validates in and returns the drawing instructions without
	// rendering or storing anything.
	Preview(ctx context.Context, in model.ReceiptInput) (receipt.Sequence, error)

	// Generate validates, composes and renders in, uploads the PDF and
	// records its metadata. The upload is removed again when the metadata
	// cannot be saved.
	Generate(ctx context.Context, in model.ReceiptInput) (*model.Receipt, error)

	List(ctx context.Context, limit, offset int) (*ReceiptListResult, error)
	Get(ctx context.Context, id string) (*model.Receipt, error)

	// Open streams the stored PDF. Callers close the reader.
	Open(ctx context.Context, id string) (io.ReadCloser, *model.Receipt, error)

	PresignDownload(ctx context.Context, id string) (*DownloadURL, error)

	// Delete removes the PDF first, then its metadata.
	Delete(ctx context.Context, id string) error
}

// Options tune a ReceiptService. Zero values fall back to defaults.
type Options struct {
	Filename      string
	PresignExpiry time.Duration
	Creator       string
	// Location is the zone receipt dates and times are printed in.
	Location *time.Location
	Now      func() time.Time
	Metrics  *Metrics
}

func (o Options) withDefaults() Options {
	if o.Filename == "" {
		o.Filename = DefaultFilename
	}
	if o.PresignExpiry <= 0 {
		o.PresignExpiry = DefaultPresignExpiry
	}
	if o.Creator == "" {
		o.Creator = DefaultCreator
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

type receiptService struct {
	store    storage.Storage
	repo     repository.ReceiptRepository
	renderer render.Renderer
	opts     Options
}

func NewReceiptService(store storage.Storage, repo repository.ReceiptRepository, renderer render.Renderer, opts Options) ReceiptService {
	return &receiptService{
		store:    store,
		repo:     repo,
		renderer: renderer,
		opts:     opts.withDefaults(),
	}
}

func (s *receiptService) now() time.Time {
	return s.opts.Now().In(s.opts.Location)
}

func validate(in model.ReceiptInput) error {
	if fields := validation.ValidateReceipt(in); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (s *receiptService) Preview(ctx context.Context, in model.ReceiptInput) (receipt.Sequence, error) {
	_, span := tracer.Start(ctx, "ReceiptService.Preview")
	defer span.End()

	if err := validate(in); err != nil {
		return nil, fail(span, err)
	}
	seq := receipt.Compose(in, s.now())
	span.SetAttributes(attribute.Int("receipt.instructions", len(seq)))
	return seq, nil
}

func (s *receiptService) Generate(ctx context.Context, in model.ReceiptInput) (*model.Receipt, error) {
	ctx, span := tracer.Start(ctx, "ReceiptService.Generate")
	defer span.End()

	rec, err := s.generate(ctx, in)
	switch {
	case err == nil:
		s.opts.Metrics.observe(resultSuccess)
		span.SetAttributes(attribute.String("receipt.id", rec.ID))
		return rec, nil
	case errors.Is(err, ErrValidation):
		s.opts.Metrics.observe(resultInvalid)
	default:
		s.opts.Metrics.observe(resultFailure)
	}
	return nil, fail(span, err)
}

func (s *receiptService) generate(ctx context.Context, in model.ReceiptInput) (*model.Receipt, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	now := s.now()
	pdf, err := s.renderer.Render(receipt.Compose(in, now), render.Meta{
		Title:     receipt.Title,
		Creator:   s.opts.Creator,
		CreatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: render: %w", ErrGeneration, err)
	}

	id := uuid.NewString()
	key := path.Join(KeyPrefix, id+".pdf")
	size := int64(len(pdf))

	if _, err := s.store.Put(ctx, key, bytes.NewReader(pdf), storage.PutObjectOptions{
		Size:               size,
		ContentType:        render.ContentType,
		ContentDisposition: storage.AttachmentDisposition(s.opts.Filename),
		Metadata:           objectMetadata(in),
	}); err != nil {
		return nil, fmt.Errorf("%w: upload to storage: %w", ErrGeneration, err)
	}

	stored, err := s.repo.Create(ctx, &model.Receipt{
		ID:             id,
		Filename:       s.opts.Filename,
		StoragePath:    key,
		Size:           size,
		ContentType:    render.ContentType,
		SellerName:     in.SellerName,
		BuyerName:      in.BuyerName,
		RegistrationNo: in.RegistrationNo,
		AdvancePayment: in.AdvancePayment,
		AmountInWords:  receipt.AmountWords(in),
		IssuedAt:       now,
		CreatedAt:      now.UTC(),
	})
	if err != nil {
		// The request context may already be cancelled; the rollback must still run.
		if delErr := s.store.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			return nil, fmt.Errorf("%w: db save failed: %w; rollback delete failed: %v", ErrGeneration, err, delErr)
		}
		return nil, fmt.Errorf("%w: db save failed: %w", ErrGeneration, err)
	}
	return stored, nil
}

// objectMetadata tags the stored PDF so it can be traced back without the
// database. Contacts are stored in E.164 when they parse.
func objectMetadata(in model.ReceiptInput) map[string]string {
	meta := map[string]string{
		"registration-no": in.RegistrationNo,
		"seller-contact":  in.SellerContact,
		"buyer-contact":   in.BuyerContact,
	}
	for _, k := range []string{"seller-contact", "buyer-contact"} {
		if e164, err := validation.NormalizeContact(meta[k]); err == nil {
			meta[k] = e164
		}
	}
	return meta
}

func (s *receiptService) List(ctx context.Context, limit, offset int) (*ReceiptListResult, error) {
	ctx, span := tracer.Start(ctx, "ReceiptService.List")
	defer span.End()

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, fail(span, err)
	}
	return &ReceiptListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *receiptService) Get(ctx context.Context, id string) (*model.Receipt, error) {
	ctx, span := tracer.Start(ctx, "ReceiptService.Get", trace.WithAttributes(attribute.String("receipt.id", id)))
	defer span.End()

	rec, err := s.find(ctx, id)
	if err != nil {
		return nil, fail(span, err)
	}
	return rec, nil
}

func (s *receiptService) find(ctx context.Context, id string) (*model.Receipt, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *receiptService) Open(ctx context.Context, id string) (io.ReadCloser, *model.Receipt, error) {
	ctx, span := tracer.Start(ctx, "ReceiptService.Open", trace.WithAttributes(attribute.String("receipt.id", id)))
	defer span.End()

	rec, err := s.find(ctx, id)
	if err != nil {
		return nil, nil, fail(span, err)
	}
	rc, _, err := s.store.Get(ctx, rec.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, fail(span, ErrNotFound)
		}
		return nil, nil, fail(span, fmt.Errorf("open storage object: %w", err))
	}
	return rc, rec, nil
}

func (s *receiptService) PresignDownload(ctx context.Context, id string) (*DownloadURL, error) {
	ctx, span := tracer.Start(ctx, "ReceiptService.PresignDownload", trace.WithAttributes(attribute.String("receipt.id", id)))
	defer span.End()

	rec, err := s.find(ctx, id)
	if err != nil {
		return nil, fail(span, err)
	}
	issued := s.opts.Now()
	u, err := s.store.PresignGet(ctx, rec.StoragePath, s.opts.PresignExpiry, rec.Filename)
	if err != nil {
		return nil, fail(span, fmt.Errorf("presign: %w", err))
	}
	return &DownloadURL{URL: u, ExpiresAt: issued.Add(s.opts.PresignExpiry).UTC()}, nil
}

func (s *receiptService) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "ReceiptService.Delete", trace.WithAttributes(attribute.String("receipt.id", id)))
	defer span.End()

	rec, err := s.find(ctx, id)
	if err != nil {
		return fail(span, err)
	}
	// Storage goes first so a failure never leaves a row pointing at nothing.
	if err := s.store.Delete(ctx, rec.StoragePath); err != nil {
		return fail(span, fmt.Errorf("delete storage: %w", err))
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fail(span, err)
	}
	return nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
