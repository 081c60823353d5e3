package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/campuslost/lostfound/pkg/imaging"
	"github.com/campuslost/lostfound/pkg/logger"
	"github.com/campuslost/lostfound/pkg/telemetry"
	itemdomain "github.com/campuslost/lostfound/services/item/domain"
	"github.com/campuslost/lostfound/services/item/domain/models"
	"github.com/campuslost/lostfound/services/item/domain/repositories"
	domainsvcs "github.com/campuslost/lostfound/services/item/domain/services"
)

const instrumentationName = "github.com/campuslost/lostfound/services/item"

// Catalog is the closed vocabulary a report form offers.
type Catalog struct {
	Categories []models.Category
	Locations  []models.Location
}

// ItemService orchestrates reporting, searching and removing Items.
//
// The item store never fails; it reports degraded storage through an
// Outcome. Reads that degrade are served as an empty collection. Writes that
// degrade are surfaced to the caller as ErrStorageUnavailable so a report is
// never acknowledged without being stored.
type ItemService struct {
	store         repositories.ItemStore
	log           logger.Logger
	now           func() time.Time
	maxImageBytes int64

	tracer   trace.Tracer
	reported metric.Int64Counter
	results  metric.Int64Histogram
	degraded metric.Int64Counter
}

// NewItemService returns an ItemService wired with the given store. Uploaded
// images larger than maxImageBytes are rejected.
func NewItemService(store repositories.ItemStore, log logger.Logger, maxImageBytes int64) *ItemService {
	meter := otel.Meter(instrumentationName)

	reported, err := meter.Int64Counter("lostfound.items.reported",
		metric.WithDescription("Items successfully reported"))
	if err != nil {
		reported = noop.Int64Counter{}
	}
	results, err := meter.Int64Histogram("lostfound.search.results",
		metric.WithDescription("Items returned per search"))
	if err != nil {
		results = noop.Int64Histogram{}
	}
	degraded, err := meter.Int64Counter("lostfound.store.degraded",
		metric.WithDescription("Item store operations that fell back to a safe default"))
	if err != nil {
		degraded = noop.Int64Counter{}
	}

	return &ItemService{
		store:         store,
		log:           log,
		now:           time.Now,
		maxImageBytes: maxImageBytes,
		tracer:        otel.Tracer(instrumentationName),
		reported:      reported,
		results:       results,
		degraded:      degraded,
	}
}

// Report validates r, assigns an id and creation time, and stores the new Item.
func (s *ItemService) Report(ctx context.Context, r models.Report) (*models.Item, error) {
	ctx, span := s.tracer.Start(ctx, "item.report",
		trace.WithAttributes(
			attribute.String("item.category", r.Category.String()),
			attribute.String("item.location", r.Location.String()),
			attribute.Int("item.images", len(r.Images)),
		),
	)
	defer span.End()

	now := s.now()
	item, err := models.NewItem(r, now)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	if err := domainsvcs.ValidateItemForCreation(item, models.DateOf(now)); err != nil {
		span.SetStatus(codes.Error, "invalid item")
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	if outcome := s.store.Add(ctx, item); outcome.Degraded() {
		s.recordDegraded(ctx, "add", outcome)
		return nil, fmt.Errorf("report item: %w", outcome.Err)
	}

	span.SetAttributes(attribute.String("item.id", item.ID))
	s.reported.Add(ctx, 1, metric.WithAttributes(attribute.String("category", item.Category.String())))
	s.log.InfoContext(ctx, "item reported", "item_id", item.ID, "category", item.Category, "location", item.Location)
	return item, nil
}

// Search runs the query engine over a snapshot of the collection. Unreadable
// storage yields an empty result, never an error.
func (s *ItemService) Search(ctx context.Context, f domainsvcs.Filter) []*models.Item {
	ctx, span := s.tracer.Start(ctx, "item.search",
		trace.WithAttributes(
			attribute.Bool("filter.search", f.Search != ""),
			attribute.Int("filter.active", f.ActiveCount()),
		),
	)
	defer span.End()

	snapshot, outcome := s.store.GetAll(ctx)
	if outcome.Degraded() {
		s.recordDegraded(ctx, "get_all", outcome)
	}

	items := domainsvcs.Query(snapshot, f)
	span.SetAttributes(
		attribute.Int("collection.size", len(snapshot)),
		attribute.Int("search.results", len(items)),
	)
	s.results.Record(ctx, int64(len(items)))
	return items
}

// Get returns the Item with the given id, or ErrItemNotFound.
func (s *ItemService) Get(ctx context.Context, id string) (*models.Item, error) {
	ctx, span := s.tracer.Start(ctx, "item.get", trace.WithAttributes(attribute.String("item.id", id)))
	defer span.End()

	item, ok := s.store.GetByID(ctx, id)
	if !ok {
		return nil, itemdomain.ErrItemNotFound
	}
	return item, nil
}

// Delete removes the Item with the given id. Deleting an unknown id succeeds.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "item.delete", trace.WithAttributes(attribute.String("item.id", id)))
	defer span.End()

	if outcome := s.store.DeleteByID(ctx, id); outcome.Degraded() {
		s.recordDegraded(ctx, "delete", outcome)
		return fmt.Errorf("delete item: %w", outcome.Err)
	}
	s.log.InfoContext(ctx, "item deleted", "item_id", id)
	return nil
}

// UploadImage converts an uploaded photo into the inline data URL stored on a report.
func (s *ItemService) UploadImage(ctx context.Context, r io.Reader) (*imaging.Result, error) {
	_, span := s.tracer.Start(ctx, "item.upload_image")
	defer span.End()

	res, err := imaging.ToDataURL(r, s.maxImageBytes)
	if err != nil {
		if errors.Is(err, imaging.ErrTooLarge) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidImage, err)
	}
	span.SetAttributes(
		attribute.String("image.mime", res.MIME),
		attribute.Int("image.bytes", res.Bytes),
	)
	return res, nil
}

// Catalog returns the categories and locations a report may use.
func (s *ItemService) Catalog() Catalog {
	return Catalog{
		Categories: models.Categories(),
		Locations:  models.Locations(),
	}
}

func (s *ItemService) recordDegraded(ctx context.Context, op string, outcome repositories.Outcome) {
	span := trace.SpanFromContext(ctx)
	span.RecordError(outcome.Err)
	span.SetStatus(codes.Error, "item store degraded")

	reason := "unavailable"
	if errors.Is(outcome.Err, itemdomain.ErrCorruptCollection) {
		reason = "corrupt"
	}
	s.degraded.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", op),
		attribute.String("reason", reason),
	))
	telemetry.ReportError(ctx, outcome.Err, map[string]string{"item_store.op": op, "item_store.reason": reason})
}
