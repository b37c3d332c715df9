package tour

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/TMS-BookingService/internal/domain"
	"github.com/m04kA/TMS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/TMS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с каталогом туров.
// Медиа, highlights, программа и условия хранятся в jsonb-колонках.
type Repository struct {
	db DBExecutor
}

// DBExecutor интерфейс выполнения запросов (общий с dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

// NewRepository создает новый экземпляр репозитория туров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый тур
func (r *Repository) Create(ctx context.Context, tour *domain.Tour) (*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	images, highlights, itinerary, policies, err := marshalJSONFields(tour)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal jsonb fields: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("tours").
		Columns(
			"name",
			"slug",
			"destination",
			"region",
			"price",
			"sale_price",
			"duration_days",
			"thumbnail",
			"images",
			"highlights",
			"itinerary",
			"policies",
		).
		Values(
			tour.Name,
			tour.Slug,
			tour.Destination,
			tour.Region,
			tour.Price,
			tour.SalePrice,
			tour.DurationDays,
			tour.Thumbnail,
			images,
			highlights,
			itinerary,
			policies,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tour.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	tour.CreatedAt = createdAt.Time
	tour.UpdatedAt = updatedAt.Time

	return tour, nil
}

// GetByID получает тур по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectTours().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	tour, err := scanTour(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan tour: %v", ErrScanRow, err)
	}

	return tour, nil
}

// List получает туры с фильтрацией по направлению и ценовому диапазону.
// Фильтры по ключевому слову и длительности накладывает сервисный слой:
// они охватывают jsonb-поля и диапазонную семантику, которые удобнее
// считать над доменной моделью.
func (r *Repository) List(ctx context.Context, filter domain.ToursFilter) ([]*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectTours().OrderBy("created_at DESC")

	if filter.Destination != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"destination": "%" + *filter.Destination + "%"})
	}
	if filter.MinPrice != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"price": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"price": *filter.MaxPrice})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTours(rows)
}

// Update обновляет поля тура. Nil-поля параметров не трогаются.
func (r *Repository) Update(ctx context.Context, id int64, params UpdateParams) (*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("tours").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + tourColumns)

	if params.Name != nil {
		updateBuilder = updateBuilder.Set("name", *params.Name)
	}
	if params.Slug != nil {
		updateBuilder = updateBuilder.Set("slug", *params.Slug)
	}
	if params.Destination != nil {
		updateBuilder = updateBuilder.Set("destination", *params.Destination)
	}
	if params.Region != nil {
		updateBuilder = updateBuilder.Set("region", *params.Region)
	}
	if params.Price != nil {
		updateBuilder = updateBuilder.Set("price", *params.Price)
	}
	if params.SalePrice != nil {
		updateBuilder = updateBuilder.Set("sale_price", *params.SalePrice)
	}
	if params.DurationDays != nil {
		updateBuilder = updateBuilder.Set("duration_days", *params.DurationDays)
	}
	if params.Thumbnail != nil {
		updateBuilder = updateBuilder.Set("thumbnail", *params.Thumbnail)
	}
	if params.Images != nil {
		data, err := json.Marshal(*params.Images)
		if err != nil {
			return nil, fmt.Errorf("%w: Update - marshal images: %v", ErrBuildQuery, err)
		}
		updateBuilder = updateBuilder.Set("images", data)
	}
	if params.Highlights != nil {
		data, err := json.Marshal(*params.Highlights)
		if err != nil {
			return nil, fmt.Errorf("%w: Update - marshal highlights: %v", ErrBuildQuery, err)
		}
		updateBuilder = updateBuilder.Set("highlights", data)
	}
	if params.Itinerary != nil {
		data, err := json.Marshal(*params.Itinerary)
		if err != nil {
			return nil, fmt.Errorf("%w: Update - marshal itinerary: %v", ErrBuildQuery, err)
		}
		updateBuilder = updateBuilder.Set("itinerary", data)
	}
	if params.Policies != nil {
		data, err := json.Marshal(*params.Policies)
		if err != nil {
			return nil, fmt.Errorf("%w: Update - marshal policies: %v", ErrBuildQuery, err)
		}
		updateBuilder = updateBuilder.Set("policies", data)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	tour, err := scanTour(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan tour: %v", ErrScanRow, err)
	}

	return tour, nil
}

// Delete удаляет тур из каталога
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tours").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTourNotFound
	}

	return nil
}

// UpdateParams частичное обновление тура; nil-поля не изменяются
type UpdateParams struct {
	Name         *string
	Slug         *string
	Destination  *string
	Region       *string
	Price        *float64
	SalePrice    *float64
	DurationDays *int
	Thumbnail    *string
	Images       *[]string
	Highlights   *[]string
	Itinerary    *[]domain.ItineraryItem
	Policies     *domain.Policies
}

const tourColumns = "id, name, slug, destination, region, price, sale_price, duration_days, " +
	"thumbnail, images, highlights, itinerary, policies, created_at, updated_at"

func selectTours() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"slug",
		"destination",
		"region",
		"price",
		"sale_price",
		"duration_days",
		"thumbnail",
		"images",
		"highlights",
		"itinerary",
		"policies",
		"created_at",
		"updated_at",
	).From("tours")
}

func marshalJSONFields(tour *domain.Tour) (images, highlights, itinerary, policies []byte, err error) {
	if images, err = json.Marshal(tour.Images); err != nil {
		return
	}
	if highlights, err = json.Marshal(tour.Highlights); err != nil {
		return
	}
	if itinerary, err = json.Marshal(tour.Itinerary); err != nil {
		return
	}
	policies, err = json.Marshal(tour.Policies)
	return
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTour(row rowScanner) (*domain.Tour, error) {
	var tour domain.Tour
	var createdAt, updatedAt sql.NullTime
	var images, highlights, itinerary, policies []byte

	err := row.Scan(
		&tour.ID,
		&tour.Name,
		&tour.Slug,
		&tour.Destination,
		&tour.Region,
		&tour.Price,
		&tour.SalePrice,
		&tour.DurationDays,
		&tour.Thumbnail,
		&images,
		&highlights,
		&itinerary,
		&policies,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(images, &tour.Images); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(highlights, &tour.Highlights); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(itinerary, &tour.Itinerary); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(policies, &tour.Policies); err != nil {
		return nil, err
	}

	tour.CreatedAt = createdAt.Time
	tour.UpdatedAt = updatedAt.Time

	return &tour, nil
}

func scanTours(rows *sql.Rows) ([]*domain.Tour, error) {
	tours := make([]*domain.Tour, 0)

	for rows.Next() {
		tour, err := scanTour(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTours - scan row: %v", ErrScanRow, err)
		}
		tours = append(tours, tour)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTours - rows error: %v", ErrScanRow, err)
	}

	return tours, nil
}
