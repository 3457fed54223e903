package order

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/repository"
	"fulfillment/internal/service/fulfillment"
	"fulfillment/internal/service/intake"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity *entities.Order) error {
	orderDB, itemsDB, err := FromDomain(orderEntity)
	if err != nil {
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	query := `INSERT INTO orders (id, amount, address, payment, restaurant_status, status, date, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.querier.Exec(
		ctx,
		query,
		orderDB.ID,
		orderDB.Amount,
		orderDB.Address,
		orderDB.Payment,
		orderDB.RestaurantStatus,
		orderDB.Status,
		orderDB.Date,
		orderDB.Version,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return intake.ErrOrderAlreadyRegistered
		}
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	builder := qb.
		Insert("order_items").
		Columns("order_id", "food_id", "restaurant_id", "name", "image", "quantity", "unit_price", "position")
	for _, itemDB := range itemsDB {
		builder = builder.Values(
			itemDB.OrderID,
			itemDB.FoodID,
			itemDB.RestaurantID,
			itemDB.Name,
			itemDB.Image,
			itemDB.Quantity,
			itemDB.UnitPrice,
			itemDB.Position,
		)
	}

	itemsQuery, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	_, err = r.querier.Exec(ctx, itemsQuery, args...)
	if err != nil {
		return fmt.Errorf("unexpected order repository create items error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT id, amount, address, payment, restaurant_status, status, date, version
		FROM orders
		WHERE id = $1`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).
		Scan(
			&orderDB.ID,
			&orderDB.Amount,
			&orderDB.Address,
			&orderDB.Payment,
			&orderDB.RestaurantStatus,
			&orderDB.Status,
			&orderDB.Date,
			&orderDB.Version,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fulfillment.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	itemsDB, err := r.getItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	orderEntity, err := ToDomain(&orderDB, itemsDB)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}
	return orderEntity, nil
}

func (r *Repository) ListByRestaurant(
	ctx context.Context,
	restaurantID string,
	effectiveStatus *entities.FulfillmentStatusType,
) ([]entities.Order, error) {
	builder := qb.
		Select("id", "amount", "address", "payment", "restaurant_status", "status", "date", "version").
		From("orders").
		// членство ресторана в заказе определяет карта статусов
		Where(sq.Expr("restaurant_status ->> ? IS NOT NULL", restaurantID)).
		OrderBy("date DESC", "id")

	// опциональный фильтр по собственному статусу ресторана, не по общему
	if effectiveStatus != nil {
		builder = builder.Where(sq.Expr("restaurant_status ->> ? = ?", restaurantID, effectiveStatus.String()))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderDBs := make([]OrderDB, 0, 16)
	for rows.Next() {
		var orderDB OrderDB
		err := rows.Scan(
			&orderDB.ID,
			&orderDB.Amount,
			&orderDB.Address,
			&orderDB.Payment,
			&orderDB.RestaurantStatus,
			&orderDB.Status,
			&orderDB.Date,
			&orderDB.Version,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderDBs = append(orderDBs, orderDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	if len(orderDBs) == 0 {
		return []entities.Order{}, nil
	}

	orderIDs := make([]string, len(orderDBs))
	for i := range orderDBs {
		orderIDs[i] = orderDBs[i].ID
	}

	itemsByOrder, err := r.getItemsForOrders(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, len(orderDBs))
	for i := range orderDBs {
		orderEntity, err := ToDomain(&orderDBs[i], itemsByOrder[orderDBs[i].ID])
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		result[i] = *orderEntity
	}
	return result, nil
}

func (r *Repository) UpdateRestaurantStatus(
	ctx context.Context,
	orderID string,
	restaurantStatus map[string]entities.FulfillmentStatusType,
	overallStatus entities.FulfillmentStatusType,
	expectedVersion int64,
) (*entities.Order, error) {
	statusJSON, err := MarshalRestaurantStatus(restaurantStatus)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	query := `UPDATE orders
		SET restaurant_status = $2,
			status = $3,
			version = version + 1
		WHERE id = $1 AND version = $4
		RETURNING id, amount, address, payment, restaurant_status, status, date, version`

	var orderDB OrderDB
	err = r.querier.QueryRow(ctx, query, orderID, statusJSON, overallStatus.String(), expectedVersion).
		Scan(
			&orderDB.ID,
			&orderDB.Amount,
			&orderDB.Address,
			&orderDB.Payment,
			&orderDB.RestaurantStatus,
			&orderDB.Status,
			&orderDB.Date,
			&orderDB.Version,
		)
	if err != nil {
		// Сервис уже прочитал заказ в этой же транзакции, поэтому пустой
		// результат CAS-апдейта означает проигранную гонку версий, а не отсутствие заказа.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fulfillment.ErrConcurrentModification
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, fulfillment.ErrConcurrentModification
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	itemsDB, err := r.getItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	orderEntity, err := ToDomain(&orderDB, itemsDB)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}
	return orderEntity, nil
}

func (r *Repository) CountByOverallStatus(ctx context.Context) (map[entities.FulfillmentStatusType]int64, error) {
	query := `SELECT status, COUNT(*)
		FROM orders
		GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.FulfillmentStatusType]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected order repository count error: %w", err)
		}
		counts[entities.FulfillmentStatusType(status)] = count
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	return counts, nil
}

func (r *Repository) getItems(ctx context.Context, orderID string) ([]OrderItemDB, error) {
	query := `SELECT order_id, food_id, restaurant_id, name, image, quantity, unit_price, position
		FROM order_items
		WHERE order_id = $1
		ORDER BY position`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *Repository) getItemsForOrders(ctx context.Context, orderIDs []string) (map[string][]OrderItemDB, error) {
	query := `SELECT order_id, food_id, restaurant_id, name, image, quantity, unit_price, position
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, position`

	rows, err := r.querier.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}
	defer rows.Close()

	itemsDB, err := scanItems(rows)
	if err != nil {
		return nil, err
	}

	itemsByOrder := make(map[string][]OrderItemDB, len(orderIDs))
	for _, itemDB := range itemsDB {
		itemsByOrder[itemDB.OrderID] = append(itemsByOrder[itemDB.OrderID], itemDB)
	}
	return itemsByOrder, nil
}

func scanItems(rows pgx.Rows) ([]OrderItemDB, error) {
	itemsDB := make([]OrderItemDB, 0, 8)
	for rows.Next() {
		var itemDB OrderItemDB
		err := rows.Scan(
			&itemDB.OrderID,
			&itemDB.FoodID,
			&itemDB.RestaurantID,
			&itemDB.Name,
			&itemDB.Image,
			&itemDB.Quantity,
			&itemDB.UnitPrice,
			&itemDB.Position,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
		}
		itemsDB = append(itemsDB, itemDB)
	}

	err := rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}

	return itemsDB, nil
}
