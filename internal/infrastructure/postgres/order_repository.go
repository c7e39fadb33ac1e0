package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
	"github.com/tu-usuario/barf-backoffice/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de solo lectura del puerto OrderRepository sobre
// PostgreSQL. Los pedidos pertenecen al flujo de checkout; este motor nunca
// los escribe.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// ListByLocationAndDate devuelve los pedidos de la sede para la fecha de
// entrega con renglones y opciones armados. Las tres consultas corren dentro
// del mismo reintento para que una corrida vea un snapshot consistente.
func (r *OrderRepo) ListByLocationAndDate(ctx context.Context, location string, date entity.Date) ([]entity.Order, error) {
	var orders []entity.Order

	err := withRetry(ctx, 3, func() error {
		var err error
		orders, err = r.listOrders(ctx, location, date)
		if err != nil || len(orders) == 0 {
			return err
		}
		return r.attachItems(ctx, orders)
	})
	if err != nil {
		return nil, fmt.Errorf("list orders %s/%s: %w", location, date, err)
	}
	return orders, nil
}

func (r *OrderRepo) listOrders(ctx context.Context, location string, date entity.Date) ([]entity.Order, error) {
	sql := `
		SELECT id, location, delivery_date, buyer_type, payment_method, created_at
		FROM orders
		WHERE location = $1 AND delivery_date = $2
		ORDER BY created_at`
	rows, err := r.q.Query(ctx, sql, location, date.Time(time.UTC))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []entity.Order
	for rows.Next() {
		var o entity.Order
		var delivery time.Time
		if err := rows.Scan(&o.ID, &o.Location, &delivery, &o.BuyerType, &o.PaymentMethod, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.DeliveryDate = entity.DateOf(delivery)
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// attachItems carga renglones y opciones de los pedidos en dos consultas.
func (r *OrderRepo) attachItems(ctx context.Context, orders []entity.Order) error {
	ids := make([]string, len(orders))
	index := make(map[string]*entity.Order, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		index[orders[i].ID] = &orders[i]
	}

	itemsSQL := `
		SELECT id, order_id, name, quantity
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, id`
	rows, err := r.q.Query(ctx, itemsSQL, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	type itemRef struct {
		orderID string
		idx     int
	}
	itemIndex := make(map[string]itemRef)
	for rows.Next() {
		var itemID, orderID string
		var item entity.OrderLineItem
		if err := rows.Scan(&itemID, &orderID, &item.Name, &item.Quantity); err != nil {
			return err
		}
		o := index[orderID]
		if o == nil {
			continue
		}
		o.Items = append(o.Items, item)
		itemIndex[itemID] = itemRef{orderID: orderID, idx: len(o.Items) - 1}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	optsSQL := `
		SELECT oo.order_item_id, oo.name, oo.quantity
		FROM order_item_options oo
		JOIN order_items oi ON oi.id = oo.order_item_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oo.order_item_id, oo.id`
	optRows, err := r.q.Query(ctx, optsSQL, ids)
	if err != nil {
		return err
	}
	defer optRows.Close()

	for optRows.Next() {
		var itemID string
		var opt entity.ItemOption
		if err := optRows.Scan(&itemID, &opt.Name, &opt.Quantity); err != nil {
			return err
		}
		ref, ok := itemIndex[itemID]
		if !ok {
			continue
		}
		o := index[ref.orderID]
		o.Items[ref.idx].Options = append(o.Items[ref.idx].Options, opt)
	}
	return optRows.Err()
}
