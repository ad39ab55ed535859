package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"souk_marketplace/internal/domain/entities"
	"souk_marketplace/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrForbidden = errors.New("operation not allowed for this role")
	ErrEmptyCart = errors.New("cart must contain at least one line")
)

// ProductNotFoundError aborts a placement when a cart line references a
// product absent from the catalog.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// InsufficientStockError aborts a placement when a line requests more units
// than the catalog has. Available carries the quantity observed at
// validation time so the caller can tell the client what is left.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Available   int64
	Requested   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: available %d, requested %d", e.ProductName, e.Available, e.Requested)
}

// PartialPlacementError reports a placement where some supplier groups were
// persisted before a later group's write failed. The created orders are
// committed and must stay visible to the caller.
type PartialPlacementError struct {
	Created []entities.Order
	Err     error
}

func (e *PartialPlacementError) Error() string {
	return fmt.Sprintf("placement partially succeeded: %d order(s) created before failure: %v", len(e.Created), e.Err)
}

func (e *PartialPlacementError) Unwrap() error {
	return e.Err
}

// CartLine is one client-submitted (product, quantity) pair, not yet
// validated against the catalog.
type CartLine struct {
	ProductID string
	Quantity  int64
}

// IOrderPlacementUseCase exposes the order splitting engine.
//
// PlaceOrder takes a multi-supplier cart, validates it against live stock,
// reserves every line atomically, splits it into one order per supplier and
// notifies each supplier. Validation is all-or-nothing: a single bad line
// creates no order for any supplier group.

type IOrderPlacementUseCase interface {
	PlaceOrder(ctx context.Context, principal entities.Principal, lines []CartLine) ([]entities.Order, error)
}

type OrderPlacementUseCase struct {
	orders        interfaces.IOrderRepository
	products      interfaces.IProductRepository
	notifications interfaces.INotificationRepository
}

var _ IOrderPlacementUseCase = (*OrderPlacementUseCase)(nil)

func NewOrderPlacementUseCase(
	orders interfaces.IOrderRepository,
	products interfaces.IProductRepository,
	notifications interfaces.INotificationRepository,
) *OrderPlacementUseCase {
	return &OrderPlacementUseCase{orders: orders, products: products, notifications: notifications}
}

type resolvedLine struct {
	product  entities.Product
	quantity int64
}

func (u *OrderPlacementUseCase) PlaceOrder(ctx context.Context, principal entities.Principal, lines []CartLine) ([]entities.Order, error) {
	if principal.Role != entities.RoleClient {
		return nil, ErrForbidden
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	resolved, err := u.resolveLines(ctx, lines)
	if err != nil {
		return nil, err
	}

	if err := u.reserveLines(ctx, resolved); err != nil {
		return nil, err
	}

	return u.persistGroups(ctx, principal, resolved)
}

// resolveLines looks up every cart line and normalizes quantities before
// anything is reserved or written.
func (u *OrderPlacementUseCase) resolveLines(ctx context.Context, lines []CartLine) ([]resolvedLine, error) {
	resolved := make([]resolvedLine, 0, len(lines))
	for _, line := range lines {
		id := strings.TrimSpace(line.ProductID)
		if id == "" {
			return nil, &ProductNotFoundError{ProductID: line.ProductID}
		}

		p, err := u.products.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if p.ID == "" {
			return nil, &ProductNotFoundError{ProductID: id}
		}

		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		if qty > p.Quantity {
			return nil, &InsufficientStockError{
				ProductID:   p.ID,
				ProductName: p.Name,
				Available:   p.Quantity,
				Requested:   qty,
			}
		}
		resolved = append(resolved, resolvedLine{product: p, quantity: qty})
	}
	return resolved, nil
}

// reserveLines performs the atomic decrement for every line. The plain
// availability check in resolveLines can race with concurrent placements;
// the conditional decrement here is what actually prevents overselling.
// On any failure all prior reservations of this cart are released.
func (u *OrderPlacementUseCase) reserveLines(ctx context.Context, resolved []resolvedLine) error {
	reserved := make([]resolvedLine, 0, len(resolved))
	for _, rl := range resolved {
		ok, err := u.products.ReserveStock(ctx, rl.product.ID, rl.quantity)
		if err != nil {
			u.releaseLines(ctx, reserved)
			return err
		}
		if !ok {
			u.releaseLines(ctx, reserved)
			return &InsufficientStockError{
				ProductID:   rl.product.ID,
				ProductName: rl.product.Name,
				Available:   rl.product.Quantity,
				Requested:   rl.quantity,
			}
		}
		reserved = append(reserved, rl)
	}
	return nil
}

func (u *OrderPlacementUseCase) releaseLines(ctx context.Context, reserved []resolvedLine) {
	for _, rl := range reserved {
		if err := u.products.ReleaseStock(ctx, rl.product.ID, rl.quantity); err != nil {
			log.Printf("[order][usecase] stock release failed product_id=%s quantity=%d err=%v", rl.product.ID, rl.quantity, err)
		}
	}
}

// persistGroups groups the reserved lines by owning supplier (first-seen
// order, original line order within each group) and writes one order per
// group. Each group is an independent commit: if a later group's write
// fails, the already-created orders stay committed and are reported through
// PartialPlacementError, and the unpersisted groups' reservations are
// released.
func (u *OrderPlacementUseCase) persistGroups(ctx context.Context, principal entities.Principal, resolved []resolvedLine) ([]entities.Order, error) {
	supplierOrder := make([]string, 0, len(resolved))
	groups := make(map[string][]resolvedLine)
	for _, rl := range resolved {
		sid := rl.product.SupplierID
		if _, seen := groups[sid]; !seen {
			supplierOrder = append(supplierOrder, sid)
		}
		groups[sid] = append(groups[sid], rl)
	}

	created := make([]entities.Order, 0, len(supplierOrder))
	for gi, sid := range supplierOrder {
		group := groups[sid]
		items := make([]entities.OrderItem, 0, len(group))
		for _, rl := range group {
			items = append(items, entities.OrderItem{
				ProductID:   rl.product.ID,
				ProductName: rl.product.Name,
				SupplierID:  rl.product.SupplierID,
				Quantity:    rl.quantity,
				UnitPrice:   rl.product.UnitPrice,
			})
		}

		o := entities.Order{
			ID:         uuid.NewString(),
			ClientID:   principal.ID,
			ClientName: principal.DisplayName,
			SupplierID: sid,
			Items:      items,
			Status:     entities.OrderStatusNew,
			CreatedAt:  time.Now().UTC(),
		}
		o.TotalAmount = o.Total()

		persisted, err := u.orders.Create(ctx, o)
		if err != nil {
			log.Printf("[order][usecase] order create failed supplier_id=%s created_so_far=%d err=%v", sid, len(created), err)
			for _, remaining := range supplierOrder[gi:] {
				u.releaseLines(ctx, groups[remaining])
			}
			if len(created) == 0 {
				return nil, err
			}
			return created, &PartialPlacementError{Created: created, Err: err}
		}
		created = append(created, persisted)
		log.Printf("[order][usecase] order created order_id=%s supplier_id=%s total=%d items=%d", persisted.ID, sid, persisted.TotalAmount, len(items))

		appendNotification(ctx, u.notifications, entities.Notification{
			RecipientID: sid,
			OrderID:     persisted.ID,
			Kind:        entities.NotificationOrderCreated,
			Message:     fmt.Sprintf("New order from %s - total %s", principal.DisplayName, formatAmount(persisted.TotalAmount)),
		})
	}
	return created, nil
}

// appendNotification appends a notification record. Notification failures
// are logged and never fail the triggering operation.
func appendNotification(ctx context.Context, repo interfaces.INotificationRepository, n entities.Notification) {
	n.ID = uuid.NewString()
	n.CreatedAt = time.Now().UTC()
	if _, err := repo.Append(ctx, n); err != nil {
		log.Printf("[order][usecase] notification append failed recipient_id=%s order_id=%s kind=%s err=%v", n.RecipientID, n.OrderID, n.Kind, err)
	}
}

func formatAmount(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}
