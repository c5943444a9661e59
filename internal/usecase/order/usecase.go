package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"zoo-procure-hub/internal/domain/invoice"
	"zoo-procure-hub/internal/domain/order"
	"zoo-procure-hub/internal/domain/uow"
	"zoo-procure-hub/internal/domain/user"
	"zoo-procure-hub/pkg/id"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InvoiceGenerator builds the invoice of a delivered order. created is false
// when the order already had one.
type InvoiceGenerator interface {
	GenerateForOrder(ctx context.Context, orderRef string) (inv *invoice.Invoice, created bool, err error)
}

type Notifier interface {
	OrderDelivered(ctx context.Context, o *order.Order, inv *invoice.Invoice)
}

type Recorder interface {
	OrderTransition(from, to string)
	InvoiceAutogen(result string)
}

// Invoice auto-generation outcomes passed to Recorder.InvoiceAutogen.
const (
	AutogenCreated  = "created"
	AutogenExisting = "existing"
	AutogenFailed   = "failed"
)

type nopNotifier struct{}

func (nopNotifier) OrderDelivered(context.Context, *order.Order, *invoice.Invoice) {}

type nopRecorder struct{}

func (nopRecorder) OrderTransition(string, string) {}
func (nopRecorder) InvoiceAutogen(string) {}

type Usecase struct {
	orders   order.Repository
	users    user.Repository
	invoices invoice.Repository
	uow      uow.UnitOfWork
	gen      InvoiceGenerator
	notifier Notifier
	recorder Recorder
	log      *zap.Logger
	now      func() time.Time
}

type Option func(*Usecase)

func WithNotifier(n Notifier) Option { return func(u *Usecase) { u.notifier = n } }
func WithRecorder(r Recorder) Option { return func(u *Usecase) { u.recorder = r } }
func WithLogger(l *zap.Logger) Option { return func(u *Usecase) { u.log = l } }
func WithClock(now func() time.Time) Option { return func(u *Usecase) { u.now = now } }

func NewUsecase(orders order.Repository, users user.Repository, invoices invoice.Repository, tx uow.UnitOfWork, gen InvoiceGenerator, opts ...Option) *Usecase {
	u := &Usecase{
		orders:   orders,
		users:    users,
		invoices: invoices,
		uow:      tx,
		gen:      gen,
		notifier: nopNotifier{},
		recorder: nopRecorder{},
		log:      zap.NewNop(),
		now:      time.Now,
	}
	for _, o := range opts {
		o(u)
	}
	return u
}

func (u *Usecase) Create(ctx context.Context, requesterID string, in CreateInput) (*order.Order, error) {
	in.ItemName = strings.TrimSpace(in.ItemName)
	in.Reason = strings.TrimSpace(in.Reason)
	in.FeedType = strings.TrimSpace(in.FeedType)
	in.Quantity, in.Price = order.RoundQuantity(in.Quantity), order.RoundPrice(in.Price)
	if in.ItemName == "" || in.Reason == "" || in.Supplier == "" || in.FeedType == "" {
		return nil, order.ErrMissingFields
	}
	if in.Quantity <= order.MinQuantity {
		return nil, order.ErrInvalidQuantity
	}
	if in.Price < 0 {
		return nil, order.ErrInvalidPrice
	}
	if in.Priority == "" {
		in.Priority = order.PriorityMedium
	}
	if !in.Priority.Valid() {
		return nil, order.ErrInvalidPriority
	}

	if err := checkSupplier(ctx, u.users, in.Supplier); err != nil {
		return nil, err
	}
	if _, err := u.users.GetByID(ctx, requesterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrInvalidRequester
		}
		return nil, err
	}

	o := &order.Order{
		ID:              id.NewID32(),
		OrderID:         id.OrderID(u.now()),
		ItemName:        in.ItemName,
		Quantity:        in.Quantity,
		Price:           in.Price,
		Reason:          in.Reason,
		SupplierID:      in.Supplier,
		RequesterID:     requesterID,
		FeedType:        in.FeedType,
		Status:          order.StatusPending,
		Priority:        in.Priority,
		Department:      strings.TrimSpace(in.Department),
		DeliveryAddress: strings.TrimSpace(in.DeliveryAddress),
		ContactPerson:   strings.TrimSpace(in.ContactPerson),
		Phone:           strings.TrimSpace(in.Phone),
	}
	o.Recompute()

	if err := u.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	return u.Get(ctx, o.ID)
}

// checkSupplier accepts only an active user with the supplier role.
func checkSupplier(ctx context.Context, users user.Repository, supplierID string) error {
	s, err := users.GetByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.ErrInvalidSupplier
		}
		return err
	}
	if s.Role != user.RoleSupplier || !s.IsActive {
		return order.ErrInvalidSupplier
	}
	return nil
}

// UpdateStatus applies a transition under a row lock. Delivery then runs the
// invoice step in its own transaction; a failure there leaves the order
// delivered and is reported as a warning.
func (u *Usecase) UpdateStatus(ctx context.Context, orderID string, to order.Status, actor order.Actor) (*StatusResult, error) {
	if !to.Valid() {
		return nil, order.ErrInvalidStatus
	}

	var (
		from    order.Status
		retry   bool
		applied order.Order
	)
	err := u.uow.WithinOrderTx(ctx, orderID, func(r uow.Repos, o *order.Order) error {
		from = o.Status
		if to == order.StatusDelivered && o.CanRetryDelivery(actor) {
			retry = true
			applied = *o
			return nil
		}
		if err := o.Transition(to, actor, u.now()); err != nil {
			return err
		}
		ok, err := r.Orders.CompareAndSetStatus(ctx, o, from)
		if err != nil {
			return err
		}
		if !ok {
			return order.ErrStatusChanged
		}
		applied = *o
		return nil
	})
	if err != nil {
		return nil, notFound(err)
	}
	if !retry {
		u.recorder.OrderTransition(string(from), string(to))
	}

	// The transition is committed; a failed reload must not skip the invoice.
	o, err := u.Get(ctx, orderID)
	if err != nil {
		u.log.Warn("reload after status change failed",
			zap.String("order_id", applied.OrderID),
			zap.Error(err),
		)
		o = &applied
	}
	res := &StatusResult{Order: o, Message: MsgStatusUpdated}
	if to != order.StatusDelivered {
		return res, nil
	}

	inv, created, err := u.gen.GenerateForOrder(ctx, o.ID)
	if err != nil {
		u.log.Error("automatic invoice creation failed",
			zap.String("order_id", o.OrderID),
			zap.Error(err),
		)
		u.recorder.InvoiceAutogen(AutogenFailed)
		res.Message = MsgInvoiceFailed
		res.Warning = WarnInvoiceFailed
		return res, nil
	}

	res.Invoice, res.InvoiceCreated = inv, created
	if created {
		u.recorder.InvoiceAutogen(AutogenCreated)
		res.Message = MsgDeliveredInvoice
		u.notifier.OrderDelivered(ctx, o, inv)
	} else {
		u.recorder.InvoiceAutogen(AutogenExisting)
		res.Message = MsgDeliveredExists
	}
	return res, nil
}

// Update edits descriptive fields. TotalAmount is recomputed from the
// effective quantity and price whenever either one is supplied.
func (u *Usecase) Update(ctx context.Context, orderID string, in UpdateInput) (*order.Order, error) {
	if in.Quantity != nil && order.RoundQuantity(*in.Quantity) <= order.MinQuantity {
		return nil, order.ErrInvalidQuantity
	}
	if in.Price != nil && *in.Price < 0 {
		return nil, order.ErrInvalidPrice
	}
	if in.Priority != nil && !in.Priority.Valid() {
		return nil, order.ErrInvalidPriority
	}

	err := u.uow.WithinOrderTx(ctx, orderID, func(r uow.Repos, o *order.Order) error {
		if in.Supplier != nil && *in.Supplier != o.SupplierID {
			if err := checkSupplier(ctx, r.Users, *in.Supplier); err != nil {
				return err
			}
			o.SupplierID = *in.Supplier
		}
		setTrimmed(&o.ItemName, in.ItemName)
		setTrimmed(&o.Reason, in.Reason)
		setTrimmed(&o.FeedType, in.FeedType)
		setTrimmed(&o.Department, in.Department)
		setTrimmed(&o.DeliveryAddress, in.DeliveryAddress)
		setTrimmed(&o.ContactPerson, in.ContactPerson)
		setTrimmed(&o.Phone, in.Phone)
		if o.ItemName == "" || o.Reason == "" || o.FeedType == "" {
			return order.ErrMissingFields
		}
		if in.Priority != nil {
			o.Priority = *in.Priority
		}
		if in.Quantity != nil || in.Price != nil {
			if in.Quantity != nil {
				o.Quantity = *in.Quantity
			}
			if in.Price != nil {
				o.Price = *in.Price
			}
			o.Recompute()
		}
		return r.Orders.Save(ctx, o)
	})
	if err != nil {
		return nil, notFound(err)
	}
	return u.Get(ctx, orderID)
}

func setTrimmed(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

// Delete removes an order. Orders that were already invoiced are kept.
func (u *Usecase) Delete(ctx context.Context, orderID string) error {
	if _, err := u.invoices.GetByOrderRef(ctx, orderID); err == nil {
		return order.ErrHasInvoice
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return notFound(u.orders.Delete(ctx, orderID))
}

func (u *Usecase) Get(ctx context.Context, orderID string) (*order.Order, error) {
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, notFound(err)
	}
	return o, nil
}

// GetFor reads an order on behalf of actor. Another supplier's order is
// reported as missing.
func (u *Usecase) GetFor(ctx context.Context, orderID string, actor order.Actor) (*order.Order, error) {
	o, err := u.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if scope := actor.SupplierScope(); scope != "" && o.SupplierID != scope {
		return nil, order.ErrNotFound
	}
	return o, nil
}

func (u *Usecase) List(ctx context.Context, f order.Filter) ([]order.Order, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, order.ErrInvalidStatus
	}
	return u.orders.List(ctx, f)
}

func (u *Usecase) ListByRequester(ctx context.Context, requesterID string) ([]order.Order, error) {
	return u.List(ctx, order.Filter{RequesterID: requesterID})
}

func (u *Usecase) ListBySupplier(ctx context.Context, supplierID string) ([]order.Order, error) {
	return u.List(ctx, order.Filter{SupplierID: supplierID})
}

// ListByStatus lists orders in status; suppliers only get their own.
func (u *Usecase) ListByStatus(ctx context.Context, status order.Status, actor order.Actor) ([]order.Order, error) {
	if !status.Valid() {
		return nil, order.ErrInvalidStatus
	}
	return u.List(ctx, order.Filter{Status: status, SupplierID: actor.SupplierScope()})
}

func (u *Usecase) Stats(ctx context.Context, f order.Filter) ([]order.StatusStat, error) {
	return u.orders.StatsByStatus(ctx, f)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return order.ErrNotFound
	}
	return err
}
