package invoice

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

// Notifier is told about verified invoices. Implementations must not block.
type Notifier interface {
	InvoiceVerified(ctx context.Context, inv *invoice.Invoice)
}

// Recorder counts invoice status changes.
type Recorder interface {
	InvoiceStatus(to string)
}

type nopNotifier struct{}

func (nopNotifier) InvoiceVerified(context.Context, *invoice.Invoice) {}

type nopRecorder struct{}

func (nopRecorder) InvoiceStatus(string) {}

type Usecase struct {
	invoices invoice.Repository
	orders   order.Repository
	uow      uow.UnitOfWork
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

func NewUsecase(invoices invoice.Repository, orders order.Repository, tx uow.UnitOfWork, opts ...Option) *Usecase {
	u := &Usecase{
		invoices: invoices,
		orders:   orders,
		uow:      tx,
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

// GenerateForOrder creates the invoice of a delivered order exactly once.
// When the order already has one it is returned with created=false.
func (u *Usecase) GenerateForOrder(ctx context.Context, orderRef string) (*invoice.Invoice, bool, error) {
	var (
		out     *invoice.Invoice
		created bool
	)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		existing, err := r.Invoices.GetByOrderRef(ctx, orderRef)
		switch {
		case err == nil:
			out = existing
			return nil
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		o, err := r.Orders.GetByID(ctx, orderRef)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return invoice.ErrOrderNotFound
			}
			return err
		}
		if o.Status != order.StatusDelivered {
			return invoice.ErrOrderNotDelivered
		}

		inv := invoice.NewForDelivery(o, u.now())
		if err := r.Invoices.Create(ctx, inv); err != nil {
			return err
		}
		out, created = inv, true
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// a concurrent delivery won the unique index; the tx is gone so read outside it
		existing, gerr := u.invoices.GetByOrderRef(ctx, orderRef)
		if gerr != nil {
			return nil, false, gerr
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if created {
		u.log.Info("invoice generated",
			zap.String("invoice_id", out.InvoiceID),
			zap.String("order_ref", orderRef),
		)
	}
	return out, created, nil
}

// Create is the manual path: a supplier bills one of its delivered orders.
func (u *Usecase) Create(ctx context.Context, actor order.Actor, in CreateInput) (*invoice.Invoice, error) {
	if in.Amount != nil && *in.Amount < 0 {
		return nil, invoice.ErrInvalidAmount
	}
	now := u.now().UTC()
	var invID string

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		o, err := r.Orders.GetByID(ctx, in.OrderRef)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return invoice.ErrOrderNotFound
			}
			return err
		}
		if o.Status != order.StatusDelivered && o.Status != order.StatusReceived {
			return invoice.ErrOrderNotDelivered
		}
		if actor.Role == user.RoleSupplier && o.SupplierID != actor.UserID {
			return invoice.ErrSupplierMismatch
		}
		if _, err := r.Invoices.GetByOrderRef(ctx, o.ID); err == nil {
			return invoice.ErrAlreadyExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		inv := &invoice.Invoice{
			ID:                id.NewID32(),
			InvoiceID:         id.InvoiceID(now),
			OrderRef:          o.ID,
			SupplierID:        o.SupplierID,
			Customer:          strings.TrimSpace(in.Customer),
			Amount:            o.TotalAmount,
			Items:             strings.TrimSpace(in.Items),
			Status:            invoice.StatusSent,
			InvoiceNumber:     strings.TrimSpace(in.InvoiceNumber),
			ReceivedDate:      now,
			DueDate:           now.Add(invoice.PaymentTerm),
			Discrepancies:     []string{},
			VerificationNotes: strings.TrimSpace(in.Notes),
		}
		if inv.Customer == "" {
			inv.Customer = invoice.CustomerName(o)
		}
		if inv.Items == "" {
			inv.Items = invoice.ItemsLine(o.ItemName, o.Quantity)
		}
		if inv.InvoiceNumber == "" {
			inv.InvoiceNumber = id.InvoiceNumber(now)
		}
		if in.Amount != nil {
			inv.Amount = *in.Amount
		}
		if in.DueDate != nil {
			inv.DueDate = in.DueDate.UTC()
		}
		if err := r.Invoices.Create(ctx, inv); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return invoice.ErrAlreadyExists
			}
			return err
		}
		invID = inv.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.Get(ctx, invID)
}

func (u *Usecase) Get(ctx context.Context, invoiceID string) (*invoice.Invoice, error) {
	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, notFound(err)
	}
	return inv, nil
}

// GetFor hides other suppliers' invoices from a supplier.
func (u *Usecase) GetFor(ctx context.Context, invoiceID string, actor order.Actor) (*invoice.Invoice, error) {
	inv, err := u.Get(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if scope := actor.SupplierScope(); scope != "" && inv.SupplierID != scope {
		return nil, invoice.ErrNotFound
	}
	return inv, nil
}

func (u *Usecase) List(ctx context.Context, f invoice.Filter) ([]invoice.Invoice, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, invoice.ErrInvalidStatus
	}
	return u.invoices.List(ctx, f)
}

func (u *Usecase) ListBySupplier(ctx context.Context, supplierID string) ([]invoice.Invoice, error) {
	return u.List(ctx, invoice.Filter{SupplierID: supplierID})
}

func (u *Usecase) ListByStatus(ctx context.Context, status invoice.Status, actor order.Actor) ([]invoice.Invoice, error) {
	if !status.Valid() {
		return nil, invoice.ErrInvalidStatus
	}
	return u.List(ctx, invoice.Filter{Status: status, SupplierID: actor.SupplierScope()})
}

func (u *Usecase) Stats(ctx context.Context, f invoice.Filter) ([]invoice.StatusStat, error) {
	return u.invoices.StatsByStatus(ctx, f)
}

func (u *Usecase) Update(ctx context.Context, invoiceID string, in UpdateInput) (*invoice.Invoice, error) {
	if in.Amount != nil && *in.Amount < 0 {
		return nil, invoice.ErrInvalidAmount
	}
	err := u.uow.WithinInvoiceTx(ctx, invoiceID, func(r uow.Repos, inv *invoice.Invoice) error {
		if in.Customer != nil {
			inv.Customer = strings.TrimSpace(*in.Customer)
		}
		if in.Amount != nil {
			inv.Amount = *in.Amount
		}
		if in.Items != nil {
			inv.Items = strings.TrimSpace(*in.Items)
		}
		if in.InvoiceNumber != nil {
			inv.InvoiceNumber = strings.TrimSpace(*in.InvoiceNumber)
		}
		if in.DueDate != nil {
			inv.DueDate = in.DueDate.UTC()
		}
		if in.VerificationNotes != nil {
			inv.VerificationNotes = strings.TrimSpace(*in.VerificationNotes)
		}
		return r.Invoices.Save(ctx, inv)
	})
	if err != nil {
		return nil, notFound(err)
	}
	return u.Get(ctx, invoiceID)
}

func (u *Usecase) Verify(ctx context.Context, invoiceID, verifierID, notes string) (*invoice.Invoice, error) {
	err := u.uow.WithinInvoiceTx(ctx, invoiceID, func(r uow.Repos, inv *invoice.Invoice) error {
		if err := inv.Verify(verifierID, u.now(), notes); err != nil {
			return err
		}
		return r.Invoices.Save(ctx, inv)
	})
	if err != nil {
		return nil, notFound(err)
	}
	u.recorder.InvoiceStatus(string(invoice.StatusVerified))

	inv, err := u.Get(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	u.notifier.InvoiceVerified(ctx, inv)
	return inv, nil
}

func (u *Usecase) AddDiscrepancy(ctx context.Context, invoiceID, text string) (*invoice.Invoice, error) {
	if strings.TrimSpace(text) == "" {
		return nil, invoice.ErrEmptyDiscrepancy
	}
	err := u.uow.WithinInvoiceTx(ctx, invoiceID, func(r uow.Repos, inv *invoice.Invoice) error {
		if err := inv.AddDiscrepancy(text); err != nil {
			return err
		}
		return r.Invoices.Save(ctx, inv)
	})
	if err != nil {
		return nil, notFound(err)
	}
	u.recorder.InvoiceStatus(string(invoice.StatusDiscrepancy))
	return u.Get(ctx, invoiceID)
}

func (u *Usecase) UpdateStatus(ctx context.Context, invoiceID string, actor order.Actor, in StatusInput) (*invoice.Invoice, error) {
	if !in.Status.Valid() {
		return nil, invoice.ErrInvalidStatus
	}
	verifier := strings.TrimSpace(in.VerifiedBy)
	if verifier == "" {
		verifier = actor.UserID
	}
	err := u.uow.WithinInvoiceTx(ctx, invoiceID, func(r uow.Repos, inv *invoice.Invoice) error {
		if err := inv.SetStatus(in.Status, verifier, u.now(), in.Notes); err != nil {
			return err
		}
		return r.Invoices.Save(ctx, inv)
	})
	if err != nil {
		return nil, notFound(err)
	}
	u.recorder.InvoiceStatus(string(in.Status))

	inv, err := u.Get(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if in.Status == invoice.StatusVerified {
		u.notifier.InvoiceVerified(ctx, inv)
	}
	return inv, nil
}

func (u *Usecase) Delete(ctx context.Context, invoiceID string) error {
	return notFound(u.invoices.Delete(ctx, invoiceID))
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invoice.ErrNotFound
	}
	return err
}
