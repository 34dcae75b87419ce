//go:build unit || e2e

package fakes

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"decor-booking/internal/domain/account"
	"decor-booking/internal/domain/booking"
	"decor-booking/internal/domain/catalog"
	"decor-booking/internal/domain/payment"
	"decor-booking/internal/infra"
	sqlc "decor-booking/internal/infra/sqlc/generated"
	"decor-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Hooks run inside the open transaction and let tests interleave a competing
// writer between a read and the write that depends on it.
type Hooks struct {
	AfterActiveBookingLookup func(s *Store)
	AfterPaymentLookup       func(s *Store)
}

type outboxRow struct {
	event       shared.OutboxEvent
	publishedAt *time.Time
	dead        bool
	lastError   string
}

type state struct {
	accounts map[uuid.UUID]*account.Account
	services map[uuid.UUID]*catalog.Service
	bookings map[uuid.UUID]*booking.Booking
	payments map[string]*payment.Payment
	outbox   []*outboxRow
	contacts []shared.ContactMessage
}

func (st state) clone() state {
	outbox := make([]*outboxRow, len(st.outbox))
	for i, r := range st.outbox {
		cp := *r
		outbox[i] = &cp
	}
	return state{
		accounts: maps.Clone(st.accounts),
		services: maps.Clone(st.services),
		bookings: maps.Clone(st.bookings),
		payments: maps.Clone(st.payments),
		outbox:   outbox,
		contacts: slices.Clone(st.contacts),
	}
}

// Store is an in-memory shared.UnitOfWork. Transactions are serialized and
// rolled back when fn returns an error. Uniqueness rules mirror the schema.
type Store struct {
	mu    sync.Mutex
	st    state
	Hooks Hooks
	// Fail makes every transaction fail with a storage error.
	Fail error

	commits int
}

var _ shared.UnitOfWork = (*Store)(nil)

func NewStore() *Store {
	return &Store{st: state{
		accounts: make(map[uuid.UUID]*account.Account),
		services: make(map[uuid.UUID]*catalog.Service),
		bookings: make(map[uuid.UUID]*booking.Booking),
		payments: make(map[string]*payment.Payment),
	}}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Fail != nil {
		return infra.WrapRepoErr("transaction failed", s.Fail, infra.KindDBFailure)
	}
	snapshot := s.st.clone()
	if err := fn(ctx, &fakeTx{s: s}); err != nil {
		s.st = snapshot
		return err
	}
	s.commits++
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return lockedReads{s: s}
}

// Seed helpers write directly, outside any transaction.

func (s *Store) PutAccount(a *account.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.accounts[a.ID()] = a
}

func (s *Store) PutService(svc *catalog.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.services[svc.ID()] = svc
}

func (s *Store) PutBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.bookings[b.ID()] = b
}

// InsertBookingLocked and InsertPaymentLocked are meant for hooks, which already hold the lock.
func (s *Store) InsertBookingLocked(b *booking.Booking) {
	s.st.bookings[b.ID()] = b
}

func (s *Store) InsertPaymentLocked(p *payment.Payment) {
	s.st.payments[p.TransactionID()] = p
}

func (s *Store) Booking(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.st.bookings[id]
	return b, ok
}

func (s *Store) Account(id uuid.UUID) (*account.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.st.accounts[id]
	return a, ok
}

func (s *Store) Bookings() []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Collect(maps.Values(s.st.bookings))
}

func (s *Store) Payments() []*payment.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Collect(maps.Values(s.st.payments))
}

func (s *Store) Services() []*catalog.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Collect(maps.Values(s.st.services))
}

func (s *Store) Contacts() []shared.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.contacts)
}

// Events returns the event types appended to the outbox, oldest first.
func (s *Store) Events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.st.outbox))
	for _, r := range s.st.outbox {
		out = append(out, r.event.EventType)
	}
	return out
}

// Published counts outbox rows marked published.
func (s *Store) Published() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.st.outbox {
		if r.publishedAt != nil {
			n++
		}
	}
	return n
}

// Dead counts outbox rows that exhausted their attempts.
func (s *Store) Dead() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.st.outbox {
		if r.dead {
			n++
		}
	}
	return n
}

func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

type fakeTx struct {
	s *Store
}

func (t *fakeTx) Accounts() shared.AccountRepository { return accountRepo{t.s} }
func (t *fakeTx) Services() shared.ServiceRepository { return serviceRepo{t.s} }
func (t *fakeTx) Bookings() shared.BookingRepository { return bookingRepo{t.s} }
func (t *fakeTx) Payments() shared.PaymentRepository { return paymentRepo{t.s} }
func (t *fakeTx) Outbox() shared.OutboxRepository    { return outboxRepo{t.s} }
func (t *fakeTx) Contacts() shared.ContactRepository { return contactRepo{t.s} }
func (t *fakeTx) Reads() shared.CommandReads         { return reads{t.s} }
func (t *fakeTx) DB() sqlc.DBTX                      { return nil }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// reads assumes the caller holds s.mu.
type reads struct {
	s *Store
}

func (r reads) AccountByID(_ context.Context, id uuid.UUID) (*account.Account, error) {
	a, ok := r.s.st.accounts[id]
	if !ok {
		return nil, notFound("account not found")
	}
	return a, nil
}

func (r reads) AccountByEmail(_ context.Context, email string) (*account.Account, error) {
	for _, a := range r.s.st.accounts {
		if a.Email().Equals(email) {
			return a, nil
		}
	}
	return nil, notFound("account not found")
}

func (r reads) ServiceByID(_ context.Context, id uuid.UUID) (*catalog.Service, error) {
	svc, ok := r.s.st.services[id]
	if !ok {
		return nil, notFound("service not found")
	}
	return svc, nil
}

func (r reads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.s.st.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	cp := *b
	return &cp, nil
}

func (r reads) ActiveBookingByKey(_ context.Context, key booking.LogicalKey) (*booking.Booking, error) {
	b := r.s.activeByKey(key)
	if h := r.s.Hooks.AfterActiveBookingLookup; h != nil {
		h(r.s)
	}
	if b == nil {
		return nil, notFound("booking not found")
	}
	return b, nil
}

func (r reads) PaymentByTransactionID(_ context.Context, transactionID string) (*payment.Payment, error) {
	p, ok := r.s.st.payments[transactionID]
	if h := r.s.Hooks.AfterPaymentLookup; h != nil {
		h(r.s)
	}
	if !ok {
		return nil, notFound("payment not found")
	}
	return p, nil
}

func (r reads) BookingsMissingPayment(_ context.Context, limit int32) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.s.st.bookings {
		tx := b.TransactionID()
		if tx == nil {
			continue
		}
		if _, ok := r.s.st.payments[*tx]; ok {
			continue
		}
		out = append(out, b)
		if int32(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (s *Store) activeByKey(key booking.LogicalKey) *booking.Booking {
	for _, b := range s.st.bookings {
		if b.Status() != booking.StatusCanceled && b.Key() == key {
			return b
		}
	}
	return nil
}

type lockedReads struct {
	s *Store
}

func (r lockedReads) AccountByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads{r.s}.AccountByID(ctx, id)
}

func (r lockedReads) AccountByEmail(ctx context.Context, email string) (*account.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads{r.s}.AccountByEmail(ctx, email)
}

func (r lockedReads) ServiceByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads{r.s}.ServiceByID(ctx, id)
}

func (r lockedReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads{r.s}.BookingByID(ctx, id)
}

func (r lockedReads) ActiveBookingByKey(ctx context.Context, key booking.LogicalKey) (*booking.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads{r.s}.ActiveBookingByKey(ctx, key)
}

func (r lockedReads) PaymentByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads{r.s}.PaymentByTransactionID(ctx, transactionID)
}

func (r lockedReads) BookingsMissingPayment(ctx context.Context, limit int32) ([]*booking.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads{r.s}.BookingsMissingPayment(ctx, limit)
}

type accountRepo struct{ s *Store }

func (r accountRepo) CreateIfAbsent(_ context.Context, _ sqlc.DBTX, acc *account.Account) (bool, error) {
	for _, a := range r.s.st.accounts {
		if a.Email() == acc.Email() {
			return false, nil
		}
	}
	r.s.st.accounts[acc.ID()] = acc
	return true, nil
}

func (r accountRepo) UpdateRole(_ context.Context, _ sqlc.DBTX, id uuid.UUID, role account.Role) (int64, error) {
	a, ok := r.s.st.accounts[id]
	if !ok {
		return 0, nil
	}
	if a.StoredRole() != nil && *a.StoredRole() == role {
		return 0, nil
	}
	r.s.st.accounts[id] = account.ReconstructAccount(a.ID(), a.Email(), a.DisplayName(), a.PhotoURL(), &role, a.Status(), a.CreatedAt())
	return 1, nil
}

func (r accountRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, id uuid.UUID, status account.Status) (int64, error) {
	a, ok := r.s.st.accounts[id]
	if !ok || a.Status() == status {
		return 0, nil
	}
	r.s.st.accounts[id] = account.ReconstructAccount(a.ID(), a.Email(), a.DisplayName(), a.PhotoURL(), a.StoredRole(), status, a.CreatedAt())
	return 1, nil
}

type serviceRepo struct{ s *Store }

func (r serviceRepo) Create(_ context.Context, _ sqlc.DBTX, svc *catalog.Service) (uuid.UUID, error) {
	r.s.st.services[svc.ID()] = svc
	return svc.ID(), nil
}

func (r serviceRepo) Update(_ context.Context, _ sqlc.DBTX, svc *catalog.Service) (int64, error) {
	if _, ok := r.s.st.services[svc.ID()]; !ok {
		return 0, nil
	}
	r.s.st.services[svc.ID()] = svc
	return 1, nil
}

func (r serviceRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (int64, error) {
	if _, ok := r.s.st.services[id]; !ok {
		return 0, nil
	}
	for _, b := range r.s.st.bookings {
		if b.Service().ID == id {
			return 0, infra.WrapRepoErr("service referenced by bookings", nil, infra.KindForeignKeyViolated)
		}
	}
	delete(r.s.st.services, id)
	return 1, nil
}

type bookingRepo struct{ s *Store }

func (r bookingRepo) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if r.s.activeByKey(b.Key()) != nil {
		return uuid.Nil, infra.WrapRepoErr("booking already exists", nil, infra.KindDuplicateKey)
	}
	r.s.st.bookings[b.ID()] = b
	return b.ID(), nil
}

func (r bookingRepo) FindForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.s.st.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	cp := *b
	return &cp, nil
}

func (r bookingRepo) Save(_ context.Context, _ sqlc.DBTX, b *booking.Booking) (int64, error) {
	if _, ok := r.s.st.bookings[b.ID()]; !ok {
		return 0, nil
	}
	r.s.st.bookings[b.ID()] = b
	return 1, nil
}

type paymentRepo struct{ s *Store }

func (r paymentRepo) Create(_ context.Context, _ sqlc.DBTX, p *payment.Payment) (uuid.UUID, error) {
	if _, ok := r.s.st.payments[p.TransactionID()]; ok {
		return uuid.Nil, infra.WrapRepoErr("payment already recorded", nil, infra.KindDuplicateKey)
	}
	if _, ok := r.s.st.bookings[p.BookingID()]; !ok {
		return uuid.Nil, infra.WrapRepoErr("booking missing", nil, infra.KindForeignKeyViolated)
	}
	r.s.st.payments[p.TransactionID()] = p
	return p.ID(), nil
}

type outboxRepo struct{ s *Store }

func (r outboxRepo) Append(_ context.Context, _ sqlc.DBTX, ev shared.OutboxEvent) error {
	r.s.st.outbox = append(r.s.st.outbox, &outboxRow{event: ev})
	return nil
}

func (r outboxRepo) ClaimPending(_ context.Context, _ sqlc.DBTX, limit int32) ([]shared.OutboxEvent, error) {
	var out []shared.OutboxEvent
	for _, row := range r.s.st.outbox {
		if row.publishedAt != nil || row.dead {
			continue
		}
		out = append(out, row.event)
		if int32(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (r outboxRepo) MarkPublished(_ context.Context, _ sqlc.DBTX, id uuid.UUID, at time.Time) error {
	for _, row := range r.s.st.outbox {
		if row.event.ID == id {
			row.publishedAt = &at
			return nil
		}
	}
	return notFound("outbox event not found")
}

func (r outboxRepo) MarkFailed(_ context.Context, _ sqlc.DBTX, id uuid.UUID, reason string, maxAttempts int32) error {
	for _, row := range r.s.st.outbox {
		if row.event.ID == id {
			row.event.Attempts++
			row.lastError = reason
			row.dead = row.event.Attempts >= maxAttempts
			return nil
		}
	}
	return notFound("outbox event not found")
}

type contactRepo struct{ s *Store }

func (r contactRepo) Create(_ context.Context, _ sqlc.DBTX, msg shared.ContactMessage) (uuid.UUID, error) {
	r.s.st.contacts = append(r.s.st.contacts, msg)
	return msg.ID, nil
}
