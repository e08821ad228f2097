package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryStore backs the fake repositories with plain maps. Setting forcedErr
// makes every store operation fail, which is how tests exercise the
// store-unavailable paths.
type memoryStore struct {
	mu        sync.Mutex
	accounts  map[uuid.UUID]*entity.Account
	tokens    map[string]*entity.ResetToken
	forcedErr error
	now       func() time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		accounts: make(map[uuid.UUID]*entity.Account),
		tokens:   make(map[string]*entity.ResetToken),
		now:      time.Now,
	}
}

func copyAccount(a *entity.Account) *entity.Account {
	cp := *a

	return &cp
}

func copyToken(t *entity.ResetToken) *entity.ResetToken {
	cp := *t

	return &cp
}

// fakeAccountRepository is an in-memory AccountRepository. createErr lets a
// test simulate a unique-constraint collision from a racing insert.
type fakeAccountRepository struct {
	store     *memoryStore
	createErr error
}

func (r *fakeAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.forcedErr != nil {
		return nil, r.store.forcedErr
	}

	account, ok := r.store.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return copyAccount(account), nil
}

func (r *fakeAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.forcedErr != nil {
		return nil, r.store.forcedErr
	}

	for _, account := range r.store.accounts {
		if account.Email == email {
			return copyAccount(account), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *fakeAccountRepository) FindByEmailAndCredential(ctx context.Context, email, passwordHash string) (*entity.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.forcedErr != nil {
		return nil, r.store.forcedErr
	}

	for _, account := range r.store.accounts {
		if account.Email == email && account.PasswordHash == passwordHash {
			return copyAccount(account), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *fakeAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.forcedErr != nil {
		return r.store.forcedErr
	}
	if r.createErr != nil {
		return r.createErr
	}

	for _, existing := range r.store.accounts {
		if existing.Email == account.Email {
			return repository.ErrDuplicateEmail
		}
	}

	account.ID = uuid.New()
	account.CreatedAt = r.store.now()
	account.UpdatedAt = account.CreatedAt
	r.store.accounts[account.ID] = copyAccount(account)

	return nil
}

func (r *fakeAccountRepository) UpdateFields(ctx context.Context, id uuid.UUID, patch entity.AccountPatch) (*entity.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.forcedErr != nil {
		return nil, r.store.forcedErr
	}

	account, ok := r.store.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	if patch.FullName != nil {
		account.FullName = *patch.FullName
	}
	if patch.Phone != nil {
		account.Phone = *patch.Phone
	}
	if patch.Bio != nil {
		account.Bio = *patch.Bio
	}
	account.UpdatedAt = r.store.now()

	return copyAccount(account), nil
}

func (r *fakeAccountRepository) UpdateCredential(ctx context.Context, id uuid.UUID, passwordHash string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.forcedErr != nil {
		return r.store.forcedErr
	}

	account, ok := r.store.accounts[id]
	if !ok {
		return repository.ErrAccountNotFound
	}

	account.PasswordHash = passwordHash
	account.UpdatedAt = r.store.now()

	return nil
}

func (r *fakeAccountRepository) UpdateAvatarRef(ctx context.Context, id uuid.UUID, ref string) (*entity.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.forcedErr != nil {
		return nil, r.store.forcedErr
	}

	account, ok := r.store.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	account.AvatarRef = ref
	account.UpdatedAt = r.store.now()

	return copyAccount(account), nil
}

// fakeResetTokenRepository is an in-memory ResetTokenRepository.
type fakeResetTokenRepository struct {
	store *memoryStore
}

func (r *fakeResetTokenRepository) Create(ctx context.Context, token *entity.ResetToken) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.forcedErr != nil {
		return r.store.forcedErr
	}

	token.ID = uuid.New()
	token.CreatedAt = r.store.now()
	r.store.tokens[token.Token] = copyToken(token)

	return nil
}

func (r *fakeResetTokenRepository) FindByToken(ctx context.Context, token string) (*entity.ResetToken, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.forcedErr != nil {
		return nil, r.store.forcedErr
	}

	record, ok := r.store.tokens[token]
	if !ok {
		return nil, repository.ErrResetTokenNotFound
	}

	return copyToken(record), nil
}

func (r *fakeResetTokenRepository) Redeem(ctx context.Context, token string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.forcedErr != nil {
		return false, r.store.forcedErr
	}

	record, ok := r.store.tokens[token]
	if !ok || record.Used {
		return false, nil
	}

	record.Used = true

	return true, nil
}

// fakeRepositoryFactory hands out repositories bound to the shared store.
type fakeRepositoryFactory struct {
	accountRepo *fakeAccountRepository
	tokenRepo   *fakeResetTokenRepository
}

func (f *fakeRepositoryFactory) AccountRepo() repository.AccountRepository {
	return f.accountRepo
}

func (f *fakeRepositoryFactory) ResetTokenRepo() repository.ResetTokenRepository {
	return f.tokenRepo
}

// fakeTransactionManager runs the unit of work directly against the shared
// store; service tests assert outcomes, not commit mechanics.
type fakeTransactionManager struct {
	factory *fakeRepositoryFactory
}

func (m *fakeTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// fakeHasher is deterministic like the real hashers, without the cost.
type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return "hashed:"+password == hash
}

// fakeTokenGenerator yields predictable sequential token values.
type fakeTokenGenerator struct {
	mu      sync.Mutex
	counter int
	genErr  error
}

func (g *fakeTokenGenerator) Generate() (string, error) {
	if g.genErr != nil {
		return "", g.genErr
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++

	return fmt.Sprintf("reset-token-%d", g.counter), nil
}

// fakeNotifier records every notification it is asked to deliver.
type fakeNotifier struct {
	mu        sync.Mutex
	emails    []string
	tokens    []string
	notifyErr error
}

func (n *fakeNotifier) Notify(ctx context.Context, email, token string, expiresAt time.Time) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.emails = append(n.emails, email)
	n.tokens = append(n.tokens, token)

	return n.notifyErr
}

// fakeAvatarStore mirrors the content-addressed keys of the real store.
type fakeAvatarStore struct {
	mu     sync.Mutex
	puts   map[string][]byte
	putErr error
}

func newFakeAvatarStore() *fakeAvatarStore {
	return &fakeAvatarStore{puts: make(map[string][]byte)}
}

func (s *fakeAvatarStore) Put(ctx context.Context, data []byte) (string, error) {
	if s.putErr != nil {
		return "", s.putErr
	}

	sum := sha256.Sum256(data)
	key := "avatars/" + hex.EncodeToString(sum[:])

	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts[key] = append([]byte(nil), data...)

	return key, nil
}
