package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/dtroode/diagnosis-server/internal/logger"
	"github.com/dtroode/diagnosis-server/internal/model"
	"github.com/dtroode/diagnosis-server/internal/password"
)

// emailPattern accepts local@domain.tld without whitespace or extra '@'.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// dummyPassword is hashed once and compared against on unknown emails so
// both failure paths of Authenticate cost one bcrypt comparison.
const dummyPassword = "Dummy-Passw0rd!"

// Accounts is the credential store: registration, authentication and
// email verification over one account document.
type Accounts struct {
	mu     sync.Mutex
	store  model.AccountStore
	hasher model.PasswordHasher
	logger *logger.Logger
	now    func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

func NewAccounts(store model.AccountStore, hasher model.PasswordHasher, logger *logger.Logger) *Accounts {
	return &Accounts{
		store:  store,
		hasher: hasher,
		logger: logger,
		now:    time.Now,
	}
}

// Register creates an account. An empty role means model.DefaultRole.
func (a *Accounts) Register(ctx context.Context, email, pw, role string) error {
	a.logger.Debug("Accounts service: starting user registration",
		"email", email)

	if role == "" {
		role = model.DefaultRole
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	accounts, err := a.store.Load(ctx)
	if err != nil {
		a.logger.Error("Accounts service: failed to load accounts",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to load accounts: %w", err)
	}

	if _, ok := accounts[email]; ok {
		a.logger.Info("Accounts service: user already exists",
			"email", email)
		return model.ErrDuplicateEmail
	}

	if !emailPattern.MatchString(email) {
		return model.ErrInvalidEmail
	}

	if err := password.Validate(pw); err != nil {
		return err
	}

	hash, err := a.hasher.Hash(pw)
	if err != nil {
		if !errors.Is(err, model.ErrWeakPassword) {
			a.logger.Error("Accounts service: failed to hash password",
				"email", email,
				"error", err.Error())
		}
		return err
	}

	accounts[email] = model.Account{
		Password:  hash,
		Role:      role,
		CreatedAt: model.NewTimestamp(a.now()),
		Metadata:  map[string]any{},
	}

	if err := a.store.Save(ctx, accounts); err != nil {
		a.logger.Error("Accounts service: failed to save accounts",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to save accounts: %w", err)
	}

	a.logger.Info("Accounts service: user registration completed successfully",
		"email", email,
		"role", role)

	return nil
}

// Authenticate checks the password and records the login time. It returns
// the account role. Unknown emails and wrong passwords both yield
// model.ErrInvalidCredentials.
func (a *Accounts) Authenticate(ctx context.Context, email, pw string) (string, error) {
	a.logger.Debug("Accounts service: starting user login",
		"email", email)

	a.mu.Lock()
	defer a.mu.Unlock()

	accounts, err := a.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load accounts: %w", err)
	}

	account, ok := accounts[email]
	if !ok {
		a.burnComparison(pw)
		a.logger.Info("Accounts service: login for unknown email",
			"email", email)
		return "", model.ErrInvalidCredentials
	}

	if err := a.hasher.Compare(account.Password, pw); err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			a.logger.Info("Accounts service: password mismatch",
				"email", email)
			return "", model.ErrInvalidCredentials
		}
		a.logger.Error("Accounts service: failed to compare password",
			"email", email,
			"error", err.Error())
		return "", err
	}

	login := model.NewTimestamp(a.now())
	account.LastLogin = &login
	if account.Metadata == nil {
		account.Metadata = map[string]any{}
	}
	accounts[email] = account

	if err := a.store.Save(ctx, accounts); err != nil {
		return "", fmt.Errorf("failed to save accounts: %w", err)
	}

	a.logger.Info("Accounts service: login completed successfully",
		"email", email,
		"role", account.Role)

	return account.Role, nil
}

// VerifyEmail marks the account's email as verified.
func (a *Accounts) VerifyEmail(ctx context.Context, email string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	accounts, err := a.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}

	account, ok := accounts[email]
	if !ok {
		return model.ErrUserNotFound
	}

	account.EmailVerified = true
	accounts[email] = account

	if err := a.store.Save(ctx, accounts); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}

	a.logger.Info("Accounts service: email verified",
		"email", email)

	return nil
}

// Exists reports whether an account is registered for email.
func (a *Accounts) Exists(ctx context.Context, email string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	accounts, err := a.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load accounts: %w", err)
	}

	_, ok := accounts[email]
	return ok, nil
}

func (a *Accounts) burnComparison(pw string) {
	a.dummyOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err == nil {
			a.dummyHash = hash
		}
	})
	if a.dummyHash != "" {
		_ = a.hasher.Compare(a.dummyHash, pw)
	}
}
