package service

import (
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/diagnosis-server/internal/model"
	"github.com/dtroode/diagnosis-server/internal/password"
	"github.com/dtroode/diagnosis-server/internal/repository/document"
	"github.com/dtroode/diagnosis-server/internal/storage/file"
	"github.com/dtroode/diagnosis-server/internal/testutil"
)

var testStart = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestAccounts(t *testing.T) (*Accounts, *document.Document[model.Account], *testutil.Clock) {
	t.Helper()

	doc := document.New[model.Account](file.NewBlob(filepath.Join(t.TempDir(), "users.json")))
	clock := testutil.NewClock(testStart)
	a := NewAccounts(doc, password.NewBcrypt(bcrypt.MinCost), testutil.MakeNoopLogger())
	a.now = clock.Now

	return a, doc, clock
}

func newTestSessions(t *testing.T) (*Sessions, *document.Document[model.Session], *testutil.Clock) {
	t.Helper()

	doc := document.New[model.Session](file.NewBlob(filepath.Join(t.TempDir(), "sessions.json")))
	clock := testutil.NewClock(testStart)
	s := NewSessions(doc, model.DefaultSessionTTL, testutil.MakeNoopLogger())
	s.now = clock.Now

	return s, doc, clock
}
