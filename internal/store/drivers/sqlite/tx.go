package sqlite

import (
	"database/sql"

	"github.com/krishx06/gitinsights-pro/internal/store"
)

type txStore struct {
	tx *sql.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Users() store.Users               { return &usersRepo{db: t.tx} }
func (t *txStore) Repositories() store.Repositories { return &repositoriesRepo{db: t.tx} }
func (t *txStore) Dashboards() store.Dashboards     { return &dashboardsRepo{db: t.tx} }
