// Package repomanager bundles the repositories of the development API.
package repomanager

import (
	"github.com/dmitrijs2005/sitecms/internal/models"
	sm "github.com/dmitrijs2005/sitecms/internal/server/models"
	"github.com/dmitrijs2005/sitecms/internal/server/repositories/articles"
	"github.com/dmitrijs2005/sitecms/internal/server/repositories/categories"
	"github.com/dmitrijs2005/sitecms/internal/server/repositories/inbox"
	"github.com/dmitrijs2005/sitecms/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Articles() articles.Repository
	Categories() categories.Repository
	Inbox() inbox.Repository
}

type MemoryRepositoryManager struct {
	users      *users.MemoryRepository
	articles   *articles.MemoryRepository
	categories *categories.MemoryRepository
	inbox      *inbox.MemoryRepository
}

// NewMemoryRepositoryManager seeds the admin account and the default
// categories. Nothing survives a restart.
func NewMemoryRepositoryManager(admin sm.User) *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:      users.NewMemoryRepository(admin),
		articles:   articles.NewMemoryRepository(),
		categories: categories.NewMemoryRepository(models.DefaultCategories()),
		inbox:      inbox.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users() users.Repository { return m.users }
func (m *MemoryRepositoryManager) Articles() articles.Repository { return m.articles }
func (m *MemoryRepositoryManager) Categories() categories.Repository { return m.categories }
func (m *MemoryRepositoryManager) Inbox() inbox.Repository { return m.inbox }
