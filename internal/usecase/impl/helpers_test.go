package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"foodmarket/internal/domain/repository"
	mockRepo "foodmarket/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txRepos are the repositories handed to transaction callbacks.
type txRepos struct {
	factory      *mockRepo.MockRepositoryFactory
	auth         *mockRepo.MockAuthRepository
	refreshToken *mockRepo.MockRefreshTokenRepository
	vendor       *mockRepo.MockVendorRepository
	customer     *mockRepo.MockCustomerRepository
	menu         *mockRepo.MockMenuRepository
	order        *mockRepo.MockOrderRepository
	notification *mockRepo.MockNotificationRepository
}

func newTxRepos(t *testing.T) *txRepos {
	repos := &txRepos{
		factory:      mockRepo.NewMockRepositoryFactory(t),
		auth:         mockRepo.NewMockAuthRepository(t),
		refreshToken: mockRepo.NewMockRefreshTokenRepository(t),
		vendor:       mockRepo.NewMockVendorRepository(t),
		customer:     mockRepo.NewMockCustomerRepository(t),
		menu:         mockRepo.NewMockMenuRepository(t),
		order:        mockRepo.NewMockOrderRepository(t),
		notification: mockRepo.NewMockNotificationRepository(t),
	}

	repos.factory.EXPECT().AuthRepo().Return(repos.auth).Maybe()
	repos.factory.EXPECT().RefreshTokenRepo().Return(repos.refreshToken).Maybe()
	repos.factory.EXPECT().VendorRepo().Return(repos.vendor).Maybe()
	repos.factory.EXPECT().CustomerRepo().Return(repos.customer).Maybe()
	repos.factory.EXPECT().MenuRepo().Return(repos.menu).Maybe()
	repos.factory.EXPECT().OrderRepo().Return(repos.order).Maybe()
	repos.factory.EXPECT().NotificationRepo().Return(repos.notification).Maybe()

	return repos
}

// runTransactions makes txManager run every callback against the mocked repositories.
func (repos *txRepos) runTransactions(txManager *mockRepo.MockTransactionManager) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		})
}
