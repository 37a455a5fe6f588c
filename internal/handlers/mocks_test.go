package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/harentsoaR/primelab-api/internal/models"
)

type MockUsers struct{ mock.Mock }

func (m *MockUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.Error(1)
}

func (m *MockUsers) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUsers) Create(ctx context.Context, u *models.User) (models.InsertResult, bool, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(models.InsertResult), args.Bool(1), args.Error(2)
}

func (m *MockUsers) UpdateProfile(ctx context.Context, email string, p models.ProfileUpdate) (models.UpdateResult, error) {
	args := m.Called(ctx, email, p)
	return args.Get(0).(models.UpdateResult), args.Error(1)
}

func (m *MockUsers) ApplyAction(ctx context.Context, id string, action models.AdminAction) (models.UpdateResult, error) {
	args := m.Called(ctx, id, action)
	return args.Get(0).(models.UpdateResult), args.Error(1)
}

type MockTests struct{ mock.Mock }

func (m *MockTests) List(ctx context.Context) ([]models.LabTest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.LabTest), args.Error(1)
}

func (m *MockTests) Page(ctx context.Context, page, size int64) ([]models.LabTest, error) {
	args := m.Called(ctx, page, size)
	return args.Get(0).([]models.LabTest), args.Error(1)
}

func (m *MockTests) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTests) Get(ctx context.Context, id string) (*models.LabTest, error) {
	args := m.Called(ctx, id)
	var test *models.LabTest
	if args.Get(0) != nil {
		test = args.Get(0).(*models.LabTest)
	}
	return test, args.Error(1)
}

func (m *MockTests) Create(ctx context.Context, t *models.LabTest) (models.InsertResult, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(models.InsertResult), args.Error(1)
}

func (m *MockTests) Update(ctx context.Context, id string, t *models.LabTest) (models.UpdateResult, error) {
	args := m.Called(ctx, id, t)
	return args.Get(0).(models.UpdateResult), args.Error(1)
}

func (m *MockTests) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.DeleteResult), args.Error(1)
}

func (m *MockTests) ReserveSlot(ctx context.Context, id string) (models.UpdateResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.UpdateResult), args.Error(1)
}

func (m *MockTests) ReleaseSlot(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockBanners struct{ mock.Mock }

func (m *MockBanners) List(ctx context.Context) ([]models.Document, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *MockBanners) Create(ctx context.Context, b models.Document) (models.InsertResult, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(models.InsertResult), args.Error(1)
}

func (m *MockBanners) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.DeleteResult), args.Error(1)
}

func (m *MockBanners) Activate(ctx context.Context, id string) (models.UpdateResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.UpdateResult), args.Error(1)
}

type MockReservations struct{ mock.Mock }

func (m *MockReservations) Create(ctx context.Context, r *models.Reservation) (models.InsertResult, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(models.InsertResult), args.Error(1)
}

func (m *MockReservations) List(ctx context.Context) ([]models.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *MockReservations) ListByEmail(ctx context.Context, email, reportStatus string) ([]models.Reservation, error) {
	args := m.Called(ctx, email, reportStatus)
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *MockReservations) Delete(ctx context.Context, id, owner string) (models.DeleteResult, error) {
	args := m.Called(ctx, id, owner)
	return args.Get(0).(models.DeleteResult), args.Error(1)
}

func (m *MockReservations) UpdateReport(ctx context.Context, id string, u models.ReportUpdate) (models.UpdateResult, error) {
	args := m.Called(ctx, id, u)
	return args.Get(0).(models.UpdateResult), args.Error(1)
}

type MockContent struct{ mock.Mock }

func (m *MockContent) Recommendations(ctx context.Context) ([]models.Document, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *MockContent) Doctors(ctx context.Context) ([]models.Document, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *MockContent) CreateFeedback(ctx context.Context, f models.Document) (models.InsertResult, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(models.InsertResult), args.Error(1)
}

type MockStats struct{ mock.Mock }

func (m *MockStats) AdminStats(ctx context.Context) (models.AdminStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.AdminStats), args.Error(1)
}

func (m *MockStats) BookedStats(ctx context.Context) (models.BookedStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.BookedStats), args.Error(1)
}

func (m *MockStats) MostBookedTests(ctx context.Context, limit int) ([]models.BookedTest, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.BookedTest), args.Error(1)
}

type MockPayments struct{ mock.Mock }

func (m *MockPayments) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	args := m.Called(ctx, price)
	return args.String(0), args.Error(1)
}
