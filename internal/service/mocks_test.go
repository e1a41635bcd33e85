package service

import (
	"context"
	"time"

	"tech-discovery/internal/model"
)

// Func-field mocks for the repository interfaces. A nil func means the
// test does not expect that call; invoking it panics and fails the test.

type mockUserRepo struct {
	InsertFunc        func(ctx context.Context, user *model.User) (string, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*model.User, error)
	UpdateRoleFunc    func(ctx context.Context, id string, role model.Role) error
	SetSubscribedFunc func(ctx context.Context, email string) error
	CountFunc         func(ctx context.Context) (int64, error)
}

func (m *mockUserRepo) Insert(ctx context.Context, user *model.User) (string, error) {
	return m.InsertFunc(ctx, user)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return m.FindByEmailFunc(ctx, email)
}

func (m *mockUserRepo) UpdateRole(ctx context.Context, id string, role model.Role) error {
	return m.UpdateRoleFunc(ctx, id, role)
}

func (m *mockUserRepo) SetSubscribed(ctx context.Context, email string) error {
	return m.SetSubscribedFunc(ctx, email)
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	return m.CountFunc(ctx)
}

type mockProductRepo struct {
	InsertFunc         func(ctx context.Context, product *model.Product) (string, error)
	FindByIDFunc       func(ctx context.Context, id string) (*model.Product, error)
	FindByOwnerFunc    func(ctx context.Context, email string) ([]model.Product, error)
	CountByOwnerFunc   func(ctx context.Context, email string) (int64, error)
	SearchAcceptedFunc func(ctx context.Context, search string, skip, limit int64) ([]model.Product, int64, error)
	UpdateContentFunc  func(ctx context.Context, id string, req *model.UpdateProductRequest) error
	DeleteFunc         func(ctx context.Context, id string) error
	AddVoteFunc        func(ctx context.Context, id, email string) error
	RemoveVoteFunc     func(ctx context.Context, id, email string) error
	SetStatusFunc      func(ctx context.Context, id string, status model.ProductStatus) error
	SetFeaturedFunc    func(ctx context.Context, id string) error
	AddReportFunc      func(ctx context.Context, id string, report model.Report) error
	AddReviewFunc      func(ctx context.Context, id string, review model.Review) error
	ReviewQueueFunc    func(ctx context.Context) ([]model.Product, error)
	TrendingFunc       func(ctx context.Context, limit int64) ([]model.Product, error)
	FeaturedFunc       func(ctx context.Context, limit int64) ([]model.Product, error)
	StatsFunc          func(ctx context.Context) (*model.ProductStats, error)
}

func (m *mockProductRepo) Insert(ctx context.Context, product *model.Product) (string, error) {
	return m.InsertFunc(ctx, product)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockProductRepo) FindByOwner(ctx context.Context, email string) ([]model.Product, error) {
	return m.FindByOwnerFunc(ctx, email)
}

func (m *mockProductRepo) CountByOwner(ctx context.Context, email string) (int64, error) {
	return m.CountByOwnerFunc(ctx, email)
}

func (m *mockProductRepo) SearchAccepted(ctx context.Context, search string, skip, limit int64) ([]model.Product, int64, error) {
	return m.SearchAcceptedFunc(ctx, search, skip, limit)
}

func (m *mockProductRepo) UpdateContent(ctx context.Context, id string, req *model.UpdateProductRequest) error {
	return m.UpdateContentFunc(ctx, id, req)
}

func (m *mockProductRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockProductRepo) AddVote(ctx context.Context, id, email string) error {
	return m.AddVoteFunc(ctx, id, email)
}

func (m *mockProductRepo) RemoveVote(ctx context.Context, id, email string) error {
	return m.RemoveVoteFunc(ctx, id, email)
}

func (m *mockProductRepo) SetStatus(ctx context.Context, id string, status model.ProductStatus) error {
	return m.SetStatusFunc(ctx, id, status)
}

func (m *mockProductRepo) SetFeatured(ctx context.Context, id string) error {
	return m.SetFeaturedFunc(ctx, id)
}

func (m *mockProductRepo) AddReport(ctx context.Context, id string, report model.Report) error {
	return m.AddReportFunc(ctx, id, report)
}

func (m *mockProductRepo) AddReview(ctx context.Context, id string, review model.Review) error {
	return m.AddReviewFunc(ctx, id, review)
}

func (m *mockProductRepo) ReviewQueue(ctx context.Context) ([]model.Product, error) {
	return m.ReviewQueueFunc(ctx)
}

func (m *mockProductRepo) Trending(ctx context.Context, limit int64) ([]model.Product, error) {
	return m.TrendingFunc(ctx, limit)
}

func (m *mockProductRepo) Featured(ctx context.Context, limit int64) ([]model.Product, error) {
	return m.FeaturedFunc(ctx, limit)
}

func (m *mockProductRepo) Stats(ctx context.Context) (*model.ProductStats, error) {
	return m.StatsFunc(ctx)
}

type mockCouponRepo struct {
	InsertFunc     func(ctx context.Context, coupon *model.Coupon) (string, error)
	FindAllFunc    func(ctx context.Context) ([]model.Coupon, error)
	FindValidFunc  func(ctx context.Context, now time.Time) ([]model.Coupon, error)
	FindByCodeFunc func(ctx context.Context, code string) (*model.Coupon, error)
	UpdateFunc     func(ctx context.Context, id string, req *model.UpdateCouponRequest) error
	DeleteFunc     func(ctx context.Context, id string) error
}

func (m *mockCouponRepo) Insert(ctx context.Context, coupon *model.Coupon) (string, error) {
	return m.InsertFunc(ctx, coupon)
}

func (m *mockCouponRepo) FindAll(ctx context.Context) ([]model.Coupon, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockCouponRepo) FindValid(ctx context.Context, now time.Time) ([]model.Coupon, error) {
	return m.FindValidFunc(ctx, now)
}

func (m *mockCouponRepo) FindByCode(ctx context.Context, code string) (*model.Coupon, error) {
	return m.FindByCodeFunc(ctx, code)
}

func (m *mockCouponRepo) Update(ctx context.Context, id string, req *model.UpdateCouponRequest) error {
	return m.UpdateFunc(ctx, id, req)
}

func (m *mockCouponRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}
