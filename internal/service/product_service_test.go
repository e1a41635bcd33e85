package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tech-discovery/internal/model"
	apperrors "tech-discovery/pkg/errors"
)

func eligibilityFixture(subscribed bool, owned int64) *ProductService {
	users := &mockUserRepo{
		FindByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{Email: email, Subscribed: subscribed}, nil
		},
	}
	products := &mockProductRepo{
		CountByOwnerFunc: func(ctx context.Context, email string) (int64, error) {
			return owned, nil
		},
	}
	return NewProductService(products, users)
}

func TestCanAddProduct(t *testing.T) {
	tests := []struct {
		name       string
		subscribed bool
		owned      int64
		want       bool
	}{
		{"free user with no products", false, 0, true},
		{"free user at the limit", false, 1, false},
		{"free user over the limit", false, 3, false},
		{"subscribed user at the limit", true, 1, true},
		{"subscribed user with many products", true, 12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := eligibilityFixture(tt.subscribed, tt.owned)
			got, err := svc.CanAddProduct(context.Background(), "ada@example.com")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanAddProductUnknownUser(t *testing.T) {
	users := &mockUserRepo{
		FindByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return nil, apperrors.ErrUserNotFound
		},
	}
	svc := NewProductService(&mockProductRepo{}, users)

	_, err := svc.CanAddProduct(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestCreateIneligibleOwner(t *testing.T) {
	inserts := 0
	users := &mockUserRepo{
		FindByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{Email: email, Subscribed: false}, nil
		},
	}
	products := &mockProductRepo{
		CountByOwnerFunc: func(ctx context.Context, email string) (int64, error) {
			return 1, nil
		},
		InsertFunc: func(ctx context.Context, product *model.Product) (string, error) {
			inserts++
			return "", nil
		},
	}

	svc := NewProductService(products, users)
	_, err := svc.Create(context.Background(), &model.CreateProductRequest{
		Name:        "tool",
		Description: "a tool",
		Owner:       model.Owner{Email: "ada@example.com"},
	})
	assert.ErrorIs(t, err, apperrors.ErrNotEligible)
	assert.Zero(t, inserts)
}

func TestCreateSetsSubmissionDefaults(t *testing.T) {
	var inserted *model.Product
	users := &mockUserRepo{
		FindByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{Email: email, Subscribed: true}, nil
		},
	}
	products := &mockProductRepo{
		InsertFunc: func(ctx context.Context, product *model.Product) (string, error) {
			inserted = product
			return "65a1b2c3d4e5f60718293a4b", nil
		},
	}

	svc := NewProductService(products, users)
	id, err := svc.Create(context.Background(), &model.CreateProductRequest{
		Name:        "tool",
		Description: "a tool",
		Tags:        []model.Tag{{Text: "ai"}},
		Owner:       model.Owner{Name: "Ada", Email: "ada@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, "65a1b2c3d4e5f60718293a4b", id)

	require.NotNil(t, inserted)
	assert.Equal(t, model.StatusPending, inserted.Status)
	assert.Zero(t, inserted.Votes)
	assert.NotNil(t, inserted.Voters)
	assert.Empty(t, inserted.Voters)
	assert.Empty(t, inserted.Reports)
	assert.Empty(t, inserted.Reviews)
	assert.False(t, inserted.Featured)
	assert.WithinDuration(t, time.Now(), inserted.CreatedAt, time.Minute)
	assert.Equal(t, "ada@example.com", inserted.Owner.Email)
}

func TestSetStatusRejectsInvalidInputBeforeStore(t *testing.T) {
	calls := 0
	products := &mockProductRepo{
		SetStatusFunc: func(ctx context.Context, id string, status model.ProductStatus) error {
			calls++
			return nil
		},
	}
	svc := NewProductService(products, &mockUserRepo{})

	for _, status := range []model.ProductStatus{"Pending", "accepted", "Banned", ""} {
		err := svc.SetStatus(context.Background(), "someid", status)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	}
	assert.Zero(t, calls, "invalid status must be rejected before any store access")

	require.NoError(t, svc.SetStatus(context.Background(), "someid", model.StatusAccepted))
	require.NoError(t, svc.SetStatus(context.Background(), "someid", model.StatusRejected))
	assert.Equal(t, 2, calls)
}

func TestAddReviewRatingBounds(t *testing.T) {
	calls := 0
	products := &mockProductRepo{
		AddReviewFunc: func(ctx context.Context, id string, review model.Review) error {
			calls++
			assert.Equal(t, 4.0, review.Rating)
			assert.False(t, review.ReviewedAt.IsZero())
			return nil
		},
	}
	svc := NewProductService(products, &mockUserRepo{})

	for _, rating := range []float64{0, 0.5, 5.5, -3} {
		err := svc.AddReview(context.Background(), "someid", &model.ReviewRequest{
			ReviewDescription: "nice",
			Rating:            rating,
			UserEmail:         "ada@example.com",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidRating)
	}
	assert.Zero(t, calls)

	err := svc.AddReview(context.Background(), "someid", &model.ReviewRequest{
		ReviewDescription: "nice",
		Rating:            4,
		UserEmail:         "ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestReportIsTimestampedAndUnconditional(t *testing.T) {
	var got model.Report
	products := &mockProductRepo{
		AddReportFunc: func(ctx context.Context, id string, report model.Report) error {
			got = report
			return nil
		},
	}
	svc := NewProductService(products, &mockUserRepo{})

	err := svc.Report(context.Background(), "someid", &model.ReportRequest{
		UserEmail:    "ada@example.com",
		ReportReason: "spam",
	})
	require.NoError(t, err)
	assert.Equal(t, "spam", got.ReportReason)
	assert.False(t, got.ReportedAt.IsZero())
}

func TestSearchPaginationMath(t *testing.T) {
	var gotSkip, gotLimit int64
	products := &mockProductRepo{
		SearchAcceptedFunc: func(ctx context.Context, search string, skip, limit int64) ([]model.Product, int64, error) {
			gotSkip, gotLimit = skip, limit
			return []model.Product{}, 25, nil
		},
	}
	svc := NewProductService(products, &mockUserRepo{})

	page, err := svc.Search(context.Background(), "ai", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), gotSkip)
	assert.Equal(t, int64(10), gotLimit)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, int64(3), page.TotalPages)
	assert.Equal(t, int64(2), page.CurrentPage)
}

func TestSearchCoercesBadPaging(t *testing.T) {
	products := &mockProductRepo{
		SearchAcceptedFunc: func(ctx context.Context, search string, skip, limit int64) ([]model.Product, int64, error) {
			assert.Zero(t, skip)
			assert.Equal(t, int64(10), limit)
			return []model.Product{}, 20, nil
		},
	}
	svc := NewProductService(products, &mockUserRepo{})

	page, err := svc.Search(context.Background(), "", -1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.CurrentPage)
	assert.Equal(t, int64(2), page.TotalPages)
}

func TestVoteErrorsPropagate(t *testing.T) {
	products := &mockProductRepo{
		AddVoteFunc: func(ctx context.Context, id, email string) error {
			return apperrors.ErrAlreadyVoted
		},
		RemoveVoteFunc: func(ctx context.Context, id, email string) error {
			return apperrors.ErrNotVoted
		},
	}
	svc := NewProductService(products, &mockUserRepo{})

	assert.ErrorIs(t, svc.Upvote(context.Background(), "someid", "ada@example.com"), apperrors.ErrAlreadyVoted)
	assert.ErrorIs(t, svc.Downvote(context.Background(), "someid", "ada@example.com"), apperrors.ErrNotVoted)
}

func TestStatsCombinesProductAndUserCounts(t *testing.T) {
	products := &mockProductRepo{
		StatsFunc: func(ctx context.Context) (*model.ProductStats, error) {
			return &model.ProductStats{
				TotalProducts: 10,
				Accepted:      6,
				Pending:       3,
				TotalReviews:  17,
			}, nil
		},
	}
	users := &mockUserRepo{
		CountFunc: func(ctx context.Context) (int64, error) { return 42, nil },
	}

	svc := NewProductService(products, users)
	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalProducts)
	assert.Equal(t, int64(6), stats.Accepted)
	assert.Equal(t, int64(3), stats.Pending)
	assert.Equal(t, int64(17), stats.TotalReviews)
	assert.Equal(t, int64(42), stats.TotalUsers)
}
