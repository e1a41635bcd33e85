package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tech-discovery/internal/model"
	"tech-discovery/internal/repository"
	"tech-discovery/internal/service"
	apperrors "tech-discovery/pkg/errors"
)

// Stubs embed the repository interface so each test overrides only the
// calls it expects; an unexpected call panics on the nil interface.

type userRepoStub struct {
	repository.UserRepository
	findByEmail   func(ctx context.Context, email string) (*model.User, error)
	insert        func(ctx context.Context, user *model.User) (string, error)
	setSubscribed func(ctx context.Context, email string) error
}

func (s *userRepoStub) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.findByEmail(ctx, email)
}

func (s *userRepoStub) Insert(ctx context.Context, user *model.User) (string, error) {
	return s.insert(ctx, user)
}

func (s *userRepoStub) SetSubscribed(ctx context.Context, email string) error {
	return s.setSubscribed(ctx, email)
}

type productRepoStub struct {
	repository.ProductRepository
	countByOwner func(ctx context.Context, email string) (int64, error)
	addVote      func(ctx context.Context, id, email string) error
	setStatus    func(ctx context.Context, id string, status model.ProductStatus) error
}

func (s *productRepoStub) CountByOwner(ctx context.Context, email string) (int64, error) {
	return s.countByOwner(ctx, email)
}

func (s *productRepoStub) AddVote(ctx context.Context, id, email string) error {
	return s.addVote(ctx, id, email)
}

func (s *productRepoStub) SetStatus(ctx context.Context, id string, status model.ProductStatus) error {
	return s.setStatus(ctx, id, status)
}

func testRouter(users repository.UserRepository, products repository.ProductRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	userService := service.NewUserService(users)
	productService := service.NewProductService(products, users)

	r := gin.New()
	RegisterRoutes(r, RouteConfig{
		Users:    NewUserHandler(userService, productService, log),
		Products: NewProductHandler(productService, log),
		Coupons:  NewCouponHandler(service.NewCouponService(nil), log),
		Platform: NewPlatformHandler(nil, nil, log),
	})
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterDuplicateKeepsLegacyContract(t *testing.T) {
	users := &userRepoStub{
		findByEmail: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{Email: email}, nil
		},
	}
	r := testRouter(users, &productRepoStub{})

	w := doJSON(t, r, http.MethodPost, "/users", `{"email":"ada@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message    string  `json:"message"`
		InsertedID *string `json:"insertedId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user already exists", resp.Message)
	assert.Nil(t, resp.InsertedID)
}

func TestRegisterNewUserReturnsInsertedID(t *testing.T) {
	users := &userRepoStub{
		findByEmail: func(ctx context.Context, email string) (*model.User, error) {
			return nil, apperrors.ErrUserNotFound
		},
		insert: func(ctx context.Context, user *model.User) (string, error) {
			return "65a1b2c3d4e5f60718293a4b", nil
		},
	}
	r := testRouter(users, &productRepoStub{})

	w := doJSON(t, r, http.MethodPost, "/users", `{"email":"ada@example.com","name":"Ada"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		InsertedID *string `json:"insertedId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.InsertedID)
	assert.Equal(t, "65a1b2c3d4e5f60718293a4b", *resp.InsertedID)
}

func TestRegisterMissingEmail(t *testing.T) {
	r := testRouter(&userRepoStub{}, &productRepoStub{})

	w := doJSON(t, r, http.MethodPost, "/users", `{"name":"Ada"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "message")
}

func TestProfileNotFound(t *testing.T) {
	users := &userRepoStub{
		findByEmail: func(ctx context.Context, email string) (*model.User, error) {
			return nil, apperrors.ErrUserNotFound
		},
	}
	r := testRouter(users, &productRepoStub{})

	w := doJSON(t, r, http.MethodGet, "/user/profile?email=ghost@example.com", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEligibilityForFreeUserAtLimit(t *testing.T) {
	users := &userRepoStub{
		findByEmail: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{Email: email, Subscribed: false}, nil
		},
	}
	products := &productRepoStub{
		countByOwner: func(ctx context.Context, email string) (int64, error) {
			return 1, nil
		},
	}
	r := testRouter(users, products)

	w := doJSON(t, r, http.MethodGet, "/user/eligibility?email=ada@example.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"canAddProduct": false}`, w.Body.String())
}

func TestSubscribeUnknownUser(t *testing.T) {
	users := &userRepoStub{
		setSubscribed: func(ctx context.Context, email string) error {
			return apperrors.ErrUserNotFound
		},
	}
	r := testRouter(users, &productRepoStub{})

	w := doJSON(t, r, http.MethodPatch, "/user/subscribe", `{"email":"ghost@example.com"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
