package user

import (
	"Waste2Wealth-Backend/domain"
	"Waste2Wealth-Backend/entities"
	"Waste2Wealth-Backend/pkg/jwt"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}))
	return db
}

func newService(db *gorm.DB) UserService {
	return NewUserService(NewUserRepository(db), jwt.NewJWTService())
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	ctx := context.Background()

	registered, err := svc.Register(ctx, domain.UserRegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", registered.Email)
	require.Equal(t, domain.RoleUser, registered.Role)

	login, err := svc.Login(ctx, domain.UserLoginRequest{
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)
	require.Equal(t, domain.RoleUser, login.Role)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	ctx := context.Background()

	registered, err := svc.Register(ctx, domain.UserRegisterRequest{
		Email:    "bob@example.com",
		Name:     "Bob",
		Password: "supersecret",
	})
	require.NoError(t, err)

	var stored entities.User
	require.NoError(t, db.Where("id = ?", registered.ID).First(&stored).Error)
	require.NotEqual(t, "supersecret", stored.Password)
	require.NotEmpty(t, stored.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	ctx := context.Background()

	req := domain.UserRegisterRequest{
		Email:    "carol@example.com",
		Name:     "Carol",
		Password: "supersecret",
	}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	require.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
}

func TestRegisterCollectorRole(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)

	registered, err := svc.Register(context.Background(), domain.UserRegisterRequest{
		Email:    "dave@example.com",
		Name:     "Dave",
		Password: "supersecret",
		Role:     domain.RoleCollector,
	})
	require.NoError(t, err)
	require.Equal(t, domain.RoleCollector, registered.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.UserRegisterRequest{
		Email:    "eve@example.com",
		Name:     "Eve",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, domain.UserLoginRequest{
		Email:    "eve@example.com",
		Password: "wrongpassword",
	})
	require.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestLoginUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)

	_, err := svc.Login(context.Background(), domain.UserLoginRequest{
		Email:    "nobody@example.com",
		Password: "supersecret",
	})
	require.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestMeReturnsProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	ctx := context.Background()

	registered, err := svc.Register(ctx, domain.UserRegisterRequest{
		Email:    "frank@example.com",
		Name:     "Frank",
		Password: "supersecret",
	})
	require.NoError(t, err)

	me, err := svc.Me(ctx, registered.ID)
	require.NoError(t, err)
	require.Equal(t, registered.Email, me.Email)
	require.Equal(t, registered.Name, me.Name)

	_, err = svc.Me(ctx, uuid.New().String())
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
