package users

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func TestGetStatus(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo)

	repo.On("FindByID", mock.Anything, "user-1").Return(&User{ID: "user-1", Status: "I am new!"}, nil)

	status, err := service.GetStatus(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "I am new!", status)
}

func TestGetStatus_UserNotFound(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo)

	repo.On("FindByID", mock.Anything, "ghost").Return(nil, ErrUserNotFound)

	_, err := service.GetStatus(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo)

	user := &User{ID: "user-1", Status: "old"}
	repo.On("FindByID", mock.Anything, "user-1").Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	status, err := service.UpdateStatus(context.Background(), "user-1", "shipping it")
	require.NoError(t, err)
	assert.Equal(t, "shipping it", status)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_EmptyRejected(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo)

	_, err := service.UpdateStatus(context.Background(), "user-1", "   ")
	assert.ErrorIs(t, err, ErrEmptyStatus)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateStatus_SaveFailure(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo)

	user := &User{ID: "user-1"}
	repo.On("FindByID", mock.Anything, "user-1").Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(errors.New("write timeout"))

	_, err := service.UpdateStatus(context.Background(), "user-1", "hello")
	require.Error(t, err)
}

func TestOwnerIndexHelpers(t *testing.T) {
	u := &User{ID: "user-1"}

	u.AddPostID("p1")
	u.AddPostID("p2")
	u.AddPostID("p1") // no duplicates
	assert.Equal(t, []string{"p1", "p2"}, u.PostIDs)

	u.RemovePostID("p1")
	assert.Equal(t, []string{"p2"}, u.PostIDs)

	u.RemovePostID("missing")
	assert.Equal(t, []string{"p2"}, u.PostIDs)
}
