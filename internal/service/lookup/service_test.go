package lookup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/request-notifier/internal/mocks/service/lookup"
)

var strategy = retry.Strategy{Attempts: 1}

func TestService_Token_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(nil, nil, cacheMock, strategy, time.Hour)

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "token:user-1").Return("tok-1", nil)

	token, err := svc.Token(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestService_Token_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokensMock := mocks.NewMocktokenRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(tokensMock, nil, cacheMock, strategy, time.Hour)

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "token:user-1").Return("", redis.Nil)
	tokensMock.EXPECT().GetToken(gomock.Any(), "user-1").Return("tok-1", nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, "token:user-1", "tok-1").Return(nil)
	cacheMock.EXPECT().Expire(gomock.Any(), "token:user-1", time.Hour).Return(redis.NewBoolResult(true, nil))

	token, err := svc.Token(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestService_Token_AbsentIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokensMock := mocks.NewMocktokenRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(tokensMock, nil, cacheMock, strategy, time.Hour)

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "token:ghost").Return("", redis.Nil)
	tokensMock.EXPECT().GetToken(gomock.Any(), "ghost").Return("", nil)

	token, err := svc.Token(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Empty(t, token)
}

func TestService_Token_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokensMock := mocks.NewMocktokenRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(tokensMock, nil, cacheMock, strategy, time.Hour)

	dbErr := errors.New("db down")
	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "token:user-1").Return("", redis.Nil)
	tokensMock.EXPECT().GetToken(gomock.Any(), "user-1").Return("", dbErr)

	_, err := svc.Token(context.Background(), "user-1")
	assert.ErrorIs(t, err, dbErr)
}

func TestService_DisplayName_CacheUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usersMock := mocks.NewMockuserRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(nil, usersMock, cacheMock, strategy, time.Hour)

	cacheErr := errors.New("redis timeout")
	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "name:vol-1").Return("", cacheErr)
	usersMock.EXPECT().GetName(gomock.Any(), "vol-1").Return("Jane", nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, "name:vol-1", "Jane").Return(cacheErr)

	name, err := svc.DisplayName(context.Background(), "vol-1")
	assert.NoError(t, err)
	assert.Equal(t, "Jane", name)
}

func TestService_DisplayName_NoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usersMock := mocks.NewMockuserRepository(ctrl)
	svc := NewService(nil, usersMock, nil, strategy, 0)

	usersMock.EXPECT().GetName(gomock.Any(), "vol-1").Return("Jane", nil)

	name, err := svc.DisplayName(context.Background(), "vol-1")
	assert.NoError(t, err)
	assert.Equal(t, "Jane", name)
}
