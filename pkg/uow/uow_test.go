package uow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/wepay-checkin/pkg/uow"
	"github.com/fsdevblog/wepay-checkin/pkg/uow/mocks"
)

type stubRepo struct {
	conn uow.DBTX
}

type UOWTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockPool *mocks.MockPool
	u        *uow.UnitOfWork
}

func TestUOWSuite(t *testing.T) {
	suite.Run(t, new(UOWTestSuite))
}

func (s *UOWTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPool = mocks.NewMockPool(s.ctrl)
	s.u = uow.NewUnitOfWork(s.mockPool)
}

func (s *UOWTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *UOWTestSuite) TestRegister() {
	factory := func(conn uow.DBTX) uow.Repository { return &stubRepo{conn: conn} }

	s.Require().NoError(s.u.Register("stub", factory))
	s.Require().ErrorIs(s.u.Register("stub", factory), uow.ErrRepositoryAlreadyRegistered)
	s.Require().ErrorIs(s.u.Register("nil", nil), uow.ErrNilRepositoryFactory)
}

func (s *UOWTestSuite) TestGetRepositoryAs() {
	s.Require().NoError(s.u.Register("stub", func(conn uow.DBTX) uow.Repository {
		return &stubRepo{conn: conn}
	}))

	repo, err := uow.GetRepositoryAs[*stubRepo](s.u, "stub")
	s.Require().NoError(err)
	s.Equal(s.mockPool, repo.conn)

	_, err = uow.GetRepositoryAs[*stubRepo](s.u, "missing")
	s.Require().ErrorIs(err, uow.ErrRepositoryNotRegistered)

	_, err = uow.GetRepositoryAs[string](s.u, "stub")
	s.Require().ErrorIs(err, uow.ErrInvalidRepositoryType)
}

func (s *UOWTestSuite) TestDo_BeginError() {
	beginErr := errors.New("connection refused")
	s.mockPool.EXPECT().
		BeginTx(gomock.Any(), pgx.TxOptions{IsoLevel: pgx.ReadCommitted}).
		Return(nil, beginErr)

	called := false
	err := s.u.Do(s.T().Context(), func(context.Context, uow.TX) error {
		called = true
		return nil
	})

	s.Require().ErrorIs(err, beginErr)
	s.False(called)
}
