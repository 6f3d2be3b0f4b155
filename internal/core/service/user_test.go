package service

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"taskapp/internal/adapter/database/sqlite"
	"taskapp/internal/adapter/database/sqlite/repository"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
	"taskapp/pkg/test"
)

type UserServiceSuite struct {
	suite.Suite
	DB      *sqlite.DB
	Repo    port.UserRepository
	Service port.UserService
}

func (s *UserServiceSuite) SetupTest() {
	s.DB = test.InitTestDB()
	s.Repo = repository.NewUserRepository(s.DB, nil)
	s.Service = NewUserService(s.Repo)
}

func (s *UserServiceSuite) TearDownTest() {
	if s.DB != nil {
		s.DB.Close()
	}
}

func TestUserServiceSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(UserServiceSuite))
}

func (s *UserServiceSuite) TestCreateUserSuccess() {
	user, err := s.Service.CreateUser(context.Background(), "user@example.com")

	Expect(err).NotTo(HaveOccurred())
	Expect(user.Email).To(Equal("user@example.com"))
	Expect(user.CreatedAt.IsZero()).To(BeFalse())

	stored, err := s.Repo.FindByEmail(context.Background(), "user@example.com")

	Expect(err).NotTo(HaveOccurred())
	Expect(stored.Email).To(Equal("user@example.com"))
}

func (s *UserServiceSuite) TestCreateUserInvalidEmail() {
	_, err := s.Service.CreateUser(context.Background(), "not-an-email")

	Expect(err).To(HaveOccurred())
	Expect(err.Error()).To(Equal("User must have a valid email"))
	Expect(domain.IsKind(err, domain.KindBadRequest)).To(BeTrue())
}

func (s *UserServiceSuite) TestCreateUserDuplicateEmail() {
	first, err := s.Service.CreateUser(context.Background(), "user@example.com")
	Expect(err).NotTo(HaveOccurred())

	_, err = s.Service.CreateUser(context.Background(), "user@example.com")

	Expect(err).To(HaveOccurred())
	Expect(err.Error()).To(Equal("Email is already in use"))
	Expect(domain.IsKind(err, domain.KindConflict)).To(BeTrue())

	// first registration is untouched
	stored, err := s.Repo.FindByEmail(context.Background(), "user@example.com")

	Expect(err).NotTo(HaveOccurred())
	Expect(stored.CreatedAt.Unix()).To(Equal(first.CreatedAt.Unix()))
}

func (s *UserServiceSuite) TestFindUserSuccess() {
	_, err := s.Service.CreateUser(context.Background(), "user@example.com")
	Expect(err).NotTo(HaveOccurred())

	user, err := s.Service.FindUser(context.Background(), "user@example.com")

	Expect(err).NotTo(HaveOccurred())
	Expect(user.Email).To(Equal("user@example.com"))
}

func (s *UserServiceSuite) TestFindUserNotFound() {
	_, err := s.Service.FindUser(context.Background(), "ghost@example.com")

	Expect(err).To(HaveOccurred())
	Expect(err.Error()).To(Equal("Email does not exist"))
	Expect(domain.IsKind(err, domain.KindNotFound)).To(BeTrue())
}
