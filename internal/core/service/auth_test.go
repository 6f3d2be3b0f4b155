package service

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"taskapp/internal/adapter/database/sqlite"
	"taskapp/internal/adapter/database/sqlite/repository"
	"taskapp/internal/adapter/token"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
	"taskapp/pkg/test"
)

type AuthServiceSuite struct {
	suite.Suite
	DB      *sqlite.DB
	Users   port.UserService
	Tokens  port.TokenIssuer
	Service port.AuthService
}

func (s *AuthServiceSuite) SetupTest() {
	s.DB = test.InitTestDB()
	s.Users = NewUserService(repository.NewUserRepository(s.DB, nil))
	s.Tokens = token.NewJWT("test-secret")
	s.Service = NewAuthService(s.Users, s.Tokens)
}

func (s *AuthServiceSuite) TearDownTest() {
	if s.DB != nil {
		s.DB.Close()
	}
}

func TestAuthServiceSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) TestLoginSuccess() {
	_, err := s.Users.CreateUser(context.Background(), "user@example.com")
	s.Require().NoError(err)

	tokenString, err := s.Service.Login(context.Background(), "user@example.com")

	Expect(err).NotTo(HaveOccurred())
	Expect(tokenString).NotTo(BeEmpty())

	email, err := s.Tokens.Verify(tokenString)

	Expect(err).NotTo(HaveOccurred())
	Expect(email).To(Equal("user@example.com"))
}

func (s *AuthServiceSuite) TestLoginMissingEmail() {
	_, err := s.Service.Login(context.Background(), "")

	Expect(err).To(HaveOccurred())
	Expect(err.Error()).To(Equal("userEmail is required"))
	Expect(domain.IsKind(err, domain.KindBadRequest)).To(BeTrue())
}

func (s *AuthServiceSuite) TestLoginUnknownUser() {
	_, err := s.Service.Login(context.Background(), "ghost@example.com")

	Expect(err).To(HaveOccurred())
	Expect(err.Error()).To(Equal("User not found"))
	Expect(domain.IsKind(err, domain.KindNotFound)).To(BeTrue())
}
