package repository

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"taskapp/internal/adapter/database/sqlite"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
	"taskapp/pkg/test"
	"taskapp/pkg/test/factory"
)

type UserRepositorySuite struct {
	suite.Suite
	DB   *sqlite.DB
	Repo port.UserRepository
}

func (s *UserRepositorySuite) SetupTest() {
	s.DB = test.InitTestDB()
	s.Repo = NewUserRepository(s.DB, nil)
}

func (s *UserRepositorySuite) TearDownTest() {
	if s.DB != nil {
		s.DB.Close()
	}
}

func TestUserRepositorySuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(UserRepositorySuite))
}

func (s *UserRepositorySuite) TestCreateAndFindByEmail() {
	user := factory.NewUser[domain.User](map[string]any{
		"Email":     "user@example.com",
		"CreatedAt": time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	})

	Expect(s.Repo.Create(context.Background(), user)).To(Succeed())

	stored, err := s.Repo.FindByEmail(context.Background(), "user@example.com")

	Expect(err).NotTo(HaveOccurred())
	Expect(stored.Email).To(Equal("user@example.com"))
	Expect(stored.CreatedAt.UTC()).To(Equal(user.CreatedAt.UTC()))
}

func (s *UserRepositorySuite) TestFindByEmailNotFound() {
	_, err := s.Repo.FindByEmail(context.Background(), "ghost@example.com")

	Expect(err).To(HaveOccurred())
	Expect(domain.IsKind(err, domain.KindNotFound)).To(BeTrue())
}
