package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"taskapp/internal/core/model/response"
)

type AuthHandlerSuite struct {
	suite.Suite
	Stack *testStack
}

func (s *AuthHandlerSuite) SetupTest() {
	s.Stack = newTestStack(s.T())
}

func (s *AuthHandlerSuite) TearDownTest() {
	if s.Stack != nil && s.Stack.DB != nil {
		s.Stack.DB.Close()
	}
}

func TestAuthHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(AuthHandlerSuite))
}

func (s *AuthHandlerSuite) TestLoginSuccess() {
	rr := s.Stack.request("POST", "/api/v1/users", `{"email": "user@example.com"}`, "")
	Expect(rr.Code).To(Equal(http.StatusCreated))

	rr = s.Stack.request("POST", "/api/v1/auth/login", `{"userEmail": "user@example.com"}`, "")

	Expect(rr.Code).To(Equal(http.StatusOK))

	var body response.LoginResponse
	json.Unmarshal(rr.Body.Bytes(), &body)

	Expect(body.Token).NotTo(BeEmpty())

	email, err := s.Stack.Tokens.Verify(body.Token)

	Expect(err).NotTo(HaveOccurred())
	Expect(email).To(Equal("user@example.com"))
}

func (s *AuthHandlerSuite) TestLoginMissingEmail() {
	rr := s.Stack.request("POST", "/api/v1/auth/login", `{}`, "")

	Expect(rr.Code).To(Equal(http.StatusBadRequest))

	data := gin.H{}
	json.Unmarshal(rr.Body.Bytes(), &data)

	Expect(data["message"]).To(Equal("userEmail is required"))
}

func (s *AuthHandlerSuite) TestLoginUnknownUser() {
	rr := s.Stack.request("POST", "/api/v1/auth/login", `{"userEmail": "ghost@example.com"}`, "")

	Expect(rr.Code).To(Equal(http.StatusNotFound))

	data := gin.H{}
	json.Unmarshal(rr.Body.Bytes(), &data)

	Expect(data["message"]).To(Equal("User not found"))
}
