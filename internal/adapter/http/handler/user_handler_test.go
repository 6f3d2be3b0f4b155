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

type UserHandlerSuite struct {
	suite.Suite
	Stack *testStack
}

func (s *UserHandlerSuite) SetupTest() {
	s.Stack = newTestStack(s.T())
}

func (s *UserHandlerSuite) TearDownTest() {
	if s.Stack != nil && s.Stack.DB != nil {
		s.Stack.DB.Close()
	}
}

func TestUserHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(UserHandlerSuite))
}

func (s *UserHandlerSuite) TestCreateUserSuccess() {
	rr := s.Stack.request("POST", "/api/v1/users", `{"email": "user@example.com"}`, "")

	Expect(rr.Code).To(Equal(http.StatusCreated))

	var body struct {
		Data response.UserResponse `json:"data"`
	}
	json.Unmarshal(rr.Body.Bytes(), &body)

	Expect(body.Data.Email).To(Equal("user@example.com"))
	Expect(body.Data.CreatedAt.IsZero()).To(BeFalse())
}

func (s *UserHandlerSuite) TestCreateUserInvalidEmail() {
	rr := s.Stack.request("POST", "/api/v1/users", `{"email": "not-an-email"}`, "")

	Expect(rr.Code).To(Equal(http.StatusBadRequest))

	data := gin.H{}
	json.Unmarshal(rr.Body.Bytes(), &data)

	Expect(data["message"]).To(Equal("User must have a valid email"))
}

func (s *UserHandlerSuite) TestCreateUserMissingEmail() {
	rr := s.Stack.request("POST", "/api/v1/users", `{}`, "")

	Expect(rr.Code).To(Equal(http.StatusBadRequest))

	data := response.ErrorResponse{}
	json.Unmarshal(rr.Body.Bytes(), &data)

	Expect(data.Error.Code).To(Equal("VALIDATION_ERROR"))
	Expect(len(data.Error.Errors)).To(BeNumerically(">", 0))
}

func (s *UserHandlerSuite) TestCreateUserDuplicate() {
	rr := s.Stack.request("POST", "/api/v1/users", `{"email": "user@example.com"}`, "")
	Expect(rr.Code).To(Equal(http.StatusCreated))

	rr = s.Stack.request("POST", "/api/v1/users", `{"email": "user@example.com"}`, "")

	Expect(rr.Code).To(Equal(http.StatusConflict))

	data := gin.H{}
	json.Unmarshal(rr.Body.Bytes(), &data)

	Expect(data["message"]).To(Equal("Email is already in use"))
}

func (s *UserHandlerSuite) TestFindByEmailSuccess() {
	rr := s.Stack.request("POST", "/api/v1/users", `{"email": "user@example.com"}`, "")
	Expect(rr.Code).To(Equal(http.StatusCreated))

	rr = s.Stack.request("GET", "/api/v1/users/email?email=user@example.com", "", "")

	Expect(rr.Code).To(Equal(http.StatusOK))

	var body struct {
		Data response.UserResponse `json:"data"`
	}
	json.Unmarshal(rr.Body.Bytes(), &body)

	Expect(body.Data.Email).To(Equal("user@example.com"))
}

func (s *UserHandlerSuite) TestFindByEmailNotFound() {
	rr := s.Stack.request("GET", "/api/v1/users/email?email=ghost@example.com", "", "")

	Expect(rr.Code).To(Equal(http.StatusNotFound))

	data := gin.H{}
	json.Unmarshal(rr.Body.Bytes(), &data)

	Expect(data["message"]).To(Equal("Email does not exist"))
}
