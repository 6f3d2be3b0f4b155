package request

type CreateUserRequest struct {
	Email string `json:"email" validate:"required,max=255"`
}

type LoginRequest struct {
	UserEmail string `json:"userEmail"`
}

type CreateTaskRequest struct {
	UserEmail   string `json:"userEmail" validate:"required,max=255"`
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1000"`
}

// UpdateTaskRequest uses pointers so an omitted field can be told apart
// from an explicit zero value.
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Completed   *bool   `json:"completed"`
}
