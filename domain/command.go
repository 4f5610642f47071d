package domain

// Commands are validated by the service layer before reaching a repository.

type CreateMessageCommand struct {
	Content string `validate:"required,max=500"`
	Author  string `validate:"required"`
}

type UpdateMessageCommand struct {
	Content string `validate:"required,max=500"`
}

type CreateBookCommand struct {
	Title  string  `validate:"required,max=200"`
	Author string  `validate:"required,max=100"`
	ISBN   string  `validate:"omitempty,max=50"`
	Price  float64 `validate:"gte=0"`
}

// UpdateBookCommand carries a partial update: empty fields keep the
// stored value, a nil Price leaves the price untouched.
type UpdateBookCommand struct {
	Title  string   `validate:"omitempty,max=200"`
	Author string   `validate:"omitempty,max=100"`
	ISBN   string   `validate:"omitempty,max=50"`
	Price  *float64 `validate:"omitempty,gte=0"`
}
